package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrProfileReadOnly is returned by updates when no user store is configured
var ErrProfileReadOnly = errors.New("profile editing is not available")

// ProfileUpdate holds the fields a user may change on their profile
type ProfileUpdate struct {
	Name      string `form:"name" validate:"required,max=255"`
	Title     string `form:"title" validate:"max=255"`
	AvatarURL string `form:"avatar_url" validate:"omitempty,max=1024,http_url"`
}

// ValidationError reports the first invalid profile field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

var fieldLabels = map[string]string{
	"name":       "Name",
	"title":      "Title",
	"avatar_url": "Avatar URL",
}

func (u ProfileUpdate) normalized() ProfileUpdate {
	return ProfileUpdate{
		Name:      strings.TrimSpace(u.Name),
		Title:     strings.TrimSpace(u.Title),
		AvatarURL: strings.TrimSpace(u.AvatarURL),
	}
}

// Validate checks lengths and that the avatar is an absolute http(s) URL
func (u ProfileUpdate) Validate() error {
	err := validate.Struct(u)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	label := fieldLabels[fe.Field()]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: fe.Field(), Message: label + " is required."}
	case "max":
		return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())}
	default:
		return &ValidationError{Field: fe.Field(), Message: label + " must be an http or https link."}
	}
}
