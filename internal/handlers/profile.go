package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"synergy_app_echo/internal/middleware"
	"synergy_app_echo/internal/services"
	"synergy_app_echo/web/templates/pages"
)

// ProfileHandler shows and edits the signed-in user's profile
type ProfileHandler struct {
	layout   *Layout
	profiles *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(layout *Layout, profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{layout: layout, profiles: profiles}
}

// EditProfilePage renders the profile form
func (h *ProfileHandler) EditProfilePage(c echo.Context) error {
	shell := h.layout.ShellFor(c, "Profile")

	props := pages.ProfileProps{
		Shell: shell,
		Form: services.ProfileUpdate{
			Name:      shell.Account.Name,
			Title:     shell.Account.Title,
			AvatarURL: shell.Account.AvatarURL,
		},
		Email:    shell.Account.Email,
		Editable: h.profiles.Editable(),
		Saved:    c.QueryParam("saved") == "1",
	}

	return render(c, http.StatusOK, pages.Profile(props))
}

// UpdateProfile handles the profile form submission
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var form services.ProfileUpdate
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid profile form")
	}

	err := h.profiles.Update(c.Request().Context(), middleware.IdentityFrom(c), form)

	var verr *services.ValidationError
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, "/profile?saved=1")
	case errors.As(err, &verr):
		shell := h.layout.ShellFor(c, "Profile")
		return render(c, http.StatusUnprocessableEntity, pages.Profile(pages.ProfileProps{
			Shell:        shell,
			Form:         form,
			Email:        shell.Account.Email,
			Editable:     true,
			ErrorField:   verr.Field,
			ErrorMessage: verr.Message,
		}))
	case errors.Is(err, services.ErrProfileReadOnly):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Profile editing is not available")
	case errors.Is(err, services.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	default:
		return err
	}
}
