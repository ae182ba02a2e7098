package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"synergy_app_echo/internal/middleware"
	"synergy_app_echo/internal/navigation"
	"synergy_app_echo/internal/services"
	"synergy_app_echo/web/templates/shared"
)

// defaultReturn is where toggles land when no usable return path is given
const defaultReturn = "/dashboard"

// Layout assembles the shell around every authenticated page
type Layout struct {
	Profiles      *services.ProfileService
	Nav           []navigation.Entry
	Footer        []navigation.Entry
	Favorites     []navigation.Favorite
	Notifications []shared.Notification
	Now           func() time.Time
}

// NewLayout returns a Layout with the default navigation data
func NewLayout(profiles *services.ProfileService) *Layout {
	return &Layout{
		Profiles:      profiles,
		Nav:           navigation.MainEntries,
		Footer:        navigation.FooterEntries,
		Favorites:     navigation.Favorites,
		Notifications: shared.DefaultNotifications,
		Now:           time.Now,
	}
}

// ShellFor builds the shell props for the current request
func (l *Layout) ShellFor(c echo.Context, title string) shared.ShellProps {
	req := c.Request()

	var account services.Account
	if l.Profiles != nil {
		account = l.Profiles.Account(req.Context(), middleware.IdentityFrom(c))
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	return shared.ShellProps{
		Title:         title,
		CurrentPath:   req.URL.Path,
		ReturnTo:      req.URL.RequestURI(),
		CSRFToken:     middleware.CSRFToken(c),
		State:         middleware.ShellStateFrom(c),
		Account:       account,
		Nav:           l.Nav,
		Footer:        l.Footer,
		Favorites:     l.Favorites,
		Notifications: l.Notifications,
		Now:           now(),
	}
}

// render writes a templ component as an HTML response
func render(c echo.Context, status int, t templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return t.Render(c.Request().Context(), c.Response())
}

// SafeReturn accepts only local absolute paths so toggles cannot be used as
// open redirects.
func SafeReturn(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, `/\`) {
		return defaultReturn
	}

	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return defaultReturn
	}
	return raw
}

func redirectBack(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, SafeReturn(c.FormValue("return")))
}
