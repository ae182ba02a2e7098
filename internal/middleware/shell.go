package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"synergy_app_echo/internal/navigation"
	"synergy_app_echo/internal/session"
)

const shellStateKey = "shellState"

// ShellState loads the sidebar state cookie into the request context
func ShellState(store *session.ShellStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(shellStateKey, store.Load(c.Request()))
			return next(c)
		}
	}
}

// ShellStateFrom returns the state loaded by ShellState, or the default one
func ShellStateFrom(c echo.Context) navigation.State {
	if state, ok := c.Get(shellStateKey).(navigation.State); ok {
		return state
	}
	return navigation.NewState()
}

// CSRFToken returns the token issued by echo's CSRF middleware, if any
func CSRFToken(c echo.Context) string {
	return getString(c, echomw.DefaultCSRFConfig.ContextKey)
}
