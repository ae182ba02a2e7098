package middleware

import (
	"context"
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"synergy_app_echo/internal/services"
)

// SessionCookieName is the Firebase session cookie set at login
const SessionCookieName = "session"

// SessionVerifier checks Firebase session cookies; *auth.Client implements it
type SessionVerifier interface {
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*auth.Token, error)
}

// RequireAuth returns a middleware that verifies Firebase session cookies
func RequireAuth(verifier SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if verifier == nil {
				return c.Redirect(http.StatusTemporaryRedirect, "/login?error=auth_not_configured")
			}

			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusTemporaryRedirect, "/login")
			}

			decodedToken, err := verifier.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				c.SetCookie(ExpiredSessionCookie())
				return c.Redirect(http.StatusTemporaryRedirect, "/login")
			}

			c.Set("userUID", decodedToken.UID)
			if email, ok := decodedToken.Claims["email"].(string); ok {
				c.Set("userEmail", email)
			}
			if name, ok := decodedToken.Claims["name"].(string); ok {
				c.Set("userName", name)
			}
			if picture, ok := decodedToken.Claims["picture"].(string); ok {
				c.Set("userPicture", picture)
			}

			return next(c)
		}
	}
}

// ExpiredSessionCookie clears the Firebase session cookie
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	}
}

// IdentityFrom returns what RequireAuth stored about the caller
func IdentityFrom(c echo.Context) services.Identity {
	return services.Identity{
		UID:     getString(c, "userUID"),
		Email:   getString(c, "userEmail"),
		Name:    getString(c, "userName"),
		Picture: getString(c, "userPicture"),
	}
}

func getString(c echo.Context, key string) string {
	val, ok := c.Get(key).(string)
	if !ok {
		return ""
	}
	return val
}
