package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"synergy_app_echo/internal/middleware"
	"synergy_app_echo/internal/services"
	"synergy_app_echo/internal/session"
	"synergy_app_echo/web/templates/pages"
)

// SessionIssuer verifies ID tokens and mints session cookies; *auth.Client
// implements it.
type SessionIssuer interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
}

// AuthConfig is the public Firebase configuration and cookie policy
type AuthConfig struct {
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
	SessionMaxAge      time.Duration
	SecureCookies      bool
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	issuer   SessionIssuer
	profiles *services.ProfileService
	shell    *session.ShellStore
	cfg      AuthConfig
	log      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler. issuer may be nil when Firebase
// is not configured.
func NewAuthHandler(issuer SessionIssuer, profiles *services.ProfileService, shell *session.ShellStore, cfg AuthConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{issuer: issuer, profiles: profiles, shell: shell, cfg: cfg, log: log}
}

var loginErrors = map[string]string{
	"auth_not_configured": "Sign-in is not configured on this server.",
	"session_expired":     "Your session has expired. Please sign in again.",
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	props := pages.LoginProps{
		FirebaseAPIKey:     h.cfg.FirebaseAPIKey,
		FirebaseAuthDomain: h.cfg.FirebaseAuthDomain,
		FirebaseProjectID:  h.cfg.FirebaseProjectID,
		Error:              loginErrors[c.QueryParam("error")],
	}
	return render(c, http.StatusOK, pages.Login(props))
}

// HandleLogin verifies the Firebase ID token and creates a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.issuer == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Firebase not initialized",
		})
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Missing authorization header",
		})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid authorization format",
		})
	}

	ctx := c.Request().Context()

	token, err := h.issuer.VerifyIDToken(ctx, tokenString)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid token",
		})
	}

	cookieValue, err := h.issuer.SessionCookie(ctx, tokenString, h.cfg.SessionMaxAge)
	if err != nil {
		h.log.Error("create session cookie", zap.String("uid", token.UID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create session",
		})
	}

	identity := services.Identity{UID: token.UID}
	identity.Email, _ = token.Claims["email"].(string)
	identity.Name, _ = token.Claims["name"].(string)
	identity.Picture, _ = token.Claims["picture"].(string)

	// The account menu falls back to claims, so a failed sync must not block login.
	if err := h.profiles.Sync(ctx, identity); err != nil {
		h.log.Warn("sync user profile", zap.String("uid", token.UID), zap.Error(err))
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    cookieValue,
		MaxAge:   int(h.cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status": "success",
	})
}

// HandleLogout clears the session and sidebar cookies and returns to login
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(middleware.ExpiredSessionCookie())
	h.shell.Clear(c.Response())

	return c.Redirect(http.StatusSeeOther, "/login")
}
