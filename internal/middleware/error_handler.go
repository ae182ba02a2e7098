package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"synergy_app_echo/web/templates/pages"
	"synergy_app_echo/web/templates/shared"
)

// ShellBuilder produces the shell around a page for the current request
type ShellBuilder func(c echo.Context, title string) shared.ShellProps

var publicPrefixes = []string{"/login", "/auth", "/static", "/metrics", "/healthz"}

// NewErrorHandler renders errors as pages: inside the shell for signed-in
// users, standalone otherwise.
func NewErrorHandler(shellFor ShellBuilder, log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorTitle := "Internal Server Error"
		errorMessage := ""

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				errorMessage = msg
			}

			switch code {
			case http.StatusNotFound:
				errorTitle = "Page Not Found"
				if errorMessage == "" || errorMessage == http.StatusText(code) {
					errorMessage = "The page you're looking for doesn't exist."
				}
			case http.StatusForbidden:
				errorTitle = "Access Denied"
				if errorMessage == "" || errorMessage == http.StatusText(code) {
					errorMessage = "You don't have permission to access this resource."
				}
			case http.StatusUnauthorized:
				errorTitle = "Unauthorized"
				if errorMessage == "" || errorMessage == http.StatusText(code) {
					errorMessage = "Please log in to continue."
				}
			case http.StatusBadRequest:
				errorTitle = "Bad Request"
				if errorMessage == "" || errorMessage == http.StatusText(code) {
					errorMessage = "The request could not be processed."
				}
			default:
				errorTitle = http.StatusText(code)
			}
		}
		if errorMessage == "" || code >= http.StatusInternalServerError {
			errorMessage = "Something went wrong. Please try again later."
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}

		props := pages.ErrorPageProps{
			Code:         code,
			ErrorTitle:   errorTitle,
			ErrorMessage: errorMessage,
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)

		var renderErr error
		if isPublic(c.Request().URL.Path) || getString(c, "userUID") == "" {
			renderErr = pages.PublicErrorPage(props).Render(c.Request().Context(), c.Response())
		} else {
			renderErr = pages.ErrorPage(shellFor(c, errorTitle), props).Render(c.Request().Context(), c.Response())
		}

		if renderErr != nil {
			log.Error("render error page", zap.Error(fmt.Errorf("failed to render error page: %w", renderErr)))
		}
	}
}

func isPublic(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
