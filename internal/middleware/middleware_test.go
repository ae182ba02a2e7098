package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"synergy_app_echo/internal/navigation"
	"synergy_app_echo/internal/session"
	"synergy_app_echo/web/templates/shared"
)

const testSecret = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f fakeVerifier) VerifySessionCookie(_ context.Context, _ string) (*auth.Token, error) {
	return f.token, f.err
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, IdentityFrom(c).Email)
}

func TestRequireAuth_NoVerifier(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)

	require.NoError(t, RequireAuth(nil)(okHandler)(c))
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/login?error=auth_not_configured", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireAuth_MissingCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)

	require.NoError(t, RequireAuth(fakeVerifier{})(okHandler)(c))
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireAuth_InvalidCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, RequireAuth(fakeVerifier{err: errors.New("expired")})(okHandler)(c))
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestRequireAuth_Valid(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	verifier := fakeVerifier{token: &auth.Token{
		UID:    "u1",
		Claims: map[string]interface{}{"email": "sophia@example.com", "name": "Sophia Williams", "picture": "https://lh3.example.com/s.png"},
	}}

	require.NoError(t, RequireAuth(verifier)(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sophia@example.com", rec.Body.String())

	id := IdentityFrom(c)
	assert.Equal(t, "u1", id.UID)
	assert.Equal(t, "Sophia Williams", id.Name)
	assert.Equal(t, "https://lh3.example.com/s.png", id.Picture)
}

func TestShellState(t *testing.T) {
	store, err := session.NewShellStore(testSecret, false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, navigation.NewState().ToggleCollapsed()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(w.Result().Cookies()[0])
	c := e.NewContext(req, httptest.NewRecorder())

	var seen navigation.State
	h := ShellState(store)(func(c echo.Context) error {
		seen = ShellStateFrom(c)
		return nil
	})
	require.NoError(t, h(c))
	assert.True(t, seen.Collapsed)
}

func TestShellStateFrom_Default(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	state := ShellStateFrom(c)
	assert.False(t, state.Collapsed)
	assert.NotNil(t, state.Expanded)
}

func TestCSRFToken(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, CSRFToken(c))

	c.Set("csrf", "abc")
	assert.Equal(t, "abc", CSRFToken(c))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/teams", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/broken", func(c echo.Context) error { return echo.NewHTTPError(http.StatusForbidden) })

	for _, path := range []string{"/teams", "/teams", "/broken"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/teams", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/broken", "403")))
}

func TestMetrics_PlainErrorCountsAsServerError(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	// Same order as cmd/server: the logger handles the error outside metrics.
	e := echo.New()
	e.Use(RequestLogger(zap.NewNop()))
	e.Use(m.Middleware())
	e.POST("/ui/sidebar/toggle", func(c echo.Context) error { return errors.New("save failed") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ui/sidebar/toggle", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/ui/sidebar/toggle", "500")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/ui/sidebar/toggle", "200")))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/teams", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/teams", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/teams", entries[0].ContextMap()["uri"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func testShellBuilder(c echo.Context, title string) shared.ShellProps {
	return shared.ShellProps{
		Title:       title,
		CurrentPath: c.Request().URL.Path,
		State:       ShellStateFrom(c),
		Nav:         navigation.MainEntries,
	}
}

func serveError(t *testing.T, path, uid string, err error) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	if uid != "" {
		c.Set("userUID", uid)
	}

	NewErrorHandler(testShellBuilder, zap.NewNop())(err, c)

	doc, docErr := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, docErr)
	return rec, doc
}

func TestErrorHandler_SignedInGetsShell(t *testing.T) {
	rec, doc := serveError(t, "/projects/missing", "u1", echo.NewHTTPError(http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, doc.Find("aside").Length())
	assert.Contains(t, doc.Find("main [data-error]").Text(), "The page you're looking for doesn't exist.")
	assert.Equal(t, "/projects", doc.Find("aside a[aria-current=page]").AttrOr("href", ""))
}

func TestErrorHandler_PublicPath(t *testing.T) {
	rec, doc := serveError(t, "/auth/login", "u1", echo.NewHTTPError(http.StatusBadRequest, "Missing token"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, doc.Find("aside").Length())
	assert.Contains(t, doc.Find("[data-error]").Text(), "Missing token")
}

func TestErrorHandler_InternalErrorsHideDetails(t *testing.T) {
	rec, doc := serveError(t, "/dashboard", "", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, doc.Text(), "connection refused")
	assert.Contains(t, doc.Text(), "Something went wrong")
}

func TestIsPublic(t *testing.T) {
	assert.True(t, isPublic("/login"))
	assert.True(t, isPublic("/static/app.css"))
	assert.False(t, isPublic("/dashboard"))
}
