package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"

	"synergy_app_echo/internal/navigation"
)

// ShellCookieName is the cookie carrying the sidebar state
const ShellCookieName = "synergy_shell"

// ShellStore keeps the shell UI state in a signed, encrypted cookie.
// The cookie has no Max-Age so it is discarded with the browser session.
type ShellStore struct {
	cookie *securecookie.SecureCookie
	secure bool
}

// NewShellStore creates a store from a secret of at least 64 bytes:
// the first 32 are the hash key, the next 32 the block key.
func NewShellStore(secret string, secure bool) (*ShellStore, error) {
	if len(secret) < 64 {
		return nil, fmt.Errorf("shell cookie secret must be at least 64 bytes, got %d", len(secret))
	}

	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	sc := securecookie.New(hashKey, blockKey)
	sc.SetSerializer(securecookie.JSONEncoder{})

	return &ShellStore{cookie: sc, secure: secure}, nil
}

// Load returns the state stored in the request. A missing or unreadable
// cookie yields the default state.
func (s *ShellStore) Load(r *http.Request) navigation.State {
	cookie, err := r.Cookie(ShellCookieName)
	if err != nil {
		return navigation.NewState()
	}

	var state navigation.State
	if err := s.cookie.Decode(ShellCookieName, cookie.Value, &state); err != nil {
		return navigation.NewState()
	}
	if state.Expanded == nil {
		state.Expanded = map[string]bool{}
	}
	return state
}

// Save writes the state as a session cookie
func (s *ShellStore) Save(w http.ResponseWriter, state navigation.State) error {
	encoded, err := s.cookie.Encode(ShellCookieName, state)
	if err != nil {
		return fmt.Errorf("encode shell state: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ShellCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the state cookie
func (s *ShellStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     ShellCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
