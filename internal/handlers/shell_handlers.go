package handlers

import (
	"github.com/labstack/echo/v4"

	"synergy_app_echo/internal/middleware"
	"synergy_app_echo/internal/navigation"
	"synergy_app_echo/internal/session"
)

// ShellHandler flips the sidebar UI state
type ShellHandler struct {
	store  *session.ShellStore
	layout *Layout
}

// NewShellHandler creates a new ShellHandler
func NewShellHandler(store *session.ShellStore, layout *Layout) *ShellHandler {
	return &ShellHandler{store: store, layout: layout}
}

// ToggleSidebar collapses or expands the sidebar and returns to the page
func (h *ShellHandler) ToggleSidebar(c echo.Context) error {
	state := middleware.ShellStateFrom(c).ToggleCollapsed()
	if err := h.store.Save(c.Response(), state); err != nil {
		return err
	}
	return redirectBack(c)
}

// ToggleSection opens or closes one dropdown entry. Keys that do not name a
// dropdown entry are ignored.
func (h *ShellHandler) ToggleSection(c echo.Context) error {
	key := c.FormValue("section")
	if _, ok := navigation.Lookup(key, h.layout.Nav, h.layout.Footer); ok {
		state := middleware.ShellStateFrom(c).ToggleSection(key)
		if err := h.store.Save(c.Response(), state); err != nil {
			return err
		}
	}
	return redirectBack(c)
}
