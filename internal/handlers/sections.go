package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"synergy_app_echo/web/templates/pages"
)

// SectionHandler renders the pages behind the sidebar links that have no
// dedicated handler yet.
type SectionHandler struct {
	layout *Layout
}

// NewSectionHandler creates a new SectionHandler
func NewSectionHandler(layout *Layout) *SectionHandler {
	return &SectionHandler{layout: layout}
}

// Section returns a handler rendering a titled placeholder page
func (h *SectionHandler) Section(title, description string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return render(c, http.StatusOK, pages.Section(h.layout.ShellFor(c, title), title, description))
	}
}
