package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"synergy_app_echo/web/templates/pages"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	layout *Layout
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(layout *Layout) *DashboardHandler {
	return &DashboardHandler{layout: layout}
}

// Dashboard renders the dashboard page
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	shell := h.layout.ShellFor(c, "Dashboard")

	firstName, _, _ := strings.Cut(shell.Account.Name, " ")

	props := pages.DashboardProps{
		Shell:     shell,
		FirstName: firstName,
		Cards: []pages.StatCard{
			{Label: "Favorites", Value: strconv.Itoa(len(shell.Favorites)), Hint: "Pinned in the sidebar"},
			{Label: "Notifications", Value: strconv.Itoa(len(shell.Notifications))},
		},
	}

	return render(c, http.StatusOK, pages.Dashboard(props))
}
