package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/web/templates/shared"
)

// DashboardProps is the data for the dashboard page
type DashboardProps struct {
	Shell shared.ShellProps
	// Greeting name, usually the account's first name
	FirstName string
	Cards     []StatCard
}

// StatCard is a headline number on the dashboard
type StatCard struct {
	Label string
	Value string
	Hint  string
}

// Dashboard renders the landing page inside the shell
func Dashboard(p DashboardProps) templ.Component {
	shell := p.Shell
	shell.Content = shared.Component(func(context.Context) g.Node {
		greeting := "Welcome back"
		if p.FirstName != "" {
			greeting += ", " + p.FirstName
		}

		cards := make([]g.Node, 0, len(p.Cards))
		for _, c := range p.Cards {
			cards = append(cards, html.Div(
				html.Class("rounded-lg border border-border bg-card p-4"),
				g.Attr("data-card", c.Label),
				html.P(html.Class("text-sm text-muted-foreground"), g.Text(c.Label)),
				html.P(html.Class("mt-1 text-2xl font-semibold"), g.Text(c.Value)),
				g.If(c.Hint != "", html.P(html.Class("mt-1 text-xs text-muted-foreground"), g.Text(c.Hint))),
			))
		}

		return html.Div(
			html.Class("space-y-6"),
			html.H1(html.Class("text-2xl font-semibold"), g.Text(greeting)),
			html.Div(
				html.Class("grid gap-4 sm:grid-cols-2 lg:grid-cols-4"),
				g.Group(cards),
			),
		)
	})
	return shared.AppShell(shell)
}
