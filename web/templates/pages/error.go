package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/web/templates/shared"
)

// ErrorPageProps describes a failed request
type ErrorPageProps struct {
	Code         int
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

func errorBody(p ErrorPageProps) g.Node {
	backLink, backText := p.BackLink, p.BackText
	if backLink == "" {
		backLink, backText = "/dashboard", "Back to dashboard"
	}

	return html.Div(
		html.Class("mx-auto max-w-md space-y-4 py-16 text-center"),
		g.Attr("data-error", ""),
		html.P(html.Class("text-sm font-semibold text-primary"), g.Textf("%d", p.Code)),
		html.H1(html.Class("text-2xl font-semibold"), g.Text(p.ErrorTitle)),
		html.P(html.Class("text-muted-foreground"), g.Text(p.ErrorMessage)),
		html.A(
			html.Href(backLink),
			html.Class("inline-flex rounded-md bg-primary px-4 py-2 text-sm font-medium text-primary-foreground"),
			g.Text(backText),
		),
	)
}

// ErrorPage renders an error inside the shell for signed-in users
func ErrorPage(shell shared.ShellProps, p ErrorPageProps) templ.Component {
	shell.Title = p.ErrorTitle
	shell.Content = shared.Component(func(context.Context) g.Node {
		return errorBody(p)
	})
	return shared.AppShell(shell)
}

// PublicErrorPage renders an error without the shell
func PublicErrorPage(p ErrorPageProps) templ.Component {
	if p.BackLink == "" {
		p.BackLink, p.BackText = "/login", "Go to login"
	}
	return shared.Component(func(context.Context) g.Node {
		return shared.Document(p.ErrorTitle, html.Div(
			html.Class("min-h-screen bg-background p-6"),
			errorBody(p),
		))
	})
}
