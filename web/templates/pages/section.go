package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/web/templates/shared"
)

// Section renders a titled placeholder page inside the shell
func Section(shell shared.ShellProps, heading, description string) templ.Component {
	shell.Content = shared.Component(func(context.Context) g.Node {
		return html.Div(
			html.Class("space-y-2"),
			html.H1(html.Class("text-2xl font-semibold"), g.Text(heading)),
			g.If(description != "", html.P(html.Class("text-muted-foreground"), g.Text(description))),
		)
	})
	return shared.AppShell(shell)
}
