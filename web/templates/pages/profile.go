package pages

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/internal/services"
	"synergy_app_echo/web/templates/shared"
)

// ProfileProps is the data for the profile form
type ProfileProps struct {
	Shell shared.ShellProps
	Form  services.ProfileUpdate
	// Email comes from the sign-in provider and is shown read-only
	Email    string
	Editable bool
	Saved    bool
	// ErrorField names the input that failed validation
	ErrorField   string
	ErrorMessage string
}

const inputClass = "w-full rounded-md border border-input bg-background px-3 py-2 text-sm disabled:opacity-60"

func profileField(p ProfileProps, name, label, value, inputType string) g.Node {
	invalid := p.ErrorField == name
	return html.Div(
		html.Class("space-y-1"),
		html.Label(html.For(name), html.Class("text-sm font-medium"), g.Text(label)),
		html.Input(
			html.ID(name),
			html.Name(name),
			html.Type(inputType),
			html.Value(value),
			html.Class(inputClass),
			g.If(!p.Editable, html.Disabled()),
			g.If(invalid, html.Aria("invalid", "true")),
		),
		g.If(invalid, html.P(
			html.Class("text-xs text-destructive"),
			g.Attr("data-field-error", name),
			g.Text(p.ErrorMessage),
		)),
	)
}

// Profile renders the account form inside the shell
func Profile(p ProfileProps) templ.Component {
	shell := p.Shell
	shell.Content = shared.Component(func(context.Context) g.Node {
		account := shell.Account
		if p.ErrorField != "avatar_url" {
			account.AvatarURL = p.Form.AvatarURL
		}

		return html.Div(
			html.Class("max-w-xl space-y-6"),
			html.Div(
				html.Class("flex items-center gap-4"),
				shared.Avatar(account, "h-16 w-16", "h-3 w-3"),
				html.Div(
					html.H1(html.Class("text-2xl font-semibold"), g.Text("Profile")),
					g.If(p.Form.Title != "", html.P(html.Class("text-muted-foreground"), g.Attr("data-title", ""), g.Text(p.Form.Title))),
				),
			),
			g.If(p.Saved, html.P(
				html.Class("rounded-md bg-primary/10 px-3 py-2 text-sm text-primary"),
				g.Attr("data-saved", ""),
				g.Text("Profile saved."),
			)),
			g.If(!p.Editable, html.P(
				html.Class("text-sm text-muted-foreground"),
				g.Attr("data-read-only", ""),
				g.Text("Profile editing is not available on this server."),
			)),
			html.Form(
				html.Method("post"),
				html.Action("/profile"),
				html.Class("space-y-4"),
				shared.CSRFField(shell.CSRFToken),
				profileField(p, "name", "Name", p.Form.Name, "text"),
				profileField(p, "title", "Title", p.Form.Title, "text"),
				profileField(p, "avatar_url", "Avatar URL", p.Form.AvatarURL, "url"),
				html.Div(
					html.Class("space-y-1"),
					html.Span(html.Class("text-sm font-medium"), g.Text("Email")),
					html.P(html.Class("text-sm text-muted-foreground"), g.Attr("data-email", ""), g.Text(p.Email)),
				),
				g.If(p.Editable, html.Button(
					html.Type("submit"),
					html.Class("rounded-md bg-primary px-4 py-2 text-sm font-medium text-primary-foreground"),
					g.Text("Save changes"),
				)),
			),
		)
	})
	return shared.AppShell(shell)
}
