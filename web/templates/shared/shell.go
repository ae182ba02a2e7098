package shared

import (
	"context"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/internal/navigation"
	"synergy_app_echo/internal/services"
)

// ShellProps is everything the application shell needs for one render
type ShellProps struct {
	Title string
	// CurrentPath drives active-entry highlighting
	CurrentPath string
	// ReturnTo is where toggle requests redirect back to; defaults to CurrentPath
	ReturnTo  string
	CSRFToken string

	State   navigation.State
	Account services.Account

	Nav           []navigation.Entry
	Footer        []navigation.Entry
	Favorites     []navigation.Favorite
	Notifications []Notification
	Now           time.Time

	// Class and Style override the root container
	Class string
	Style string

	Content templ.Component
}

func (p ShellProps) returnTo() string {
	if p.ReturnTo != "" {
		return p.ReturnTo
	}
	return p.CurrentPath
}

func (p ShellProps) now() time.Time {
	if p.Now.IsZero() {
		return time.Now()
	}
	return p.Now
}

// AppShell renders the full authenticated page: sidebar, header and the
// passed-in content in the main region.
func AppShell(p ShellProps) templ.Component {
	return Component(func(ctx context.Context) g.Node {
		return Document(p.Title, ShellBody(ctx, p))
	})
}

// ShellBody renders the shell without the surrounding document
func ShellBody(ctx context.Context, p ShellProps) g.Node {
	return html.Div(
		html.Class(cn("flex h-screen bg-background dark:bg-background", p.Class)),
		g.If(p.Style != "", g.Attr("style", p.Style)),
		g.Attr("data-shell", ""),
		g.If(p.State.Collapsed, g.Attr("data-collapsed", "")),
		Sidebar(p),
		html.Div(
			html.Class("flex flex-1 flex-col overflow-hidden"),
			Header(p),
			html.Main(
				html.Class("flex-1 overflow-auto"),
				html.Div(
					html.Class("p-6"),
					html.ID("content"),
					Embed(ctx, p.Content),
				),
			),
		),
	)
}

// tailwindConfig maps the theme colors onto the CSS variables in app.css
const tailwindConfig = `tailwind.config = { theme: { extend: { colors: {
  background: "hsl(var(--background) / <alpha-value>)", foreground: "hsl(var(--foreground) / <alpha-value>)",
  card: "hsl(var(--card) / <alpha-value>)", border: "hsl(var(--border) / <alpha-value>)", input: "hsl(var(--input) / <alpha-value>)",
  popover: { DEFAULT: "hsl(var(--popover) / <alpha-value>)", foreground: "hsl(var(--popover-foreground) / <alpha-value>)" },
  primary: { DEFAULT: "hsl(var(--primary) / <alpha-value>)", foreground: "hsl(var(--primary-foreground) / <alpha-value>)" },
  secondary: "hsl(var(--secondary) / <alpha-value>)", destructive: "hsl(var(--destructive) / <alpha-value>)",
  muted: { DEFAULT: "hsl(var(--muted) / <alpha-value>)", foreground: "hsl(var(--muted-foreground) / <alpha-value>)" },
  accent: { DEFAULT: "hsl(var(--accent) / <alpha-value>)", foreground: "hsl(var(--accent-foreground) / <alpha-value>)" },
} } } }`

// Document wraps body in the HTML5 skeleton with the stylesheet
func Document(title string, body ...g.Node) g.Node {
	if title == "" {
		title = "Synergy"
	} else {
		title += " · Synergy"
	}

	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.Script(html.Src("https://cdn.tailwindcss.com")),
			html.Script(g.Raw(tailwindConfig)),
			html.Link(html.Rel("stylesheet"), html.Href("/static/app.css")),
		},
		Body: body,
	})
}
