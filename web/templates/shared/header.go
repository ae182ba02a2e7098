package shared

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const iconButtonClass = "rounded-full p-2 text-muted-foreground hover:bg-accent dark:hover:bg-accent"

// Header renders the top bar with search, notifications, actions and the
// account menu.
func Header(p ShellProps) g.Node {
	now := p.now()

	return html.Header(
		html.Class("flex h-16 items-center justify-end border-b border-border bg-card px-4 dark:border-border dark:bg-card"),
		g.Attr("data-header", ""),

		// Only visible below the md breakpoint
		collapseToggle(p, "mr-auto rounded-md p-2 text-muted-foreground hover:bg-accent dark:hover:bg-accent md:hidden",
			Icon("menu", "h-5 w-5"),
		),

		html.Div(
			html.Class("flex items-center gap-4"),

			Dropdown(DropdownProps{
				Label:        "Search",
				TriggerClass: iconButtonClass,
				ContentClass: "w-80",
				Align:        AlignEnd,
			},
				Icon("search", "h-5 w-5"),
				notificationPanel(p.Notifications, now)...,
			),

			Dropdown(DropdownProps{
				Label:        "Notifications",
				TriggerClass: "relative block " + iconButtonClass,
				ContentClass: "w-80",
				Align:        AlignEnd,
			},
				g.Group([]g.Node{
					Icon("bell", "h-5 w-5"),
					g.If(len(p.Notifications) > 0, html.Span(
						html.Class("absolute right-1.5 top-1.5 h-2 w-2 rounded-full bg-destructive"),
						g.Attr("data-unread", ""),
					)),
				}),
				notificationPanel(p.Notifications, now)...,
			),

			html.A(
				html.Href("/schedule"),
				html.Class("hidden items-center gap-2 rounded-md border border-input bg-background px-4 py-2 text-sm font-medium hover:bg-accent md:flex"),
				g.Attr("data-action", "schedule"),
				Icon("calendar", "h-4 w-4"),
				g.Text("Schedule"),
			),

			html.Button(
				html.Type("button"),
				html.Class("hidden items-center gap-2 rounded-md bg-primary px-4 py-2 text-sm font-medium text-primary-foreground hover:bg-primary/90 md:flex"),
				g.Attr("data-action", "create-request"),
				Icon("plus", "h-4 w-4"),
				g.Text("Create Request"),
			),

			headerAccountMenu(p),
		),
	)
}

func headerAccountMenu(p ShellProps) g.Node {
	label := DropdownLabel(
		html.Div(html.Class("font-medium"), g.Text(p.Account.Name)),
		g.If(p.Account.Title != "", html.Div(
			html.Class("text-xs font-normal text-muted-foreground"),
			g.Attr("data-account-title", ""),
			g.Text(p.Account.Title),
		)),
		html.Div(html.Class("text-xs font-normal text-muted-foreground"), g.Text(p.Account.Email)),
	)
	content := append([]g.Node{label}, accountMenuItems(p.CSRFToken)...)

	return Dropdown(DropdownProps{
		Label:        "Account",
		TriggerClass: "relative flex items-center gap-2 rounded-full text-left text-sm hover:bg-accent dark:hover:bg-accent",
		ContentClass: "w-56",
		Align:        AlignEnd,
	},
		Avatar(p.Account, "h-8 w-8", "h-2.5 w-2.5"),
		content...,
	)
}
