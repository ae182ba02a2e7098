package shared

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/internal/navigation"
)

const (
	navItemClass  = "flex items-center gap-3 rounded-md px-3 py-2 text-sm font-medium transition-colors"
	activeClass   = "bg-primary/10 text-primary dark:bg-primary/30 dark:text-primary"
	inactiveClass = "hover:bg-accent dark:hover:bg-accent"
)

// Sidebar renders the collapsible left-hand navigation panel
func Sidebar(p ShellProps) g.Node {
	collapsed := p.State.Collapsed

	width := "w-64"
	if collapsed {
		width = "w-16"
	}

	return html.Aside(
		html.Class(cn("flex flex-col border-r border-border bg-card transition-all duration-300 dark:border-border dark:bg-card", width)),
		g.Attr("data-sidebar", ""),

		// Brand
		html.Div(
			html.Class("flex items-center gap-3 border-b border-border px-4 py-4 dark:border-border"),
			BrandMark(),
			g.If(!collapsed, html.Div(
				html.Class("flex flex-col"),
				html.Span(html.Class("font-semibold"), g.Text("Synergy")),
				html.Span(html.Class("text-xs text-muted-foreground"), g.Text("HR Management")),
			)),
			collapseToggle(p, "ml-auto rounded-full p-1 hover:bg-accent dark:hover:bg-accent",
				Icon("chevron-right", cn("h-4 w-4 transition-transform", rotateIf(collapsed))),
			),
		),

		html.Nav(
			html.Class("flex-1 overflow-y-auto p-3"),

			g.If(!collapsed, sectionHeading("mb-2", "MAIN")),
			html.Div(
				html.Class("space-y-1"),
				g.Attr("data-section", "main"),
				g.Group(navEntries(p, p.Nav)),
			),

			g.If(!collapsed, sectionHeading("mt-6 mb-2", "FAVS")),
			html.Div(
				html.Class("space-y-1"),
				g.Attr("data-section", "favorites"),
				g.Group(favoriteEntries(p.Favorites, collapsed)),
			),

			html.Div(
				html.Class("border-border p-3 dark:border-border"),
				html.Div(
					html.Class("space-y-1"),
					g.Attr("data-section", "footer"),
					g.Group(navEntries(p, p.Footer)),
				),
			),

			html.Div(
				html.Class("border-border p-3 dark:border-border"),
				sidebarAccountMenu(p),
			),
		),
	)
}

func rotateIf(cond bool) string {
	if cond {
		return "rotate-180"
	}
	return ""
}

func sectionHeading(margin, label string) g.Node {
	return html.Div(
		html.Class(cn(margin, "px-3 text-xs font-semibold text-muted-foreground")),
		g.Text(label),
	)
}

// collapseToggle posts to the sidebar toggle endpoint and comes back here
func collapseToggle(p ShellProps, class string, icon g.Node) g.Node {
	return html.Form(
		html.Method("post"),
		html.Action("/ui/sidebar/toggle"),
		html.Class("contents"),
		CSRFField(p.CSRFToken),
		html.Input(html.Type("hidden"), html.Name("return"), html.Value(p.returnTo())),
		html.Button(
			html.Type("submit"),
			html.Class(class),
			html.Aria("label", "Toggle sidebar"),
			g.Attr("data-toggle", "sidebar"),
			icon,
		),
	)
}

func navEntries(p ShellProps, entries []navigation.Entry) []g.Node {
	nodes := make([]g.Node, 0, len(entries))
	for _, entry := range entries {
		var item g.Node
		if entry.Type == navigation.EntryDropdown {
			item = dropdownEntry(p, entry)
		} else {
			item = linkEntry(p, entry)
		}
		nodes = append(nodes, html.Div(g.Attr("data-entry", entry.Label), item))
	}
	return nodes
}

func linkEntry(p ShellProps, entry navigation.Entry) g.Node {
	active := navigation.IsPathActive(p.CurrentPath, entry.Path)
	collapsed := p.State.Collapsed

	state := inactiveClass
	if active {
		state = activeClass
	}

	return html.A(
		html.Href(entry.Href()),
		html.Class(cn(navItemClass, state)),
		g.If(active, g.Attr("aria-current", "page")),
		g.If(collapsed, g.Attr("title", entry.Label)),
		Icon(entry.Icon, "h-5 w-5"),
		g.If(!collapsed, html.Span(g.Text(entry.Label))),
		g.If(active && !collapsed, html.Div(
			html.Class("ml-auto h-2 w-2 rounded-full bg-primary dark:bg-primary"),
			g.Attr("data-active-marker", ""),
		)),
	)
}

func dropdownEntry(p ShellProps, entry navigation.Entry) g.Node {
	expanded := p.State.IsExpanded(entry.Label)
	collapsed := p.State.Collapsed

	state := inactiveClass
	if expanded {
		state = "bg-accent dark:bg-accent"
	}

	expandedAttr := "false"
	if expanded {
		expandedAttr = "true"
	}

	return html.Div(
		html.Form(
			html.Method("post"),
			html.Action("/ui/nav/toggle"),
			CSRFField(p.CSRFToken),
			html.Input(html.Type("hidden"), html.Name("section"), html.Value(entry.Label)),
			html.Input(html.Type("hidden"), html.Name("return"), html.Value(p.returnTo())),
			html.Button(
				html.Type("submit"),
				html.Class(cn("w-full", navItemClass, state)),
				html.Aria("expanded", expandedAttr),
				g.Attr("data-toggle", "section"),
				Icon(entry.Icon, "h-5 w-5"),
				g.If(!collapsed, g.Group([]g.Node{
					html.Span(html.Class("flex-1 text-left"), g.Text(entry.Label)),
					Icon("chevron-down", cn("h-4 w-4 transition-transform", rotateIf(expanded))),
				})),
			),
		),
		g.If(expanded && !collapsed, html.Div(
			html.Class("mt-1 ml-4 space-y-1"),
			g.Attr("data-children", entry.Label),
			g.Group(childEntries(p, entry.Children)),
		)),
	)
}

func childEntries(p ShellProps, children []navigation.Child) []g.Node {
	nodes := make([]g.Node, 0, len(children))
	for _, child := range children {
		active := navigation.IsPathActive(p.CurrentPath, child.Path)
		state := inactiveClass
		if active {
			state = activeClass
		}
		nodes = append(nodes, html.A(
			html.Href(child.Path),
			html.Class(cn(navItemClass, state)),
			g.If(active, g.Attr("aria-current", "page")),
			Icon(child.Icon, "h-4 w-4"),
			html.Span(g.Text(child.Label)),
		))
	}
	return nodes
}

func favoriteEntries(favorites []navigation.Favorite, collapsed bool) []g.Node {
	nodes := make([]g.Node, 0, len(favorites))
	for _, fav := range favorites {
		nodes = append(nodes, html.Div(
			html.Class(cn(navItemClass, inactiveClass)),
			g.Attr("data-favorite", fav.Key),
			html.Div(html.Class(cn("h-2 w-2 rounded-full bg-current", fav.Color))),
			g.If(!collapsed, g.Group([]g.Node{
				html.Span(g.Text(fav.Label)),
				html.Span(html.Class("ml-auto text-xs text-muted-foreground"), g.Text("⌘ "+fav.Key)),
			})),
		))
	}
	return nodes
}

func sidebarAccountMenu(p ShellProps) g.Node {
	collapsed := p.State.Collapsed

	trigger := html.Div(
		html.Class("flex w-full items-center gap-3 rounded-md px-3 py-2 text-sm font-medium transition-colors hover:bg-accent dark:hover:bg-accent"),
		Avatar(p.Account, "h-8 w-8", "h-3 w-3"),
		g.If(!collapsed, g.Group([]g.Node{
			html.Div(
				html.Class("flex flex-1 flex-col items-start text-left"),
				html.Span(html.Class("font-medium"), g.Text(p.Account.Name)),
				html.Span(html.Class("text-xs text-muted-foreground"), g.Text(p.Account.Email)),
			),
			Icon("chevron-right", "h-4 w-4"),
		})),
	)

	content := append([]g.Node{DropdownLabel(g.Text("My Account"))}, accountMenuItems(p.CSRFToken)...)

	return Dropdown(DropdownProps{
		Label:        "Account menu",
		Align:        AlignCenter,
		ContentClass: "w-56 bottom-full mb-2",
		Class:        "w-full",
	}, trigger, content...)
}
