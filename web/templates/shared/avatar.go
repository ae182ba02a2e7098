package shared

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/internal/services"
)

// Avatar renders the account picture with an online indicator. Without a
// picture the account initials are shown.
func Avatar(account services.Account, sizeClass, dotClass string) g.Node {
	var picture g.Node
	if account.AvatarURL != "" {
		picture = html.Img(
			html.Src(account.AvatarURL),
			html.Alt("User avatar"),
			html.Class("h-full w-full object-cover"),
		)
	} else {
		picture = html.Span(
			html.Class("flex h-full w-full items-center justify-center bg-muted text-xs font-medium text-muted-foreground"),
			html.Aria("label", "User avatar"),
			g.Text(account.Initials()),
		)
	}

	return html.Div(
		html.Class(cn("relative overflow-hidden rounded-full", sizeClass)),
		picture,
		g.If(account.Online,
			html.Div(
				html.Class(cn("absolute bottom-0 right-0 rounded-full border-2 border-background bg-green-500 dark:border-background", dotClass)),
				g.Attr("data-online", ""),
			),
		),
	)
}

// accountMenuItems are shared by the sidebar and header account menus
func accountMenuItems(csrfToken string) []g.Node {
	return []g.Node{
		DropdownSeparator(),
		DropdownItem("/profile",
			Icon("user", "mr-2 h-4 w-4"),
			html.Span(g.Text("Profile")),
		),
		DropdownItem("/settings",
			Icon("settings", "mr-2 h-4 w-4"),
			html.Span(g.Text("Settings")),
		),
		DropdownSeparator(),
		DropdownFormItem("/auth/logout", csrfToken,
			html.Span(g.Text("Log out")),
		),
	}
}
