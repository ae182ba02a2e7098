package shared

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Lucide outline shapes keyed by icon name
var iconShapes = map[string][]g.Node{
	"home": {
		path("m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"),
		path("M9 22V12h6v10"),
	},
	"calendar": {
		path("M8 2v4"),
		path("M16 2v4"),
		path("M5 4h14a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z"),
		path("M3 10h18"),
	},
	"clock": {
		circle("12", "12", "10"),
		path("M12 6v6l4 2"),
	},
	"folder": {
		path("M20 20a2 2 0 0 0 2-2V8a2 2 0 0 0-2-2h-7.9a2 2 0 0 1-1.69-.9L9.6 3.9A2 2 0 0 0 7.93 3H4a2 2 0 0 0-2 2v13a2 2 0 0 0 2 2Z"),
	},
	"users": {
		path("M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"),
		circle("9", "7", "4"),
		path("M22 21v-2a4 4 0 0 0-3-3.87"),
		path("M16 3.13a4 4 0 0 1 0 7.75"),
	},
	"user": {
		path("M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"),
		circle("12", "7", "4"),
	},
	"layers": {
		path("m12.83 2.18a2 2 0 0 0-1.66 0L2.6 6.08a1 1 0 0 0 0 1.83l8.58 3.91a2 2 0 0 0 1.66 0l8.58-3.9a1 1 0 0 0 0-1.83Z"),
		path("m22 17.65-9.17 4.16a2 2 0 0 1-1.66 0L2 17.65"),
		path("m22 12.65-9.17 4.16a2 2 0 0 1-1.66 0L2 12.65"),
	},
	"star": {
		path("M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"),
	},
	"file-text": {
		path("M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"),
		path("M14 2v4a2 2 0 0 0 2 2h4"),
		path("M10 9H8"),
		path("M16 13H8"),
		path("M16 17H8"),
	},
	"settings": {
		path("M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"),
		circle("12", "12", "3"),
	},
	"headphones": {
		path("M3 14h3a2 2 0 0 1 2 2v3a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2v-7a9 9 0 0 1 18 0v7a2 2 0 0 1-2 2h-1a2 2 0 0 1-2-2v-3a2 2 0 0 1 2-2h3"),
	},
	"bell": {
		path("M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"),
		path("M10.3 21a1.94 1.94 0 0 0 3.4 0"),
	},
	"search": {
		circle("11", "11", "8"),
		path("m21 21-4.3-4.3"),
	},
	"menu": {
		path("M4 12h16"),
		path("M4 6h16"),
		path("M4 18h16"),
	},
	"plus": {
		path("M5 12h14"),
		path("M12 5v14"),
	},
	"chevron-down": {
		path("m6 9 6 6 6-6"),
	},
	"chevron-right": {
		path("m9 18 6-6-6-6"),
	},
	"log-out": {
		path("M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"),
		path("m16 17 5-5-5-5"),
		path("M21 12H9"),
	},
}

func path(d string) g.Node {
	return g.El("path", g.Attr("d", d))
}

func circle(cx, cy, r string) g.Node {
	return g.El("circle", g.Attr("cx", cx), g.Attr("cy", cy), g.Attr("r", r))
}

// Icon renders the named outline icon. Unknown names render a bullet.
func Icon(name, class string) g.Node {
	shapes, ok := iconShapes[name]
	if !ok {
		return html.Span(
			html.Class(cn("inline-flex items-center justify-center text-xs", class)),
			g.Attr("data-icon", name),
			g.Raw("&#8226;"),
		)
	}

	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", name),
		html.Class(class),
		g.Group(shapes),
	)
}

// BrandMark is the three concentric circles of the Synergy logo
func BrandMark() g.Node {
	ring := func(d string) g.Node {
		return g.El("path",
			g.Attr("d", d),
			g.Attr("stroke", "white"),
			g.Attr("stroke-width", "2"),
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
		)
	}

	return html.Div(
		html.Class("flex h-9 w-9 items-center justify-center rounded-full bg-primary"),
		g.El("svg",
			g.Attr("width", "20"),
			g.Attr("height", "20"),
			g.Attr("viewBox", "0 0 24 24"),
			g.Attr("fill", "none"),
			g.Attr("xmlns", "http://www.w3.org/2000/svg"),
			ring("M12 22C17.5228 22 22 17.5228 22 12C22 6.47715 17.5228 2 12 2C6.47715 2 2 6.47715 2 12C2 17.5228 6.47715 22 12 22Z"),
			ring("M12 18C15.3137 18 18 15.3137 18 12C18 8.68629 15.3137 6 12 6C8.68629 6 6 8.68629 6 12C6 15.3137 8.68629 18 12 18Z"),
			ring("M12 14C13.1046 14 14 13.1046 14 12C14 10.8954 13.1046 10 12 10C10.8954 10 10 10.8954 10 12C10 13.1046 10.8954 14 12 14Z"),
		),
	)
}
