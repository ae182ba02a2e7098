package shared

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Align positions dropdown content relative to its trigger
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

func (a Align) class() string {
	switch a {
	case AlignEnd:
		return "right-0"
	case AlignCenter:
		return "left-1/2 -translate-x-1/2"
	default:
		return "left-0"
	}
}

// DropdownProps configures a Dropdown
type DropdownProps struct {
	// Label names the trigger for assistive technology
	Label        string
	TriggerClass string
	ContentClass string
	Align        Align
	// Class is applied to the outer wrapper
	Class string
}

// Dropdown renders a trigger/content menu on top of <details>, so it opens
// without any script.
func Dropdown(p DropdownProps, trigger g.Node, content ...g.Node) g.Node {
	return g.El("details",
		html.Class(cn("group relative", p.Class)),
		g.Attr("data-dropdown", ""),
		g.El("summary",
			html.Class(cn("cursor-pointer list-none [&::-webkit-details-marker]:hidden", p.TriggerClass)),
			g.If(p.Label != "", html.Aria("label", p.Label)),
			trigger,
		),
		html.Div(
			html.Role("menu"),
			html.Class(cn("absolute z-50 mt-2 rounded-md border border-border bg-popover p-1 text-popover-foreground shadow-md", p.Align.class(), p.ContentClass)),
			g.Group(content),
		),
	)
}

// DropdownLabel is a non-interactive heading inside dropdown content
func DropdownLabel(children ...g.Node) g.Node {
	return html.Div(
		html.Class("px-2 py-1.5 text-sm font-semibold"),
		g.Group(children),
	)
}

// DropdownSeparator divides groups of dropdown items
func DropdownSeparator() g.Node {
	return html.Div(
		html.Role("separator"),
		html.Class("-mx-1 my-1 h-px bg-muted"),
	)
}

const dropdownItemClass = "relative flex w-full cursor-pointer select-none items-center rounded-sm px-2 py-1.5 text-sm outline-none transition-colors hover:bg-accent hover:text-accent-foreground"

// DropdownItem is a menu entry navigating to href
func DropdownItem(href string, children ...g.Node) g.Node {
	return html.A(
		html.Href(href),
		html.Role("menuitem"),
		html.Class(dropdownItemClass),
		g.Group(children),
	)
}

// DropdownFormItem is a menu entry that submits a POST form to action
func DropdownFormItem(action, csrfToken string, children ...g.Node) g.Node {
	return html.Form(
		html.Method("post"),
		html.Action(action),
		CSRFField(csrfToken),
		html.Button(
			html.Type("submit"),
			html.Role("menuitem"),
			html.Class(dropdownItemClass),
			g.Group(children),
		),
	)
}

// CSRFField renders the hidden token input expected by the CSRF middleware
func CSRFField(token string) g.Node {
	if token == "" {
		return g.Group(nil)
	}
	return html.Input(html.Type("hidden"), html.Name("_csrf"), html.Value(token))
}
