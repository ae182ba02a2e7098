package shared

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents tree to the templ.Component contract used by
// the handlers.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Embed renders a templ.Component inside a gomponents tree
func Embed(ctx context.Context, c templ.Component) g.Node {
	if c == nil {
		return g.Group(nil)
	}
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}

// cn joins the non-empty class names
func cn(classes ...string) string {
	parts := classes[:0:0]
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
