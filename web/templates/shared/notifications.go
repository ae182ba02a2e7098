package shared

import (
	"time"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Notification is a placeholder entry of the header notification panel
type Notification struct {
	Title string
	Age   time.Duration
}

// DefaultNotifications are shown until a notification feed exists
var DefaultNotifications = []Notification{
	{Title: "New meeting scheduled", Age: 10 * time.Minute},
	{Title: "Time off request approved", Age: time.Hour},
	{Title: "Project deadline updated", Age: 2 * time.Hour},
}

// RelativeAge formats an age as "10 minutes ago"
func RelativeAge(age time.Duration, now time.Time) string {
	return humanize.RelTime(now.Add(-age), now, "ago", "from now")
}

func notificationPanel(items []Notification, now time.Time) []g.Node {
	rows := make([]g.Node, 0, len(items))
	for _, n := range items {
		rows = append(rows, html.Div(
			html.Class("rounded-md p-2 hover:bg-accent dark:hover:bg-accent"),
			g.Attr("data-notification", ""),
			html.Div(html.Class("font-medium"), g.Text(n.Title)),
			html.Div(html.Class("text-xs text-muted-foreground"), g.Text(RelativeAge(n.Age, now))),
		))
	}

	return []g.Node{
		DropdownLabel(g.Text("Notifications")),
		DropdownSeparator(),
		html.Div(
			html.Class("max-h-96 overflow-auto p-2"),
			html.Div(html.Class("space-y-2"), g.Group(rows)),
		),
	}
}
