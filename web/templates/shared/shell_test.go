package shared

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synergy_app_echo/internal/navigation"
	"synergy_app_echo/internal/services"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

var reports = navigation.Entry{
	Type:  navigation.EntryDropdown,
	Icon:  "folder",
	Label: "Reports",
	Children: []navigation.Child{
		{Icon: "file-text", Path: "/reports/monthly", Label: "Monthly"},
		{Icon: "file-text", Path: "/reports/yearly", Label: "Yearly"},
	},
}

var archive = navigation.Entry{
	Type:  navigation.EntryDropdown,
	Icon:  "layers",
	Label: "Archive",
	Children: []navigation.Child{
		{Icon: "file-text", Path: "/archive/2025", Label: "2025"},
	},
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func baseProps() ShellProps {
	return ShellProps{
		Title:         "Dashboard",
		CurrentPath:   "/dashboard",
		CSRFToken:     "token-123",
		State:         navigation.NewState(),
		Account:       services.Account{UID: "u1", Name: "Sophia Williams", Email: "sophia@example.com", Online: true},
		Nav:           navigation.MainEntries,
		Footer:        navigation.FooterEntries,
		Favorites:     navigation.Favorites,
		Notifications: DefaultNotifications,
		Now:           testNow,
		Content:       text(`<p id="page">hello</p>`),
	}
}

func render(t *testing.T, p ShellProps) (*goquery.Document, string) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, AppShell(p).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc, buf.String()
}

func hrefs(doc *goquery.Document) []string {
	var out []string
	doc.Find("[data-section=main] a, [data-section=footer] a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		out = append(out, href)
	})
	return out
}

func TestAppShell_Document(t *testing.T) {
	doc, _ := render(t, baseProps())

	assert.Equal(t, "Dashboard · Synergy", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("[data-shell]").Length())
	assert.Equal(t, 1, doc.Find("aside[data-sidebar]").Length())
	assert.Equal(t, 1, doc.Find("header[data-header]").Length())
}

func TestAppShell_CollapseHidesLabelsKeepsTargets(t *testing.T) {
	expanded, _ := render(t, baseProps())

	p := baseProps()
	p.State = p.State.ToggleCollapsed()
	collapsed, _ := render(t, p)

	assert.Contains(t, expanded.Find("aside").AttrOr("class", ""), "w-64")
	assert.Contains(t, collapsed.Find("aside").AttrOr("class", ""), "w-16")

	assert.Equal(t, hrefs(expanded), hrefs(collapsed))
	assert.Len(t, hrefs(collapsed), len(navigation.MainEntries)+len(navigation.FooterEntries))

	assert.Equal(t, "Calendar", strings.TrimSpace(expanded.Find("[data-entry=Calendar] a span").Text()))
	assert.Equal(t, 0, collapsed.Find("[data-entry=Calendar] a span").Length())

	assert.Contains(t, expanded.Find("aside").Text(), "MAIN")
	assert.Contains(t, expanded.Find("aside").Text(), "Synergy")
	assert.NotContains(t, collapsed.Find("aside").Text(), "MAIN")
	assert.NotContains(t, collapsed.Find("aside").Text(), "FAVS")
	assert.NotContains(t, collapsed.Find("aside").Text(), "HR Management")
	assert.NotContains(t, collapsed.Find("[data-section=favorites]").Text(), "Loom Mobile App")
	assert.Equal(t, 3, collapsed.Find("[data-favorite]").Length(), "favorite dots stay visible")
}

func TestAppShell_ActiveEntry(t *testing.T) {
	p := baseProps()
	p.CurrentPath = "/projects/42"
	doc, _ := render(t, p)

	active := doc.Find("[data-sidebar] a[aria-current=page]")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "/projects", active.AttrOr("href", ""))
	assert.Contains(t, active.AttrOr("class", ""), "bg-primary/10")
	assert.Equal(t, 1, active.Find("[data-active-marker]").Length())

	dashboard := doc.Find("[data-entry=Dashboard] a")
	assert.NotContains(t, dashboard.AttrOr("class", ""), "bg-primary/10")
	_, current := dashboard.Attr("aria-current")
	assert.False(t, current)
}

func TestAppShell_ActiveMarkerHiddenWhenCollapsed(t *testing.T) {
	p := baseProps()
	p.State = p.State.ToggleCollapsed()
	doc, _ := render(t, p)

	active := doc.Find("[data-entry=Dashboard] a")
	assert.Contains(t, active.AttrOr("class", ""), "bg-primary/10")
	assert.Equal(t, 0, active.Find("[data-active-marker]").Length())
}

func TestAppShell_DropdownShowsOnlyItsChildren(t *testing.T) {
	p := baseProps()
	p.Nav = append([]navigation.Entry{reports, archive}, navigation.MainEntries...)

	closed, _ := render(t, p)
	assert.Equal(t, 0, closed.Find("[data-children]").Length())
	assert.Equal(t, "false", closed.Find("[data-entry=Reports] button").AttrOr("aria-expanded", ""))

	p.State = p.State.ToggleSection("Reports")
	open, _ := render(t, p)

	children := open.Find("[data-children]")
	require.Equal(t, 1, children.Length())
	assert.Equal(t, "Reports", children.AttrOr("data-children", ""))
	assert.Equal(t, 2, children.Find("a").Length())
	assert.Equal(t, 0, open.Find(`a[href="/archive/2025"]`).Length())
	assert.Equal(t, "true", open.Find("[data-entry=Reports] button").AttrOr("aria-expanded", ""))

	p.State = p.State.ToggleSection("Reports")
	reclosed, _ := render(t, p)
	assert.Equal(t, 0, reclosed.Find("[data-children]").Length())
}

func TestAppShell_DropdownChildrenHiddenWhenCollapsed(t *testing.T) {
	p := baseProps()
	p.Nav = []navigation.Entry{reports}
	p.State = p.State.ToggleSection("Reports").ToggleCollapsed()

	doc, _ := render(t, p)
	assert.Equal(t, 0, doc.Find("[data-children]").Length())
}

func TestAppShell_DropdownToggleForm(t *testing.T) {
	p := baseProps()
	p.Nav = []navigation.Entry{reports}
	p.CurrentPath = "/reports/monthly"
	p.State = p.State.ToggleSection("Reports")

	doc, _ := render(t, p)

	form := doc.Find("[data-entry=Reports] form")
	assert.Equal(t, "/ui/nav/toggle", form.AttrOr("action", ""))
	assert.Equal(t, "Reports", form.Find("input[name=section]").AttrOr("value", ""))
	assert.Equal(t, "/reports/monthly", form.Find("input[name=return]").AttrOr("value", ""))
	assert.Equal(t, "token-123", form.Find("input[name=_csrf]").AttrOr("value", ""))

	active := doc.Find("[data-children] a[aria-current=page]")
	assert.Equal(t, "/reports/monthly", active.AttrOr("href", ""))
}

func TestAppShell_ContentRenderedUnchanged(t *testing.T) {
	content := `<section class="x"><h1>Quarterly <em>review</em></h1><p>5 &lt; 6</p></section>`
	p := baseProps()
	p.Content = text(content)

	doc, raw := render(t, p)

	assert.Contains(t, raw, `<main class="flex-1 overflow-auto"><div class="p-6" id="content">`+content+`</div></main>`)
	assert.Equal(t, 1, doc.Find("main #content section h1 em").Length())
}

func TestAppShell_NilContent(t *testing.T) {
	p := baseProps()
	p.Content = nil

	doc, _ := render(t, p)
	assert.Equal(t, 0, doc.Find("#content").Children().Length())
}

func TestAppShell_ClassAndStyleOverrides(t *testing.T) {
	p := baseProps()
	p.Class = "theme-dark"
	p.Style = "--sidebar: 20rem"

	doc, _ := render(t, p)
	root := doc.Find("[data-shell]")
	assert.Contains(t, root.AttrOr("class", ""), "flex h-screen")
	assert.Contains(t, root.AttrOr("class", ""), "theme-dark")
	assert.Equal(t, "--sidebar: 20rem", root.AttrOr("style", ""))

	plain, _ := render(t, baseProps())
	_, hasStyle := plain.Find("[data-shell]").Attr("style")
	assert.False(t, hasStyle)
}

func TestAppShell_CollapseToggles(t *testing.T) {
	p := baseProps()
	p.CurrentPath = "/teams"
	p.ReturnTo = "/teams?tab=all"

	doc, _ := render(t, p)

	toggles := doc.Find("[data-toggle=sidebar]")
	assert.Equal(t, 2, toggles.Length(), "sidebar chevron and mobile menu button")
	toggles.Each(func(_ int, s *goquery.Selection) {
		form := s.Closest("form")
		assert.Equal(t, "/ui/sidebar/toggle", form.AttrOr("action", ""))
		assert.Equal(t, "/teams?tab=all", form.Find("input[name=return]").AttrOr("value", ""))
	})

	assert.Contains(t, doc.Find("header [data-toggle=sidebar]").AttrOr("class", ""), "md:hidden")
}

func TestAppShell_Favorites(t *testing.T) {
	doc, _ := render(t, baseProps())

	favs := doc.Find("[data-favorite]")
	require.Equal(t, 3, favs.Length())
	assert.Contains(t, favs.Eq(0).Text(), "Loom Mobile App")
	assert.Contains(t, favs.Eq(0).Text(), "⌘ 1")
	assert.Contains(t, favs.Eq(1).Find("div").AttrOr("class", ""), "text-destructive")
}

func TestAppShell_Header(t *testing.T) {
	doc, _ := render(t, baseProps())
	header := doc.Find("header")

	assert.Equal(t, "/schedule", header.Find("[data-action=schedule]").AttrOr("href", ""))
	assert.Equal(t, 1, header.Find("button[data-action=create-request]").Length())
	assert.Equal(t, 1, header.Find("[data-unread]").Length())

	notes := header.Find(`details:has(summary[aria-label=Notifications]) [data-notification]`)
	require.Equal(t, 3, notes.Length())
	assert.Contains(t, notes.Eq(0).Text(), "New meeting scheduled")
	assert.Contains(t, notes.Eq(0).Text(), "10 minutes ago")
	assert.Contains(t, notes.Eq(1).Text(), "1 hour ago")
	assert.Contains(t, notes.Eq(2).Text(), "2 hours ago")
}

func TestAppShell_NoUnreadDotWithoutNotifications(t *testing.T) {
	p := baseProps()
	p.Notifications = nil

	doc, _ := render(t, p)
	assert.Equal(t, 0, doc.Find("[data-unread]").Length())
}

func TestAppShell_AccountMenus(t *testing.T) {
	doc, _ := render(t, baseProps())

	sidebarMenu := doc.Find("aside details[data-dropdown]")
	require.Equal(t, 1, sidebarMenu.Length())
	assert.Contains(t, sidebarMenu.Find("summary").Text(), "Sophia Williams")
	assert.Contains(t, sidebarMenu.Find("summary").Text(), "sophia@example.com")
	assert.Contains(t, sidebarMenu.Find("[role=menu]").Text(), "My Account")

	headerMenu := doc.Find(`header details:has(summary[aria-label=Account])`)
	require.Equal(t, 1, headerMenu.Length())
	assert.Contains(t, headerMenu.Find("[role=menu]").Text(), "sophia@example.com")

	for _, menu := range []*goquery.Selection{sidebarMenu, headerMenu} {
		assert.Equal(t, 1, menu.Find(`a[href="/profile"]`).Length())
		assert.Equal(t, 1, menu.Find(`a[href="/settings"]`).Length())
		logout := menu.Find(`form[action="/auth/logout"]`)
		assert.Equal(t, "post", logout.AttrOr("method", ""))
		assert.Contains(t, logout.Text(), "Log out")
	}

	assert.Equal(t, "SW", strings.TrimSpace(doc.Find("header summary span[aria-label]").Text()))
	assert.Equal(t, 2, doc.Find("[data-online]").Length())
}

func TestAppShell_SidebarAccountCollapsed(t *testing.T) {
	p := baseProps()
	p.State = p.State.ToggleCollapsed()

	doc, _ := render(t, p)
	assert.NotContains(t, doc.Find("aside summary").Text(), "sophia@example.com")
}

func TestAvatar_Image(t *testing.T) {
	var buf bytes.Buffer
	node := Avatar(services.Account{Name: "Sophia", AvatarURL: "https://cdn.example.com/s.png"}, "h-8 w-8", "h-3 w-3")
	require.NoError(t, node.Render(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/s.png", doc.Find("img").AttrOr("src", ""))
	assert.Equal(t, 0, doc.Find("[data-online]").Length())
}

func TestIcon_Unknown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Icon("does-not-exist", "h-4 w-4").Render(&buf))
	assert.Contains(t, buf.String(), "&#8226;")
	assert.NotContains(t, buf.String(), "<svg")
}

func TestIcon_AllNavigationIconsKnown(t *testing.T) {
	for _, list := range [][]navigation.Entry{navigation.MainEntries, navigation.FooterEntries} {
		for _, e := range list {
			_, ok := iconShapes[e.Icon]
			assert.True(t, ok, "missing icon %q", e.Icon)
		}
	}
}

func TestRelativeAge(t *testing.T) {
	assert.Equal(t, "10 minutes ago", RelativeAge(10*time.Minute, testNow))
	assert.Equal(t, "1 hour ago", RelativeAge(time.Hour, testNow))
	assert.Equal(t, "2 hours ago", RelativeAge(2*time.Hour, testNow))
}

func TestCn(t *testing.T) {
	assert.Equal(t, "a b", cn("a", "", "  ", "b"))
	assert.Equal(t, "", cn())
}
