package navigation

import "strings"

// EntryType distinguishes plain links from groupings with children
type EntryType string

const (
	EntryLink     EntryType = "link"
	EntryDropdown EntryType = "dropdown"
)

// Child is a link nested under a dropdown entry
type Child struct {
	Icon  string
	Path  string
	Label string
}

// Entry is a link or grouping shown in the sidebar
type Entry struct {
	Type     EntryType
	Icon     string
	Path     string
	Label    string
	Children []Child
}

// Favorite is a pinned item in the FAVS section
type Favorite struct {
	Icon  string
	Label string
	Key   string
	Color string
}

// MainEntries is the MAIN section of the sidebar
var MainEntries = []Entry{
	{Type: EntryLink, Icon: "home", Path: "/dashboard", Label: "Dashboard"},
	{Type: EntryLink, Icon: "calendar", Path: "/calendar", Label: "Calendar"},
	{Type: EntryLink, Icon: "clock", Path: "/time-off", Label: "Time Off"},
	{Type: EntryLink, Icon: "folder", Path: "/projects", Label: "Projects"},
	{Type: EntryLink, Icon: "users", Path: "/teams", Label: "Teams"},
	{Type: EntryLink, Icon: "layers", Path: "/integrations", Label: "Integrations"},
	{Type: EntryLink, Icon: "star", Path: "/benefits", Label: "Benefits"},
	{Type: EntryLink, Icon: "file-text", Path: "/documents", Label: "Documents"},
}

// FooterEntries sit below the favorites list
var FooterEntries = []Entry{
	{Type: EntryLink, Icon: "settings", Path: "/settings", Label: "Settings"},
	{Type: EntryLink, Icon: "headphones", Path: "/support", Label: "Support"},
}

// Favorites is the FAVS section of the sidebar
var Favorites = []Favorite{
	{Icon: "layers", Label: "Loom Mobile App", Key: "1", Color: "text-primary"},
	{Icon: "layers", Label: "Monday Redesign", Key: "2", Color: "text-destructive"},
	{Icon: "layers", Label: "Udemy Courses", Key: "3", Color: "text-secondary"},
}

// IsPathActive reports whether an entry targeting path should be highlighted
// while the browser is at current.
func IsPathActive(current, path string) bool {
	if path == "" {
		return false
	}
	return current == path || (path != "/" && strings.HasPrefix(current, path))
}

// Href returns the link target of an entry, defaulting to the root
func (e Entry) Href() string {
	if e.Path == "" {
		return "/"
	}
	return e.Path
}

// Lookup finds a dropdown entry by its label across the given lists
func Lookup(key string, lists ...[]Entry) (Entry, bool) {
	for _, list := range lists {
		for _, entry := range list {
			if entry.Type == EntryDropdown && entry.Label == key {
				return entry, true
			}
		}
	}
	return Entry{}, false
}
