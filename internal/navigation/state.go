package navigation

// State is the per-session UI state of the shell
type State struct {
	Collapsed bool            `json:"collapsed"`
	Expanded  map[string]bool `json:"expanded,omitempty"`
}

// NewState returns an expanded sidebar with every dropdown closed
func NewState() State {
	return State{Expanded: map[string]bool{}}
}

// ToggleCollapsed flips the collapse flag
func (s State) ToggleCollapsed() State {
	s.Collapsed = !s.Collapsed
	return s
}

// ToggleSection flips the expanded flag for key. The receiver's map is left
// untouched so a State can be shared between renders.
func (s State) ToggleSection(key string) State {
	expanded := make(map[string]bool, len(s.Expanded)+1)
	for k, v := range s.Expanded {
		expanded[k] = v
	}
	if expanded[key] {
		// keep the cookie small: closed sections are simply absent
		delete(expanded, key)
	} else {
		expanded[key] = true
	}
	s.Expanded = expanded
	return s
}

// IsExpanded reports whether the dropdown keyed by key is open
func (s State) IsExpanded(key string) bool {
	return s.Expanded[key]
}
