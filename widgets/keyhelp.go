package widgets

import (
	"fmt"
	"strings"
)

// KeyBinding is one key + description pair for the help footer.
type KeyBinding struct {
	Key  string
	Desc string
}

// KeySection groups related bindings under a title.
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// RenderKeyHelp formats key bindings in columns of sections.
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}
