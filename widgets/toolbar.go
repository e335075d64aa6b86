package widgets

import (
	"fmt"
	"strings"
)

// ToolbarItem is one labelled slot in the toolbar strip.
type ToolbarItem struct {
	Label  string
	Active bool
}

// RenderToolbar draws a one-line toolbar, bracketing the active items:
// "[quarter]  eighth  sharp  [eraser]".
func RenderToolbar(items []ToolbarItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Active {
			parts = append(parts, fmt.Sprintf("[%s]", it.Label))
		} else {
			parts = append(parts, fmt.Sprintf(" %s ", it.Label))
		}
	}
	return strings.Join(parts, " ")
}
