package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

// Symbols are the glyphs the staff view draws with.
type Symbols struct {
	NoteHead     rune // ● a placed note
	SelectedNote rune // ◉ the selected note
	HollowNote   rune // ○ whole/half note heads
	StaffLine    rune // ─ one of the five lines
	LedgerLine   rune // - ledger line segment
	EmptyCell    rune // · snap position between lines
	BarLine      rune // │ measure boundary
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			NoteHead:     '●',
			SelectedNote: '◉',
			HollowNote:   '○',
			StaffLine:    '─',
			LedgerLine:   '-',
			EmptyCell:    '·',
			BarLine:      '│',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG        = 0.0
	RoleSurface   = 0.15
	RoleMuted     = 0.3
	RoleFG        = 0.5
	RoleAccent    = 0.65
	RoleSelection = 0.8
	RolePlayback  = 1.0
)

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Selection() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleSelection))
}

func (t *Theme) Playback() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RolePlayback))
}

// StaffStyle renders staff lines and ledger lines.
func (t *Theme) StaffStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted())
}

// NoteStyle renders placed notes.
func (t *Theme) NoteStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FG())
}

// SelectedStyle renders the selected note.
func (t *Theme) SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Selection()).Bold(true)
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
