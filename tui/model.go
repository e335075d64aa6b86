package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fiveline/debug"
	"fiveline/playback"
	"fiveline/score"
	"fiveline/theme"
	"fiveline/widgets"
)

// Staff layout in terminal cells. One cell of height is one degree
// (half a line gap), so staff lines land on even degrees. StaffLeft and
// BottomLineY feed the editor's grid so clicks map back onto exactly
// what View draws.
const (
	StaffLeft = 6 // room for pitch labels
	staffTop  = 4 // rows above the staff: blank, header, toolbar, blank

	topDegree  = 12
	lowDegree  = -4
	topLineDeg = 8 // F5, top staff line
	bottomLine = 0 // E4, bottom staff line

	BottomLineY = staffTop + topDegree // screen row of degree 0
)

type Model struct {
	Editor    *score.Editor
	Player    *playback.Player
	Theme     *theme.Theme
	ScoreName string

	updates  chan []score.ExportedNote
	status   string
	quitting bool
}

// ExportMsg carries a debounced export refresh from the editor.
type ExportMsg []score.ExportedNote

func NewModel(ed *score.Editor, pl *playback.Player, th *theme.Theme, scoreName string) Model {
	m := Model{
		Editor:    ed,
		Player:    pl,
		Theme:     th,
		ScoreName: scoreName,
		updates:   make(chan []score.ExportedNote, 1),
	}
	// Single registration; the channel bridges the editor's debounced
	// notifications into the bubbletea loop.
	ed.OnChange(func(ex []score.ExportedNote) {
		select {
		case m.updates <- ex:
		default:
		}
	})
	return m
}

func (m Model) listenForExports() tea.Cmd {
	return func() tea.Msg {
		return ExportMsg(<-m.updates)
	}
}

func (m Model) Init() tea.Cmd {
	return m.listenForExports()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctrl := m.Editor.Controller()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			m.quitting = true
			m.Player.Close()
			return m, tea.Quit

		case "p":
			events := m.Editor.Schedule()
			m.Player.Play(events)
			m.status = fmt.Sprintf("playing %d notes", len(events))

		case "+", "=":
			m.Editor.SetTempo(m.Editor.Tempo() + 5)
		case "-", "_":
			m.Editor.SetTempo(m.Editor.Tempo() - 5)

		case "1", "2", "3", "4", "5":
			t := ctrl.Tool()
			t.Duration = score.Durations[key[0]-'1']
			t.Eraser = false
			ctrl.SetTool(t)

		case "s":
			m.toggleAccidental(score.Sharp)
		case "f":
			m.toggleAccidental(score.Flat)
		case "n":
			m.toggleAccidental(score.Natural)

		case "e":
			t := ctrl.Tool()
			t.Eraser = !t.Eraser
			ctrl.SetTool(t)

		case "c":
			ctrl.Clear()
			m.status = "cleared"

		case "w":
			name := m.ScoreName
			if name == "" {
				name = "untitled"
			}
			if err := score.SaveScore(name, m.Editor); err != nil {
				m.status = fmt.Sprintf("save failed: %v", err)
			} else {
				m.status = fmt.Sprintf("saved %q", name)
			}

		case "esc", "delete", "backspace", "up", "down":
			ctrl.Key(key)

		default:
			debug.LogEvery(32, "tui", "unbound key %q", key)
		}

	case tea.MouseMsg:
		x, y := float64(msg.X), float64(msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				ctrl.PointerDown(x, y, msg.Alt)
			}
		case tea.MouseActionMotion:
			ctrl.PointerMove(x, y)
		case tea.MouseActionRelease:
			ctrl.PointerUp()
		}

	case ExportMsg:
		return m, m.listenForExports()
	}

	return m, nil
}

// toggleAccidental sets the tool accidental, or clears it when pressed
// again.
func (m *Model) toggleAccidental(acc score.Accidental) {
	ctrl := m.Editor.Controller()
	t := ctrl.Tool()
	if t.Accidental == acc {
		t.Accidental = score.NoAccidental
	} else {
		t.Accidental = acc
	}
	ctrl.SetTool(t)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctrl := m.Editor.Controller()
	tool := ctrl.Tool()
	grid := m.Editor.Grid()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	name := m.ScoreName
	if name == "" {
		name = "(unsaved)"
	}
	header := headerStyle.Render(fmt.Sprintf("fiveline  %s  %3dbpm  %d notes", name, m.Editor.Tempo(), len(m.Editor.Notes())))

	var items []widgets.ToolbarItem
	for _, d := range score.Durations {
		items = append(items, widgets.ToolbarItem{Label: string(d), Active: tool.Duration == d && !tool.Eraser})
	}
	for _, a := range []score.Accidental{score.Sharp, score.Flat, score.Natural} {
		items = append(items, widgets.ToolbarItem{Label: string(a), Active: tool.Accidental == a})
	}
	items = append(items, widgets.ToolbarItem{Label: "eraser", Active: tool.Eraser})
	toolbar := dimStyle.Render(widgets.RenderToolbar(items))

	staff := m.renderStaff(grid)

	selected := ""
	if id := ctrl.SelectedID(); id != "" {
		if n, ok := m.Editor.GetNote(id); ok {
			selected = dimStyle.Render(fmt.Sprintf("selected: %s  m%d t%d  %s",
				score.PitchString(n.Degree, n.Accidental), n.Position.Measure, n.Position.Tick, n.Duration))
		}
	}

	help := dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "click", Desc: "place/select, click again to deselect"},
			{Key: "drag", Desc: "move in time (alt+drag: pitch too)"},
			{Key: "up/down", Desc: "nudge pitch"},
			{Key: "del", Desc: "remove note"},
		}},
		{Keys: []widgets.KeyBinding{
			{Key: "1-5", Desc: "duration  s/f/n: accidental  e: eraser"},
			{Key: "p", Desc: "play  +/-: tempo  c: clear  w: save  q: quit"},
		}},
	}))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n")
	out.WriteString(toolbar)
	out.WriteString("\n\n")
	out.WriteString(staff)
	out.WriteString("\n")
	if selected != "" {
		out.WriteString(selected)
		out.WriteString("\n")
	}
	if m.status != "" {
		out.WriteString(dimStyle.Render(m.status))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(help)
	return out.String()
}

// renderStaff draws the five lines, bar lines, and every note at the
// model's output coordinates. The y for a degree and the x for a
// position both come from the grid, so what is drawn is exactly what a
// click maps back to.
func (m Model) renderStaff(grid score.Grid) string {
	notes := m.Editor.Notes()
	selectedID := m.Editor.Controller().SelectedID()
	width := int(grid.Right-grid.Left) + StaffLeft + 1

	staffStyle := m.Theme.StaffStyle()
	noteStyle := m.Theme.NoteStyle()
	selStyle := m.Theme.SelectedStyle()

	var lines []string
	for degree := topDegree; degree >= lowDegree; degree-- {
		row := make([]rune, width)
		for i := range row {
			row[i] = ' '
		}

		onLine := degree%2 == 0 && degree >= bottomLine && degree <= topLineDeg
		if onLine {
			for x := StaffLeft; x < width; x++ {
				row[x] = m.Theme.Symbols.StaffLine
			}
			// Measure boundaries
			for mi := 0; mi <= grid.Measures; mi++ {
				x := StaffLeft + mi*score.TicksPerMeasure*int(grid.TickWidth())
				if x < width {
					row[x] = m.Theme.Symbols.BarLine
				}
			}
			// Pitch label for the line
			label := score.PitchString(degree, score.NoAccidental)
			copy(row, []rune(fmt.Sprintf("%-4s", label)))
		}

		lines = append(lines, string(row))
	}

	// Overlay notes, row by row.
	for _, n := range notes {
		rowIdx := topDegree - n.Degree
		if rowIdx < 0 || rowIdx >= len(lines) {
			continue // off the rendered band
		}
		row := []rune(lines[rowIdx])
		x := int(grid.PositionToPixel(n.Position))
		if x < 0 || x >= len(row) {
			continue
		}

		glyph := m.Theme.Symbols.NoteHead
		if n.Duration == score.Whole || n.Duration == score.Half {
			glyph = m.Theme.Symbols.HollowNote
		}
		if n.ID == selectedID {
			glyph = m.Theme.Symbols.SelectedNote
		}

		// Ledger line segments for notes beyond the five-line band.
		if n.Degree%2 == 0 && (n.Degree < bottomLine || n.Degree > topLineDeg) {
			if x-1 >= StaffLeft {
				row[x-1] = m.Theme.Symbols.LedgerLine
			}
			if x+1 < len(row) {
				row[x+1] = m.Theme.Symbols.LedgerLine
			}
		}
		row[x] = glyph
		lines[rowIdx] = string(row)
	}

	// Style whole rows: selected note rows pick up the note style per
	// glyph instead, but cell-level styling would break column math, so
	// the staff is styled uniformly and the selected glyph differs by
	// shape.
	for i, line := range lines {
		if strings.ContainsRune(line, m.Theme.Symbols.SelectedNote) {
			lines[i] = selStyle.Render(line)
		} else if strings.ContainsRune(line, m.Theme.Symbols.NoteHead) || strings.ContainsRune(line, m.Theme.Symbols.HollowNote) {
			lines[i] = noteStyle.Render(line)
		} else {
			lines[i] = staffStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}
