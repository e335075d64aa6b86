package score

import "fiveline/debug"

// Mode is the controller's interaction state.
type Mode int

const (
	Idle Mode = iota
	Selected
	Dragging
)

func (m Mode) String() string {
	switch m {
	case Selected:
		return "selected"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// Tool is the current placement tool state, set by the toolbar layer.
type Tool struct {
	Duration   Duration
	Accidental Accidental
	Eraser     bool
}

type dragState struct {
	originX, originY float64
	originDegree     int
	originPos        Position
	pitchOnly        bool // latched at drag start, never re-sampled
	moved            bool
}

// Controller turns pointer and keyboard events into store mutations. It
// only talks to the store through its public contract; all geometry
// goes through the grid.
type Controller struct {
	store *Store
	grid  Grid

	mode     Mode
	selected string
	drag     dragState
	tool     Tool

	// onMutate fires after any event that changed the collection or the
	// selection. The editor hooks export recomputation here.
	onMutate func()
}

// NewController creates a controller in the idle state with a quarter
// note tool.
func NewController(store *Store, grid Grid) *Controller {
	return &Controller{
		store: store,
		grid:  grid,
		tool:  Tool{Duration: Quarter},
	}
}

// Mode returns the current interaction state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SelectedID returns the selected note's id, or "" when idle.
func (c *Controller) SelectedID() string {
	if c.mode == Idle {
		return ""
	}
	return c.selected
}

// Tool returns the current tool state.
func (c *Controller) Tool() Tool {
	return c.tool
}

// SetTool replaces the tool state.
func (c *Controller) SetTool(t Tool) {
	c.tool = t
}

func (c *Controller) notify() {
	if c.onMutate != nil {
		c.onMutate()
	}
}

// noteAt finds the note occupying a quantized grid cell, in store
// order.
func (c *Controller) noteAt(pos Position, degree int) (Note, bool) {
	for _, n := range c.store.All() {
		if n.GlobalTick() == pos.GlobalTick() && n.Degree == degree {
			return n, true
		}
	}
	return Note{}, false
}

// PointerDown handles a press at device pixel coordinates. pitchOnly is
// the pitch modifier; it is latched here if a drag begins.
func (c *Controller) PointerDown(x, y float64, pitchOnly bool) {
	pos, ok := c.grid.PixelToPosition(x)
	if !ok {
		return // out-of-band press, not an error
	}
	degree := c.grid.PixelToDegree(y)

	hit, found := c.noteAt(pos, degree)

	if c.tool.Eraser {
		if found {
			c.store.Remove(hit.ID)
			if c.selected == hit.ID {
				c.mode = Idle
				c.selected = ""
			}
			c.notify()
		}
		return
	}

	if found {
		if c.mode == Selected && c.selected == hit.ID {
			// Press on the selected note: begin a drag. If the pointer
			// releases without moving this was a plain click, and
			// PointerUp toggles the selection off instead.
			c.mode = Dragging
			c.drag = dragState{
				originX:      x,
				originY:      y,
				originDegree: hit.Degree,
				originPos:    hit.Position,
				pitchOnly:    pitchOnly,
			}
		} else {
			c.mode = Selected
			c.selected = hit.ID
		}
		c.notify()
		return
	}

	// Empty staff cell: place a note with the current tool and select
	// it.
	n := NewNote(pos, degree, c.tool.Duration, c.tool.Accidental)
	if err := c.store.Insert(n); err != nil {
		debug.Log("controller", "place rejected: %v", err)
		return
	}
	c.mode = Selected
	c.selected = n.ID
	c.notify()
}

// PointerMove handles pointer motion. Only meaningful mid-drag: the
// dragged note's tick follows the pointer, and its degree follows too
// when the pitch modifier was held at drag start.
func (c *Controller) PointerMove(x, y float64) {
	if c.mode != Dragging {
		return
	}

	pos, ok := c.grid.PixelToPosition(x)
	if !ok {
		return // keep dragging, ignore the stray sample
	}

	patch := Patch{Position: &pos}
	degree := c.drag.originDegree
	if c.drag.pitchOnly {
		degree = c.grid.PixelToDegree(y)
		patch.Degree = &degree
	}

	if pos != c.drag.originPos || degree != c.drag.originDegree {
		c.drag.moved = true
	}

	if err := c.store.Update(c.selected, patch); err != nil {
		debug.LogEvery(16, "controller", "drag update rejected: %v", err)
		return
	}
	c.notify()
}

// PointerUp ends a drag. A press-and-release with no movement is a
// click on the selected note, which deselects it.
func (c *Controller) PointerUp() {
	if c.mode != Dragging {
		return
	}
	if c.drag.moved {
		c.mode = Selected
	} else {
		c.mode = Idle
		c.selected = ""
	}
	c.drag = dragState{}
	c.notify()
}

// Key handles a key-down event. Keys use bubbletea names: "esc",
// "delete", "backspace", "up", "down".
func (c *Controller) Key(key string) {
	switch key {
	case "esc":
		// Abandon whatever is in progress without touching the store.
		c.mode = Idle
		c.selected = ""
		c.drag = dragState{}
		c.notify()

	case "delete", "backspace":
		if c.mode != Selected {
			return
		}
		c.store.Remove(c.selected)
		c.mode = Idle
		c.selected = ""
		c.notify()

	case "up", "down":
		if c.mode != Selected {
			return
		}
		n, ok := c.store.Get(c.selected)
		if !ok {
			return
		}
		degree := n.Degree + 1
		if key == "down" {
			degree = n.Degree - 1
		}
		if err := c.store.Update(c.selected, Patch{Degree: &degree}); err != nil {
			debug.Log("controller", "nudge rejected: %v", err)
			return
		}
		c.notify()
	}
}

// Clear empties the store and resets all interaction state.
func (c *Controller) Clear() {
	c.store.Clear()
	c.mode = Idle
	c.selected = ""
	c.drag = dragState{}
	c.notify()
}
