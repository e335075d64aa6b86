package score

import (
	"sync"
	"time"

	"github.com/bep/debounce"

	"fiveline/debug"
)

// Options are the one-time construction parameters for an editor
// instance: staff geometry in device pixels plus an optional seed
// collection.
type Options struct {
	Left        float64 // x of the first tick
	BottomLineY float64 // y of the bottom staff line
	LineGap     float64 // vertical distance between staff lines
	BeatWidth   float64 // horizontal pixels per quarter-note beat
	Measures    int
	TempoBPM    int

	// Seed is copied in once at construction, not a live binding.
	Seed []Note
}

// Editor owns one staff's note store, interaction state and derived
// views. Instances share nothing; every editor has its own store and
// controller.
type Editor struct {
	grid  Grid
	store *Store
	ctrl  *Controller
	tempo int

	mu        sync.Mutex
	export    []ExportedNote
	listeners []func([]ExportedNote)
	debounced func(func())
}

// Listener notifications coalesce over this window so a drag doesn't
// flood the render layer.
const notifyDebounce = 16 * time.Millisecond

// NewEditor builds an editor from construction parameters. Malformed
// seed notes degrade gracefully: a note referencing a measure off the
// staff falls back to the first measure, and notes that still fail
// validation are dropped with a log line. Construction never aborts.
func NewEditor(opts Options) *Editor {
	if opts.Measures <= 0 {
		opts.Measures = 4
	}
	if opts.TempoBPM <= 0 {
		opts.TempoBPM = 120
	}

	grid := Grid{
		Left:        opts.Left,
		Right:       opts.Left + float64(opts.Measures*4)*opts.BeatWidth,
		BottomLineY: opts.BottomLineY,
		HalfGap:     opts.LineGap / 2,
		Measures:    opts.Measures,
	}

	store := NewStore(opts.Measures)
	for _, n := range opts.Seed {
		if n.Position.Measure < 0 || n.Position.Measure >= opts.Measures {
			n.Position.Measure = 0
		}
		if n.ID == "" {
			n = NewNote(n.Position, n.Degree, n.Duration, n.Accidental)
		}
		if err := store.Insert(n); err != nil {
			debug.Log("editor", "seed note dropped: %v", err)
		}
	}

	e := &Editor{
		grid:      grid,
		store:     store,
		ctrl:      NewController(store, grid),
		tempo:     opts.TempoBPM,
		debounced: debounce.New(notifyDebounce),
	}
	e.ctrl.onMutate = e.changed
	e.export = Export(store.All(), grid)
	return e
}

// changed recomputes the export eagerly and schedules a coalesced
// listener notification.
func (e *Editor) changed() {
	e.mu.Lock()
	e.export = Export(e.store.All(), e.grid)
	snapshot := e.export
	listeners := e.listeners
	e.mu.Unlock()

	if len(listeners) == 0 {
		return
	}
	e.debounced(func() {
		for _, fn := range listeners {
			fn(snapshot)
		}
	})
}

// Controller returns the editor's interaction controller.
func (e *Editor) Controller() *Controller {
	return e.ctrl
}

// Grid returns the editor's pixel/grid mapping.
func (e *Editor) Grid() Grid {
	return e.grid
}

// Notes returns an ordered snapshot of the collection.
func (e *Editor) Notes() []Note {
	return e.store.All()
}

// Export returns the current derived render view.
func (e *Editor) Export() []ExportedNote {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.export
}

// OnChange registers a listener for (debounced) export updates.
func (e *Editor) OnChange(fn func([]ExportedNote)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// Tempo returns the playback tempo in BPM.
func (e *Editor) Tempo() int {
	return e.tempo
}

// SetTempo adjusts the playback tempo, clamped to a sane range.
func (e *Editor) SetTempo(bpm int) {
	if bpm < 20 {
		bpm = 20
	}
	if bpm > 300 {
		bpm = 300
	}
	e.tempo = bpm
}

// Schedule computes the playback sequence from a full snapshot taken
// now. Later edits never alter an already-computed schedule.
func (e *Editor) Schedule() []PlaybackEvent {
	return Schedule(e.store.All(), e.tempo)
}

// UpdateNote applies a patch through the store and refreshes derived
// views. Used by the HTTP surface; the TUI goes through the controller.
func (e *Editor) UpdateNote(id string, p Patch) error {
	err := e.store.Update(id, p)
	if err == nil {
		e.changed()
	}
	return err
}

// RemoveNote deletes by id (no-op if absent) and refreshes derived
// views.
func (e *Editor) RemoveNote(id string) {
	e.store.Remove(id)
	e.changed()
}

// InsertNote validates and adds a note, then refreshes derived views.
func (e *Editor) InsertNote(n Note) error {
	err := e.store.Insert(n)
	if err == nil {
		e.changed()
	}
	return err
}

// GetNote looks a note up by id.
func (e *Editor) GetNote(id string) (Note, bool) {
	return e.store.Get(id)
}
