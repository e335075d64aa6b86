package score

import (
	"fmt"
	"sort"
)

// Validation failures reported by Insert and Update.
var (
	ErrDuplicateID = fmt.Errorf("duplicate note id")
	ErrBadDuration = fmt.Errorf("unknown duration")
	ErrBadAccident = fmt.Errorf("unknown accidental")
	ErrTickRange   = fmt.Errorf("tick outside measure")
	ErrMeasureOut  = fmt.Errorf("measure outside staff")
)

// Store is the authoritative note collection. Every mutation builds a
// fresh ordered slice (copy-on-write), so a snapshot handed out by All
// is never touched by later edits. Order is total: global tick
// ascending, insertion sequence breaking ties.
type Store struct {
	notes    []Note
	nextSeq  uint64
	measures int
}

// Patch names the mutable fields of a note. Nil fields are left alone.
type Patch struct {
	Degree     *int
	Position   *Position
	Duration   *Duration
	Accidental *Accidental
}

// NewStore creates an empty store for a staff of the given measure
// count.
func NewStore(measures int) *Store {
	return &Store{measures: measures}
}

// Measures returns the staff length the store validates against.
func (s *Store) Measures() int {
	return s.measures
}

// Len returns the number of notes.
func (s *Store) Len() int {
	return len(s.notes)
}

// Get looks a note up by id.
func (s *Store) Get(id string) (Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

func (s *Store) validate(n Note) error {
	if !n.Duration.Valid() {
		return fmt.Errorf("%w: %q", ErrBadDuration, n.Duration)
	}
	if !n.Accidental.Valid() {
		return fmt.Errorf("%w: %q", ErrBadAccident, n.Accidental)
	}
	if n.Position.Tick < 0 || n.Position.Tick >= TicksPerMeasure {
		return fmt.Errorf("%w: tick %d", ErrTickRange, n.Position.Tick)
	}
	if n.Position.Measure < 0 || n.Position.Measure >= s.measures {
		return fmt.Errorf("%w: measure %d", ErrMeasureOut, n.Position.Measure)
	}
	return nil
}

// Insert validates the note and adds it in tick order. The note's
// insertion sequence is assigned here; equal-tick notes keep arrival
// order forever.
func (s *Store) Insert(n Note) error {
	if err := s.validate(n); err != nil {
		return err
	}
	if _, ok := s.Get(n.ID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}

	n.seq = s.nextSeq
	s.nextSeq++

	// Stable insertion point: after every note at the same tick.
	at := sort.Search(len(s.notes), func(i int) bool {
		return s.notes[i].GlobalTick() > n.GlobalTick()
	})

	next := make([]Note, 0, len(s.notes)+1)
	next = append(next, s.notes[:at]...)
	next = append(next, n)
	next = append(next, s.notes[at:]...)
	s.notes = next
	return nil
}

// Update applies the patch to the note matching id and reorders if the
// position moved. A missing id is a no-op: a queued gesture may race a
// delete, and stale ids are simply ignored.
func (s *Store) Update(id string, p Patch) error {
	at := -1
	for i, n := range s.notes {
		if n.ID == id {
			at = i
			break
		}
	}
	if at < 0 {
		return nil
	}

	n := s.notes[at]
	if p.Degree != nil {
		n.Degree = *p.Degree
	}
	if p.Position != nil {
		n.Position = *p.Position
	}
	if p.Duration != nil {
		n.Duration = *p.Duration
	}
	if p.Accidental != nil {
		n.Accidental = *p.Accidental
	}
	if err := s.validate(n); err != nil {
		return err
	}

	next := make([]Note, len(s.notes))
	copy(next, s.notes)
	next[at] = n
	sort.SliceStable(next, func(i, j int) bool {
		if next[i].GlobalTick() != next[j].GlobalTick() {
			return next[i].GlobalTick() < next[j].GlobalTick()
		}
		return next[i].seq < next[j].seq
	})
	s.notes = next
	return nil
}

// Remove deletes the note matching id. Removing an id twice is fine:
// the second call finds nothing and leaves the collection unchanged.
func (s *Store) Remove(id string) {
	for i, n := range s.notes {
		if n.ID == id {
			next := make([]Note, 0, len(s.notes)-1)
			next = append(next, s.notes[:i]...)
			next = append(next, s.notes[i+1:]...)
			s.notes = next
			return
		}
	}
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.notes = nil
}

// All returns the full ordered collection as a fresh snapshot, never an
// alias of internal state.
func (s *Store) All() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}
