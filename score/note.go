package score

import "github.com/google/uuid"

// TicksPerMeasure is the horizontal grid resolution: a measure divides
// into 16 sixteenth-note ticks.
const TicksPerMeasure = 16

// Duration is a note length from the fixed rhythmic set.
type Duration string

const (
	Whole     Duration = "whole"
	Half      Duration = "half"
	Quarter   Duration = "quarter"
	Eighth    Duration = "eighth"
	Sixteenth Duration = "sixteenth"
)

// Durations lists every valid duration, longest first.
var Durations = []Duration{Whole, Half, Quarter, Eighth, Sixteenth}

var durationTicks = map[Duration]int{
	Whole:     16,
	Half:      8,
	Quarter:   4,
	Eighth:    2,
	Sixteenth: 1,
}

// Ticks returns the grid length of the duration (0 if unknown).
func (d Duration) Ticks() int {
	return durationTicks[d]
}

// Beats returns the metrical length of the duration in quarter-note beats.
func (d Duration) Beats() float64 {
	return float64(durationTicks[d]) / 4.0
}

// Valid reports whether d is one of the enumerated durations.
func (d Duration) Valid() bool {
	_, ok := durationTicks[d]
	return ok
}

// DurationForTicks returns the duration whose grid length is exactly
// ticks, if one exists.
func DurationForTicks(ticks int) (Duration, bool) {
	for d, t := range durationTicks {
		if t == ticks {
			return d, true
		}
	}
	return "", false
}

// Accidental modifies a note's diatonic pitch by a semitone, or cancels
// a previous modification. Natural and none sound identical; they only
// render differently.
type Accidental string

const (
	NoAccidental Accidental = ""
	Natural      Accidental = "natural"
	Sharp        Accidental = "sharp"
	Flat         Accidental = "flat"
)

// Semitones returns the pitch offset the accidental applies.
func (a Accidental) Semitones() int {
	switch a {
	case Sharp:
		return 1
	case Flat:
		return -1
	}
	return 0
}

// Valid reports whether a is a known accidental value.
func (a Accidental) Valid() bool {
	switch a {
	case NoAccidental, Natural, Sharp, Flat:
		return true
	}
	return false
}

// Position locates a note on the time grid as a measure index plus a
// tick within that measure.
type Position struct {
	Measure int `json:"measure"`
	Tick    int `json:"tick"`
}

// GlobalTick normalizes the position to a single tick index on the full
// timeline. Ordering and playback use this value.
func (p Position) GlobalTick() int {
	return p.Measure*TicksPerMeasure + p.Tick
}

// PositionAt splits a global tick back into (measure, tick). Negative
// ticks split with floor semantics so the in-measure tick stays in
// [0, TicksPerMeasure).
func PositionAt(globalTick int) Position {
	return Position{
		Measure: floorDiv(globalTick, TicksPerMeasure),
		Tick:    floorMod(globalTick, TicksPerMeasure),
	}
}

// Note is a single pitched, time-positioned note on the staff.
type Note struct {
	ID         string     `json:"id"`
	Position   Position   `json:"position"`
	Degree     int        `json:"degree"`
	Duration   Duration   `json:"duration"`
	Accidental Accidental `json:"accidental,omitempty"`

	// seq is the insertion sequence number, assigned by the store. It
	// breaks ordering ties between notes on the same tick.
	seq uint64
}

// NewNote creates a note with a fresh id. The id never changes for the
// life of the note.
func NewNote(pos Position, degree int, d Duration, acc Accidental) Note {
	return Note{
		ID:         uuid.NewString(),
		Position:   pos,
		Degree:     degree,
		Duration:   d,
		Accidental: acc,
	}
}

// GlobalTick is shorthand for the note's normalized timeline position.
func (n Note) GlobalTick() int {
	return n.Position.GlobalTick()
}

// floorDiv divides rounding toward negative infinity, unlike Go's
// truncating division.
func floorDiv(n, m int) int {
	q := n / m
	if n%m != 0 && (n < 0) != (m < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv: always in [0, m) for
// positive m.
func floorMod(n, m int) int {
	return ((n % m) + m) % m
}
