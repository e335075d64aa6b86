package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleEmpty(t *testing.T) {
	assert.Empty(t, Schedule(nil, 120))
	assert.Empty(t, Schedule([]Note{}, 120))
}

func TestScheduleSingleQuarter(t *testing.T) {
	n := NewNote(Position{}, 0, Quarter, NoAccidental)
	events := Schedule([]Note{n}, 120)
	require.Len(t, events, 1)

	// One beat at 120 BPM is half a second.
	assert.Equal(t, 500*time.Millisecond, events[0].Duration)
	assert.Equal(t, scheduleLeadIn, events[0].Start)
	assert.Equal(t, 64, events[0].MIDI)
	assert.InDelta(t, Frequency(64), events[0].Freq, 1e-9)
}

func TestScheduleNoOverlap(t *testing.T) {
	a := NewNote(Position{Measure: 0, Tick: 0}, 0, Half, NoAccidental)
	b := NewNote(Position{Measure: 1, Tick: 0}, 2, Quarter, NoAccidental)
	events := Schedule([]Note{a, b}, 120)
	require.Len(t, events, 2)

	assert.GreaterOrEqual(t, events[1].Start, events[0].Start+events[0].Duration)
	assert.Equal(t, events[0].Start+events[0].Duration+scheduleGap, events[1].Start)
}

func TestScheduleSortsByTick(t *testing.T) {
	late := NewNote(Position{Measure: 2, Tick: 0}, 4, Quarter, NoAccidental)
	early := NewNote(Position{Measure: 0, Tick: 0}, 0, Quarter, NoAccidental)
	events := Schedule([]Note{late, early}, 120)
	require.Len(t, events, 2)
	assert.Equal(t, 64, events[0].MIDI, "earlier tick plays first")
}

func TestScheduleTieKeepsInputOrder(t *testing.T) {
	a := NewNote(Position{}, 0, Quarter, NoAccidental)
	b := NewNote(Position{}, 2, Quarter, NoAccidental)
	events := Schedule([]Note{a, b}, 120)
	require.Len(t, events, 2)
	assert.Equal(t, 64, events[0].MIDI)
	assert.Equal(t, 67, events[1].MIDI)
}

func TestScheduleTempoScales(t *testing.T) {
	n := NewNote(Position{}, 0, Quarter, NoAccidental)

	at60 := Schedule([]Note{n}, 60)
	require.Len(t, at60, 1)
	assert.Equal(t, time.Second, at60[0].Duration)

	at240 := Schedule([]Note{n}, 240)
	require.Len(t, at240, 1)
	assert.Equal(t, 250*time.Millisecond, at240[0].Duration)
}

func TestScheduleGuardsBadTempo(t *testing.T) {
	n := NewNote(Position{}, 0, Quarter, NoAccidental)

	// Zero or negative tempo falls back to the 120 BPM default instead
	// of dividing by zero.
	for _, bpm := range []int{0, -10} {
		events := Schedule([]Note{n}, bpm)
		require.Len(t, events, 1, "bpm %d", bpm)
		assert.Equal(t, 500*time.Millisecond, events[0].Duration, "bpm %d", bpm)
	}
}

func TestScheduleAccidentalShiftsPitch(t *testing.T) {
	sharp := NewNote(Position{}, 0, Quarter, Sharp)
	events := Schedule([]Note{sharp}, 120)
	require.Len(t, events, 1)
	assert.Equal(t, 65, events[0].MIDI)
}
