package score

import (
	"sort"
	"time"
)

// Playback pacing: a short lead-in before the first note, and a small
// silence between consecutive notes so repeated pitches articulate.
const (
	scheduleLeadIn = 100 * time.Millisecond
	scheduleGap    = 50 * time.Millisecond
)

// PlaybackEvent is one scheduled tone: what to sound and when.
type PlaybackEvent struct {
	Freq     float64
	MIDI     int
	Start    time.Duration
	Duration time.Duration
}

// Schedule turns a note snapshot into an ordered, non-overlapping
// sequence of playback events at the given tempo. Notes sound one
// after another in tick order (ties keep insertion order, matching the
// store). An empty snapshot schedules nothing; a non-positive tempo
// falls back to 120 BPM.
func Schedule(notes []Note, tempoBPM int) []PlaybackEvent {
	if len(notes) == 0 {
		return nil
	}
	if tempoBPM <= 0 {
		tempoBPM = 120
	}

	// Store snapshots arrive ordered already; a stable sort keeps the
	// result deterministic for any caller-built slice too.
	sorted := make([]Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].GlobalTick() < sorted[j].GlobalTick()
	})

	secPerBeat := 60.0 / float64(tempoBPM)

	events := make([]PlaybackEvent, 0, len(sorted))
	cursor := scheduleLeadIn
	for _, n := range sorted {
		midi := MIDINumber(n.Degree, n.Accidental)
		dur := time.Duration(n.Duration.Beats() * secPerBeat * float64(time.Second))
		events = append(events, PlaybackEvent{
			Freq:     Frequency(midi),
			MIDI:     midi,
			Start:    cursor,
			Duration: dur,
		})
		cursor += dur + scheduleGap
	}
	return events
}
