package score

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Degree 0 is the bottom line of the treble staff: E4. Degrees count in
// half-line-gaps, so +1 is the space above, +2 the next line, and so on.
const (
	refStepIndex = 2 // E within C D E F G A B
	refOctave    = 4
	midiC4       = 60
)

var stepLetters = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Semitone offset of each natural step from C.
var stepSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// DegreeToStepOctave maps a staff degree to its natural letter and
// octave. Total over all integers; octaves carry correctly below the
// reference via floor division.
func DegreeToStepOctave(degree int) (step string, octave int) {
	idx := refStepIndex + degree
	return stepLetters[floorMod(idx, 7)], refOctave + floorDiv(idx, 7)
}

// StepOctaveToMIDI returns the MIDI note number for a step letter,
// octave and accidental. C4 is 60. Unknown letters map as C.
func StepOctaveToMIDI(step string, octave int, acc Accidental) int {
	semis := 0
	for i, l := range stepLetters {
		if l == step {
			semis = stepSemitones[i]
			break
		}
	}
	return midiC4 + (octave-refOctave)*12 + semis + acc.Semitones()
}

// MIDINumber maps a degree and accidental straight to a MIDI note
// number.
func MIDINumber(degree int, acc Accidental) int {
	step, octave := DegreeToStepOctave(degree)
	return StepOctaveToMIDI(step, octave, acc)
}

// PitchString formats a degree and accidental for display: "E4", "F#5",
// "Bb3". Natural renders the same as no accidental.
func PitchString(degree int, acc Accidental) string {
	step, octave := DegreeToStepOctave(degree)
	suffix := ""
	switch acc {
	case Sharp:
		suffix = "#"
	case Flat:
		suffix = "b"
	}
	return step + suffix + strconv.Itoa(octave)
}

// ParsePitchString is the inverse of PitchString. It returns the staff
// degree and accidental the string denotes. A parsed natural comes back
// as NoAccidental since the two are indistinguishable in this form.
func ParsePitchString(s string) (degree int, acc Accidental, err error) {
	if len(s) < 2 {
		return 0, NoAccidental, fmt.Errorf("pitch %q too short", s)
	}

	stepIdx := -1
	letter := strings.ToUpper(s[:1])
	for i, l := range stepLetters {
		if l == letter {
			stepIdx = i
			break
		}
	}
	if stepIdx < 0 {
		return 0, NoAccidental, fmt.Errorf("pitch %q: unknown step %q", s, letter)
	}

	rest := s[1:]
	acc = NoAccidental
	switch {
	case strings.HasPrefix(rest, "#"):
		acc = Sharp
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		acc = Flat
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, NoAccidental, fmt.Errorf("pitch %q: bad octave: %w", s, err)
	}

	degree = (octave-refOctave)*7 + stepIdx - refStepIndex
	return degree, acc, nil
}

// Frequency converts a MIDI note number to Hz in equal temperament,
// A4 (69) = 440Hz.
func Frequency(midi int) float64 {
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}
