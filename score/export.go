package score

// ExportedNote is the render layer's view of a note: everything a
// drawing pass or external listener needs, nothing it can mutate.
type ExportedNote struct {
	ID       string   `json:"id"`
	Pitch    string   `json:"pitch"`
	MIDI     int      `json:"midi"`
	Duration Duration `json:"duration"`
	PixelX   float64  `json:"pixelX"`
}

// Export derives the render view from a note snapshot, in store order.
func Export(notes []Note, g Grid) []ExportedNote {
	out := make([]ExportedNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, ExportedNote{
			ID:       n.ID,
			Pitch:    PitchString(n.Degree, n.Accidental),
			MIDI:     MIDINumber(n.Degree, n.Accidental),
			Duration: n.Duration,
			PixelX:   g.PositionToPixel(n.Position),
		})
	}
	return out
}
