package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fiveline/score"
)

// handleScore returns the derived export list: what a frontend needs to
// draw the staff.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	s.edMu.Lock()
	export := s.editor.Export()
	s.edMu.Unlock()
	writeJSON(w, http.StatusOK, export)
}

type changePitchRequest struct {
	NoteID string `json:"note_id"`
	Pitch  string `json:"pitch"`
}

// handleChangePitch repitches one note from a pitch string like "G4" or
// "F#5".
func (s *Server) handleChangePitch(w http.ResponseWriter, r *http.Request) {
	var req changePitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	degree, acc, err := score.ParsePitchString(req.Pitch)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Selected pitch not recognized.")
		return
	}

	s.edMu.Lock()
	defer s.edMu.Unlock()

	if _, ok := s.editor.GetNote(req.NoteID); !ok {
		writeDetail(w, http.StatusBadRequest, "unknown note id")
		return
	}

	if err := s.editor.UpdateNote(req.NoteID, score.Patch{Degree: &degree, Accidental: &acc}); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type combineRequest struct {
	NoteIDs []string `json:"note_id_list"`
}

// handleCombine merges two or more equal-duration notes into a single
// longer note at the earliest of their positions. The combined length
// must land on a valid duration (two quarters make a half; three make
// nothing).
func (s *Server) handleCombine(w http.ResponseWriter, r *http.Request) {
	var req combineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	s.edMu.Lock()
	defer s.edMu.Unlock()

	// The same id listed twice must not count as two notes.
	seen := make(map[string]bool, len(req.NoteIDs))
	var notes []score.Note
	for _, id := range req.NoteIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if n, ok := s.editor.GetNote(id); ok {
			notes = append(notes, n)
		}
	}
	if len(notes) < 2 {
		writeDetail(w, http.StatusBadRequest, "Not enough valid note IDs.")
		return
	}

	first := notes[0]
	totalTicks := 0
	for _, n := range notes {
		if n.Duration != first.Duration || n.Degree != first.Degree || n.Accidental != first.Accidental {
			writeDetail(w, http.StatusBadRequest, "notes must share pitch and duration")
			return
		}
		totalTicks += n.Duration.Ticks()
	}

	combined, ok := score.DurationForTicks(totalTicks)
	if !ok {
		writeDetail(w, http.StatusBadRequest, fmt.Sprintf("%d ticks is not a valid duration", totalTicks))
		return
	}

	pos := notes[0].Position
	for _, n := range notes[1:] {
		if n.GlobalTick() < pos.GlobalTick() {
			pos = n.Position
		}
	}

	for _, n := range notes {
		s.editor.RemoveNote(n.ID)
	}
	merged := score.NewNote(pos, first.Degree, combined, first.Accidental)
	if err := s.editor.InsertNote(merged); err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": merged.ID})
}
