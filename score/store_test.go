package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(measure, tick, degree int) Note {
	return NewNote(Position{Measure: measure, Tick: tick}, degree, Quarter, NoAccidental)
}

func TestInsertKeepsTickOrder(t *testing.T) {
	s := NewStore(4)

	require.NoError(t, s.Insert(note(2, 4, 0)))
	require.NoError(t, s.Insert(note(0, 8, 1)))
	require.NoError(t, s.Insert(note(3, 0, 2)))
	require.NoError(t, s.Insert(note(0, 2, 3)))

	all := s.All()
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].GlobalTick(), all[i].GlobalTick())
	}
	assert.Equal(t, 3, all[0].Degree)
	assert.Equal(t, 2, all[3].Degree)
}

func TestInsertTiesKeepArrivalOrder(t *testing.T) {
	s := NewStore(4)

	first := note(1, 0, 5)
	second := note(1, 0, 7)
	require.NoError(t, s.Insert(first))
	require.NoError(t, s.Insert(second))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestInsertValidation(t *testing.T) {
	s := NewStore(4)

	n := note(0, 0, 0)
	require.NoError(t, s.Insert(n))
	assert.ErrorIs(t, s.Insert(n), ErrDuplicateID)

	bad := note(0, 1, 0)
	bad.Duration = "breve"
	assert.ErrorIs(t, s.Insert(bad), ErrBadDuration)

	bad = note(0, 16, 0)
	assert.ErrorIs(t, s.Insert(bad), ErrTickRange)

	bad = note(4, 0, 0)
	assert.ErrorIs(t, s.Insert(bad), ErrMeasureOut)

	bad = note(0, 2, 0)
	bad.Accidental = "double-sharp"
	assert.ErrorIs(t, s.Insert(bad), ErrBadAccident)

	// Failures leave the collection untouched.
	assert.Equal(t, 1, s.Len())
}

func TestUpdatePatchesFields(t *testing.T) {
	s := NewStore(4)
	n := note(0, 0, 0)
	require.NoError(t, s.Insert(n))

	degree := 2
	dur := Half
	acc := Sharp
	require.NoError(t, s.Update(n.ID, Patch{Degree: &degree, Duration: &dur, Accidental: &acc}))

	got, ok := s.Get(n.ID)
	require.True(t, ok)
	assert.Equal(t, 2, got.Degree)
	assert.Equal(t, Half, got.Duration)
	assert.Equal(t, Sharp, got.Accidental)
	assert.Equal(t, n.Position, got.Position, "unpatched field untouched")
}

func TestUpdateMoveReorders(t *testing.T) {
	s := NewStore(4)
	a := note(0, 0, 0)
	b := note(1, 0, 1)
	require.NoError(t, s.Insert(a))
	require.NoError(t, s.Insert(b))

	pos := Position{Measure: 2, Tick: 0}
	require.NoError(t, s.Update(a.ID, Patch{Position: &pos}))

	all := s.All()
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, a.ID, all[1].ID)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	s := NewStore(4)
	require.NoError(t, s.Insert(note(0, 0, 0)))

	degree := 9
	assert.NoError(t, s.Update("nope", Patch{Degree: &degree}))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.All()[0].Degree)
}

func TestUpdateValidationRejected(t *testing.T) {
	s := NewStore(4)
	n := note(0, 0, 0)
	require.NoError(t, s.Insert(n))

	pos := Position{Measure: 9, Tick: 0}
	assert.ErrorIs(t, s.Update(n.ID, Patch{Position: &pos}), ErrMeasureOut)

	got, _ := s.Get(n.ID)
	assert.Equal(t, n.Position, got.Position)
}

func TestRemoveIdempotent(t *testing.T) {
	s := NewStore(4)
	a := note(0, 0, 0)
	b := note(1, 0, 1)
	require.NoError(t, s.Insert(a))
	require.NoError(t, s.Insert(b))

	s.Remove(a.ID)
	assert.Equal(t, 1, s.Len())

	s.Remove(a.ID) // second remove is a no-op
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(b.ID)
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	s := NewStore(4)
	require.NoError(t, s.Insert(note(0, 0, 0)))
	require.NoError(t, s.Insert(note(1, 0, 1)))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewStore(4)
	require.NoError(t, s.Insert(note(0, 0, 0)))

	snap := s.All()
	require.NoError(t, s.Insert(note(1, 0, 1)))
	s.Remove(snap[0].ID)

	// The earlier snapshot never changes under later mutation.
	assert.Len(t, snap, 1)
	assert.Equal(t, 0, snap[0].Degree)

	// And writing into a snapshot never reaches the store.
	snap2 := s.All()
	snap2[0].Degree = 99
	assert.NotEqual(t, 99, s.All()[0].Degree)
}
