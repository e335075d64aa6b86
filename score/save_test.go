package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempScoresDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old := scoresDir
	scoresDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { scoresDir = old })
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempScoresDir(t)

	opts := testOptions()
	opts.Seed = []Note{
		NewNote(Position{Measure: 0, Tick: 0}, 0, Quarter, NoAccidental),
		NewNote(Position{Measure: 1, Tick: 8}, 3, Eighth, Flat),
	}
	e := NewEditor(opts)
	e.SetTempo(96)

	require.NoError(t, SaveScore("test", e))

	sf, err := LoadScore("test")
	require.NoError(t, err)
	assert.Equal(t, "test", sf.Name)
	assert.Equal(t, 96, sf.TempoBPM)
	assert.Equal(t, 4, sf.Measures)
	require.Len(t, sf.Notes, 2)
	assert.Equal(t, Flat, sf.Notes[1].Accidental)
	assert.Equal(t, Position{Measure: 1, Tick: 8}, sf.Notes[1].Position)
}

func TestSaveRequiresName(t *testing.T) {
	useTempScoresDir(t)
	e := NewEditor(testOptions())
	assert.Error(t, SaveScore("", e))
}

func TestScoreNameStaysInScoresDir(t *testing.T) {
	useTempScoresDir(t)
	e := NewEditor(testOptions())

	for _, name := range []string{"../escape", "a/b", `a\b`, "/abs"} {
		assert.Error(t, SaveScore(name, e), "name %q", name)
		_, err := LoadScore(name)
		assert.Error(t, err, "name %q", name)
	}

	names, err := ListScores()
	require.NoError(t, err)
	assert.Empty(t, names, "nothing escaped onto disk")
}

func TestLoadMissingScore(t *testing.T) {
	useTempScoresDir(t)
	_, err := LoadScore("nope")
	assert.Error(t, err)
}

func TestListScores(t *testing.T) {
	useTempScoresDir(t)

	names, err := ListScores()
	require.NoError(t, err)
	assert.Empty(t, names)

	e := NewEditor(testOptions())
	require.NoError(t, SaveScore("beta", e))
	require.NoError(t, SaveScore("alpha", e))

	names, err = ListScores()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}
