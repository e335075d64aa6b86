package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEndpoints(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Colors[0], p.Lookup(0))
	assert.Equal(t, p.Colors[0], p.Lookup(-1))
	assert.Equal(t, p.Colors[len(p.Colors)-1], p.Lookup(1))
	assert.Equal(t, p.Colors[len(p.Colors)-1], p.Lookup(2))
}

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gpl")
	content := "GIMP Palette\nName: test\nColumns: 3\n#\n  0   0   0 black\n255 255 255 white\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	p, err := LoadGPL(path)
	require.NoError(t, err)
	assert.Equal(t, "test", p.Name)
	require.Len(t, p.Colors, 2)
	assert.Equal(t, RGB{0, 0, 0}, p.Colors[0])
	assert.Equal(t, RGB{255, 255, 255}, p.Colors[1])
}

func TestLoadGPLOrFallsBack(t *testing.T) {
	fallback := DefaultPalette()
	assert.Equal(t, fallback, LoadGPLOr("", fallback))
	assert.Equal(t, fallback, LoadGPLOr("/does/not/exist.gpl", fallback))
}
