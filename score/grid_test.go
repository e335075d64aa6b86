package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid() Grid {
	return Grid{
		Left:        0,
		Right:       64,
		BottomLineY: 16,
		HalfGap:     1,
		Measures:    4,
	}
}

func TestGridDimensions(t *testing.T) {
	g := testGrid()
	assert.Equal(t, 64, g.TotalTicks())
	assert.InDelta(t, 1.0, g.TickWidth(), 1e-9)
}

func TestPixelToPositionQuantizes(t *testing.T) {
	g := testGrid()

	pos, ok := g.PixelToPosition(0)
	require.True(t, ok)
	assert.Equal(t, Position{Measure: 0, Tick: 0}, pos)

	pos, ok = g.PixelToPosition(17.4)
	require.True(t, ok)
	assert.Equal(t, Position{Measure: 1, Tick: 1}, pos)

	// Rounds to the nearest tick.
	pos, ok = g.PixelToPosition(17.6)
	require.True(t, ok)
	assert.Equal(t, Position{Measure: 1, Tick: 2}, pos)

	// The right edge clamps onto the final tick.
	pos, ok = g.PixelToPosition(64)
	require.True(t, ok)
	assert.Equal(t, Position{Measure: 3, Tick: 15}, pos)
}

func TestPixelToPositionToleranceBand(t *testing.T) {
	g := testGrid()

	// Just inside the tolerance clamps to the edge.
	pos, ok := g.PixelToPosition(g.Left - horizTolerance)
	require.True(t, ok)
	assert.Equal(t, Position{}, pos)

	pos, ok = g.PixelToPosition(g.Right + horizTolerance)
	require.True(t, ok)
	assert.Equal(t, Position{Measure: 3, Tick: 15}, pos)

	// Beyond it the gesture is rejected.
	_, ok = g.PixelToPosition(g.Left - horizTolerance - 1)
	assert.False(t, ok)
	_, ok = g.PixelToPosition(g.Right + horizTolerance + 1)
	assert.False(t, ok)
}

func TestPixelRoundTripBoundedError(t *testing.T) {
	g := testGrid()
	for x := g.Left; x <= g.Right; x += 0.25 {
		pos, ok := g.PixelToPosition(x)
		require.True(t, ok, "x=%f", x)
		back := g.PositionToPixel(pos)
		assert.LessOrEqual(t, math.Abs(back-x), g.TickWidth()+1e-9, "x=%f", x)
	}
}

func TestDegreeMonotonic(t *testing.T) {
	g := testGrid()
	for d := -20; d < 20; d++ {
		assert.Greater(t, g.DegreeToPixel(d), g.DegreeToPixel(d+1), "degree %d", d)
	}
}

func TestPixelToDegreeUnbounded(t *testing.T) {
	g := testGrid()

	assert.Equal(t, 0, g.PixelToDegree(g.BottomLineY))
	assert.Equal(t, 1, g.PixelToDegree(g.BottomLineY-g.HalfGap))
	assert.Equal(t, -3, g.PixelToDegree(g.BottomLineY+3*g.HalfGap))

	// Way above and below the staff still map somewhere.
	assert.Equal(t, 100, g.PixelToDegree(g.BottomLineY-100*g.HalfGap))
	assert.Equal(t, -100, g.PixelToDegree(g.BottomLineY+100*g.HalfGap))
}

func TestDegreePixelRoundTrip(t *testing.T) {
	g := testGrid()
	for d := -30; d <= 30; d++ {
		assert.Equal(t, d, g.PixelToDegree(g.DegreeToPixel(d)), "degree %d", d)
	}
}

func TestPositionNormalization(t *testing.T) {
	assert.Equal(t, 19, Position{Measure: 1, Tick: 3}.GlobalTick())
	assert.Equal(t, Position{Measure: 1, Tick: 3}, PositionAt(19))
	assert.Equal(t, Position{Measure: 0, Tick: 0}, PositionAt(0))

	// Floor semantics keep the in-measure tick non-negative.
	assert.Equal(t, Position{Measure: -1, Tick: 15}, PositionAt(-1))
}
