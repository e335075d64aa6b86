package score

import "math"

// Tolerance outside the staff's horizontal span before a gesture stops
// snapping to the edge and is ignored instead.
const horizTolerance = 24.0

// Grid converts between screen pixels and musical (measure, tick,
// degree) coordinates. Horizontal snapping clamps within a tolerance
// band; vertical snapping is unbounded, ledger lines cover the extremes.
type Grid struct {
	Left        float64 // x of the first tick
	Right       float64 // x just past the last tick
	BottomLineY float64 // y of the bottom staff line (degree 0)
	HalfGap     float64 // pixels per degree: half a line gap
	Measures    int
}

// TotalTicks is the number of grid positions across all measures.
func (g Grid) TotalTicks() int {
	return g.Measures * TicksPerMeasure
}

// TickWidth is the horizontal pixel size of one tick.
func (g Grid) TickWidth() float64 {
	return (g.Right - g.Left) / float64(g.TotalTicks())
}

// PixelToPosition quantizes a horizontal pixel coordinate to the
// nearest tick. Input beyond the span by more than the tolerance is
// rejected; input within it clamps to the span edge.
func (g Grid) PixelToPosition(x float64) (Position, bool) {
	if x < g.Left-horizTolerance || x > g.Right+horizTolerance {
		return Position{}, false
	}
	x = math.Min(math.Max(x, g.Left), g.Right)

	frac := (x - g.Left) / (g.Right - g.Left)
	global := int(math.Round(frac * float64(g.TotalTicks())))
	if global >= g.TotalTicks() {
		global = g.TotalTicks() - 1
	}
	return PositionAt(global), true
}

// PositionToPixel is the inverse of PixelToPosition up to quantization:
// the x coordinate of the position's tick.
func (g Grid) PositionToPixel(p Position) float64 {
	return g.Left + float64(p.GlobalTick())*g.TickWidth()
}

// PixelToDegree quantizes a vertical pixel coordinate to a staff
// degree. Higher on screen (smaller y) is a higher degree. No bounds:
// any y maps to some degree.
func (g Grid) PixelToDegree(y float64) int {
	return int(math.Round((g.BottomLineY - y) / g.HalfGap))
}

// DegreeToPixel is the algebraic inverse of PixelToDegree.
func (g Grid) DegreeToPixel(degree int) float64 {
	return g.BottomLineY - float64(degree)*g.HalfGap
}
