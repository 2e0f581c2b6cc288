package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatPointAdapterRoundTrip(t *testing.T) {
	a, err := NewFloatPointAdapter(0, 0, 100, 100)
	require.NoError(t, err)

	p := XY{X: 42.5, Y: 17.25}
	lattice := a.FloatToInt(p)
	back := a.IntToFloat(lattice)

	require.InDelta(t, p.X, back.X, 1e-6)
	require.InDelta(t, p.Y, back.Y, 1e-6)
}

func TestFloatPointAdapterMonotone(t *testing.T) {
	a, err := NewFloatPointAdapter(0, 0, 100, 100)
	require.NoError(t, err)

	p1 := a.FloatToInt(XY{X: 1, Y: 1})
	p2 := a.FloatToInt(XY{X: 2, Y: 1})
	require.Less(t, p1.X, p2.X, "FloatToInt must be monotone along X")
}

func TestFloatPointAdapterContourRoundTrip(t *testing.T) {
	a, err := NewFloatPointAdapter(-10, -10, 10, 10)
	require.NoError(t, err)

	points := []FloatPoint{XY{X: 0, Y: 0}, XY{X: 5, Y: 5}, XY{X: -5, Y: 5}}
	contour := a.ContourFromFloat(points)
	require.Len(t, contour, 3)

	back := a.ContourToFloat(contour)
	require.Len(t, back, 3)
	for i, p := range points {
		x, y := p.Coordinates()
		require.InDelta(t, x, back[i].X, 1e-3)
		require.InDelta(t, y, back[i].Y, 1e-3)
	}
}

func TestFloatPointAdapterRejectsDegenerateBounds(t *testing.T) {
	_, err := NewFloatPointAdapter(10, 10, 10, 10)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestFloatPointAdapterConvertArea(t *testing.T) {
	a, err := NewFloatPointAdapter(0, 0, 100, 100)
	require.NoError(t, err)

	// A square of lattice side L has lattice area L*L; converting back
	// should recover roughly the same square in float units given a
	// uniform scale between the two axes.
	square := Contour{{X: -1000, Y: -1000}, {X: -1000, Y: 1000}, {X: 1000, Y: 1000}, {X: 1000, Y: -1000}}
	area128 := Area128(square)
	latticeArea := math.Abs(area128.ToFloat64())
	converted := a.ConvertArea(latticeArea)
	require.Greater(t, converted, 0.0)
}
