package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringSliceSplitsSquareIntoTwoRectangles(t *testing.T) {
	body := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	cut := Contour{{X: 3, Y: 12}, {X: 3, Y: -2}}

	shapes, err := StringSlice(Contours{body}, []Contour{cut}, NonZero, CounterClockwise, 0)
	require.NoError(t, err)
	require.Len(t, shapes, 2, "expected the cut to split the square into two rectangles")
}

func TestStringSliceNoStringsReturnsBodyUnchanged(t *testing.T) {
	body := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

	shapes, err := StringSlice(Contours{body}, nil, NonZero, CounterClockwise, 0)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	require.Len(t, shapes[0].Outer(), 4)
}

func TestStringClipKeepsInteriorPortion(t *testing.T) {
	body := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	line := Contour{{X: -5, Y: 5}, {X: 15, Y: 5}}

	kept, err := StringClip(Contours{body}, []Contour{line}, NonZero, ClipRule{})
	require.NoError(t, err)
	require.NotEmpty(t, kept, "expected the segment of the line crossing the square interior to survive")
}

func TestStringClipInvertKeepsExteriorPortions(t *testing.T) {
	body := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	line := Contour{{X: -5, Y: 5}, {X: 15, Y: 5}}

	kept, err := StringClip(Contours{body}, []Contour{line}, NonZero, ClipRule{Invert: true})
	require.NoError(t, err)
	require.NotEmpty(t, kept, "expected exterior portions of the line to survive when inverted")
}

func TestStringSliceInvalidFillRule(t *testing.T) {
	body := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	_, err := StringSlice(Contours{body}, nil, FillRule(99), CounterClockwise, 0)
	require.ErrorIs(t, err, ErrInvalidFillRule)
}
