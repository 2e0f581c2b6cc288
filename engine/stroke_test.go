package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrokeOpenLineProducesClosedOutline(t *testing.T) {
	line := Contour{{X: 0, Y: 0}, {X: 100, Y: 0}}
	style := DefaultStrokeStyle(10)

	shapes, err := Stroke(line, false, style, CounterClockwise, 0)
	require.NoError(t, err)
	require.NotEmpty(t, shapes, "expected the stroked line to produce at least one outline")
}

func TestStrokeClosedRingProducesOutline(t *testing.T) {
	ring := Contour{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}}
	style := DefaultStrokeStyle(10)

	shapes, err := Stroke(ring, true, style, CounterClockwise, 0)
	require.NoError(t, err)
	require.NotEmpty(t, shapes)
}

func TestStrokeMiterJoin(t *testing.T) {
	line := Contour{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 50}}
	style := DefaultStrokeStyle(10)
	style.Join = JoinMiter
	style.MiterLimit = 4

	shapes, err := Stroke(line, false, style, CounterClockwise, 0)
	require.NoError(t, err)
	require.NotEmpty(t, shapes)
}

func TestStrokeInvalidWidthRejected(t *testing.T) {
	line := Contour{{X: 0, Y: 0}, {X: 50, Y: 0}}
	style := DefaultStrokeStyle(0)

	_, err := Stroke(line, false, style, CounterClockwise, 0)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestStrokeTooFewPointsRejected(t *testing.T) {
	line := Contour{{X: 0, Y: 0}}
	style := DefaultStrokeStyle(10)

	_, err := Stroke(line, false, style, CounterClockwise, 0)
	require.Error(t, err)
}

func TestOutlineExpandsShapeOutward(t *testing.T) {
	square := Shape{Contour{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}}}
	style := OutlineStyle{OuterOffset: 10, Join: JoinRound, ArcRatio: 0.25}

	shapes, err := Outline(square, style, CounterClockwise, 0)
	require.NoError(t, err)
	require.NotEmpty(t, shapes)
}

func TestOutlineRejectsZeroOffsets(t *testing.T) {
	square := Shape{Contour{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 0}}}
	style := OutlineStyle{Join: JoinRound, ArcRatio: 0.25}

	_, err := Outline(square, style, CounterClockwise, 0)
	require.ErrorIs(t, err, ErrInvalidOptions)
}
