package overlay

import "math"

// FloatPoint is the minimal interface a caller's own floating-point point
// type must satisfy to be converted to and from the integer lattice.
// Reference: spec.md §10.
type FloatPoint interface {
	Coordinates() (x, y float64)
}

// XY is a ready-made FloatPoint for callers with no existing point type.
type XY struct{ X, Y float64 }

// Coordinates implements FloatPoint.
func (p XY) Coordinates() (x, y float64) { return p.X, p.Y }

// FloatPointAdapter is a bijection between a caller's float coordinate
// space (bounded by a rectangle fixed at construction) and the engine's
// integer lattice. FloatToInt is monotone along each axis and IntToFloat
// is its left inverse up to one ULP, per spec.md §9's float adapter
// contract. Grounded on original_source/src/float/adapter.rs's
// FloatPointAdapter/AdapterExt, reimplemented directly (the Rust type's
// generic FloatPointCompatible/FloatNumber traits have no equivalent
// ecosystem library in the example pack, so this is hand-rolled against
// the documented contract rather than ported line-by-line).
type FloatPointAdapter struct {
	minX, minY float64
	scaleX     float64 // lattice units per float unit, X axis
	scaleY     float64
	dirScale   float64 // geometric-mean scale, used to rescale computed areas back to float units
}

// NewFloatPointAdapter builds an adapter whose lattice covers [minX,maxX] x
// [minY,maxY] at the full int32 safe coordinate range.
func NewFloatPointAdapter(minX, minY, maxX, maxY float64) (*FloatPointAdapter, error) {
	if !(maxX > minX) || !(maxY > minY) {
		return nil, ErrInvalidOptions
	}
	span := float64(2 * safeCoordinateBound)
	scaleX := span / (maxX - minX)
	scaleY := span / (maxY - minY)
	if scaleX <= 0 || scaleY <= 0 || math.IsInf(scaleX, 0) || math.IsInf(scaleY, 0) {
		return nil, ErrOffsetTooSmall
	}
	return &FloatPointAdapter{
		minX: minX, minY: minY,
		scaleX: scaleX, scaleY: scaleY,
		dirScale: math.Sqrt(scaleX * scaleY),
	}, nil
}

// FloatToInt maps a caller float point onto the integer lattice.
func (a *FloatPointAdapter) FloatToInt(p FloatPoint) IntPoint {
	x, y := p.Coordinates()
	ix := roundHalfAwayFromZero((x - a.minX) * a.scaleX)
	iy := roundHalfAwayFromZero((y - a.minY) * a.scaleY)
	return IntPoint{X: int32(ix) - safeCoordinateBound, Y: int32(iy) - safeCoordinateBound}
}

// IntToFloat maps a lattice point back to the caller's float space. It is
// FloatToInt's left inverse up to one ULP: FloatToInt(IntToFloat(p)) == p
// for every p this adapter produced, but IntToFloat(FloatToInt(x)) may
// differ from x by less than one lattice unit.
func (a *FloatPointAdapter) IntToFloat(p IntPoint) XY {
	x := float64(int64(p.X)+safeCoordinateBound)/a.scaleX + a.minX
	y := float64(int64(p.Y)+safeCoordinateBound)/a.scaleY + a.minY
	return XY{X: x, Y: y}
}

// ContourFromFloat converts a slice of caller float points into a Contour.
func (a *FloatPointAdapter) ContourFromFloat(points []FloatPoint) Contour {
	out := make(Contour, len(points))
	for i, p := range points {
		out[i] = a.FloatToInt(p)
	}
	return out
}

// ContourToFloat converts a Contour back to the caller's float space.
func (a *FloatPointAdapter) ContourToFloat(c Contour) []XY {
	out := make([]XY, len(c))
	for i, p := range c {
		out[i] = a.IntToFloat(p)
	}
	return out
}

// ConvertArea rescales a signed area computed on the integer lattice
// (e.g. via Area128) back into the caller's float coordinate units.
// Grounded on original_source/src/float/adapter.rs's AdapterExt::convert_area.
func (a *FloatPointAdapter) ConvertArea(latticeArea float64) float64 {
	sqrScale := a.dirScale * a.dirScale
	return latticeArea / sqrScale
}
