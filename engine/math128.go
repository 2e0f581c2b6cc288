package overlay

import "math/bits"

// Int128 is a signed 128-bit integer held as two 64-bit two's-complement
// words (Hi sign-extended). Every geometric predicate in this package
// that could overflow int64 at the lattice's ±2^30 extremes routes
// through it instead of float64, so orientation and area never round.
type Int128 struct {
	Hi int64
	Lo uint64
}

// UInt128 is the unsigned counterpart, the natural result of squaring a
// 64-bit difference in DistanceSquared128.
type UInt128 struct {
	Hi uint64
	Lo uint64
}

// NewInt128 sign-extends a 64-bit integer into 128 bits.
func NewInt128(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(v)}
}

// NewUInt128 zero-extends a 64-bit unsigned integer into 128 bits.
func NewUInt128(v uint64) UInt128 {
	return UInt128{Lo: v}
}

func (i Int128) IsZero() bool     { return i.Hi == 0 && i.Lo == 0 }
func (i Int128) IsNegative() bool { return i.Hi < 0 }

// Negate computes 0 - i via the same borrow chain Sub uses, rather than
// the usual invert-and-increment trick; MinInt128 negates to itself,
// which is the correct two's-complement wraparound.
func (i Int128) Negate() Int128 {
	lo, borrow := bits.Sub64(0, i.Lo, 0)
	hi, _ := bits.Sub64(0, uint64(i.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Abs returns the non-negative magnitude of i (MinInt128 excepted, which
// has no positive counterpart and returns itself).
func (i Int128) Abs() Int128 {
	if i.IsNegative() {
		return i.Negate()
	}
	return i
}

func (i Int128) Add(other Int128) Int128 {
	lo, carry := bits.Add64(i.Lo, other.Lo, 0)
	hi, _ := bits.Add64(uint64(i.Hi), uint64(other.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

func (i Int128) Sub(other Int128) Int128 {
	return i.Add(other.Negate())
}

// Cmp returns -1, 0, or 1 as i is less than, equal to, or greater than other.
func (i Int128) Cmp(other Int128) int {
	d := i.Sub(other)
	switch {
	case d.IsZero():
		return 0
	case d.IsNegative():
		return -1
	default:
		return 1
	}
}

// fitsInInt64 reports whether i's value is representable as a plain int64,
// letting ToFloat64 skip the wider (and less precise) expansion below.
func fitsInInt64(i Int128) bool {
	return (i.Hi == 0 && i.Lo>>63 == 0) || (i.Hi == -1 && i.Lo>>63 == 1)
}

// ToFloat64 converts i to the nearest representable float64.
func (i Int128) ToFloat64() float64 {
	if fitsInInt64(i) {
		return float64(int64(i.Lo))
	}
	const twoPow64 = 18446744073709551616.0
	return float64(i.Hi)*twoPow64 + float64(i.Lo)
}

// Mul multiplies two Int128 values and keeps the low 128 bits of the
// product, the same wraparound convention int64*int64 uses at 64 bits. A
// two's-complement bit pattern read as unsigned already equals its value
// mod 2^128, so the truncated product falls out of plain unsigned partial
// products — no sign juggling or minimum-value special case needed.
func (i Int128) Mul(other Int128) Int128 {
	hi, lo := bits.Mul64(i.Lo, other.Lo)
	cross := uint64(i.Hi)*other.Lo + i.Lo*uint64(other.Hi)
	return Int128{Hi: int64(hi + cross), Lo: lo}
}

// Mul64 multiplies i by a 64-bit integer.
func (i Int128) Mul64(val int64) Int128 {
	return i.Mul(NewInt128(val))
}

// widen promotes a lattice point's int32 fields to int64 so the vector
// subtraction in CrossProduct128/DistanceSquared128 can't overflow even
// at coordinates near the documented ±2^30 safe bound.
func widen(p IntPoint) (x, y int64) {
	return int64(p.X), int64(p.Y)
}

// CrossProduct128 is the exact orientation predicate behind isClockwise,
// VSegment ordering and the fill solver's event sort: its sign says
// whether p1, p2, p3 turn clockwise, counterclockwise, or are collinear.
func CrossProduct128(p1, p2, p3 IntPoint) Int128 {
	x1, y1 := widen(p1)
	x2, y2 := widen(p2)
	x3, y3 := widen(p3)
	ax, ay := x2-x1, y2-y1
	bx, by := x3-x1, y3-y1
	return NewInt128(ax).Mul64(by).Sub(NewInt128(ay).Mul64(bx))
}

// Area128 returns twice the signed area of path (positive for
// counterclockwise winding, the convention traverse.go's
// isCounterClockwise checks via IsNegative/IsZero). It sums fan triangles
// from path[0] rather than the usual wraparound pair sum; the two are
// algebraically identical since both endpoints of the path[0] terms
// cancel, but this form never needs a modulo index.
func Area128(path Contour) Int128 {
	if len(path) < 3 {
		return Int128{}
	}
	x0, y0 := widen(path[0])
	var sum Int128
	for i := 1; i+1 < len(path); i++ {
		x1, y1 := widen(path[i])
		x2, y2 := widen(path[i+1])
		sum = sum.Add(NewInt128(x1 - x0).Mul64(y2 - y0).Sub(NewInt128(y1 - y0).Mul64(x2 - x0)))
	}
	return sum
}

// DistanceSquared128 returns the squared distance between p1 and p2,
// exact even when the difference would overflow int64 after squaring.
func DistanceSquared128(p1, p2 IntPoint) UInt128 {
	x1, y1 := widen(p1)
	x2, y2 := widen(p2)
	dx := NewInt128(x2 - x1).Abs()
	dy := NewInt128(y2 - y1).Abs()
	sq := NewInt128(int64(dx.Lo)).Mul64(int64(dx.Lo)).Add(NewInt128(int64(dy.Lo)).Mul64(int64(dy.Lo)))
	return UInt128{Hi: uint64(sq.Hi), Lo: sq.Lo}
}
