package overlay

// VSegment is the same two endpoints as an XSegment, but compared under
// "which is geometrically lower at the current sweep position" rather than
// lexicographically. It converts to/from XSegment without copying data —
// the two types share a representation; only their Ord/Less behaviour
// differs. Grounded on original_source/src/geom/v_segment.rs.
type VSegment struct {
	A, B IntPoint
}

// ToVSegment reinterprets an XSegment as a VSegment for insertion into a
// scan-store ordered by "lower at the sweep line".
func (s XSegment) ToVSegment() VSegment {
	return VSegment{A: s.A, B: s.B}
}

// ToXSegment reinterprets a VSegment back to its canonical XSegment form.
func (s VSegment) ToXSegment() XSegment {
	return XSegment{A: s.A, B: s.B}
}

// Less reports whether s is strictly below other at whichever endpoint's X
// is greater of the two A's — the scan-line "is this segment lower" order.
func (s VSegment) Less(other VSegment) bool {
	switch s.A.Compare(other.A) {
	case -1:
		return clockwiseSign(s.A, other.A, s.B) < 0
	case 0:
		return clockwiseSign(s.A, other.B, s.B) < 0
	default:
		return clockwiseSign(other.A, other.B, s.A) < 0
	}
}

// isUnderPoint reports whether s passes below point p, where p.X lies
// strictly between s.A.X and s.B.X and p is not one of s's endpoints.
func (s VSegment) isUnderPoint(p IntPoint) bool {
	return clockwiseSign(s.A, p, s.B) < 0
}

// expiration returns the X coordinate at which s leaves the sweep window
// (its B.X).
func (s VSegment) expiration() int32 {
	return s.B.X
}
