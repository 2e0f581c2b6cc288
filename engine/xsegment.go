package overlay

import "sort"

// XSegment is the canonical, direction-free form of a segment: the
// invariant A.Less(B) always holds (or A == B for a degenerate point,
// which ingestion never produces). It never stores which endpoint the
// original directed edge started at; that information lives in the
// accompanying WindingCount's sign.
type XSegment struct {
	A, B IntPoint
}

// NewXSegment orders p and q into canonical form, reporting whether the
// endpoints had to be swapped (callers use this to flip a winding
// contribution's sign on swap, per spec.md §4.1).
func NewXSegment(p, q IntPoint) (seg XSegment, swapped bool) {
	if p.Less(q) {
		return XSegment{A: p, B: q}, false
	}
	return XSegment{A: q, B: p}, true
}

// yRange returns the inclusive [min, max] of the segment's Y extent.
func (s XSegment) yRange() (lo, hi int32) {
	if s.A.Y < s.B.Y {
		return s.A.Y, s.B.Y
	}
	return s.B.Y, s.A.Y
}

// isVertical reports whether the segment has no X extent.
func (s XSegment) isVertical() bool {
	return s.A.X == s.B.X
}

// notIntersectingYRange reports whether s's Y extent is disjoint from [lo, hi].
func (s XSegment) notIntersectingYRange(lo, hi int32) bool {
	sLo, sHi := s.yRange()
	return lo > sHi || hi < sLo
}

// isUnderSegment reports whether s passes strictly below other at the X
// coordinate where they overlap, using the exact orientation predicate
// rather than any rounded slope comparison. Grounded on
// original_source/src/geom/x_segment.rs's is_under_segment.
func (s XSegment) isUnderSegment(other XSegment) bool {
	switch s.A.Compare(other.A) {
	case -1:
		return isClockwise(s.A, other.A, s.B)
	case 0:
		return isClockwise(s.A, other.B, s.B)
	default:
		return isClockwise(other.A, other.B, s.A)
	}
}

// cmpByAngle orders segments sharing endpoint A counterclockwise around A.
// The fill solver's event-point sort uses clockwiseSign instead, and the
// graph build does not sort incident links.
func cmpByAngle(s, other XSegment) int {
	v0 := s.B.Subtract(s.A)
	v1 := other.B.Subtract(other.A)
	cross := v0.CrossProduct(v1)
	switch {
	case cross > 0:
		return -1
	case cross < 0:
		return 1
	default:
		return 0
	}
}

// sortByAngle sorts segments that share endpoint A into counterclockwise order.
func sortByAngle(segs []XSegment) {
	sort.Slice(segs, func(i, j int) bool {
		return cmpByAngle(segs[i], segs[j]) < 0
	})
}

// isClockwise reports whether p0, p1, p2 form a clockwise turn, using the
// exact 128-bit cross-product predicate.
func isClockwise(p0, p1, p2 IntPoint) bool {
	return CrossProduct128(p0, p1, p2).IsNegative()
}

// clockwiseSign returns -1, 0, or 1 for the orientation of p0, p1, p2
// (negative area means clockwise), the shared primitive behind VSegment
// ordering and the fill solver's event-point sort (isClockwise, used by
// XSegment ordering, reads CrossProduct128 directly) — see SPEC_FULL.md's
// supplemented-features note.
func clockwiseSign(p0, p1, p2 IntPoint) int {
	area := CrossProduct128(p0, p1, p2)
	switch {
	case area.IsZero():
		return 0
	case area.IsNegative():
		return -1
	default:
		return 1
	}
}
