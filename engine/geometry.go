package overlay

// CrossClass is the outcome of classifying how two XSegments relate, as
// produced by classifyCross. Reference: spec.md §4.2.
type CrossClass uint8

const (
	crossDisjoint      CrossClass = iota // no shared point
	crossShareEndpoint                   // share exactly one endpoint, nothing to split
	crossTransverse                      // proper interior crossing at one point
	crossTJunction                       // one segment's endpoint lies on the other's interior
	crossOverlap                         // the segments are collinear and overlap
)

// crossResult carries the classification plus whatever geometry the split
// solver needs to act on it.
type crossResult struct {
	class CrossClass
	// point is the (possibly snapped) intersection point for crossTransverse
	// and crossTJunction.
	point IntPoint
	// onFirst/onSecond say which segment's *interior* the point lies on,
	// for crossTJunction (exactly one is true); for crossTransverse both hold.
	onFirst, onSecond bool
}

// snapRadiusSquared is the threshold (Euclidean squared distance) within
// which a computed intersection point snaps to an existing lattice
// endpoint. Spec.md §4.2/§9: "snap radius = √2", i.e. squared distance ≤ 2.
const snapRadiusSquared = 2

// isCollinear reports whether p1, p2, p3 are collinear using the exact
// 128-bit cross-product predicate.
func isCollinear(p1, p2, p3 IntPoint) bool {
	return CrossProduct128(p1, p2, p3).IsZero()
}

// isPointOnSegment reports whether point lies on the closed segment [a, b],
// assuming point, a, b are already known (or suspected) to be collinear.
func isPointOnSegment(point, a, b IntPoint) bool {
	if !isCollinear(a, b, point) {
		return false
	}
	return point.X >= min32(a.X, b.X) && point.X <= max32(a.X, b.X) &&
		point.Y >= min32(a.Y, b.Y) && point.Y <= max32(a.Y, b.Y)
}

// classifyCross classifies the relationship between two segments and, for
// crossing cases, computes the (snapped) intersection point. This is the
// pairwise resolution step of the split solver's main loop (spec.md §4.2).
func classifyCross(s1, s2 XSegment) crossResult {
	if s1.A == s2.A && s1.B == s2.B {
		return crossResult{class: crossOverlap, point: s1.A}
	}
	if s1.A == s2.A || s1.A == s2.B || s1.B == s2.A || s1.B == s2.B {
		if isCollinear(s1.A, s1.B, s2.A) && isCollinear(s1.A, s1.B, s2.B) {
			return classifyCollinear(s1, s2)
		}
		return crossResult{class: crossShareEndpoint}
	}

	if isCollinear(s1.A, s1.B, s2.A) && isCollinear(s1.A, s1.B, s2.B) {
		return classifyCollinear(s1, s2)
	}

	d1 := CrossProduct128(s2.A, s2.B, s1.A)
	d2 := CrossProduct128(s2.A, s2.B, s1.B)
	d3 := CrossProduct128(s1.A, s1.B, s2.A)
	d4 := CrossProduct128(s1.A, s1.B, s2.B)

	if !boundingBoxesOverlap(s1, s2) {
		return crossResult{class: crossDisjoint}
	}

	if !d1.IsZero() && !d2.IsZero() && !d3.IsZero() && !d4.IsZero() &&
		(d1.IsNegative() != d2.IsNegative()) && (d3.IsNegative() != d4.IsNegative()) {
		p := intersectionPoint(s1, s2, d1, d2)
		p = snapToNearestEndpoint(p, s1, s2)
		return crossResult{class: crossTransverse, point: p, onFirst: true, onSecond: true}
	}

	switch {
	case d1.IsZero() && isPointOnSegment(s1.A, s2.A, s2.B):
		return crossResult{class: crossTJunction, point: s1.A, onSecond: true}
	case d2.IsZero() && isPointOnSegment(s1.B, s2.A, s2.B):
		return crossResult{class: crossTJunction, point: s1.B, onSecond: true}
	case d3.IsZero() && isPointOnSegment(s2.A, s1.A, s1.B):
		return crossResult{class: crossTJunction, point: s2.A, onFirst: true}
	case d4.IsZero() && isPointOnSegment(s2.B, s1.A, s1.B):
		return crossResult{class: crossTJunction, point: s2.B, onFirst: true}
	}

	return crossResult{class: crossDisjoint}
}

// classifyCollinear handles the case where both segments lie on one line.
func classifyCollinear(s1, s2 XSegment) crossResult {
	if !boundingBoxesOverlap(s1, s2) {
		return crossResult{class: crossDisjoint}
	}
	return crossResult{class: crossOverlap}
}

func boundingBoxesOverlap(s1, s2 XSegment) bool {
	_, _ = s1.yRange()
	lo2, hi2 := s2.yRange()
	if s1.notIntersectingYRange(lo2, hi2) {
		return false
	}
	return s1.A.X <= s2.B.X && s2.A.X <= s1.B.X
}

// intersectionPoint computes the intersection of two transversally-crossing
// segments and rounds it to the nearest lattice point. The cross products
// d1, d2 are exact 128-bit integers; the ratio between them and the
// interpolation along s1 are evaluated in float64.
func intersectionPoint(s1, s2 XSegment, d1, d2 Int128) IntPoint {
	denominator := d1.Sub(d2)
	if denominator.IsZero() {
		return s1.A
	}
	t := d1.ToFloat64() / denominator.ToFloat64()
	x := float64(s1.A.X) + t*float64(int64(s1.B.X)-int64(s1.A.X))
	y := float64(s1.A.Y) + t*float64(int64(s1.B.Y)-int64(s1.A.Y))
	return IntPoint{X: int32(roundHalfAwayFromZero(x)), Y: int32(roundHalfAwayFromZero(y))}
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}

// snapToNearestEndpoint collapses p onto whichever of the four segment
// endpoints is within snapRadiusSquared, if any. This keeps the invariant
// that an intersection coincides with an existing lattice point whenever a
// T-junction was clearly intended (spec.md §4.2, §9).
func snapToNearestEndpoint(p IntPoint, s1, s2 XSegment) IntPoint {
	candidates := [4]IntPoint{s1.A, s1.B, s2.A, s2.B}
	best := p
	bestDist := UInt128{Hi: ^uint64(0), Lo: ^uint64(0)}
	found := false
	for _, c := range candidates {
		d := DistanceSquared128(p, c)
		if d.Hi == 0 && d.Lo <= snapRadiusSquared {
			if !found || d.Cmp(bestDist) < 0 {
				best = c
				bestDist = d
				found = true
			}
		}
	}
	return best
}

// Cmp compares two UInt128 values, -1/0/1.
func (u UInt128) Cmp(other UInt128) int {
	if u.Hi != other.Hi {
		if u.Hi < other.Hi {
			return -1
		}
		return 1
	}
	if u.Lo == other.Lo {
		return 0
	}
	if u.Lo < other.Lo {
		return -1
	}
	return 1
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
