package overlay

import "sort"

// assignHoles partitions extracted contours into shells (outer
// boundaries) and holes, then assigns each hole to the shell that
// contains it by testing, for each hole, which shell edge is the nearest
// one lying directly below one of its points. Reference: spec.md §4.6,
// grounded on original_source/src/hole/solver.rs's HoleSolver.
//
// Orientation alone distinguishes shells from holes here: traverse.go's
// extractShapes classifies each walked contour by the sign of its raw,
// not yet normalized area and passes that split in directly as
// shells/holes; it normalizes winding only after this function returns.
func assignHoles(shells, holes []Contour) []Shape {
	shapes := make([]Shape, len(shells))
	for i, shell := range shells {
		shapes[i] = Shape{shell}
	}
	if len(holes) == 0 {
		return shapes
	}

	type idPoint struct {
		holeIndex int
		point     IntPoint
	}
	points := make([]idPoint, len(holes))
	for i, hole := range holes {
		points[i] = idPoint{holeIndex: i, point: leftmostPoint(hole)}
	}
	sort.Slice(points, func(a, b int) bool { return points[a].point.Less(points[b].point) })

	var segments []shellSegment
	for i, shell := range shells {
		n := len(shell)
		for k := 0; k < n; k++ {
			p, q := shell[k], shell[(k+1)%n]
			if p == q {
				continue
			}
			seg, _ := NewXSegment(p, q)
			if seg.isVertical() {
				continue
			}
			segments = append(segments, shellSegment{shellIndex: i, seg: seg})
		}
	}
	sort.Slice(segments, func(a, b int) bool { return segments[a].seg.A.Less(segments[b].seg.A) })

	var live []shellSegment
	j := 0
	for _, ip := range points {
		x := ip.point.X
		for j < len(segments) && segments[j].seg.A.X <= x {
			if segments[j].seg.B.X > x {
				live = append(live, segments[j])
			}
			j++
		}

		kept := live[:0]
		for _, seg := range live {
			if seg.seg.B.X > x {
				kept = append(kept, seg)
			}
		}
		live = kept

		shellIndex, found := nearestUnder(live, ip.point)
		if !found {
			continue // malformed input: hole with no enclosing shell, dropped
		}
		shapes[shellIndex] = append(shapes[shellIndex], holes[ip.holeIndex])
	}

	return shapes
}

// shellSegment pairs a shell edge with the index of the shell it belongs to.
type shellSegment struct {
	shellIndex int
	seg        XSegment
}

func nearestUnder(live []shellSegment, p IntPoint) (int, bool) {
	best := -1
	var bestV VSegment
	found := false
	for _, s := range live {
		if p.X < s.seg.A.X || p.X > s.seg.B.X {
			continue
		}
		v := s.seg.ToVSegment()
		if !v.isUnderPoint(p) {
			continue
		}
		if !found || bestV.Less(v) {
			best = s.shellIndex
			bestV = v
			found = true
		}
	}
	return best, found
}

// leftmostPoint returns the contour's lexicographically smallest point, a
// stable representative for the hole-assignment sweep.
func leftmostPoint(c Contour) IntPoint {
	best := c[0]
	for _, p := range c[1:] {
		if p.Less(best) {
			best = p
		}
	}
	return best
}
