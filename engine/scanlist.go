package overlay

// scanList is the flat-vector crossStore backend for small working sets:
// a linear scan that skips candidates whose Y range misses the query, no
// tree overhead.
// Grounded on original_source/src/bind/scan_list.rs.
type scanList[C WindingCount[C]] struct {
	live []Segment[C]
}

func newScanList[C WindingCount[C]](capacityHint int) *scanList[C] {
	return &scanList[C]{live: make([]Segment[C], 0, capacityHint)}
}

func (s *scanList[C]) insert(seg Segment[C]) {
	if seg.XSegment.isVertical() {
		return // verticals are never ordered by VSegment.Less; see findAllCrossingVertical
	}
	s.live = append(s.live, seg)
}

func (s *scanList[C]) findAllCrossing(query XSegment) []Segment[C] {
	loQ, hiQ := query.yRange()
	var out []Segment[C]
	for _, seg := range s.live {
		if seg.XSegment.notIntersectingYRange(loQ, hiQ) {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// findAllCrossingVertical is the direct range query spec.md §4.2 calls for
// when a vertical segment is encountered: verticals have no X extent, so
// they can't be placed in the VSegment.Less order findAllCrossing relies
// on, and are never inserted into the store. Instead, whenever one is
// reached in the sweep, it queries every live segment whose X range spans
// its single X coordinate and whose Y range overlaps its own directly.
func (s *scanList[C]) findAllCrossingVertical(x int32, yLo, yHi int32) []Segment[C] {
	var out []Segment[C]
	for _, seg := range s.live {
		if x < seg.XSegment.A.X || x > seg.XSegment.B.X {
			continue
		}
		if seg.XSegment.notIntersectingYRange(yLo, yHi) {
			continue
		}
		out = append(out, seg)
	}
	return out
}

func (s *scanList[C]) removeExpired(xThreshold int32) {
	kept := s.live[:0]
	for _, seg := range s.live {
		if seg.XSegment.B.X >= xThreshold {
			kept = append(kept, seg)
		}
	}
	s.live = kept
}

func (s *scanList[C]) len() int { return len(s.live) }

// findUnderAndNearest returns the winding count of whichever live segment
// passes directly below p and is closest to it, or the zero count if none
// does. Used by the fill solver (fill.go), grounded on
// original_source/src/fill/solver_list.rs's ScanFillList::find_under_and_nearest.
func (s *scanList[C]) findUnderAndNearest(p IntPoint) C {
	var best *Segment[C]
	var bestV VSegment
	for i := range s.live {
		seg := s.live[i]
		if p.X < seg.XSegment.A.X || p.X > seg.XSegment.B.X {
			continue
		}
		v := seg.XSegment.ToVSegment()
		if !v.isUnderPoint(p) {
			continue
		}
		if best == nil || bestV.Less(v) {
			cp := seg
			best = &cp
			bestV = v
		}
	}
	var zero C
	if best == nil {
		return zero
	}
	return best.Count
}
