package overlay

import "github.com/google/btree"

// treeItem is the payload stored in the tree crossStore backend, ordered
// by its VSegment's "lower at the sweep line" relation.
type treeItem[C WindingCount[C]] struct {
	seg Segment[C]
}

// scanTree is the order-statistic crossStore backend for large working
// sets. It is grounded on two sources: original_source/src/bind/scan_tree.rs
// for the interface shape, and mikenye-geom2d/linesegment/
// sweepline_statusstructure.go for the Go idiom of building an ordered
// sweep status structure on top of github.com/google/btree.
//
// Every query walks the whole tree with the same per-candidate Y-range
// test the list backend uses, so both backends return the same candidates
// and the choice between them changes cost only, never the result.
type scanTree[C WindingCount[C]] struct {
	tree *btree.BTreeG[treeItem[C]]
}

func newScanTree[C WindingCount[C]](_ int) *scanTree[C] {
	less := func(a, b treeItem[C]) bool {
		return a.seg.XSegment.ToVSegment().Less(b.seg.XSegment.ToVSegment())
	}
	return &scanTree[C]{tree: btree.NewG[treeItem[C]](32, less)}
}

func (s *scanTree[C]) insert(seg Segment[C]) {
	if seg.XSegment.isVertical() {
		return // verticals are never ordered by VSegment.Less; see findAllCrossingVertical
	}
	s.tree.ReplaceOrInsert(treeItem[C]{seg: seg})
}

func (s *scanTree[C]) findAllCrossing(query XSegment) []Segment[C] {
	loQ, hiQ := query.yRange()
	var out []Segment[C]
	s.tree.Ascend(func(item treeItem[C]) bool {
		if !item.seg.XSegment.notIntersectingYRange(loQ, hiQ) {
			out = append(out, item.seg)
		}
		return true
	})
	return out
}

// findAllCrossingVertical mirrors scanList's direct range query for the
// tree backend. The tree's order is by VSegment.Less, which a vertical
// can't participate in, so there's no range to exploit here either — a
// full walk with a per-candidate bounding-box test, same as
// findUnderAndNearest below.
func (s *scanTree[C]) findAllCrossingVertical(x int32, yLo, yHi int32) []Segment[C] {
	var out []Segment[C]
	s.tree.Ascend(func(item treeItem[C]) bool {
		seg := item.seg
		if x >= seg.XSegment.A.X && x <= seg.XSegment.B.X && !seg.XSegment.notIntersectingYRange(yLo, yHi) {
			out = append(out, seg)
		}
		return true
	})
	return out
}

func (s *scanTree[C]) removeExpired(xThreshold int32) {
	var expired []treeItem[C]
	s.tree.Ascend(func(item treeItem[C]) bool {
		if item.seg.XSegment.B.X < xThreshold {
			expired = append(expired, item)
		}
		return true
	})
	for _, item := range expired {
		s.tree.Delete(item)
	}
}

func (s *scanTree[C]) len() int { return s.tree.Len() }

// findUnderAndNearest mirrors scanList.findUnderAndNearest for the tree
// backend. It walks the tree in order rather than exploiting a range query
// because "nearest below an arbitrary point" needs the same per-candidate
// isUnderPoint test the list backend uses. Grounded on
// original_source/src/fill/solver_tree.rs's ScanFillTree::find_under_and_nearest.
func (s *scanTree[C]) findUnderAndNearest(p IntPoint) C {
	var best *Segment[C]
	var bestV VSegment
	s.tree.Ascend(func(item treeItem[C]) bool {
		seg := item.seg
		if p.X < seg.XSegment.A.X || p.X > seg.XSegment.B.X {
			return true
		}
		v := seg.XSegment.ToVSegment()
		if !v.isUnderPoint(p) {
			return true
		}
		if best == nil || bestV.Less(v) {
			cp := seg
			best = &cp
			bestV = v
		}
		return true
	})
	var zero C
	if best == nil {
		return zero
	}
	return best.Count
}
