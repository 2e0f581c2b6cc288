package overlay

import "sort"

// fillSegments runs the fill solver: the second of the pipeline's two
// independent sweeps (the first is splitSegments). It assumes segs is
// already split (pairwise non-crossing except at shared endpoints) and
// sorted by XSegment.A, and assigns each segment the SegmentFill byte that
// records which side of it (top/bottom, subject/clip) lies inside the
// filled region. Grounded on original_source/src/fill/solver.rs's
// FillSolver::solve.
func fillSegments(segs []Segment[BoolCount], rule FillRule) ([]FilledSegment, error) {
	debugLogPhase("fill")
	strategy, err := strategyFor(rule)
	if err != nil {
		return nil, err
	}

	sort.Slice(segs, func(i, j int) bool {
		return segs[i].XSegment.A.Less(segs[j].XSegment.A)
	})

	store := newCrossStore[BoolCount](len(segs))
	out := make([]FilledSegment, len(segs))

	type end struct {
		index int
		point IntPoint
	}
	var buf []end

	n := len(segs)
	i := 0
	for i < n {
		p := segs[i].XSegment.A
		buf = buf[:0]
		buf = append(buf, end{index: i, point: segs[i].XSegment.B})
		i++
		for i < n && segs[i].XSegment.A == p {
			buf = append(buf, end{index: i, point: segs[i].XSegment.B})
			i++
		}

		if len(buf) > 1 {
			sort.Slice(buf, func(a, b int) bool {
				return clockwiseSign(p, buf[b].point, buf[a].point) < 0
			})
		}

		sum := store.findUnderAndNearest(p)
		for _, e := range buf {
			seg := segs[e.index]
			var fill SegmentFill
			sum, fill = strategy(seg.Count, sum)
			out[e.index] = FilledSegment{XSegment: seg.XSegment, Fill: fill}
			if !seg.XSegment.isVertical() {
				store.insert(Segment[BoolCount]{XSegment: seg.XSegment, Count: sum})
			}
		}
	}

	return out, nil
}

// fillStringSegments is fillSegments' counterpart for string slice/clip
// operations, using StringCount and the clip-presence strategy family.
func fillStringSegments(segs []Segment[StringCount], rule FillRule) ([]FilledSegment, error) {
	strategy, err := stringStrategyFor(rule)
	if err != nil {
		return nil, err
	}

	sort.Slice(segs, func(i, j int) bool {
		return segs[i].XSegment.A.Less(segs[j].XSegment.A)
	})

	store := newCrossStore[StringCount](len(segs))
	out := make([]FilledSegment, len(segs))

	type end struct {
		index int
		point IntPoint
	}
	var buf []end

	n := len(segs)
	i := 0
	for i < n {
		p := segs[i].XSegment.A
		buf = buf[:0]
		buf = append(buf, end{index: i, point: segs[i].XSegment.B})
		i++
		for i < n && segs[i].XSegment.A == p {
			buf = append(buf, end{index: i, point: segs[i].XSegment.B})
			i++
		}

		if len(buf) > 1 {
			sort.Slice(buf, func(a, b int) bool {
				return clockwiseSign(p, buf[b].point, buf[a].point) < 0
			})
		}

		sum := store.findUnderAndNearest(p)
		for _, e := range buf {
			seg := segs[e.index]
			var fill SegmentFill
			sum, fill = strategy(seg.Count, sum)
			out[e.index] = FilledSegment{XSegment: seg.XSegment, Fill: fill}
			if !seg.XSegment.isVertical() {
				store.insert(Segment[StringCount]{XSegment: seg.XSegment, Count: sum})
			}
		}
	}

	return out, nil
}
