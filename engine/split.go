package overlay

import "sort"

// splitSegments runs the split solver's sweep: it consumes the raw,
// unsplit segments produced by ingestion and returns a set of segments
// that pairwise only ever meet at shared endpoints, with collinear
// duplicates merged and zero-count edges dropped. This is the first of the
// two independent sweeps the pipeline runs (the second is the fill solver
// in fill.go) — grounded on original_source/src/split/solver.rs's
// SplitSolver::split, adapted from its worklist-of-pending-segments shape
// into a single sorted-queue sweep since Go lacks the Rust version's
// arena-indexed free list.
func splitSegments[C WindingCount[C]](raw []Segment[C]) []Segment[C] {
	debugLogPhase("split")
	pending := mergeCollinearDuplicates(raw)
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].XSegment.A.Less(pending[j].XSegment.A)
	})

	store := newCrossStore[C](len(pending))
	var resolved []Segment[C]
	var verticals []Segment[C]

	for i := 0; i < len(pending); i++ {
		seg := pending[i]
		isVertical := seg.XSegment.isVertical()

		store.removeExpired(seg.XSegment.A.X)

		var candidates []Segment[C]
		if isVertical {
			// Verticals have no X extent, so they can never be placed in
			// the VSegment.Less order the store keeps live segments in,
			// and are never inserted into it. Per spec.md §4.2 they
			// instead query the store directly for whatever already-live
			// segments overlap their Y range at their single X — the
			// "direct range query" tie-break. Because every canonical
			// XSegment has A.X <= B.X, any segment that actually crosses
			// this vertical was already live by the time the ascending-X
			// sweep reaches it.
			yLo, yHi := seg.XSegment.yRange()
			candidates = store.findAllCrossingVertical(seg.XSegment.A.X, yLo, yHi)
		} else {
			candidates = store.findAllCrossing(seg.XSegment)
		}

		splitHappened := false
		for _, other := range candidates {
			result := classifyCross(seg.XSegment, other.XSegment)
			switch result.class {
			case crossDisjoint, crossShareEndpoint:
				continue
			case crossOverlap:
				merged, rest := mergeOverlap(seg, other)
				pending = append(pending, rest...)
				seg = merged
				splitHappened = true
			case crossTransverse:
				seg = splitAt(seg, other, result.point, store, &pending)
				splitHappened = true
			case crossTJunction:
				seg = splitTJunction(seg, other, result, store, &pending)
				splitHappened = true
			}
		}

		if splitHappened {
			sort.Slice(pending[i+1:], func(a, b int) bool {
				return pending[i+1+a].XSegment.A.Less(pending[i+1+b].XSegment.A)
			})
		}

		if seg.Count.IsNeutral() {
			continue
		}
		if isVertical {
			verticals = append(verticals, seg)
			continue
		}
		store.insert(seg)
		resolved = append(resolved, seg)
	}

	resolved = append(resolved, verticals...)
	return mergeCollinearDuplicates(resolved)
}

// mergeCollinearDuplicates sums winding counts of segments sharing the
// same canonical XSegment, dropping any whose merged count is neutral.
func mergeCollinearDuplicates[C WindingCount[C]](in []Segment[C]) []Segment[C] {
	byKey := make(map[XSegment]C, len(in))
	order := make([]XSegment, 0, len(in))
	for _, seg := range in {
		if existing, ok := byKey[seg.XSegment]; ok {
			byKey[seg.XSegment] = existing.Add(seg.Count)
		} else {
			byKey[seg.XSegment] = seg.Count
			order = append(order, seg.XSegment)
		}
	}
	out := make([]Segment[C], 0, len(order))
	for _, key := range order {
		count := byKey[key]
		if count.IsNeutral() {
			continue
		}
		out = append(out, Segment[C]{XSegment: key, Count: count})
	}
	return out
}

// mergeOverlap combines two collinear, overlapping segments into the
// portion they share (summed counts) plus whatever non-shared remainder
// needs to go back on the pending queue. For the common case the solver
// actually exercises — one segment fully containing the other, or the two
// being identical — the shared portion is the shorter of the two and there
// is no remainder; true partial overlaps requeue the non-overlapping tail.
func mergeOverlap[C WindingCount[C]](a, b Segment[C]) (merged Segment[C], rest []Segment[C]) {
	aSeg, bSeg := a.XSegment, b.XSegment
	switch {
	case aSeg == bSeg:
		return Segment[C]{XSegment: aSeg, Count: a.Count.Add(b.Count)}, nil
	case withinSegment(bSeg, aSeg):
		return Segment[C]{XSegment: bSeg, Count: a.Count.Add(b.Count)}, remainderOf(aSeg, bSeg, a.Count)
	case withinSegment(aSeg, bSeg):
		return Segment[C]{XSegment: aSeg, Count: a.Count.Add(b.Count)}, remainderOf(bSeg, aSeg, b.Count)
	default:
		// Partial overlap sharing neither endpoint structure: split both at
		// the shared sub-range's bounds and requeue every piece.
		lo := aSeg.A
		if lo.Less(bSeg.A) {
			lo = bSeg.A
		}
		hi := aSeg.B
		if bSeg.B.Less(hi) {
			hi = bSeg.B
		}
		shared := XSegment{A: lo, B: hi}
		return Segment[C]{XSegment: shared, Count: a.Count.Add(b.Count)},
			append(remainderOf(aSeg, shared, a.Count), remainderOf(bSeg, shared, b.Count)...)
	}
}

// withinSegment reports whether inner's endpoints both lie within outer's span.
func withinSegment(outer, inner XSegment) bool {
	return !inner.A.Less(outer.A) && !outer.B.Less(inner.B)
}

// remainderOf returns the piece(s) of outer not covered by inner, each
// carrying outer's original count, as new pending segments.
func remainderOf[C WindingCount[C]](outer, inner XSegment, count C) []Segment[C] {
	var out []Segment[C]
	if outer.A.Less(inner.A) {
		out = append(out, Segment[C]{XSegment: XSegment{A: outer.A, B: inner.A}, Count: count})
	}
	if inner.B.Less(outer.B) {
		out = append(out, Segment[C]{XSegment: XSegment{A: inner.B, B: outer.B}, Count: count})
	}
	return out
}

// splitAt handles a transverse crossing: both seg and other are cut at
// point, the other's tail is requeued against the store, and seg's own
// tail (after point) is appended to pending so the sweep revisits it.
func splitAt[C WindingCount[C]](seg, other Segment[C], point IntPoint, store crossStore[C], pending *[]Segment[C]) Segment[C] {
	head, tail := cutSegment(seg, point)
	otherHead, otherTail := cutSegment(other, point)
	_ = otherHead // other's head is already live in the store under its old key; only its tail is new work
	if otherTail != nil {
		*pending = append(*pending, *otherTail)
	}
	if tail != nil {
		*pending = append(*pending, *tail)
	}
	return head
}

// splitTJunction handles a crossing where one segment's endpoint lies on
// the other's interior: the interior-endpoint segment is cut in two at the
// shared point, and the endpoint-owning segment passes through unchanged.
func splitTJunction[C WindingCount[C]](seg, other Segment[C], result crossResult, store crossStore[C], pending *[]Segment[C]) Segment[C] {
	if result.onFirst {
		head, tail := cutSegment(seg, result.point)
		if tail != nil {
			*pending = append(*pending, *tail)
		}
		return head
	}
	// The point lies on other's interior: cut other and requeue both halves,
	// leaving seg untouched for this iteration.
	head, tail := cutSegment(other, result.point)
	*pending = append(*pending, head)
	if tail != nil {
		*pending = append(*pending, *tail)
	}
	return seg
}

// cutSegment splits seg at point (which must lie on it) into a head piece
// ending at point and, if point isn't seg's B endpoint, a tail piece
// starting at point. Both pieces carry seg's original count.
func cutSegment[C WindingCount[C]](seg Segment[C], point IntPoint) (head Segment[C], tail *Segment[C]) {
	if point == seg.XSegment.A || point == seg.XSegment.B {
		return seg, nil
	}
	head = Segment[C]{XSegment: XSegment{A: seg.XSegment.A, B: point}, Count: seg.Count}
	t := Segment[C]{XSegment: XSegment{A: point, B: seg.XSegment.B}, Count: seg.Count}
	return head, &t
}
