package overlay

// crossStore is the live-segment structure the split solver's sweep
// queries for candidate neighbours of the segment currently being
// processed. Two implementations exist — scanList (linear, for small
// working sets) and scanTree (order-statistic, for large ones) — chosen
// by segment count in newCrossStore. Both satisfy the same interface; the
// backend only changes asymptotic cost, never the result (spec.md §4.2).
type crossStore[C WindingCount[C]] interface {
	insert(seg Segment[C])
	findAllCrossing(query XSegment) []Segment[C]
	findAllCrossingVertical(x int32, yLo, yHi int32) []Segment[C]
	findUnderAndNearest(p IntPoint) C
	removeExpired(xThreshold int32)
	len() int
}

// treeBackendThreshold is the live-segment-count crossover point below
// which the linear-scan backend is used and above which the tree backend
// takes over, matching spec.md §4.2's "chosen by segment count".
const treeBackendThreshold = 64

// newCrossStore picks a crossStore backend sized for an expected working
// set of n live segments.
func newCrossStore[C WindingCount[C]](n int) crossStore[C] {
	if n < treeBackendThreshold {
		return newScanList[C](n)
	}
	return newScanTree[C](n)
}
