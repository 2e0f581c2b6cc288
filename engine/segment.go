package overlay

// Segment is the fundamental unit passed between pipeline stages: a
// canonical, direction-free XSegment plus its accompanying winding count.
// Generic over the count type so Boolean overlay, string operations, and
// stroke/outline meshing each monomorphise their own instantiation of the
// split and fill solvers instead of sharing one boxed interface.
type Segment[C WindingCount[C]] struct {
	XSegment XSegment
	Count    C
}

// SegmentFill is the 4-bit fill byte produced by the fill solver: which
// sides (above/below the edge, oriented from A to B) lie inside the
// subject and clip regions. Reference: spec.md §3.
type SegmentFill uint8

const (
	FillNone SegmentFill = 0

	SubjTop    SegmentFill = 1 << 0
	SubjBottom SegmentFill = 1 << 1
	ClipTop    SegmentFill = 1 << 2
	ClipBottom SegmentFill = 1 << 3

	SubjBoth SegmentFill = SubjTop | SubjBottom
	ClipBoth SegmentFill = ClipTop | ClipBottom
	BothTop  SegmentFill = SubjTop | ClipTop
	BothBot  SegmentFill = SubjBottom | ClipBottom
)

// FilledSegment pairs a split segment with the fill byte the fill solver
// assigned it — the input to graph construction (spec.md §3, "Overlay link").
type FilledSegment struct {
	XSegment XSegment
	Fill     SegmentFill
}
