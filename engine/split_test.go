package overlay

import "testing"

func TestSplitSegmentsResolvesTransverseCrossing(t *testing.T) {
	raw := []Segment[BoolCount]{
		{XSegment: XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 10}}, Count: BoolCount{Subj: 1}},
		{XSegment: XSegment{A: IntPoint{X: 0, Y: 10}, B: IntPoint{X: 10, Y: 0}}, Count: BoolCount{Clip: 1}},
	}

	result := splitSegments(raw)

	seen := map[IntPoint]bool{}
	for _, seg := range result {
		seen[seg.XSegment.A] = true
		seen[seg.XSegment.B] = true
	}
	if !seen[(IntPoint{X: 5, Y: 5})] {
		t.Fatalf("expected split at (5,5), got segments %+v", result)
	}
	if len(result) != 4 {
		t.Fatalf("expected 4 resolved pieces after split, got %d: %+v", len(result), result)
	}
}

func TestSplitSegmentsMergesCollinearDuplicates(t *testing.T) {
	seg := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}
	raw := []Segment[BoolCount]{
		{XSegment: seg, Count: BoolCount{Subj: 1}},
		{XSegment: seg, Count: BoolCount{Subj: 1}},
	}

	result := splitSegments(raw)
	if len(result) != 1 {
		t.Fatalf("expected duplicate collinear segments to merge into one, got %d", len(result))
	}
	if result[0].Count.Subj != 2 {
		t.Fatalf("expected merged count Subj=2, got %d", result[0].Count.Subj)
	}
}

func TestSplitSegmentsDropsNeutralCounts(t *testing.T) {
	seg := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}
	raw := []Segment[BoolCount]{
		{XSegment: seg, Count: BoolCount{Subj: 1}},
		{XSegment: seg, Count: BoolCount{Subj: -1}},
	}

	result := splitSegments(raw)
	if len(result) != 0 {
		t.Fatalf("expected neutral merged segment to be dropped, got %+v", result)
	}
}

func TestSplitSegmentsLeavesDisjointSegmentsAlone(t *testing.T) {
	raw := []Segment[BoolCount]{
		{XSegment: XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}, Count: BoolCount{Subj: 1}},
		{XSegment: XSegment{A: IntPoint{X: 0, Y: 100}, B: IntPoint{X: 10, Y: 100}}, Count: BoolCount{Clip: 1}},
	}

	result := splitSegments(raw)
	if len(result) != 2 {
		t.Fatalf("expected disjoint segments to pass through unchanged, got %d", len(result))
	}
}
