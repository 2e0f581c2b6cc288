package overlay

import "testing"

func TestBuildGraphSimpleSquare(t *testing.T) {
	segs := []FilledSegment{
		{XSegment: XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 0, Y: 10}}, Fill: SubjTop},
		{XSegment: XSegment{A: IntPoint{X: 0, Y: 10}, B: IntPoint{X: 10, Y: 10}}, Fill: SubjTop},
		{XSegment: XSegment{A: IntPoint{X: 10, Y: 0}, B: IntPoint{X: 10, Y: 10}}, Fill: SubjTop},
		{XSegment: XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}, Fill: SubjTop},
	}

	g := buildGraph(segs)
	if len(g.nodes) != 4 {
		t.Fatalf("expected 4 nodes for a square, got %d", len(g.nodes))
	}
	for i, node := range g.nodes {
		if node.count != 2 {
			t.Fatalf("node %d: expected degree 2 in a simple square, got %d", i, node.count)
		}
	}
}

func TestBuildGraphBranchNode(t *testing.T) {
	center := IntPoint{X: 0, Y: 0}
	segs := []FilledSegment{
		{XSegment: XSegment{A: center, B: IntPoint{X: 10, Y: 0}}},
		{XSegment: XSegment{A: center, B: IntPoint{X: 0, Y: 10}}},
		{XSegment: XSegment{A: center, B: IntPoint{X: -10, Y: 0}}},
	}
	g := buildGraph(segs)

	var branchCount int
	for _, n := range g.nodes {
		if n.point == center {
			branchCount = n.count
		}
	}
	if branchCount != 3 {
		t.Fatalf("expected center node degree 3, got %d", branchCount)
	}
}
