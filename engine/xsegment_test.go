package overlay

import "testing"

func TestNewXSegmentOrdersCanonically(t *testing.T) {
	p := IntPoint{X: 5, Y: 5}
	q := IntPoint{X: 1, Y: 1}

	seg, swapped := NewXSegment(p, q)
	if !swapped {
		t.Fatalf("expected swap when p > q")
	}
	if seg.A != q || seg.B != p {
		t.Fatalf("got A=%v B=%v, want A=%v B=%v", seg.A, seg.B, q, p)
	}

	seg2, swapped2 := NewXSegment(q, p)
	if swapped2 {
		t.Fatalf("expected no swap when q < p already")
	}
	if seg2 != seg {
		t.Fatalf("canonical form should be identical regardless of input order: got %v want %v", seg2, seg)
	}
}

func TestYRangeAndNotIntersecting(t *testing.T) {
	seg := XSegment{A: IntPoint{X: 0, Y: 10}, B: IntPoint{X: 5, Y: 0}}
	lo, hi := seg.yRange()
	if lo != 0 || hi != 10 {
		t.Fatalf("yRange() = (%d,%d), want (0,10)", lo, hi)
	}
	if !seg.notIntersectingYRange(11, 20) {
		t.Fatalf("expected disjoint y-range to be reported as such")
	}
	if seg.notIntersectingYRange(5, 6) {
		t.Fatalf("expected overlapping y-range to not be disjoint")
	}
}

func TestIsVertical(t *testing.T) {
	vertical := XSegment{A: IntPoint{X: 3, Y: 0}, B: IntPoint{X: 3, Y: 10}}
	if !vertical.isVertical() {
		t.Fatalf("expected vertical segment to be detected")
	}
	diagonal := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 3, Y: 10}}
	if diagonal.isVertical() {
		t.Fatalf("expected diagonal segment to not be vertical")
	}
}

func TestIsUnderSegment(t *testing.T) {
	lower := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}
	upper := XSegment{A: IntPoint{X: 0, Y: 5}, B: IntPoint{X: 10, Y: 5}}
	if !lower.isUnderSegment(upper) {
		t.Fatalf("expected lower segment to be reported under upper")
	}
	if upper.isUnderSegment(lower) {
		t.Fatalf("expected upper segment to not be under lower")
	}
}

func TestCmpByAngleCounterclockwise(t *testing.T) {
	origin := IntPoint{X: 0, Y: 0}
	east := XSegment{A: origin, B: IntPoint{X: 10, Y: 0}}
	north := XSegment{A: origin, B: IntPoint{X: 0, Y: 10}}

	segs := []XSegment{north, east}
	sortByAngle(segs)
	if segs[0] != east || segs[1] != north {
		t.Fatalf("expected counterclockwise order [east, north], got %v", segs)
	}
}
