package overlay

import "testing"

func TestClassifyCrossTransverse(t *testing.T) {
	s1 := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 10}}
	s2 := XSegment{A: IntPoint{X: 0, Y: 10}, B: IntPoint{X: 10, Y: 0}}

	result := classifyCross(s1, s2)
	if result.class != crossTransverse {
		t.Fatalf("got class %v, want crossTransverse", result.class)
	}
	want := IntPoint{X: 5, Y: 5}
	if result.point != want {
		t.Fatalf("got intersection %v, want %v", result.point, want)
	}
}

func TestClassifyCrossShareEndpoint(t *testing.T) {
	s1 := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}
	s2 := XSegment{A: IntPoint{X: 10, Y: 0}, B: IntPoint{X: 10, Y: 10}}

	result := classifyCross(s1, s2)
	if result.class != crossShareEndpoint {
		t.Fatalf("got class %v, want crossShareEndpoint", result.class)
	}
}

func TestClassifyCrossDisjoint(t *testing.T) {
	s1 := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}
	s2 := XSegment{A: IntPoint{X: 0, Y: 100}, B: IntPoint{X: 10, Y: 100}}

	result := classifyCross(s1, s2)
	if result.class != crossDisjoint {
		t.Fatalf("got class %v, want crossDisjoint", result.class)
	}
}

func TestClassifyCrossTJunction(t *testing.T) {
	s1 := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}
	s2 := XSegment{A: IntPoint{X: 5, Y: -5}, B: IntPoint{X: 5, Y: 0}}

	result := classifyCross(s1, s2)
	if result.class != crossTJunction {
		t.Fatalf("got class %v, want crossTJunction", result.class)
	}
}

func TestClassifyCrossOverlap(t *testing.T) {
	s1 := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 0}}
	s2 := XSegment{A: IntPoint{X: 5, Y: 0}, B: IntPoint{X: 15, Y: 0}}

	result := classifyCross(s1, s2)
	if result.class != crossOverlap {
		t.Fatalf("got class %v, want crossOverlap", result.class)
	}
}

func TestSnapToNearestEndpoint(t *testing.T) {
	s1 := XSegment{A: IntPoint{X: 0, Y: 0}, B: IntPoint{X: 10, Y: 10}}
	s2 := XSegment{A: IntPoint{X: 0, Y: 10}, B: IntPoint{X: 10, Y: 0}}

	// A near-miss intersection one unit off from (5,5) should not snap
	// (outside snap radius of any endpoint).
	near := IntPoint{X: 4, Y: 6}
	got := snapToNearestEndpoint(near, s1, s2)
	if got != near {
		t.Fatalf("expected no snap for point far from any endpoint, got %v", got)
	}

	// A point within sqrt(2) of an endpoint should snap to it.
	closeToOrigin := IntPoint{X: 1, Y: 0}
	got2 := snapToNearestEndpoint(closeToOrigin, s1, s2)
	if got2 != (IntPoint{X: 0, Y: 0}) {
		t.Fatalf("expected snap to origin, got %v", got2)
	}
}

func TestIsPointOnSegment(t *testing.T) {
	a, b := IntPoint{X: 0, Y: 0}, IntPoint{X: 10, Y: 10}
	if !isPointOnSegment(IntPoint{X: 5, Y: 5}, a, b) {
		t.Fatalf("expected midpoint to lie on segment")
	}
	if isPointOnSegment(IntPoint{X: 11, Y: 11}, a, b) {
		t.Fatalf("expected point beyond segment end to not lie on it")
	}
}
