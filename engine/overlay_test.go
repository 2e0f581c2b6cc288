package overlay

import "testing"

// Seed scenarios 1-4 from spec.md §8.

func TestOverlayOverlappingSquaresIntersect(t *testing.T) {
	subject := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	clip := Contour{{X: 5, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}}

	shapes, err := RunOverlay(Contours{subject}, Contours{clip}, NonZero, RuleIntersect, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("RunOverlay returned error: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("expected 1 intersection shape, got %d: %+v", len(shapes), shapes)
	}
	if len(shapes[0].Outer()) != 4 {
		t.Fatalf("expected a 4-vertex intersection square, got %d vertices", len(shapes[0].Outer()))
	}
}

func TestOverlayOverlappingSquaresUnion(t *testing.T) {
	subject := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	clip := Contour{{X: 5, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}}

	shapes, err := RunOverlay(Contours{subject}, Contours{clip}, NonZero, RuleUnion, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("RunOverlay returned error: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("expected 1 union shape, got %d: %+v", len(shapes), shapes)
	}
	if len(shapes[0].Outer()) != 8 {
		t.Fatalf("expected an 8-vertex union outline, got %d vertices: %v", len(shapes[0].Outer()), shapes[0].Outer())
	}
}

func TestOverlayOverlappingSquaresXor(t *testing.T) {
	subject := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	clip := Contour{{X: 5, Y: 5}, {X: 5, Y: 15}, {X: 15, Y: 15}, {X: 15, Y: 5}}

	shapes, err := RunOverlay(Contours{subject}, Contours{clip}, NonZero, RuleXor, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("RunOverlay returned error: %v", err)
	}
	if len(shapes) != 2 {
		t.Fatalf("expected 2 L-shaped xor shapes, got %d: %+v", len(shapes), shapes)
	}
}

func TestOverlayIdenticalSquares(t *testing.T) {
	square := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

	union, err := RunOverlay(Contours{square}, Contours{square}, NonZero, RuleUnion, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("union error: %v", err)
	}
	if len(union) != 1 || len(union[0].Outer()) != 4 {
		t.Fatalf("expected union of identical squares to be the square itself, got %+v", union)
	}

	xor, err := RunOverlay(Contours{square}, Contours{square}, NonZero, RuleXor, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("xor error: %v", err)
	}
	if len(xor) != 0 {
		t.Fatalf("expected xor of identical squares to be empty, got %+v", xor)
	}

	diff, err := RunOverlay(Contours{square}, Contours{square}, NonZero, RuleDifference, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("difference error: %v", err)
	}
	if len(diff) != 0 {
		t.Fatalf("expected difference of identical squares to be empty, got %+v", diff)
	}
}

func TestOverlayClipInsideSubjectProducesHole(t *testing.T) {
	subject := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	clip := Contour{{X: 3, Y: 3}, {X: 3, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 3}}

	shapes, err := RunOverlay(Contours{subject}, Contours{clip}, NonZero, RuleDifference, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("RunOverlay returned error: %v", err)
	}
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	if len(shapes[0].Holes()) != 1 {
		t.Fatalf("expected 1 hole, got %d", len(shapes[0].Holes()))
	}
}

func TestOverlayDegenerateCollinearEdgesDropEmpty(t *testing.T) {
	// A degenerate two-point "contour" is dropped entirely at ingestion
	// (boolSegmentsFromContour requires at least 3 points).
	subject := Contour{{X: 0, Y: 0}, {X: 10, Y: 0}}
	clip := Contour{{X: 5, Y: 0}, {X: 15, Y: 0}}

	shapes, err := RunOverlay(Contours{subject}, Contours{clip}, NonZero, RuleUnion, CounterClockwise, 0)
	if err != nil {
		t.Fatalf("RunOverlay returned error: %v", err)
	}
	if len(shapes) != 0 {
		t.Fatalf("expected no shapes from degenerate input, got %+v", shapes)
	}
}

func TestOverlayInvalidFillRule(t *testing.T) {
	square := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	_, err := RunOverlay(Contours{square}, nil, FillRule(99), RuleUnion, CounterClockwise, 0)
	if err != ErrInvalidFillRule {
		t.Fatalf("expected ErrInvalidFillRule, got %v", err)
	}
}

func TestOverlayInvalidOverlayRule(t *testing.T) {
	square := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	_, err := RunOverlay(Contours{square}, nil, NonZero, OverlayRuleKind(99), CounterClockwise, 0)
	if err != ErrInvalidOverlayRule {
		t.Fatalf("expected ErrInvalidOverlayRule, got %v", err)
	}
}

func TestOverlayCoordinateOutOfRange(t *testing.T) {
	bad := Contour{{X: 0, Y: 0}, {X: safeCoordinateBound + 1, Y: 0}, {X: 0, Y: 10}}
	o := New()
	if err := o.AddContour(RoleSubject, bad); err != ErrCoordinateOutOfRange {
		t.Fatalf("expected ErrCoordinateOutOfRange, got %v", err)
	}
}
