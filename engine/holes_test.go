package overlay

import "testing"

func TestAssignHolesNestsInnerRectangle(t *testing.T) {
	shell := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	hole := Contour{{X: 2, Y: 2}, {X: 2, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 2}}

	shapes := assignHoles([]Contour{shell}, []Contour{hole})
	if len(shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(shapes))
	}
	if len(shapes[0].Holes()) != 1 {
		t.Fatalf("expected the hole to be assigned to the shell, got %d holes", len(shapes[0].Holes()))
	}
}

func TestAssignHolesNoHoles(t *testing.T) {
	shell := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	shapes := assignHoles([]Contour{shell}, nil)
	if len(shapes) != 1 || len(shapes[0].Holes()) != 0 {
		t.Fatalf("expected 1 shape with no holes, got %+v", shapes)
	}
}

func TestAssignHolesMultipleShells(t *testing.T) {
	left := Contour{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	right := Contour{{X: 100, Y: 0}, {X: 100, Y: 10}, {X: 110, Y: 10}, {X: 110, Y: 0}}
	holeInLeft := Contour{{X: 2, Y: 2}, {X: 2, Y: 8}, {X: 8, Y: 8}, {X: 8, Y: 2}}

	shapes := assignHoles([]Contour{left, right}, []Contour{holeInLeft})
	if len(shapes[0].Holes()) != 1 {
		t.Fatalf("expected the hole assigned to the left shell, got %+v", shapes)
	}
	if len(shapes[1].Holes()) != 0 {
		t.Fatalf("expected the right shell to have no holes, got %+v", shapes)
	}
}
