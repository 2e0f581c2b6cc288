package overlay

// extractShapes walks a filtered graph into closed contours, classifies
// each by winding direction into a shell or a hole, drops faces whose
// absolute doubled area falls below minArea, assigns every surviving hole
// to its enclosing shell, and finally normalizes every contour's winding
// to outDir (outer boundaries) or its opposite (holes). Reference: spec.md
// §4.6 and §6's graph_extract_shapes(graph, overlay_rule, out_direction,
// min_area) parameters (spec.md:174, :185-186). Grounded on
// original_source/src/layout/overlay_graph.rs's traversal primitives
// (adapted into a single explicit walk loop, since Go lacks the
// original's iterator combinators) and src/hole/solver.rs for the
// shell/hole pairing this feeds into (holes.go).
func extractShapes(graph *overlayGraph, keep []bool, outDir OutDirection, minArea float64) []Shape {
	visited := make([]bool, len(graph.links))
	for i, ok := range keep {
		if !ok {
			visited[i] = true // filtered-out links are never walked
		}
	}

	var shells, holes []Contour
	for start := range graph.links {
		if visited[start] {
			continue
		}
		contour := walkContour(graph, visited, start)
		if len(contour) < 3 {
			continue
		}
		if minArea > 0 && Area128(contour).Abs().ToFloat64() < minArea {
			continue
		}
		if isCounterClockwise(contour) {
			shells = append(shells, contour)
		} else {
			holes = append(holes, contour)
		}
	}

	shapes := assignHoles(shells, holes)

	holeDir := Clockwise
	if outDir == Clockwise {
		holeDir = CounterClockwise
	}
	for _, shape := range shapes {
		shape[0] = normalizeOrientation(shape[0], outDir)
		for i := 1; i < len(shape); i++ {
			shape[i] = normalizeOrientation(shape[i], holeDir)
		}
	}

	return shapes
}

// walkContour extracts the single closed contour reachable by starting at
// startLink and always turning onto the nearest clockwise neighbor at
// every subsequent node, until the walk returns to its starting node. The
// resulting winding direction is left exactly as the walk produces it —
// that direction is what distinguishes a shell from a hole, so it must
// not be normalized before extractShapes classifies it.
func walkContour(graph *overlayGraph, visited []bool, startLink int) Contour {
	link := graph.links[startLink]
	visited[startLink] = true

	startNode := link.aNode
	points := []IntPoint{link.a}
	currentPoint, currentNode := link.b, link.bNode
	currentLink := startLink

	for currentNode != startNode {
		points = append(points, currentPoint)
		next := graph.nearestClockwiseNeighbor(currentNode, points[len(points)-2], currentLink, true, visited)
		if next == emptyIndex {
			break
		}
		visited[next] = true
		nextPoint, nextNode := graph.links[next].other(currentNode)
		currentLink = next
		currentPoint, currentNode = nextPoint, nextNode
	}

	return points
}

func isCounterClockwise(contour Contour) bool {
	area := Area128(contour)
	return !area.IsNegative() && !area.IsZero()
}

// normalizeOrientation returns contour reversed if needed so its signed
// area matches want (positive area = counterclockwise). Called from
// extractShapes once shell/hole classification is already settled, since
// that classification depends on the walk's raw, unnormalized winding.
func normalizeOrientation(contour Contour, want OutDirection) Contour {
	if len(contour) < 3 {
		return contour
	}
	wantCCW := want == CounterClockwise
	if isCounterClockwise(contour) == wantCCW {
		return contour
	}
	reversed := make(Contour, len(contour))
	for i, p := range contour {
		reversed[len(contour)-1-i] = p
	}
	return reversed
}
