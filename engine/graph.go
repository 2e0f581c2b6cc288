package overlay

// linkNode is a graph vertex: an endpoint shared by two or more filled
// segments. For a plain chain vertex (exactly two incident links) both
// direct slots are used and no entry exists in the overflow fanOut array;
// for a branch vertex (3+ incident links, where contours touch at a point)
// all incident link indices live in fanOut[offset:offset+count]. This
// two-tier layout avoids a slice-per-node allocation for the overwhelming
// common case of simple chain vertices. Grounded on
// original_source/src/layout/overlay_node.rs's OverlayNode/indices split.
type linkNode struct {
	point        IntPoint
	direct0      int // first incident link index, or emptyIndex
	direct1      int // second incident link index, valid only when count == 2
	fanOutOffset int // offset into the graph's fanOut array, valid only when count != 2
	count        int
}

const emptyIndex = -1

func (n linkNode) other(indices []int, self int) []int {
	if n.count == 2 {
		if n.direct0 == self {
			return []int{n.direct1}
		}
		return []int{n.direct0}
	}
	out := make([]int, 0, n.count-1)
	for i := n.fanOutOffset; i < n.fanOutOffset+n.count; i++ {
		if indices[i] != self {
			out = append(out, indices[i])
		}
	}
	return out
}

// overlayLink is a graph edge: a filled segment addressed by the indices
// of its two endpoint nodes, plus the SegmentFill the fill solver gave it.
type overlayLink struct {
	aNode, bNode int
	a, b         IntPoint
	fill         SegmentFill
}

func (l overlayLink) other(nodeIndex int) (point IntPoint, node int) {
	if l.aNode == nodeIndex {
		return l.b, l.bNode
	}
	return l.a, l.aNode
}

// overlayGraph is the built traversal structure: filled segments collapsed
// into links between shared-endpoint nodes. Grounded on
// original_source/src/layout/overlay_graph.rs's OverlayGraph.
type overlayGraph struct {
	nodes  []linkNode
	fanOut []int
	links  []overlayLink
}

// buildGraph coalesces filled segments' shared endpoints into nodes and
// returns the resulting graph. Reference: spec.md §4.4.
func buildGraph(segs []FilledSegment) *overlayGraph {
	n := len(segs)
	pointIndex := make(map[IntPoint]int, 2*n)
	links := make([]overlayLink, n)

	indexOf := func(p IntPoint) int {
		if i, ok := pointIndex[p]; ok {
			return i
		}
		i := len(pointIndex)
		pointIndex[p] = i
		return i
	}

	for i, seg := range segs {
		ai := indexOf(seg.XSegment.A)
		bi := indexOf(seg.XSegment.B)
		links[i] = overlayLink{aNode: ai, bNode: bi, a: seg.XSegment.A, b: seg.XSegment.B, fill: seg.Fill}
	}

	m := len(pointIndex)
	counts := make([]int, m)
	for _, l := range links {
		counts[l.aNode]++
		counts[l.bNode]++
	}

	totalFanOut := 0
	for _, c := range counts {
		if c != 2 {
			totalFanOut += c
		}
	}

	points := make([]IntPoint, m)
	for p, i := range pointIndex {
		points[i] = p
	}

	nodes := make([]linkNode, m)
	fanOut := make([]int, totalFanOut)
	offset := 0
	for i, c := range counts {
		if c == 2 {
			nodes[i] = linkNode{point: points[i], direct0: emptyIndex, direct1: emptyIndex, count: c}
		} else {
			nodes[i] = linkNode{point: points[i], fanOutOffset: offset, count: c}
			offset += c
		}
	}

	fanOutFill := make([]int, m)
	for i, link := range links {
		addIncident(nodes, fanOut, fanOutFill, link.aNode, i)
		addIncident(nodes, fanOut, fanOutFill, link.bNode, i)
	}

	return &overlayGraph{nodes: nodes, fanOut: fanOut, links: links}
}

func addIncident(nodes []linkNode, fanOut []int, fill []int, nodeIndex, linkIndex int) {
	node := &nodes[nodeIndex]
	if node.count == 2 {
		if node.direct0 == emptyIndex {
			node.direct0 = linkIndex
		} else {
			node.direct1 = linkIndex
		}
		return
	}
	fanOut[node.fanOutOffset+fill[nodeIndex]] = linkIndex
	fill[nodeIndex]++
}

// incidentLinks returns the link indices touching node i.
func (g *overlayGraph) incidentLinks(nodeIndex int) []int {
	node := g.nodes[nodeIndex]
	if node.count == 2 {
		return []int{node.direct0, node.direct1}
	}
	out := make([]int, node.count)
	copy(out, g.fanOut[node.fanOutOffset:node.fanOutOffset+node.count])
	return out
}

// nearestClockwiseNeighbor returns the incident link at center that is
// nearest, in clockwise rotation from the direction center->target, to
// that direction, excluding visited links and the link named ignore. It
// returns -1 if every incident link is visited or ignored. Used by
// traverse.go's walkContour to pick the next edge at every node it reaches.
// Grounded on original_source/src/layout/overlay_graph.rs's
// find_nearest_link_to / is_closer_in_rotation_to.
func (g *overlayGraph) nearestClockwiseNeighbor(centerNode int, target IntPoint, ignore int, clockwise bool, visited []bool) int {
	center := g.nodes[centerNode].point
	candidates := g.incidentLinks(centerNode)

	best := emptyIndex
	var bestVec IntPoint
	baseVec := target.Subtract(center)

	for _, j := range candidates {
		if j == ignore || visited[j] {
			continue
		}
		if best == emptyIndex {
			best = j
			otherPoint, _ := g.links[j].other(centerNode)
			bestVec = otherPoint.Subtract(center)
			continue
		}
		otherPoint, _ := g.links[j].other(centerNode)
		v := otherPoint.Subtract(center)
		if isCloserInRotation(baseVec, v, bestVec) == clockwise {
			best = j
			bestVec = v
		}
	}
	return best
}

// isCloserInRotation reports whether, sweeping clockwise from base, vector
// a is encountered before vector b.
func isCloserInRotation(base, a, b IntPoint) bool {
	crossA := base.CrossProduct(a)
	crossB := base.CrossProduct(b)

	if crossA == 0 || crossB == 0 {
		if crossA == 0 {
			return crossB > 0
		}
		return crossA < 0
	}

	sameSide := (crossA > 0 && crossB > 0) || (crossA < 0 && crossB < 0)
	if !sameSide {
		return crossA < 0
	}
	return a.CrossProduct(b) < 0
}
