package overlay

import (
	"math"
	"sort"
)

// strokeSegments builds the segment soup for stroking one polyline: for
// each input edge, a small quad bounding the offset strip on both sides of
// that edge, plus a join template at each interior vertex and a cap
// template at each open end (closed polylines get a join at every vertex
// and no caps). Every quad/join/cap is emitted as its own small closed
// polygon (their orientations are not uniform); because the fill
// strategy used downstream is NonZero on Subj, overlapping polygons near
// sharp or concave turns union correctly without any special-casing —
// the same reason a Boolean union tolerates overlapping input contours.
// Reference: spec.md §4.8, grounded on
// _examples/CWBudde-Go-Clipper2/port/offset_internal.go's getUnitNormal/
// getPerpendic for the normal-vector math, adapted from that file's
// float64 PointD model onto this package's IntPoint lattice.
func strokeSegments(line Contour, closed bool, style StrokeStyle) ([]Segment[StrokeCount], error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	if err := validateContour(line); err != nil {
		return nil, err
	}
	n := len(line)
	if n < 2 {
		return nil, ErrInvalidOptions
	}

	half := style.Width / 2
	var segs []Segment[StrokeCount]
	emit := func(poly []IntPoint, bold bool) {
		segs = append(segs, ringSegments(poly, bold)...)
	}

	edgeCount := n - 1
	if closed {
		edgeCount = n
	}
	normals := make([]unitVec, edgeCount)
	for i := 0; i < edgeCount; i++ {
		p0, p1 := line[i], line[(i+1)%n]
		normals[i] = unitNormal(p0, p1)
	}

	for i := 0; i < edgeCount; i++ {
		p0, p1 := line[i], line[(i+1)%n]
		nrm := normals[i]
		top0 := offsetPoint(p0, nrm, half)
		top1 := offsetPoint(p1, nrm, half)
		bot0 := offsetPoint(p0, nrm, -half)
		bot1 := offsetPoint(p1, nrm, -half)
		emit([]IntPoint{top0, top1, bot1, bot0}, true)
	}

	joinStart, joinEnd := 1, n-1
	if closed {
		joinStart, joinEnd = 0, n
	}
	for i := joinStart; i < joinEnd; i++ {
		prevEdge := (i - 1 + edgeCount) % edgeCount
		curEdge := i % edgeCount
		if !closed && i == n-1 {
			break
		}
		poly, bold := joinTemplate(line[i], normals[prevEdge], normals[curEdge], half, style)
		if len(poly) >= 3 {
			emit(poly, bold)
		}
	}

	if !closed {
		startCap, startBold := capTemplate(line[0], normals[0], half, style.StartCap, style.CustomCap, style.ArcRatio, true)
		emit(startCap, startBold)
		endCap, endBold := capTemplate(line[n-1], normals[edgeCount-1], half, style.EndCap, style.CustomCap, style.ArcRatio, false)
		emit(endCap, endBold)
	}

	return segs, nil
}

// ringSegments converts a small closed polygon into Segment[StrokeCount]
// values. bold controls whether the ring's edges are genuine offset
// geometry (contributing winding) or a weak tie ring inserted purely to
// close a join/cap shape — spec.md §4.8, §9's "weak edges" note.
func ringSegments(ring []IntPoint, bold bool) []Segment[StrokeCount] {
	n := len(ring)
	segs := make([]Segment[StrokeCount], 0, n)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		if p == q {
			continue
		}
		xseg, swapped := NewXSegment(p, q)
		count := StrokeCount{Subj: 1, Bold: bold}
		if !bold {
			count.Subj = 0
		}
		if swapped {
			count = count.Invert()
		}
		segs = append(segs, Segment[StrokeCount]{XSegment: xseg, Count: count})
	}
	return segs
}

type unitVec struct{ X, Y float64 }

// unitNormal returns the unit vector perpendicular to p0->p1, rotated so
// that offsetting a point by +half*normal moves it to the left of the
// directed edge.
func unitNormal(p0, p1 IntPoint) unitVec {
	dx := float64(p1.X) - float64(p0.X)
	dy := float64(p1.Y) - float64(p0.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return unitVec{}
	}
	return unitVec{X: -dy / length, Y: dx / length}
}

func offsetPoint(p IntPoint, n unitVec, dist float64) IntPoint {
	return IntPoint{
		X: int32(roundHalfAwayFromZero(float64(p.X) + n.X*dist)),
		Y: int32(roundHalfAwayFromZero(float64(p.Y) + n.Y*dist)),
	}
}

// joinTemplate returns the small closed polygon bridging the gap between
// the incoming and outgoing offset strips at an interior vertex, and
// whether its edges are bold. Reference: spec.md §4.8.
func joinTemplate(vertex IntPoint, inNormal, outNormal unitVec, half float64, style StrokeStyle) ([]IntPoint, bool) {
	inTop := offsetPoint(vertex, inNormal, half)
	outTop := offsetPoint(vertex, outNormal, half)
	inBot := offsetPoint(vertex, inNormal, -half)
	outBot := offsetPoint(vertex, outNormal, -half)

	switch style.Join {
	case JoinBevel:
		return []IntPoint{vertex, inTop, outTop, inBot, outBot}, false
	case JoinRound:
		arc := arcPoints(vertex, inTop, outTop, half, style.ArcRatio)
		poly := append([]IntPoint{vertex}, arc...)
		arcBot := arcPoints(vertex, outBot, inBot, half, style.ArcRatio)
		poly = append(poly, arcBot...)
		return poly, true
	case JoinMiter:
		interiorAngle := angleBetween(inNormal, outNormal)
		if interiorAngle <= style.MiterLimit {
			return []IntPoint{vertex, inTop, outTop, inBot, outBot}, true
		}
		tipTop, ok := rayIntersection(inTop, inNormal, outTop, outNormal)
		if !ok {
			return []IntPoint{vertex, inTop, outTop, inBot, outBot}, false
		}
		return []IntPoint{vertex, inTop, tipTop, outTop, outBot, inBot}, true
	default:
		return nil, false
	}
}

// capTemplate returns the small closed polygon covering an open
// polyline's end, and whether its edges are bold. start indicates the
// polyline's first vertex (as opposed to its last).
func capTemplate(vertex IntPoint, edgeNormal unitVec, half float64, cap LineCap, custom []IntPoint, arcRatio float64, start bool) ([]IntPoint, bool) {
	n := edgeNormal
	if start {
		n = unitVec{X: -edgeNormal.X, Y: -edgeNormal.Y}
	}
	top := offsetPoint(vertex, n, half)
	bot := offsetPoint(vertex, n, -half)

	switch cap {
	case CapButt:
		return []IntPoint{vertex, top, bot}, false
	case CapSquare:
		dir := unitVec{X: n.Y, Y: -n.X}
		if start {
			dir = unitVec{X: -n.Y, Y: n.X}
		}
		extTop := offsetPoint(top, dir, half)
		extBot := offsetPoint(bot, dir, half)
		return []IntPoint{vertex, top, extTop, extBot, bot}, true
	case CapRound:
		dir := unitVec{X: n.Y, Y: -n.X}
		arc := arcPoints(vertex, top, bot, half, arcRatio)
		_ = dir
		return append([]IntPoint{vertex}, arc...), true
	case CapCustom:
		poly := make([]IntPoint, 0, len(custom)+1)
		poly = append(poly, vertex)
		for _, p := range custom {
			rx := float64(p.X)*n.Y - float64(p.Y)*n.X
			ry := float64(p.X)*n.X + float64(p.Y)*n.Y
			poly = append(poly, IntPoint{
				X: int32(roundHalfAwayFromZero(float64(vertex.X) + rx)),
				Y: int32(roundHalfAwayFromZero(float64(vertex.Y) + ry)),
			})
		}
		return poly, true
	default:
		return nil, false
	}
}

// arcPoints subdivides the arc from p0 to p1 (both at radius from center)
// into a chord count controlled by arcRatio: smaller values produce finer
// (more numerous) chords. Reference: spec.md §4.8's round join/cap rule.
func arcPoints(center, p0, p1 IntPoint, radius, arcRatio float64) []IntPoint {
	if arcRatio <= 0 {
		arcRatio = 0.25
	}
	a0 := math.Atan2(float64(p0.Y-center.Y), float64(p0.X-center.X))
	a1 := math.Atan2(float64(p1.Y-center.Y), float64(p1.X-center.X))
	sweep := a1 - a0
	for sweep <= -math.Pi {
		sweep += 2 * math.Pi
	}
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}

	steps := int(math.Ceil(math.Abs(sweep) / (2 * math.Acos(1-arcRatio))))
	if steps < 1 {
		steps = 1
	}

	out := make([]IntPoint, 0, steps+1)
	out = append(out, p0)
	for i := 1; i < steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		out = append(out, IntPoint{
			X: int32(roundHalfAwayFromZero(float64(center.X) + radius*math.Cos(a))),
			Y: int32(roundHalfAwayFromZero(float64(center.Y) + radius*math.Sin(a))),
		})
	}
	out = append(out, p1)
	return out
}

// angleBetween returns the interior angle, in radians, between two unit
// normals meeting at a join (used against StrokeStyle.MiterLimit).
func angleBetween(a, b unitVec) float64 {
	dot := a.X*b.X + a.Y*b.Y
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return math.Pi - math.Acos(dot)
}

// rayIntersection finds where the ray from a along normal na meets the
// ray from b along normal nb, used for miter join tips.
func rayIntersection(a IntPoint, na unitVec, b IntPoint, nb unitVec) (IntPoint, bool) {
	dirA := unitVec{X: na.Y, Y: -na.X}
	dirB := unitVec{X: nb.Y, Y: -nb.X}
	denom := dirA.X*dirB.Y - dirA.Y*dirB.X
	if math.Abs(denom) < 1e-9 {
		return IntPoint{}, false
	}
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	t := (dx*dirB.Y - dy*dirB.X) / denom
	return IntPoint{
		X: int32(roundHalfAwayFromZero(float64(a.X) + t*dirA.X)),
		Y: int32(roundHalfAwayFromZero(float64(a.Y) + t*dirA.Y)),
	}, true
}

// fillStrokeSegments is the stroke/outline counterpart of fillSegments: a
// single-region NonZero strategy over StrokeCount.Subj, leaving fill's
// clip bits unused. Reference: spec.md §4.8.
func fillStrokeSegments(segs []Segment[StrokeCount]) []FilledSegment {
	sort.Slice(segs, func(i, j int) bool {
		return segs[i].XSegment.A.Less(segs[j].XSegment.A)
	})
	store := newCrossStore[StrokeCount](len(segs))
	out := make([]FilledSegment, len(segs))

	type end struct {
		index int
		point IntPoint
	}
	var buf []end

	n := len(segs)
	i := 0
	for i < n {
		p := segs[i].XSegment.A
		buf = buf[:0]
		buf = append(buf, end{index: i, point: segs[i].XSegment.B})
		i++
		for i < n && segs[i].XSegment.A == p {
			buf = append(buf, end{index: i, point: segs[i].XSegment.B})
			i++
		}
		if len(buf) > 1 {
			sort.Slice(buf, func(a, b int) bool {
				return clockwiseSign(p, buf[b].point, buf[a].point) < 0
			})
		}

		sum := store.findUnderAndNearest(p)
		for _, e := range buf {
			seg := segs[e.index]
			newSum := sum.Add(seg.Count)
			var fill SegmentFill
			if newSum.Subj != 0 {
				fill |= SubjTop
			}
			if sum.Subj != 0 {
				fill |= SubjBottom
			}
			sum = newSum
			out[e.index] = FilledSegment{XSegment: seg.XSegment, Fill: fill}
			if !seg.XSegment.isVertical() {
				store.insert(Segment[StrokeCount]{XSegment: seg.XSegment, Count: sum})
			}
		}
	}

	return out
}

// Stroke builds a filled polygon mesh approximating line stroked to style,
// via the same split/fill/graph/traverse pipeline as Boolean overlay, with
// outer boundaries wound to outDir (holes opposite) and faces below
// minArea dropped. Reference: spec.md §4.8, §6's graph_extract_shapes
// parameters.
func Stroke(line Contour, closed bool, style StrokeStyle, outDir OutDirection, minArea float64) (Shapes, error) {
	if !outDir.valid() {
		return nil, ErrInvalidOptions
	}
	raw, err := strokeSegments(line, closed, style)
	if err != nil {
		return nil, err
	}
	split := splitSegments(raw)
	filled := fillStrokeSegments(split)
	keep := make([]bool, len(filled))
	for i, seg := range filled {
		keep[i] = seg.Fill&SubjTop == SubjTop
	}
	g := buildGraph(filled)
	return extractShapes(g, keep, outDir, minArea), nil
}
