package overlay

// Outline builds the ring(s) obtained by offsetting a closed shape's
// boundary outward by style.OuterOffset and/or inward by style.InnerOffset,
// reusing the stroke machinery: an outward offset is exactly a stroke of
// the boundary with all of its width to one side, and likewise inward.
// Reference: spec.md §4.8's "Stroke and Outline" section covers both
// operations as the same geometric preprocessor with different offset
// placement; Outline is the closed-shape, one-sided-offset specialization.
// Results are wound to outDir (holes opposite) with faces below minArea
// dropped, per spec.md §6's graph_extract_shapes parameters.
func Outline(shape Shape, style OutlineStyle, outDir OutDirection, minArea float64) (Shapes, error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	if !outDir.valid() {
		return nil, ErrInvalidOptions
	}

	var rings []Contour
	outer := shape.Outer()
	if err := validateContour(outer); err != nil {
		return nil, err
	}

	if style.OuterOffset > 0 {
		outerStyle := StrokeStyle{
			Width:      2 * style.OuterOffset,
			Join:       style.Join,
			MiterLimit: style.MiterLimit,
			ArcRatio:   style.ArcRatio,
		}
		expanded, err := oneSidedOffset(outer, outerStyle, true)
		if err != nil {
			return nil, err
		}
		rings = append(rings, expanded)
	}

	if style.InnerOffset > 0 {
		innerStyle := StrokeStyle{
			Width:      2 * style.InnerOffset,
			Join:       style.Join,
			MiterLimit: style.MiterLimit,
			ArcRatio:   style.ArcRatio,
		}
		shrunk, err := oneSidedOffset(outer, innerStyle, false)
		if err != nil {
			return nil, err
		}
		rings = append(rings, shrunk)
	}

	for _, hole := range shape.Holes() {
		rings = append(rings, hole)
	}

	if len(rings) == 0 {
		return Shapes{shape}, nil
	}

	var raw []Segment[BoolCount]
	for _, r := range rings {
		raw = append(raw, boolSegmentsFromContour(r, RoleSubject)...)
	}
	split := splitSegments(raw)
	filled, err := fillSegments(split, NonZero)
	if err != nil {
		return nil, err
	}
	keep := make([]bool, len(filled))
	for i, seg := range filled {
		keep[i] = seg.Fill&SubjTop == SubjTop
	}
	g := buildGraph(filled)
	return extractShapes(g, keep, outDir, minArea), nil
}

// oneSidedOffset moves every point of a closed contour outward (or, if
// !outward, inward) to the mitered corner at which both adjacent edges lie
// shifted by the full distance, producing a single new ring without
// running the full stroke pipeline. Every corner is mitered: style.Join,
// MiterLimit and ArcRatio are validated but not applied, and the ring is
// not checked for self-overlap.
func oneSidedOffset(c Contour, style StrokeStyle, outward bool) (Contour, error) {
	if err := style.validate(); err != nil {
		return nil, err
	}
	n := len(c)
	if n < 3 {
		return nil, ErrInvalidOptions
	}
	dist := style.Width / 2
	if !outward {
		dist = -dist
	}
	if !isCounterClockwise(c) {
		dist = -dist
	}

	out := make(Contour, n)
	for i := range c {
		prev := c[(i-1+n)%n]
		cur := c[i]
		next := c[(i+1)%n]
		n1 := unitNormal(prev, cur)
		n2 := unitNormal(cur, next)
		avg := unitVec{X: (n1.X + n2.X) / 2, Y: (n1.Y + n2.Y) / 2}
		length := avg.X*avg.X + avg.Y*avg.Y
		if length < 1e-12 {
			avg = n1
		} else {
			avg = unitVec{X: avg.X / length, Y: avg.Y / length}
		}
		out[i] = offsetPoint(cur, avg, dist)
	}
	return out, nil
}
