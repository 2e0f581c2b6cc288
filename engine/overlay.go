package overlay

// Overlay accumulates subject and clip contours and runs the split/fill
// pipeline once per call to Build. It mirrors the Overlay/Graph split in
// original_source/src/core/overlay.rs: constructing an Overlay is cheap
// (just buffering input), while Build pays for the sweep solvers.
type Overlay struct {
	subject Contours
	clip    Contours
}

// New returns an empty Overlay.
func New() *Overlay {
	return &Overlay{}
}

// AddContour appends one contour, tagged with role, to the overlay.
func (o *Overlay) AddContour(role Role, c Contour) error {
	if err := validateContour(c); err != nil {
		return err
	}
	if role&RoleSubject != 0 {
		o.subject = append(o.subject, c)
	}
	if role&RoleClip != 0 {
		o.clip = append(o.clip, c)
	}
	return nil
}

// AddContours appends many contours at once under the same role.
func (o *Overlay) AddContours(role Role, cs Contours) error {
	for _, c := range cs {
		if err := o.AddContour(role, c); err != nil {
			return err
		}
	}
	return nil
}

// Graph is a built, fill-labelled, traversal-ready planar subdivision. Every
// Boolean overlay rule is a cheap local filter over the same Graph, so
// computing several rules against the same input pays the split/fill cost once.
type Graph struct {
	g *overlayGraph
}

// Build runs the split and fill solvers once over the accumulated subject
// and clip contours, producing a Graph that Extract can filter repeatedly.
func (o *Overlay) Build(rule FillRule) (*Graph, error) {
	if !rule.valid() {
		return nil, ErrInvalidFillRule
	}

	var raw []Segment[BoolCount]
	for _, c := range o.subject {
		raw = append(raw, boolSegmentsFromContour(c, RoleSubject)...)
	}
	for _, c := range o.clip {
		raw = append(raw, boolSegmentsFromContour(c, RoleClip)...)
	}

	split := splitSegments(raw)
	filled, err := fillSegments(split, rule)
	if err != nil {
		return nil, err
	}

	return &Graph{g: buildGraph(filled)}, nil
}

// Extract filters the built graph by rule and returns the resulting
// shapes, with outer boundaries wound to outDir (holes the opposite way)
// and faces whose absolute doubled area is below minArea dropped before
// hole assignment. Reference: spec.md §6's graph_extract_shapes(graph,
// overlay_rule, out_direction, min_area).
func (g *Graph) Extract(rule OverlayRuleKind, outDir OutDirection, minArea float64) (Shapes, error) {
	if !rule.valid() {
		return nil, ErrInvalidOverlayRule
	}
	if !outDir.valid() {
		return nil, ErrInvalidOptions
	}
	keep, err := filterLinks(g.g, rule)
	if err != nil {
		return nil, err
	}
	return Shapes(extractShapes(g.g, keep, outDir, minArea)), nil
}

// RunOverlay is the single-call convenience entry point: build once at rule
// fillRule and extract once at rule overlayRule. Equivalent to New,
// AddContours(RoleSubject/RoleClip), Build, Extract chained together.
func RunOverlay(subject, clip Contours, fillRule FillRule, overlayRule OverlayRuleKind, outDir OutDirection, minArea float64) (Shapes, error) {
	o := New()
	if err := o.AddContours(RoleSubject, subject); err != nil {
		return nil, err
	}
	if err := o.AddContours(RoleClip, clip); err != nil {
		return nil, err
	}
	graph, err := o.Build(fillRule)
	if err != nil {
		return nil, err
	}
	return graph.Extract(overlayRule, outDir, minArea)
}

// Simplify removes self-intersections and redundant collinear structure
// from a single set of contours by running them through the pipeline as
// the subject, with an empty clip, under RuleUnion. This is the
// supplemented convenience entry point noted in SPEC_FULL.md, grounded on
// original_source/src/ext/simplify.rs's Simplify trait.
func Simplify(contours Contours, fillRule FillRule) (Shapes, error) {
	return RunOverlay(contours, nil, fillRule, RuleUnion, CounterClockwise, 0)
}
