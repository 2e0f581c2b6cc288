package overlay

// FillRule specifies how the fill solver turns a winding count into an
// inside/outside decision for a region. Reference: spec.md §4.3.
type FillRule uint8

const (
	EvenOdd  FillRule = iota // odd winding counts are filled
	NonZero                  // non-zero winding counts are filled
	Positive                 // strictly positive winding counts are filled
	Negative                 // strictly negative winding counts are filled
)

func (r FillRule) valid() bool { return r <= Negative }

// OverlayRuleKind specifies which Boolean set operation (or raw pass) the
// filter stage keeps. Reference: spec.md §4.5.
type OverlayRuleKind uint8

const (
	RuleSubject OverlayRuleKind = iota
	RuleClip
	RuleIntersect
	RuleUnion
	RuleDifference
	RuleInverseDifference
	RuleXor
)

func (r OverlayRuleKind) valid() bool { return r <= RuleXor }

// OutDirection selects the winding direction of extracted outer boundaries;
// holes always wind the opposite way.
type OutDirection uint8

const (
	CounterClockwise OutDirection = iota
	Clockwise
)

func (d OutDirection) valid() bool { return d <= Clockwise }

// Role identifies which region(s) a contour contributes to. It is a
// bitmask so a single AddContour call can tag a contour as contributing to
// both subject and clip at once (ShapeType::COMMON in the original source),
// sugar over two separate AddContour calls with the same geometry.
type Role uint8

const (
	RoleSubject Role = 1 << iota
	RoleClip
)

// RoleCommon tags a contour as contributing to both subject and clip.
const RoleCommon = RoleSubject | RoleClip

// LineJoin selects how interior corners are joined during stroking/outlining.
type LineJoin uint8

const (
	JoinBevel LineJoin = iota
	JoinMiter
	JoinRound
)

func (j LineJoin) valid() bool { return j <= JoinRound }

// LineCap selects how open-path ends are capped during stroking.
type LineCap uint8

const (
	CapButt LineCap = iota
	CapSquare
	CapRound
	CapCustom
)

func (c LineCap) valid() bool { return c <= CapCustom }

// StrokeStyle configures a stroke operation. Width is the full stroke
// width (the offset on each side is width/2). MiterLimit is the minimum
// interior angle, in radians, at or below which a miter join truncates to a
// two-segment join. ArcRatio controls round join/cap subdivision as the
// fraction of the radius a chord may deviate by; smaller values produce
// finer arcs. CustomCap supplies the caller's own cap outline, used when
// StartCap or EndCap is CapCustom; its points are rotated into the local
// frame of the corresponding open end.
type StrokeStyle struct {
	Width      float64
	StartCap   LineCap
	EndCap     LineCap
	Join       LineJoin
	MiterLimit float64
	ArcRatio   float64
	CustomCap  []IntPoint
}

// DefaultStrokeStyle mirrors common stroking defaults: a round join with
// butt caps, following the teacher's OffsetOptions default tuning.
func DefaultStrokeStyle(width float64) StrokeStyle {
	return StrokeStyle{
		Width:      width,
		StartCap:   CapButt,
		EndCap:     CapButt,
		Join:       JoinRound,
		MiterLimit: 2.0,
		ArcRatio:   0.25,
	}
}

func (s StrokeStyle) validate() error {
	if s.Width <= 0 {
		return ErrInvalidOptions
	}
	if !s.Join.valid() {
		return ErrInvalidJoinType
	}
	if !s.StartCap.valid() || !s.EndCap.valid() {
		return ErrInvalidCapType
	}
	if s.Join == JoinMiter && s.MiterLimit <= 0 {
		return ErrInvalidOptions
	}
	if (s.Join == JoinRound || s.StartCap == CapRound || s.EndCap == CapRound) && s.ArcRatio <= 0 {
		return ErrInvalidOptions
	}
	return nil
}

// OutlineStyle configures an outline operation: a closed shape's boundary
// is offset outward by OuterOffset and inward by InnerOffset (either may
// be zero to skip that side). Offset corners are always mitered; Join,
// MiterLimit and ArcRatio are validated but not applied.
type OutlineStyle struct {
	OuterOffset float64
	InnerOffset float64
	Join        LineJoin
	MiterLimit  float64
	ArcRatio    float64
}

func (s OutlineStyle) validate() error {
	if s.OuterOffset <= 0 && s.InnerOffset <= 0 {
		return ErrInvalidOptions
	}
	if !s.Join.valid() {
		return ErrInvalidJoinType
	}
	if s.Join == JoinMiter && s.MiterLimit <= 0 {
		return ErrInvalidOptions
	}
	if s.Join == JoinRound && s.ArcRatio <= 0 {
		return ErrInvalidOptions
	}
	return nil
}

// ClipRule configures a StringClip operation.
type ClipRule struct {
	// Invert retains the portions of string polylines outside the filled
	// region instead of inside it.
	Invert bool
	// BoundaryIncluded includes polyline segments that lie exactly on the
	// filled region's boundary in the result.
	BoundaryIncluded bool
}
