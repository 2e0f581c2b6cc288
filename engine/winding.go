package overlay

// WindingCount is the per-edge count trait threaded through the split
// solver, fill solver, and derived services. It is opaque to the split
// solver (which only Adds and Inverts counts when merging/splitting
// segments) and interpreted only by a FillStrategy. Reference: spec.md §3,
// grounded on original_source/src/split/shape_count.rs's ShapeCount,
// generalized to the string and stroke variants.
//
// Implemented with Go generics (Segment[C WindingCount]) rather than a
// trait object, per spec.md §9's guidance to monomorphise over the count
// type and avoid runtime indirection on the hot path.
type WindingCount[C any] interface {
	// Add combines this count with other, as when two collinear segments
	// with the same XSegment merge into one.
	Add(other C) C
	// Invert returns the count as seen from the opposite orientation, used
	// when a segment's endpoints are swapped during canonicalization.
	Invert() C
	// IsNeutral reports whether the count contributes nothing (e.g. a
	// collinear-overlap merge summed to zero), in which case the edge can
	// be dropped.
	IsNeutral() bool
}

// BoolCount is the winding count for Boolean overlay: independent signed
// contributions from the subject and clip regions.
type BoolCount struct {
	Subj, Clip int32
}

// Add implements WindingCount.
func (c BoolCount) Add(other BoolCount) BoolCount {
	return BoolCount{Subj: c.Subj + other.Subj, Clip: c.Clip + other.Clip}
}

// Invert implements WindingCount.
func (c BoolCount) Invert() BoolCount {
	return BoolCount{Subj: -c.Subj, Clip: -c.Clip}
}

// IsNeutral implements WindingCount.
func (c BoolCount) IsNeutral() bool {
	return c.Subj == 0 && c.Clip == 0
}

// increment returns c with its subject and/or clip contribution bumped by
// one directed edge, according to role. Grounded on
// original_source/src/split/shape_count.rs's ShapeCount::increment.
func (c BoolCount) increment(role Role) BoolCount {
	out := c
	if role&RoleSubject != 0 {
		out.Subj++
	}
	if role&RoleClip != 0 {
		out.Clip++
	}
	return out
}

// ClipMark is the ternary "does a string polyline touch this edge, and
// from which side" marker used by StringCount in place of a signed clip
// winding count.
type ClipMark int8

const (
	ClipNone ClipMark = iota
	ClipDirect
	ClipReverse
)

// StringCount is the winding count for string slice/clip operations: a
// normal signed subject winding count, paired with a presence marker for
// the string polylines rather than a signed count (spec.md §3, §4.7).
type StringCount struct {
	Subj int32
	Clip ClipMark
}

// Add implements WindingCount. The clip side is presence, not a sum: any
// touch by a string polyline dominates.
func (c StringCount) Add(other StringCount) StringCount {
	clip := c.Clip
	if other.Clip != ClipNone {
		clip = other.Clip
	}
	return StringCount{Subj: c.Subj + other.Subj, Clip: clip}
}

// Invert implements WindingCount.
func (c StringCount) Invert() StringCount {
	clip := c.Clip
	switch clip {
	case ClipDirect:
		clip = ClipReverse
	case ClipReverse:
		clip = ClipDirect
	}
	return StringCount{Subj: -c.Subj, Clip: clip}
}

// IsNeutral implements WindingCount.
func (c StringCount) IsNeutral() bool {
	return c.Subj == 0 && c.Clip == ClipNone
}

// StrokeCount is the winding count for stroke/outline meshing: a signed
// subject winding count from the offset body, plus a Bold flag
// distinguishing genuine offset edges from weak tie edges inserted purely
// for topological closure at joins and caps (spec.md §3, §9). Weak edges
// never contribute winding but are still real edges to graph traversal.
type StrokeCount struct {
	Subj int32
	Bold bool
}

// Add implements WindingCount.
func (c StrokeCount) Add(other StrokeCount) StrokeCount {
	return StrokeCount{Subj: c.Subj + other.Subj, Bold: c.Bold || other.Bold}
}

// Invert implements WindingCount.
func (c StrokeCount) Invert() StrokeCount {
	return StrokeCount{Subj: -c.Subj, Bold: c.Bold}
}

// IsNeutral implements WindingCount. A weak tie edge with zero winding is
// still topologically load-bearing, so it is never neutral.
func (c StrokeCount) IsNeutral() bool {
	return c.Subj == 0 && !c.Bold
}
