package overlay

import "errors"

// Sentinel errors returned at the public API boundary. The core pipeline
// has no I/O and therefore no transient errors; every error here is a
// validation failure detected before (or immediately as) the pipeline runs.
var (
	// ErrInvalidFillRule indicates a FillRule value outside the documented range.
	ErrInvalidFillRule = errors.New("overlay: invalid fill rule")

	// ErrInvalidOverlayRule indicates an OverlayRuleKind value outside the documented range.
	ErrInvalidOverlayRule = errors.New("overlay: invalid overlay rule")

	// ErrInvalidDirection indicates an OutDirection value outside the documented range.
	ErrInvalidDirection = errors.New("overlay: invalid out direction")

	// ErrInvalidJoinType indicates a LineJoin value outside the documented range.
	ErrInvalidJoinType = errors.New("overlay: invalid join type")

	// ErrInvalidCapType indicates a LineCap value outside the documented range.
	ErrInvalidCapType = errors.New("overlay: invalid cap type")

	// ErrInvalidOptions indicates a numeric option (miter limit, arc ratio, width,
	// outline offsets) is non-positive, a float adapter's bounding box is empty,
	// or a stroke/outline path has too few points.
	ErrInvalidOptions = errors.New("overlay: invalid options")

	// ErrCoordinateOutOfRange indicates an input coordinate exceeds the documented
	// safe range (approximately ±2^30), which would make 128-bit cross-product
	// intermediates unsafe. Fatal at ingestion; the caller must rescale.
	ErrCoordinateOutOfRange = errors.New("overlay: coordinate out of safe range")

	// ErrOffsetTooSmall indicates a requested stroke/outline offset rounds to
	// less than one integer unit after adapter scaling.
	ErrOffsetTooSmall = errors.New("overlay: offset too small to represent on the integer lattice")

	// ErrInvariantViolated indicates an internal invariant (e.g. a face
	// traversal that failed to close) was detected. The run is aborted and
	// no partial result is returned.
	ErrInvariantViolated = errors.New("overlay: internal invariant violated")
)

// safeCoordinateBound is the documented safe range for input coordinates:
// beyond this, cross-product intermediates risk overflowing the 128-bit
// arithmetic CrossProduct128/Area128 rely on for exactness.
const safeCoordinateBound = 1 << 30

// validateCoordinate checks a single coordinate against the documented safe range.
func validateCoordinate(v int32) error {
	if v > safeCoordinateBound || v < -safeCoordinateBound {
		return ErrCoordinateOutOfRange
	}
	return nil
}

// validatePoint checks both coordinates of p against the documented safe range.
func validatePoint(p IntPoint) error {
	if err := validateCoordinate(p.X); err != nil {
		return err
	}
	return validateCoordinate(p.Y)
}

// validateContour checks every vertex of a contour against the safe coordinate range.
func validateContour(c Contour) error {
	for _, p := range c {
		if err := validatePoint(p); err != nil {
			return err
		}
	}
	return nil
}
