package overlay

// fillStrategy computes a segment's SegmentFill byte from its own winding
// contribution (this) and the running sum of everything already swept
// below it (below), also returning the updated running sum for the next
// segment up. Grounded on original_source/src/fill/strategy.rs's
// FillStrategy trait; the four Boolean variants below correspond to
// FillRule's EvenOdd, NonZero, Positive and Negative, selected by
// strategyFor.
type fillStrategy func(this, below BoolCount) (sum BoolCount, fill SegmentFill)

func evenOddFill(this, below BoolCount) (BoolCount, SegmentFill) {
	sum := below.Add(this)
	var fill SegmentFill
	if sum.Subj&1 != 0 {
		fill |= SubjTop
	}
	if below.Subj&1 != 0 {
		fill |= SubjBottom
	}
	if sum.Clip&1 != 0 {
		fill |= ClipTop
	}
	if below.Clip&1 != 0 {
		fill |= ClipBottom
	}
	return sum, fill
}

func nonZeroFill(this, below BoolCount) (BoolCount, SegmentFill) {
	sum := below.Add(this)
	var fill SegmentFill
	if sum.Subj != 0 {
		fill |= SubjTop
	}
	if below.Subj != 0 {
		fill |= SubjBottom
	}
	if sum.Clip != 0 {
		fill |= ClipTop
	}
	if below.Clip != 0 {
		fill |= ClipBottom
	}
	return sum, fill
}

func positiveFill(this, below BoolCount) (BoolCount, SegmentFill) {
	sum := below.Add(this)
	var fill SegmentFill
	if sum.Subj < 0 {
		fill |= SubjTop
	}
	if below.Subj < 0 {
		fill |= SubjBottom
	}
	if sum.Clip < 0 {
		fill |= ClipTop
	}
	if below.Clip < 0 {
		fill |= ClipBottom
	}
	return sum, fill
}

func negativeFill(this, below BoolCount) (BoolCount, SegmentFill) {
	sum := below.Add(this)
	var fill SegmentFill
	if sum.Subj > 0 {
		fill |= SubjTop
	}
	if below.Subj > 0 {
		fill |= SubjBottom
	}
	if sum.Clip > 0 {
		fill |= ClipTop
	}
	if below.Clip > 0 {
		fill |= ClipBottom
	}
	return sum, fill
}

// strategyFor resolves a FillRule to its fillStrategy function.
func strategyFor(rule FillRule) (fillStrategy, error) {
	switch rule {
	case EvenOdd:
		return evenOddFill, nil
	case NonZero:
		return nonZeroFill, nil
	case Positive:
		return positiveFill, nil
	case Negative:
		return negativeFill, nil
	default:
		return nil, ErrInvalidFillRule
	}
}

// stringFillStrategy is the string-operation counterpart: the clip side is
// a presence marker rather than a summed count, so "filled" on the clip
// side just means some string polyline touched this edge at all. Grounded
// on strategy.rs's *StrategyString family.
type stringFillStrategy func(this, below StringCount) (sum StringCount, fill SegmentFill)

func evenOddFillString(this, below StringCount) (StringCount, SegmentFill) {
	subj := below.Subj + this.Subj
	sum := StringCount{Subj: subj, Clip: ClipDirect}
	var fill SegmentFill
	if subj&1 != 0 {
		fill |= SubjTop
	}
	if below.Subj&1 != 0 {
		fill |= SubjBottom
	}
	if this.Clip != ClipNone {
		fill |= ClipTop | ClipBottom
	}
	return sum, fill
}

func nonZeroFillString(this, below StringCount) (StringCount, SegmentFill) {
	subj := below.Subj + this.Subj
	sum := StringCount{Subj: subj, Clip: ClipDirect}
	var fill SegmentFill
	if subj != 0 {
		fill |= SubjTop
	}
	if below.Subj != 0 {
		fill |= SubjBottom
	}
	if this.Clip != ClipNone {
		fill |= ClipTop | ClipBottom
	}
	return sum, fill
}

func stringStrategyFor(rule FillRule) (stringFillStrategy, error) {
	switch rule {
	case EvenOdd:
		return evenOddFillString, nil
	case NonZero:
		return nonZeroFillString, nil
	default:
		return nil, ErrInvalidFillRule
	}
}
