package overlay

// keepLink reports whether a link's "top" side (the side lying to the left
// as the link is traversed from A to B) belongs to the result shape under
// rule. This is the only place Boolean set semantics enter the pipeline —
// every rule is a local, per-edge table lookup over the fill byte the fill
// solver already computed, never a pass over the whole region. Grounded on
// original_source/src/bool/overlay_rule.rs's OverlayRule::is_fill_top.
func keepLink(rule OverlayRuleKind, fill SegmentFill) (bool, error) {
	switch rule {
	case RuleSubject:
		return fill&SubjTop == SubjTop, nil
	case RuleClip:
		return fill&ClipTop == ClipTop, nil
	case RuleIntersect:
		return fill&BothTop == BothTop, nil
	case RuleUnion:
		return fill&BothBot == FillNone, nil
	case RuleDifference:
		return fill&BothTop == SubjTop, nil
	case RuleInverseDifference:
		return fill&BothTop == ClipTop, nil
	case RuleXor:
		isSubj := fill&BothTop == SubjTop
		isClip := fill&BothTop == ClipTop
		return isSubj || isClip, nil
	default:
		return false, ErrInvalidOverlayRule
	}
}

// filterLinks returns the subset of a built graph's link indices that
// survive rule, as a boolean mask parallel to graph.links.
func filterLinks(graph *overlayGraph, rule OverlayRuleKind) ([]bool, error) {
	keep := make([]bool, len(graph.links))
	for i, link := range graph.links {
		ok, err := keepLink(rule, link.fill)
		if err != nil {
			return nil, err
		}
		keep[i] = ok
	}
	return keep, nil
}
