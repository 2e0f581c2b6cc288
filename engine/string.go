package overlay

import "sort"

// StringSlice splits body's filled region along every edge touched by any
// polyline in strings, returning the resulting pieces as independent
// shapes wound to outDir (holes opposite) with faces below minArea
// dropped. Reference: spec.md §4.7, §6's graph_extract_shapes parameters.
//
// The string polylines are fed into the same segment soup as the body
// (via stringSegmentsFromPolyline's ClipMark presence marker instead of a
// signed clip count) so the split solver cuts the body's boundary exactly
// where a string crosses it, and the string's own interior edges become
// real graph edges with the filled region on both sides — which is what
// lets traversal walk them as a cut rather than ignoring them as interior
// noise.
func StringSlice(body Contours, strings []Contour, fillRule FillRule, outDir OutDirection, minArea float64) (Shapes, error) {
	if !fillRule.valid() {
		return nil, ErrInvalidFillRule
	}
	if !outDir.valid() {
		return nil, ErrInvalidOptions
	}

	var raw []Segment[StringCount]
	for _, c := range body {
		if err := validateContour(c); err != nil {
			return nil, err
		}
		raw = append(raw, bodySegmentsFromContour(c)...)
	}
	for _, line := range strings {
		if err := validateContour(line); err != nil {
			return nil, err
		}
		raw = append(raw, stringSegmentsFromPolyline(line)...)
	}

	split := splitSegments(raw)
	filled, err := fillStringSegments(split, fillRule)
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

// StringClip retains the portions of the string polylines that lie inside
// (or, if rule.Invert, outside) body's filled region. Reference: spec.md §4.7.
//
// Unlike StringSlice, the output is a set of open polylines, not closed
// shapes, so this does not reuse the shell/hole graph traversal: it walks
// the split string segments directly and chains consecutive ones sharing
// an endpoint back into polylines.
func StringClip(body Contours, strings []Contour, fillRule FillRule, rule ClipRule) ([]Contour, error) {
	if !fillRule.valid() {
		return nil, ErrInvalidFillRule
	}

	var raw []Segment[StringCount]
	for _, c := range body {
		if err := validateContour(c); err != nil {
			return nil, err
		}
		raw = append(raw, bodySegmentsFromContour(c)...)
	}
	for _, line := range strings {
		if err := validateContour(line); err != nil {
			return nil, err
		}
		raw = append(raw, stringSegmentsFromPolyline(line)...)
	}

	split := splitSegments(raw)
	filled, err := fillStringSegments(split, fillRule)
	if err != nil {
		return nil, err
	}

	var kept []XSegment
	for i, segIn := range split {
		if segIn.Count.Clip == ClipNone {
			continue // body-only edge, not part of any string polyline
		}
		onBoundary := filled[i].Fill&SubjBoth == SubjTop || filled[i].Fill&SubjBoth == SubjBottom
		inside := filled[i].Fill&SubjTop == SubjTop && filled[i].Fill&SubjBottom == SubjBottom
		want := inside
		if onBoundary {
			want = rule.BoundaryIncluded
		}
		if rule.Invert {
			want = !want
		}
		if want {
			kept = append(kept, filled[i].XSegment)
		}
	}

	return chainSegmentsIntoPolylines(kept), nil
}

// chainSegmentsIntoPolylines greedily merges a bag of segments sharing
// endpoints into maximal open or closed polylines. Segments are consumed
// exactly once; branch points (3+ incident segments) terminate a chain
// rather than picking an arbitrary continuation, matching how a sliced
// string polyline's sub-pieces naturally reconnect outside of crossings.
func chainSegmentsIntoPolylines(segs []XSegment) []Contour {
	adjacency := make(map[IntPoint][]int, 2*len(segs))
	for i, s := range segs {
		adjacency[s.A] = append(adjacency[s.A], i)
		adjacency[s.B] = append(adjacency[s.B], i)
	}

	used := make([]bool, len(segs))
	var out []Contour

	extend := func(start int) Contour {
		used[start] = true
		line := []IntPoint{segs[start].A, segs[start].B}
		for {
			tail := line[len(line)-1]
			candidates := adjacency[tail]
			next := -1
			for _, c := range candidates {
				if !used[c] {
					if next != -1 {
						next = -1 // branch point: stop extending
						break
					}
					next = c
				}
			}
			if next == -1 {
				break
			}
			used[next] = true
			s := segs[next]
			if s.A == tail {
				line = append(line, s.B)
			} else {
				line = append(line, s.A)
			}
		}
		return Contour(line)
	}

	order := make([]int, len(segs))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return segs[order[a]].A.Less(segs[order[b]].A) })

	for _, i := range order {
		if used[i] {
			continue
		}
		out = append(out, extend(i))
	}
	return out
}
