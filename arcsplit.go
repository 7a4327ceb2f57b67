package curve

import "iter"

// SplitPathByLength partitions p into consecutive pieces of arc length at
// most segmentLength, one output Path per piece, in order along the
// original path. Useful for chunking a long path into caps a renderer or
// exporter wants bounded (a tessellation batch size, a maximum segment for
// a device with limited coordinate precision), without touching the path's
// actual shape. Grounded directly on the teacher's own SplitArclen, which
// already implements exactly this arc-length bucketing over PathSegment,
// delimiting each group with a zero-value marker segment.
func SplitPathByLength(p Path, segmentLength, accuracy float64) []Path {
	if segmentLength <= 0 {
		return []Path{p}
	}
	bp := p.ToBezPath(accuracy)
	return collectSplitGroups(SplitArclen(bp.Segments(), segmentLength))
}

// SplitPathIntoN partitions p into n pieces of equal arc length, one output
// Path per piece. Grounded directly on the teacher's own SplitN, which
// measures the path's total length once and delegates to the same
// arc-length bucketing SplitPathByLength uses.
func SplitPathIntoN(p Path, n int, accuracy float64) []Path {
	if n <= 1 {
		return []Path{p}
	}
	bp := p.ToBezPath(accuracy)
	return collectSplitGroups(SplitN(bp.Segments(), n))
}

// collectSplitGroups turns a SplitArclen/SplitN stream (segments punctuated
// by zero-value markers between groups) into one Builder-collected Path per
// group.
func collectSplitGroups(segs iter.Seq[PathSegment]) []Path {
	var out []Path
	b := NewBuilder()
	started := false
	flush := func() {
		if started {
			out = append(out, b.Detach())
			started = false
		}
	}
	for seg := range segs {
		if seg.Kind == 0 {
			flush()
			continue
		}
		if !started {
			b.MoveTo(seg.P0)
			started = true
		}
		appendSegmentTo(b, seg)
	}
	flush()
	return out
}
