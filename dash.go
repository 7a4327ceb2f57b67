package curve

// DashEffect adapts a Path's centerline into its dashed pieces, built
// directly on top of the package's existing Dash iterator (an arc-length-
// driven state machine that already handles cusps, closepaths, and stashing
// correctly) rather than re-deriving dash phase bookkeeping for Path.
type DashEffect struct {
	Offset  float64
	Pattern []float64
}

// NewDashEffect returns a DashEffect with the given starting phase offset
// and on/off length pattern (alternating dash, gap, dash, gap, ...).
func NewDashEffect(offset float64, pattern []float64) DashEffect {
	return DashEffect{Offset: offset, Pattern: pattern}
}

// Apply returns p with its centerline broken into dashes; a closed contour
// that starts mid-dash connects its trailing and leading dash pieces into
// one, per the Dash iterator's stash-based closepath handling.
func (d DashEffect) Apply(p Path) Path {
	if len(d.Pattern) == 0 {
		return p
	}
	bp := p.ToBezPath(defaultConicTolerance)
	dashed := Dash(bp.PathElements(0), d.Offset, d.Pattern)
	return pathFromElements(dashed, p.fill)
}
