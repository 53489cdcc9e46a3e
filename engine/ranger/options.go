package ranger

import (
	"github.com/npillmayer/spaceranger/core/designspace"
)

// Preferred axes: type designers like to look at width horizontally and
// weight vertically.
const (
	PreferredX = "width"
	PreferredY = "weight"
)

// ResolveOptions adapts s to a design space. The resolved settings keep the
// version of s.
//
// An unknown discrete location is replaced by the first discrete location of
// ds. Axis names not in ds are dropped, and without a second axis there is
// no y axis. Missing axis names are chosen: x prefers PreferredX, y prefers
// PreferredY, else the first axis different from x.
func ResolveOptions(ds *designspace.DesignSpace, s Settings) Settings {
	r := s.clone()
	discrete := ds.DiscreteLocations()
	if !designspace.ContainsLocation(discrete, r.DiscreteLocation) {
		r.DiscreteLocation = nil
		if len(discrete) > 0 {
			r.DiscreteLocation = discrete[0]
		}
	}
	names := ds.AxisNames()
	has := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
	if len(names) < 2 {
		r.Y.Name = ""
	}
	if r.X.Name != "" && !has(r.X.Name) {
		r.X.Name = ""
	}
	if r.Y.Name != "" && !has(r.Y.Name) {
		r.Y.Name = ""
	}
	if r.X.Name == "" && len(names) > 0 {
		r.X.Name = names[0]
		if has(PreferredX) {
			r.X.Name = PreferredX
		}
	}
	if r.Y.Name == r.X.Name {
		r.Y.Name = ""
	}
	if r.Y.Name == "" && len(names) > 1 {
		if has(PreferredY) && r.X.Name != PreferredY {
			r.Y.Name = PreferredY
		} else {
			for _, n := range names {
				if n != r.X.Name {
					r.Y.Name = n
					break
				}
			}
		}
	}
	tracer().Debugf("resolved options: x=%q, y=%q, discrete=%v", r.X.Name, r.Y.Name, r.DiscreteLocation)
	return r
}
