package masters

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/outline"
)

// Group is the compatibility group of a glyph name within a discrete
// sub-space: the glyph as it appears in every source carrying it.
type Group struct {
	Name         string
	Sources      []int            // indices of sources carrying the glyph
	Glyphs       []*outline.Glyph // parallel to Sources
	Incompatible []bool           // parallel to Sources
	Repairs      []*outline.Glyph // parallel to Sources; nil if no repair needed or possible
	Unresolvable bool             // some incompatible glyph cannot be repaired
}

// IsCompatible is true if every member of the group matches the default
// source's glyph.
func (grp Group) IsCompatible() bool {
	for _, inc := range grp.Incompatible {
		if inc {
			return false
		}
	}
	return true
}

// Advisor checks glyphs of an operator's sources for interpolation
// compatibility and repairs them if possible. The only repair performed is
// rotating contour start points to match the glyph of the default source.
type Advisor struct {
	op *Operator
}

// NewAdvisor creates an advisor for the sources of op.
func NewAdvisor(op *Operator) *Advisor {
	return &Advisor{op: op}
}

// Group returns the compatibility group for name in a discrete sub-space.
// The second return value is false if the default source has no such glyph.
func (a *Advisor) Group(name string, discrete designspace.Location) (Group, bool) {
	grp := Group{Name: name}
	_, indices, def := a.op.sourcesFor(discrete)
	if def < 0 {
		return grp, false
	}
	model := a.op.fonts[def].Glyph(name)
	if model == nil {
		return grp, false
	}
	for _, i := range indices {
		g := a.op.fonts[i].Glyph(name)
		if g == nil {
			continue
		}
		grp.Sources = append(grp.Sources, i)
		grp.Glyphs = append(grp.Glyphs, g)
		if g.Compatible(model) {
			grp.Incompatible = append(grp.Incompatible, false)
			grp.Repairs = append(grp.Repairs, nil)
			continue
		}
		grp.Incompatible = append(grp.Incompatible, true)
		repaired, ok := g.MatchStartPoints(model)
		grp.Repairs = append(grp.Repairs, repaired)
		if !ok {
			grp.Unresolvable = true
		}
	}
	return grp, true
}

// Check is true if name can be interpolated in a discrete sub-space as is.
func (a *Advisor) Check(name string, discrete designspace.Location) bool {
	grp, ok := a.Group(name, discrete)
	return ok && grp.IsCompatible()
}

// Repair makes the glyphs of name compatible by replacing incompatible
// members in their glyph sets. It returns false, without changing any
// glyph set, if the group is unresolvable.
func (a *Advisor) Repair(name string, discrete designspace.Location) bool {
	grp, ok := a.Group(name, discrete)
	if !ok || grp.Unresolvable {
		return false
	}
	for k, i := range grp.Sources {
		if grp.Repairs[k] == nil {
			continue
		}
		tracer().Infof("repairing glyph %q in source %q", name, a.op.space.Sources[i].Name)
		a.op.fonts[i].Glyphs[name] = grp.Repairs[k]
	}
	return true
}

// Snapshot returns the set of glyph names which cannot be interpolated in a
// discrete sub-space. Incompatible glyphs which can be repaired are
// repaired in place and are not part of the snapshot. Names not present in
// the default source are left to the interpolation engine.
//
// The snapshot is meant to be read, never modified, for the duration of one
// grid update.
func (a *Advisor) Snapshot(glyphNames []string, discrete designspace.Location) *hashset.Set {
	snapshot := hashset.New()
	if a == nil {
		return snapshot
	}
	for _, name := range glyphNames {
		if snapshot.Contains(name) {
			continue
		}
		grp, ok := a.Group(name, discrete)
		if !ok || grp.IsCompatible() {
			continue
		}
		if grp.Unresolvable || !a.Repair(name, discrete) {
			snapshot.Add(name)
		}
	}
	tracer().Debugf("%d incompatible glyphs", snapshot.Size())
	return snapshot
}
