package rules

import (
	"math"

	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
)

// Condition bounds the coordinate of one axis. A NaN bound is unbounded.
type Condition struct {
	Axis    string
	Minimum float64
	Maximum float64
}

// AtLeast creates a condition with a lower bound only.
func AtLeast(axis string, min float64) Condition {
	return Condition{Axis: axis, Minimum: min, Maximum: math.NaN()}
}

// AtMost creates a condition with an upper bound only.
func AtMost(axis string, max float64) Condition {
	return Condition{Axis: axis, Minimum: math.NaN(), Maximum: max}
}

// Between creates a condition with both bounds, inclusive.
func Between(axis string, min, max float64) Condition {
	return Condition{Axis: axis, Minimum: min, Maximum: max}
}

// Holds is true if loc binds the condition's axis to a value within bounds.
func (c Condition) Holds(loc designspace.Location) bool {
	v, ok := loc[c.Axis]
	if !ok {
		return false
	}
	if !math.IsNaN(c.Minimum) && v < c.Minimum {
		return false
	}
	if !math.IsNaN(c.Maximum) && v > c.Maximum {
		return false
	}
	return true
}

// ConditionSet is a conjunction of conditions.
type ConditionSet []Condition

// Matches is true if all conditions hold for loc.
func (cs ConditionSet) Matches(loc designspace.Location) bool {
	for _, c := range cs {
		if !c.Holds(loc) {
			return false
		}
	}
	return true
}

// Substitution replaces glyph name From by To.
type Substitution struct {
	From, To string
}

// Rule is a named set of substitutions, active where any of its condition
// sets matches.
type Rule struct {
	Name          string
	ConditionSets []ConditionSet
	Subs          []Substitution
}

// Validate checks that every condition has at least one bound and that
// bounds are ordered.
func (r Rule) Validate() error {
	for _, cs := range r.ConditionSets {
		for _, c := range cs {
			if math.IsNaN(c.Minimum) && math.IsNaN(c.Maximum) {
				return core.Error(core.EINVALID, "rule %q: condition on %q has no bounds", r.Name, c.Axis)
			}
			if !math.IsNaN(c.Minimum) && !math.IsNaN(c.Maximum) && c.Minimum > c.Maximum {
				return core.Error(core.EINVALID, "rule %q: condition on %q has minimum > maximum", r.Name, c.Axis)
			}
		}
	}
	return nil
}

// Applies is true if any condition set of r matches loc.
func (r Rule) Applies(loc designspace.Location) bool {
	for _, cs := range r.ConditionSets {
		if cs.Matches(loc) {
			return true
		}
	}
	return false
}

func (r Rule) substitute(name string) string {
	for _, s := range r.Subs {
		if s.From == name {
			return s.To
		}
	}
	return name
}

// Process applies rules at loc to a sequence of glyph names and returns the
// rewritten sequence. The input slice is not modified.
func Process(rules []Rule, loc designspace.Location, glyphNames []string) []string {
	names := make([]string, len(glyphNames))
	copy(names, glyphNames)
	for _, r := range rules {
		if !r.Applies(loc) {
			continue
		}
		tracer().Debugf("rule %q applies at %v", r.Name, loc)
		for i, name := range names {
			names[i] = r.substitute(name)
		}
	}
	return names
}
