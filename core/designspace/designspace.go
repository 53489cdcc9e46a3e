package designspace

import (
	"math"
)

// Axis is a continuous design axis.
type Axis struct {
	Name    string
	Minimum float64
	Default float64
	Maximum float64
}

// Normalize maps a design coordinate on axis a to [-1, 1], with the axis
// default at 0. Values outside the axis range are clamped.
func (a Axis) Normalize(v float64) float64 {
	v = math.Max(a.Minimum, math.Min(a.Maximum, v))
	switch {
	case v < a.Default && a.Default > a.Minimum:
		return (v - a.Default) / (a.Default - a.Minimum)
	case v > a.Default && a.Maximum > a.Default:
		return (v - a.Default) / (a.Maximum - a.Default)
	}
	return 0
}

// DiscreteAxis is a non-interpolating axis with a fixed set of values.
type DiscreteAxis struct {
	Name    string
	Values  []float64
	Default float64
}

// Source is a font at an explicitly authored design-space location.
type Source struct {
	Name     string
	Location Location
}

// Instance is a named output location.
type Instance struct {
	Name     string
	Location Location
}

// DesignSpace describes axes, sources and instances of a variable font
// project. Locations of sources and instances are expected to bind every
// axis; missing bindings are read as the axis default.
type DesignSpace struct {
	Axes         []Axis
	DiscreteAxes []DiscreteAxis
	Sources      []Source
	Instances    []Instance
}

// OrderedContinuousAxes returns the continuous axes in declaration order.
func (ds *DesignSpace) OrderedContinuousAxes() []Axis {
	axes := make([]Axis, len(ds.Axes))
	copy(axes, ds.Axes)
	return axes
}

// Axis returns the continuous axis with the given name.
func (ds *DesignSpace) Axis(name string) (Axis, bool) {
	for _, a := range ds.Axes {
		if a.Name == name {
			return a, true
		}
	}
	return Axis{}, false
}

// AxisNames returns the names of the continuous axes in declaration order.
func (ds *DesignSpace) AxisNames() []string {
	names := make([]string, len(ds.Axes))
	for i, a := range ds.Axes {
		names[i] = a.Name
	}
	return names
}

func (ds *DesignSpace) isDiscrete(name string) bool {
	for _, a := range ds.DiscreteAxes {
		if a.Name == name {
			return true
		}
	}
	return false
}

// DiscreteLocations enumerates all combinations of discrete axis values, in
// declaration order. Without discrete axes the result is empty.
func (ds *DesignSpace) DiscreteLocations() []Location {
	if len(ds.DiscreteAxes) == 0 {
		return nil
	}
	locs := []Location{{}}
	for _, axis := range ds.DiscreteAxes {
		next := make([]Location, 0, len(locs)*len(axis.Values))
		for _, l := range locs {
			for _, v := range axis.Values {
				m := l.Clone()
				m[axis.Name] = v
				next = append(next, m)
			}
		}
		locs = next
	}
	return locs
}

// Split separates loc into its continuous and its discrete part. Bindings for
// unknown axis names are dropped.
func (ds *DesignSpace) Split(loc Location) (continuous Location, discrete Location) {
	continuous, discrete = Location{}, Location{}
	for k, v := range loc {
		if ds.isDiscrete(k) {
			discrete[k] = v
		} else if _, ok := ds.Axis(k); ok {
			continuous[k] = v
		}
	}
	return
}

// Complete returns loc with every continuous and discrete axis bound,
// filling missing bindings with axis defaults.
func (ds *DesignSpace) Complete(loc Location) Location {
	c := loc.Clone()
	for _, a := range ds.Axes {
		if _, ok := c[a.Name]; !ok {
			c[a.Name] = a.Default
		}
	}
	for _, a := range ds.DiscreteAxes {
		if _, ok := c[a.Name]; !ok {
			c[a.Name] = a.Default
		}
	}
	return c
}

// Normalize maps the continuous part of loc to normalized coordinates.
// Axes at their default (normalized 0) are omitted from the result.
func (ds *DesignSpace) Normalize(loc Location) Location {
	n := Location{}
	for _, a := range ds.Axes {
		v, ok := loc[a.Name]
		if !ok {
			continue
		}
		if nv := a.Normalize(v); nv != 0 {
			n[a.Name] = nv
		}
	}
	return n
}

// DefaultLocation returns the location of the default continuous
// coordinates within a discrete location.
func (ds *DesignSpace) DefaultLocation(discrete Location) Location {
	loc := discrete.Clone()
	for _, a := range ds.Axes {
		loc[a.Name] = a.Default
	}
	return ds.Complete(loc)
}

// SourcesForDiscreteLocation returns the sources whose discrete bindings
// match discrete. A nil or empty discrete location matches every source.
func (ds *DesignSpace) SourcesForDiscreteLocation(discrete Location) []Source {
	var sources []Source
	for _, s := range ds.Sources {
		if ds.Complete(s.Location).Matches(discrete) {
			sources = append(sources, s)
		}
	}
	tracer().Debugf("%d sources for discrete location %v", len(sources), discrete)
	return sources
}

// InstancesForDiscreteLocation returns the instances whose discrete
// bindings match discrete.
func (ds *DesignSpace) InstancesForDiscreteLocation(discrete Location) []Instance {
	var instances []Instance
	for _, inst := range ds.Instances {
		if ds.Complete(inst.Location).Matches(discrete) {
			instances = append(instances, inst)
		}
	}
	return instances
}

// SourceLocations returns the completed locations of sources.
func (ds *DesignSpace) SourceLocations(sources []Source) []Location {
	locs := make([]Location, len(sources))
	for i, s := range sources {
		locs[i] = ds.Complete(s.Location)
	}
	return locs
}

// InstanceLocations returns the completed locations of instances.
func (ds *DesignSpace) InstanceLocations(instances []Instance) []Location {
	locs := make([]Location, len(instances))
	for i, inst := range instances {
		locs[i] = ds.Complete(inst.Location)
	}
	return locs
}

// DefaultSource returns the index of the source located at the default
// location of a discrete sub-space, or -1.
func (ds *DesignSpace) DefaultSource(discrete Location) int {
	def := ds.DefaultLocation(discrete)
	for i, s := range ds.Sources {
		if ds.Complete(s.Location).Equal(def) {
			return i
		}
	}
	return -1
}
