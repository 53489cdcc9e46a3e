package sampling

import (
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
)

// Mode selects how an axis is sampled.
type Mode int

const (
	Count     Mode = iota // n evenly spaced values from minimum to maximum
	Locations             // an explicit list of values
	Instances             // the coordinates of declared instances
)

func (m Mode) String() string {
	switch m {
	case Count:
		return "count"
	case Locations:
		return "locations"
	case Instances:
		return "instances"
	}
	return "undefined"
}

// Limits for user-entered step counts. Fewer than two samples cannot span a
// range; more than MaxCount makes compilation slow.
const (
	MinCount = 2
	MaxCount = 20
)

// Spec is an axis sample specification.
type Spec struct {
	Mode   Mode
	N      int       // step count for mode Count
	Values []float64 // explicit coordinates for mode Locations
}

// CountSpec creates a spec for n evenly spaced samples.
func CountSpec(n int) Spec {
	return Spec{Mode: Count, N: n}
}

// LocationsSpec creates a spec for an explicit list of coordinates.
func LocationsSpec(values ...float64) Spec {
	return Spec{Mode: Locations, Values: values}
}

// InstancesSpec creates a spec for sampling at instance coordinates.
func InstancesSpec() Spec {
	return Spec{Mode: Instances}
}

// SampleAxis produces the ordered coordinates of an axis for spec.
// instanceCoords are the coordinates of the relevant instances on this axis
// (see InstanceCoordinates) and are used only in mode Instances.
//
// Non-finite bounds, minimum > maximum, and counts below MinCount are
// rejected with an EINVALID error.
func SampleAxis(spec Spec, minimum, maximum float64, instanceCoords []float64) ([]float64, error) {
	switch spec.Mode {
	case Count:
		if !isFinite(minimum) || !isFinite(maximum) {
			return nil, core.Error(core.EINVALID, "axis bounds must be finite, are [%g, %g]", minimum, maximum)
		}
		if minimum > maximum {
			return nil, core.Error(core.EINVALID, "axis minimum %g exceeds maximum %g", minimum, maximum)
		}
		if spec.N < MinCount {
			return nil, core.Error(core.EINVALID, "axis step count must be at least %d, is %d", MinCount, spec.N)
		}
		values := make([]float64, spec.N)
		if maximum == minimum {
			for i := range values {
				values[i] = minimum
			}
			tracer().Debugf("degenerate axis at %g", minimum)
			return values, nil
		}
		step := (maximum - minimum) / float64(spec.N-1)
		for i := range values {
			values[i] = minimum + float64(i)*step
		}
		values[spec.N-1] = maximum
		return values, nil
	case Locations:
		for _, v := range spec.Values {
			if !isFinite(v) {
				return nil, core.Error(core.EINVALID, "axis location must be finite, is %g", v)
			}
		}
		values := make([]float64, len(spec.Values))
		copy(values, spec.Values)
		return values, nil
	case Instances:
		return sortedUnique(instanceCoords), nil
	}
	return nil, core.Error(core.EINVALID, "unknown axis sampling mode %d", spec.Mode)
}

// InstanceCoordinates collects the coordinates on axis axisName of all
// instance locations which match the discrete location. Instances not
// binding the axis are skipped. The result is neither sorted nor unique.
func InstanceCoordinates(instances []designspace.Location, axisName string, discrete designspace.Location) []float64 {
	var coords []float64
	for _, loc := range instances {
		if !loc.Matches(discrete) {
			continue
		}
		if v, ok := loc[axisName]; ok {
			coords = append(coords, v)
		}
	}
	return coords
}

// sortedUnique returns the distinct values in ascending order.
func sortedUnique(values []float64) []float64 {
	set := treeset.NewWith(utils.Float64Comparator)
	for _, v := range values {
		set.Add(v)
	}
	result := make([]float64, 0, set.Size())
	for _, v := range set.Values() {
		result = append(result, v.(float64))
	}
	return result
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
