package masters

import (
	"math"
	"sort"

	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
)

// Triple is the (lower, peak, upper) region of a support on one axis, in
// normalized coordinates.
type Triple struct {
	Lower, Peak, Upper float64
}

// Support is the region of influence of a master. Axes not mentioned are
// unconstrained.
type Support map[string]Triple

// SupportScalar returns the weight of a support at normalized location loc.
// The weight is 1 at the peak and falls off linearly towards the lower and
// upper bounds of each axis.
func SupportScalar(loc designspace.Location, s Support) float64 {
	scalar := 1.0
	for axis, t := range s {
		if t.Peak == 0 || t.Lower > t.Peak || t.Peak > t.Upper {
			continue
		}
		if t.Lower < 0 && t.Upper > 0 {
			continue
		}
		v := loc[axis]
		if v == t.Peak {
			continue
		}
		if v <= t.Lower || t.Upper <= v {
			return 0
		}
		if v < t.Peak {
			scalar *= (v - t.Lower) / (t.Peak - t.Lower)
		} else {
			scalar *= (v - t.Upper) / (t.Peak - t.Upper)
		}
	}
	return scalar
}

// Model is a variation model for a list of master locations. Locations are
// normalized and must contain the origin, i.e. the default master.
//
// The model orders masters by their complexity and computes a support and a
// set of delta weights for each of them. Values at the masters are turned
// into deltas once, and interpolation at a location is a weighted sum of
// those deltas.
type Model struct {
	locations    []designspace.Location // normalized, in model order
	order        []int                  // model index → master index
	supports     []Support
	deltaWeights []map[int]float64
}

// NewModel creates a model for normalized master locations. Axes bound to 0
// may be omitted. axisOrder is used for ordering masters of equal rank and
// may be nil.
func NewModel(locations []designspace.Location, axisOrder []string) (*Model, error) {
	locs := make([]designspace.Location, len(locations))
	hasOrigin := false
	for i, l := range locations {
		locs[i] = designspace.Location{}
		for k, v := range l {
			if v != 0 {
				locs[i][k] = v
			}
		}
		if len(locs[i]) == 0 {
			hasOrigin = true
		}
		for j := 0; j < i; j++ {
			if locs[j].Equal(locs[i]) {
				return nil, core.Error(core.EINVALID, "duplicate master location %v", locations[i])
			}
		}
	}
	if !hasOrigin {
		return nil, core.Error(core.EMISSING, "no master at default location")
	}
	m := &Model{order: make([]int, len(locs))}
	for i := range m.order {
		m.order[i] = i
	}
	keys := sortKeys(locs, axisOrder)
	sort.SliceStable(m.order, func(i, j int) bool {
		return keys[m.order[i]].less(keys[m.order[j]])
	})
	m.locations = make([]designspace.Location, len(locs))
	for i, mi := range m.order {
		m.locations[i] = locs[mi]
	}
	m.computeSupports()
	m.computeDeltaWeights()
	return m, nil
}

// Supports returns the supports of the masters, in model order.
func (m *Model) Supports() []Support {
	return m.supports
}

// Locations returns the normalized master locations, in model order.
func (m *Model) Locations() []designspace.Location {
	return m.locations
}

// --- Master ordering -------------------------------------------------------

type locationKey struct {
	rank      int
	onPoint   int
	axisIndex []int
	axes      []string
	signs     []int
	values    []float64
}

func (k locationKey) less(o locationKey) bool {
	if k.rank != o.rank {
		return k.rank < o.rank
	}
	if k.onPoint != o.onPoint {
		return k.onPoint > o.onPoint
	}
	if c := compareInts(k.axisIndex, o.axisIndex); c != 0 {
		return c < 0
	}
	for i := 0; i < len(k.axes) && i < len(o.axes); i++ {
		if k.axes[i] != o.axes[i] {
			return k.axes[i] < o.axes[i]
		}
	}
	if len(k.axes) != len(o.axes) {
		return len(k.axes) < len(o.axes)
	}
	if c := compareInts(k.signs, o.signs); c != 0 {
		return c < 0
	}
	for i := 0; i < len(k.values) && i < len(o.values); i++ {
		if k.values[i] != o.values[i] {
			return k.values[i] < o.values[i]
		}
	}
	return len(k.values) < len(o.values)
}

func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// sortKeys orders masters by rank (number of non-default axes) first.
// Masters sitting on an axis point of a single-axis master come before
// others of the same rank.
func sortKeys(locs []designspace.Location, axisOrder []string) []locationKey {
	axisPoints := map[string]map[float64]bool{}
	for _, l := range locs {
		if len(l) != 1 {
			continue
		}
		for axis, v := range l {
			if axisPoints[axis] == nil {
				axisPoints[axis] = map[float64]bool{0: true}
			}
			axisPoints[axis][v] = true
		}
	}
	position := map[string]int{}
	for i, a := range axisOrder {
		position[a] = i
	}
	keys := make([]locationKey, len(locs))
	for i, l := range locs {
		k := locationKey{rank: len(l)}
		for axis, v := range l {
			if axisPoints[axis][v] {
				k.onPoint++
			}
		}
		for _, a := range axisOrder {
			if _, ok := l[a]; ok {
				k.axes = append(k.axes, a)
			}
		}
		for _, a := range l.Names() {
			if _, ok := position[a]; !ok {
				k.axes = append(k.axes, a)
			}
		}
		for _, a := range k.axes {
			if p, ok := position[a]; ok {
				k.axisIndex = append(k.axisIndex, p)
			} else {
				k.axisIndex = append(k.axisIndex, 0x10000)
			}
			k.signs = append(k.signs, sign(l[a]))
			k.values = append(k.values, math.Abs(l[a]))
		}
		keys[i] = k
	}
	return keys
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// --- Supports and weights --------------------------------------------------

func (m *Model) regions() []Support {
	minV, maxV := map[string]float64{}, map[string]float64{}
	for _, l := range m.locations {
		for k, v := range l {
			if mn, ok := minV[k]; !ok || v < mn {
				minV[k] = v
			}
			if mx, ok := maxV[k]; !ok || v > mx {
				maxV[k] = v
			}
		}
	}
	regions := make([]Support, len(m.locations))
	for i, l := range m.locations {
		r := Support{}
		for axis, v := range l {
			if v > 0 {
				r[axis] = Triple{0, v, maxV[axis]}
			} else {
				r[axis] = Triple{minV[axis], v, 0}
			}
		}
		regions[i] = r
	}
	return regions
}

func sameAxes(a, b Support) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// computeSupports shrinks the region of each master so that it does not
// reach over previous masters of the same axes. A region is split along the
// axis with the largest ratio of the previous master's coordinate.
func (m *Model) computeSupports() {
	regions := m.regions()
	m.supports = make([]Support, len(regions))
	for i, region := range regions {
		for _, prev := range regions[:i] {
			if !sameAxes(prev, region) {
				continue
			}
			relevant := true
			for axis, t := range region {
				p := prev[axis].Peak
				if !(p == t.Peak || (t.Lower < p && p < t.Upper)) {
					relevant = false
					break
				}
			}
			if !relevant {
				continue
			}
			best := Support{}
			bestRatio := -1.0
			for axis := range prev {
				val := prev[axis].Peak
				t := region[axis]
				nt := t
				var ratio float64
				switch {
				case val < t.Peak:
					nt.Lower = val
					ratio = (val - t.Peak) / (t.Lower - t.Peak)
				case t.Peak < val:
					nt.Upper = val
					ratio = (val - t.Peak) / (t.Upper - t.Peak)
				default:
					continue
				}
				if ratio > bestRatio {
					best = Support{}
					bestRatio = ratio
				}
				if ratio == bestRatio {
					best[axis] = nt
				}
			}
			for axis, t := range best {
				region[axis] = t
			}
		}
		m.supports[i] = region
	}
}

func (m *Model) computeDeltaWeights() {
	m.deltaWeights = make([]map[int]float64, len(m.locations))
	for i, l := range m.locations {
		w := map[int]float64{}
		for j, s := range m.supports[:i] {
			if scalar := SupportScalar(l, s); scalar != 0 {
				w[j] = scalar
			}
		}
		m.deltaWeights[i] = w
	}
}

// --- Interpolation ---------------------------------------------------------

// Deltas converts master values, given in the order of the locations the
// model has been created with, to deltas in model order. All value vectors
// must have equal length.
func (m *Model) Deltas(masterValues [][]float64) [][]float64 {
	out := make([][]float64, len(m.order))
	for i, mi := range m.order {
		delta := make([]float64, len(masterValues[mi]))
		copy(delta, masterValues[mi])
		for j, weight := range m.deltaWeights[i] {
			for k := range delta {
				delta[k] -= out[j][k] * weight
			}
		}
		out[i] = delta
	}
	return out
}

// Scalars returns the support scalars at normalized location loc, in model
// order.
func (m *Model) Scalars(loc designspace.Location) []float64 {
	scalars := make([]float64, len(m.supports))
	for i, s := range m.supports {
		scalars[i] = SupportScalar(loc, s)
	}
	return scalars
}

// InterpolateFromDeltas sums up deltas weighted by the support scalars at
// normalized location loc.
func (m *Model) InterpolateFromDeltas(loc designspace.Location, deltas [][]float64) []float64 {
	var v []float64
	for i, scalar := range m.Scalars(loc) {
		if scalar == 0 {
			continue
		}
		if v == nil {
			v = make([]float64, len(deltas[i]))
		}
		for k, d := range deltas[i] {
			v[k] += d * scalar
		}
	}
	return v
}

// Interpolate returns the value vector at normalized location loc for
// master values given in the order of the model's input locations.
func (m *Model) Interpolate(loc designspace.Location, masterValues [][]float64) []float64 {
	return m.InterpolateFromDeltas(loc, m.Deltas(masterValues))
}
