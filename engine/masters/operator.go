package masters

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/npillmayer/spaceranger/engine/compile"
	"github.com/npillmayer/spaceranger/engine/rules"
)

// Operator interpolates glyphs, metrics and kerning between the sources of
// a design space. It implements compile.Interpolator.
//
// Each source of the design space is paired with a glyph set. Variation
// models are created lazily per discrete location and per combination of
// sources carrying a glyph, and are cached. Operator is safe for concurrent
// use, as long as glyph sets are not modified concurrently.
type Operator struct {
	space  *designspace.DesignSpace
	fonts  []*GlyphSet
	rules  []rules.Rule
	mu     sync.Mutex
	models map[string]*Model
}

var _ compile.Interpolator = (*Operator)(nil)

// NewOperator creates an interpolation engine for a design space. fonts
// holds one glyph set per source of ds, in the order of ds.Sources. Every
// discrete sub-space of ds needs a source at its default location.
func NewOperator(ds *designspace.DesignSpace, fonts []*GlyphSet, rs []rules.Rule) (*Operator, error) {
	if ds == nil {
		return nil, core.Error(core.EMISSING, "no design space")
	}
	if len(fonts) != len(ds.Sources) {
		return nil, core.Error(core.EMISMATCH, "%d glyph sets for %d sources", len(fonts), len(ds.Sources))
	}
	for i, f := range fonts {
		if f == nil {
			return nil, core.Error(core.EMISSING, "source %q has no glyph set", ds.Sources[i].Name)
		}
	}
	for _, r := range rs {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	op := &Operator{
		space:  ds,
		fonts:  fonts,
		rules:  rs,
		models: make(map[string]*Model),
	}
	for _, dl := range op.discreteLocations() {
		if ds.DefaultSource(dl) < 0 {
			return nil, core.Error(core.EMISSING, "no default source for discrete location %v", dl)
		}
	}
	tracer().Infof("operator for %d sources, %d axes", len(fonts), len(ds.Axes))
	return op, nil
}

// DesignSpace returns the design space the operator interpolates in.
func (op *Operator) DesignSpace() *designspace.DesignSpace {
	return op.space
}

// Rules returns the substitution rules of the design space.
func (op *Operator) Rules() []rules.Rule {
	return op.rules
}

// ProcessRules applies the substitution rules at loc to glyphNames.
func (op *Operator) ProcessRules(loc designspace.Location, glyphNames []string) []string {
	return rules.Process(op.rules, op.space.Complete(loc), glyphNames)
}

// Font returns the glyph set of source i.
func (op *Operator) Font(i int) *GlyphSet {
	return op.fonts[i]
}

// DefaultFont returns the glyph set of the default source of a discrete
// location.
func (op *Operator) DefaultFont(discrete designspace.Location) *GlyphSet {
	i := op.space.DefaultSource(discrete)
	if i < 0 {
		return nil
	}
	return op.fonts[i]
}

// GlyphNames returns the glyph names of the default source of a discrete
// location, in glyph order.
func (op *Operator) GlyphNames(discrete designspace.Location) []string {
	if f := op.DefaultFont(discrete); f != nil {
		return f.GlyphOrder
	}
	return nil
}

// CharacterMap returns the character map of the default source of a
// discrete location.
func (op *Operator) CharacterMap(discrete designspace.Location) map[rune]string {
	if f := op.DefaultFont(discrete); f != nil {
		return f.CharacterMap
	}
	return nil
}

func (op *Operator) discreteLocations() []designspace.Location {
	if dls := op.space.DiscreteLocations(); len(dls) > 0 {
		return dls
	}
	return []designspace.Location{{}}
}

// sourcesFor returns the indices of the sources in the discrete sub-space
// of loc, and the index of its default source.
func (op *Operator) sourcesFor(loc designspace.Location) (designspace.Location, []int, int) {
	_, discrete := op.space.Split(op.space.Complete(loc))
	def := op.space.DefaultSource(discrete)
	var indices []int
	for i, s := range op.space.Sources {
		if op.space.Complete(s.Location).Matches(discrete) {
			indices = append(indices, i)
		}
	}
	return discrete, indices, def
}

// model returns the (cached) variation model over the given sources.
func (op *Operator) model(discrete designspace.Location, sources []int) (*Model, error) {
	var key strings.Builder
	key.WriteString(discrete.Key())
	for _, i := range sources {
		fmt.Fprintf(&key, "|%d", i)
	}
	op.mu.Lock()
	defer op.mu.Unlock()
	if m, ok := op.models[key.String()]; ok {
		return m, nil
	}
	locs := make([]designspace.Location, len(sources))
	for j, i := range sources {
		locs[j] = op.space.Normalize(op.space.Complete(op.space.Sources[i].Location))
	}
	m, err := NewModel(locs, op.space.AxisNames())
	if err != nil {
		return nil, err
	}
	op.models[key.String()] = m
	tracer().Debugf("new variation model for %d sources at %v", len(sources), discrete)
	return m, nil
}

// Invalidate drops all cached variation models. Call it after sources have
// been moved in the design space.
func (op *Operator) Invalidate() {
	op.mu.Lock()
	defer op.mu.Unlock()
	op.models = make(map[string]*Model)
}

// MakeOneGlyph returns the glyph name at loc, or nil if the glyph is missing
// from the default source or its masters are incompatible. Sources not
// carrying the glyph do not take part in its interpolation.
func (op *Operator) MakeOneGlyph(name string, loc designspace.Location) *outline.Glyph {
	discrete, indices, def := op.sourcesFor(loc)
	if def < 0 {
		return nil
	}
	base := op.fonts[def].Glyph(name)
	if base == nil {
		return nil
	}
	var sources []int
	var values [][]float64
	for _, i := range indices {
		g := op.fonts[i].Glyph(name)
		if g == nil {
			continue
		}
		if !g.Compatible(base) {
			tracer().Debugf("glyph %q of source %q is incompatible", name, op.space.Sources[i].Name)
			return nil
		}
		sources = append(sources, i)
		values = append(values, g.Coordinates())
	}
	m, err := op.model(discrete, sources)
	if err != nil {
		tracer().Errorf("glyph %q: %v", name, err)
		return nil
	}
	v := m.Interpolate(op.space.Normalize(loc), values)
	return base.WithCoordinates(v)
}

// MakeOneInfo returns the interpolated font metrics at loc.
func (op *Operator) MakeOneInfo(loc designspace.Location) compile.FontInfo {
	discrete, indices, _ := op.sourcesFor(loc)
	values := make([][]float64, len(indices))
	for j, i := range indices {
		values[j] = []float64{op.fonts[i].UnitsPerEm, op.fonts[i].Descender}
	}
	m, err := op.model(discrete, indices)
	if err != nil {
		tracer().Errorf("font info: %v", err)
		return compile.FontInfo{}
	}
	v := m.Interpolate(op.space.Normalize(loc), values)
	return compile.FontInfo{UnitsPerEm: v[0], Descender: v[1]}
}

// MakeOneKerning returns the interpolated kerning values at loc for pairs.
// Pairs missing in a source count as 0 for that source; pairs interpolating
// to 0 are left out of the result.
func (op *Operator) MakeOneKerning(loc designspace.Location, pairs []compile.Pair) map[compile.Pair]float64 {
	kerning := make(map[compile.Pair]float64)
	if len(pairs) == 0 {
		return kerning
	}
	discrete, indices, _ := op.sourcesFor(loc)
	values := make([][]float64, len(indices))
	for j, i := range indices {
		values[j] = make([]float64, len(pairs))
		for k, p := range pairs {
			values[j][k] = op.fonts[i].Kerning[p]
		}
	}
	m, err := op.model(discrete, indices)
	if err != nil {
		tracer().Errorf("kerning: %v", err)
		return kerning
	}
	v := m.Interpolate(op.space.Normalize(loc), values)
	for k, p := range pairs {
		if v[k] != 0 {
			kerning[p] = v[k]
		}
	}
	return kerning
}

// SourceAt returns the index of the source located exactly at loc, or -1.
func (op *Operator) SourceAt(loc designspace.Location) int {
	c := op.space.Complete(loc)
	for i, s := range op.space.Sources {
		if op.space.Complete(s.Location).Equal(c) {
			return i
		}
	}
	return -1
}
