package main

import (
	"math"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/engine/masters"
	"github.com/npillmayer/spaceranger/engine/rules"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	goRegular = goregular.TTF
	goItalic  = goitalic.TTF
)

// Synthetic masters are derived from a single font per discrete location.
const (
	condensedWidth = 60   // percent of the regular width
	maxSlant       = 12.0 // degrees
)

// loadMaster reads a master font. A name may be a path or the file name of
// a system font. With an empty name, fallback is parsed instead.
func loadMaster(label, name string, fallback []byte) (*masters.GlyphSet, error) {
	data := fallback
	if name != "" {
		path := name
		if _, err := os.Stat(path); err != nil {
			if path, err = findfont.Find(name); err != nil {
				return nil, core.WrapError(err, core.EMISSING, "cannot locate font %q", name)
			}
			tracer().Debugf("%s is a system font", name)
		}
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, core.WrapError(err, core.EMISSING, "cannot read font %q", path)
		}
	}
	gs, err := masters.LoadSFNT(label, data, masters.ASCII())
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded master %s with %d glyphs", gs.Name, len(gs.GlyphOrder))
	return gs, nil
}

// demoSpace builds a design space with a width and a slant axis, and a
// discrete italic axis. Condensed and slanted sources are synthesized from
// the upright and italic fonts.
func demoSpace(upright, italic *masters.GlyphSet) (*designspace.DesignSpace, []*masters.GlyphSet) {
	at := func(width, slant, ital float64) designspace.Location {
		return designspace.Location{"width": width, "slant": slant, "italic": ital}
	}
	ds := &designspace.DesignSpace{
		Axes: []designspace.Axis{
			{Name: "width", Minimum: condensedWidth, Default: 100, Maximum: 100},
			{Name: "slant", Minimum: 0, Default: 0, Maximum: maxSlant},
		},
		DiscreteAxes: []designspace.DiscreteAxis{
			{Name: "italic", Values: []float64{0, 1}, Default: 0},
		},
		Sources: []designspace.Source{
			{Name: "Regular", Location: at(100, 0, 0)},
			{Name: "Condensed", Location: at(condensedWidth, 0, 0)},
			{Name: "Slanted", Location: at(100, maxSlant, 0)},
			{Name: "Italic", Location: at(100, 0, 1)},
			{Name: "Italic Condensed", Location: at(condensedWidth, 0, 1)},
		},
		Instances: []designspace.Instance{
			{Name: "Semicondensed", Location: at(80, 0, 0)},
			{Name: "Semicondensed Oblique", Location: at(80, maxSlant/2, 0)},
			{Name: "Italic Semicondensed", Location: at(80, 0, 1)},
		},
	}
	shear := math.Tan(maxSlant * math.Pi / 180)
	fonts := []*masters.GlyphSet{
		upright,
		upright.Scaled("Condensed", condensedWidth/100.0),
		upright.Slanted("Slanted", shear),
		italic,
		italic.Scaled("Italic Condensed", condensedWidth/100.0),
	}
	return ds, fonts
}

// demoRules swaps the dollar sign for the cent sign in narrow widths.
func demoRules() []rules.Rule {
	return []rules.Rule{{
		Name: "narrow-currency",
		ConditionSets: []rules.ConditionSet{
			{rules.AtMost("width", 75)},
		},
		Subs: []rules.Substitution{{From: "dollar", To: "cent"}},
	}}
}
