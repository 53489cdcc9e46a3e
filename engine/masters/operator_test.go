package masters

import (
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/npillmayer/spaceranger/engine/compile"
	"github.com/npillmayer/spaceranger/engine/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func stem(advance, width float64) *outline.Glyph {
	return outline.NewBuilder(advance).
		MoveTo(arithm.P(0, 0)).
		LineTo(arithm.P(width, 0)).
		LineTo(arithm.P(width, 700)).
		LineTo(arithm.P(0, 700)).
		Glyph()
}

func bowl(advance float64) *outline.Glyph {
	return outline.NewBuilder(advance).
		MoveTo(arithm.P(0, 0)).
		LineTo(arithm.P(200, 0)).
		CubeTo(arithm.P(400, 0), arithm.P(400, 400), arithm.P(200, 400)).
		LineTo(arithm.P(0, 400)).
		Glyph()
}

func testSpace() *designspace.DesignSpace {
	return &designspace.DesignSpace{
		Axes: []designspace.Axis{{Name: "weight", Minimum: 300, Default: 400, Maximum: 700}},
		DiscreteAxes: []designspace.DiscreteAxis{
			{Name: "italic", Values: []float64{0, 1}, Default: 0},
		},
		Sources: []designspace.Source{
			{Name: "Light", Location: designspace.Location{"weight": 300, "italic": 0}},
			{Name: "Regular", Location: designspace.Location{"weight": 400, "italic": 0}},
			{Name: "Bold", Location: designspace.Location{"weight": 700, "italic": 0}},
			{Name: "Italic", Location: designspace.Location{"weight": 400, "italic": 1}},
		},
	}
}

func testFonts() []*GlyphSet {
	light := NewGlyphSet("Light", 1000, -200)
	light.AddGlyph("I", stem(200, 40), 'I')
	light.AddGlyph("D", bowl(560), 'D')
	light.AddGlyph("O", stem(500, 40), 'O')
	regular := NewGlyphSet("Regular", 1000, -200)
	regular.AddGlyph("I", stem(240, 80), 'I')
	regular.AddGlyph("D", bowl(600), 'D')
	regular.AddGlyph("O", stem(540, 80), 'O')
	regular.AddGlyph("x", stem(300, 60), 'x')
	regular.Kern("I", "D", -40)
	bold := NewGlyphSet("Bold", 1000, -250)
	bold.AddGlyph("I", stem(400, 200), 'I')
	bold.AddGlyph("I.heavy", stem(500, 300))
	rotated := bowl(700)
	rotated.Contours[0] = rotated.Contours[0].Rotated(1)
	bold.AddGlyph("D", rotated, 'D')
	o := stem(600, 200)
	o.AppendGlyph(stem(0, 20), 100, 100)
	bold.AddGlyph("O", o, 'O')
	bold.AddGlyph("x", stem(400, 100), 'x')
	bold.AddGlyph("y", stem(400, 100), 'y')
	bold.Kern("I", "D", -80)
	italic := NewGlyphSet("Italic", 1000, -200)
	italic.AddGlyph("I", stem(240, 70), 'I')
	return []*GlyphSet{light, regular, bold, italic}
}

var heavyI = rules.Rule{
	Name:          "heavy I",
	ConditionSets: []rules.ConditionSet{{rules.AtLeast("weight", 600)}},
	Subs:          []rules.Substitution{{From: "I", To: "I.heavy"}},
}

type OperatorTestEnviron struct {
	suite.Suite
	teardown func()
	op       *Operator
}

func TestOperator(t *testing.T) {
	suite.Run(t, new(OperatorTestEnviron))
}

func (env *OperatorTestEnviron) SetupTest() {
	env.teardown = gotestingadapter.QuickConfig(env.T(), "spaceranger.masters")
	op, err := NewOperator(testSpace(), testFonts(), []rules.Rule{heavyI})
	env.Require().NoError(err)
	env.op = op
}

func (env *OperatorTestEnviron) TearDownTest() {
	env.teardown()
}

func stemWidth(g *outline.Glyph) float64 {
	return real(g.Contours[0].Segments[0].On)
}

func (env *OperatorTestEnviron) TestGlyphAtSources() {
	g := env.op.MakeOneGlyph("I", designspace.Location{"weight": 400, "italic": 0})
	env.Require().NotNil(g)
	env.Equal(240.0, g.Width)
	env.Equal(80.0, stemWidth(g))
	g = env.op.MakeOneGlyph("I", designspace.Location{"weight": 700, "italic": 0})
	env.Require().NotNil(g)
	env.InDelta(400.0, g.Width, 1e-9)
	env.InDelta(200.0, stemWidth(g), 1e-9)
}

func (env *OperatorTestEnviron) TestGlyphBetweenSources() {
	g := env.op.MakeOneGlyph("I", designspace.Location{"weight": 550, "italic": 0})
	env.Require().NotNil(g)
	env.InDelta(320.0, g.Width, 1e-9)
	env.InDelta(140.0, stemWidth(g), 1e-9)
	g = env.op.MakeOneGlyph("I", designspace.Location{"weight": 350, "italic": 0})
	env.Require().NotNil(g)
	env.InDelta(220.0, g.Width, 1e-9)
	env.InDelta(60.0, stemWidth(g), 1e-9)
}

func (env *OperatorTestEnviron) TestMissingAxesAreDefaults() {
	g := env.op.MakeOneGlyph("I", designspace.Location{})
	env.Require().NotNil(g)
	env.Equal(240.0, g.Width)
}

func (env *OperatorTestEnviron) TestSparseAndMissingGlyphs() {
	// "x" is missing in Light: it does not take part
	g := env.op.MakeOneGlyph("x", designspace.Location{"weight": 350, "italic": 0})
	env.Require().NotNil(g)
	env.InDelta(300.0, g.Width, 1e-9)
	g = env.op.MakeOneGlyph("x", designspace.Location{"weight": 550, "italic": 0})
	env.Require().NotNil(g)
	env.InDelta(350.0, g.Width, 1e-9)
	// "y" is missing in the default source
	env.Nil(env.op.MakeOneGlyph("y", designspace.Location{"weight": 700, "italic": 0}))
	env.Nil(env.op.MakeOneGlyph("nonexistent", designspace.Location{}))
}

func (env *OperatorTestEnviron) TestIncompatibleMasters() {
	env.Nil(env.op.MakeOneGlyph("O", designspace.Location{"weight": 500}))
	env.Nil(env.op.MakeOneGlyph("D", designspace.Location{"weight": 500}))
}

func (env *OperatorTestEnviron) TestDiscreteSubspace() {
	g := env.op.MakeOneGlyph("I", designspace.Location{"weight": 700, "italic": 1})
	env.Require().NotNil(g)
	env.Equal(70.0, stemWidth(g))
	env.Nil(env.op.MakeOneGlyph("x", designspace.Location{"italic": 1}))
}

func (env *OperatorTestEnviron) TestInfoAndKerning() {
	info := env.op.MakeOneInfo(designspace.Location{"weight": 550, "italic": 0})
	env.InDelta(1000.0, info.UnitsPerEm, 1e-9)
	env.InDelta(-225.0, info.Descender, 1e-9)
	pairs := []compile.Pair{{Left: "I", Right: "D"}, {Left: "D", Right: "I"}}
	kerning := env.op.MakeOneKerning(designspace.Location{"weight": 550, "italic": 0}, pairs)
	env.Len(kerning, 1)
	env.InDelta(-60.0, kerning[pairs[0]], 1e-9)
	// Light has no kerning: its value is 0
	kerning = env.op.MakeOneKerning(designspace.Location{"weight": 350, "italic": 0}, pairs)
	env.InDelta(-20.0, kerning[pairs[0]], 1e-9)
	env.Empty(env.op.MakeOneKerning(designspace.Location{}, nil))
}

func (env *OperatorTestEnviron) TestRulesAndLookups() {
	names := env.op.ProcessRules(designspace.Location{"weight": 650}, []string{"I", "D"})
	env.Equal([]string{"I.heavy", "D"}, names)
	env.Equal([]string{"I", "D"}, env.op.ProcessRules(designspace.Location{}, []string{"I", "D"}))
	env.Equal(2, env.op.SourceAt(designspace.Location{"weight": 700, "italic": 0}))
	env.Equal(-1, env.op.SourceAt(designspace.Location{"weight": 500, "italic": 0}))
	env.Equal("I", env.op.CharacterMap(designspace.Location{"italic": 0})['I'])
	env.Equal([]string{"I", "D", "O", "x"}, env.op.GlyphNames(designspace.Location{"italic": 0}))
}

func (env *OperatorTestEnviron) TestAdvisor() {
	adv := NewAdvisor(env.op)
	dl := designspace.Location{"italic": 0}
	env.True(adv.Check("I", dl))
	env.False(adv.Check("D", dl))
	grp, ok := adv.Group("O", dl)
	env.True(ok)
	env.True(grp.Unresolvable)
	snapshot := adv.Snapshot([]string{"I", "D", "O", "y", "unknown"}, dl)
	env.Equal(1, snapshot.Size())
	env.True(snapshot.Contains("O"))
	// "D" has been repaired in place
	env.True(adv.Check("D", dl))
	g := env.op.MakeOneGlyph("D", designspace.Location{"weight": 700, "italic": 0})
	env.Require().NotNil(g)
	env.Equal(outline.Line, g.Contours[0].Segments[0].Type)
}

func TestOperatorNeedsDefaultSources(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.masters")
	defer teardown()
	//
	ds := testSpace()
	_, err := NewOperator(ds, testFonts()[:3], nil)
	assert.Equal(t, core.EMISMATCH, core.Code(err))
	ds.Sources = ds.Sources[:3]
	_, err = NewOperator(ds, testFonts()[:3], nil)
	assert.Equal(t, core.EMISSING, core.Code(err), "italic sub-space has no default source")
	bad := rules.Rule{Name: "bad", ConditionSets: []rules.ConditionSet{{rules.Between("weight", 700, 300)}}}
	_, err = NewOperator(testSpace(), testFonts(), []rules.Rule{bad})
	assert.True(t, core.IsInvalid(err))
}

func TestScaledGlyphSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.masters")
	defer teardown()
	//
	regular := testFonts()[1]
	condensed := regular.Scaled("Condensed", 0.5)
	require.NotNil(t, condensed.Glyph("I"))
	assert.Equal(t, 120.0, condensed.Glyph("I").Width)
	assert.Equal(t, -20.0, condensed.Kerning[compile.Pair{Left: "I", Right: "D"}])
	assert.Equal(t, regular.GlyphOrder, condensed.GlyphOrder)
	assert.Equal(t, "D", condensed.CharacterMap['D'])
	slanted := regular.Slanted("Slanted", 0.2)
	assert.Equal(t, regular.Glyph("I").Width, slanted.Glyph("I").Width)
	assert.True(t, slanted.Glyph("D").Compatible(regular.Glyph("D")))
}
