package ranger

import (
	"testing"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/npillmayer/spaceranger/engine/masters"
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

// bowl has smooth joints at (200,0) and (200,400), unless kink moves the
// first control point off the baseline.
func bowl(kink float64) *outline.Glyph {
	return outline.NewBuilder(600).
		MoveTo(arithm.P(0, 0)).
		LineTo(arithm.P(200, 0)).
		CubeTo(arithm.P(400, kink), arithm.P(400, 400), arithm.P(200, 400)).
		LineTo(arithm.P(0, 400)).
		Glyph()
}

func testOperator(t *testing.T) *masters.Operator {
	ds := &designspace.DesignSpace{
		Axes: []designspace.Axis{
			{Name: "weight", Minimum: 300, Default: 400, Maximum: 700},
			{Name: "width", Minimum: 50, Default: 100, Maximum: 100},
		},
		Sources: []designspace.Source{
			{Name: "Regular", Location: designspace.Location{"weight": 400, "width": 100}},
			{Name: "Bold", Location: designspace.Location{"weight": 700, "width": 100}},
			{Name: "Condensed", Location: designspace.Location{"weight": 400, "width": 50}},
		},
		Instances: []designspace.Instance{
			{Name: "Bold Condensed", Location: designspace.Location{"weight": 700, "width": 50}},
		},
	}
	regular := masters.NewGlyphSet("Regular", 1000, -200)
	regular.AddGlyph("H", stem(600, 80), 'H')
	regular.AddGlyph("D", bowl(0), 'D')
	regular.AddGlyph("O", stem(600, 80), 'O')
	bold := masters.NewGlyphSet("Bold", 1000, -200)
	bold.AddGlyph("H", stem(800, 200), 'H')
	bold.AddGlyph("D", bowl(40), 'D')
	o := stem(800, 200)
	o.AppendGlyph(stem(0, 20), 100, 100)
	bold.AddGlyph("O", o, 'O')
	condensed := regular.Scaled("Condensed", 0.5)
	op, err := masters.NewOperator(ds, []*masters.GlyphSet{regular, bold, condensed}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return op
}

type ControllerTestEnviron struct {
	suite.Suite
	teardown func()
	ctrl     *Controller
}

func TestController(t *testing.T) {
	suite.Run(t, new(ControllerTestEnviron))
}

func (env *ControllerTestEnviron) SetupTest() {
	env.teardown = gotestingadapter.QuickConfig(env.T(), "spaceranger.ranger")
	op := testOperator(env.T())
	env.ctrl = New(op, masters.NewAdvisor(op), DefaultSettings())
}

func (env *ControllerTestEnviron) TearDownTest() {
	env.teardown()
}

func (env *ControllerTestEnviron) refresh() *Frame {
	frame, err := env.ctrl.Refresh()
	env.Require().NoError(err)
	env.Require().NotNil(frame)
	return frame
}

func (env *ControllerTestEnviron) cell(f *Frame, c, r int) CellFrame {
	rows := env.ctrl.Grid().RowCount()
	return f.Cells[c*rows+r]
}

func (env *ControllerTestEnviron) TestDefaultGrid() {
	f := env.refresh()
	env.Equal("width", env.ctrl.Resolved().X.Name)
	env.Equal("weight", env.ctrl.Resolved().Y.Name)
	env.Equal([]float64{50, 62.5, 75, 87.5, 100}, env.ctrl.Grid().Columns)
	env.Equal([]float64{300, 400, 500, 600, 700}, env.ctrl.Grid().Rows)
	env.Len(f.Cells, 25)
	env.Equal([]string{"H", "E", "L", "L", "O"}, f.GlyphNames)
	env.Equal([]string{"O"}, f.Incompatible)
	regular := env.cell(f, 4, 1)
	env.True(regular.IsSource)
	env.Equal("weight: 400\nwidth: 100", regular.Label)
	env.InDelta(0.1, regular.Scale, 1e-12)
	env.InDelta(600.0, regular.Glyph.Width, 1e-9, "only H is compiled")
	bold := env.cell(f, 4, 4)
	env.InDelta(800.0, bold.Glyph.Width, 1e-9)
	env.True(env.cell(f, 0, 4).IsInstance)
	env.Equal(NoBorder, regular.Border)
}

func (env *ControllerTestEnviron) TestGeometry() {
	f := env.refresh()
	// fit: the widest glyph of the last column is Bold's H, 800 units at scale 0.1
	env.InDelta(80.0+20.0, f.Geometry.ColumnWidths[4], 1e-9)
	env.Less(f.Geometry.ColumnWidths[0], f.Geometry.ColumnWidths[4])
	top, bottom := env.cell(f, 0, 0), env.cell(f, 0, 4)
	env.Greater(imag(top.Origin), imag(bottom.Origin), "row 0 is on top")
	regular := env.cell(f, 4, 1)
	env.InDelta((100.0-60.0)/2, real(regular.GlyphPosition), 1e-9)
	env.InDelta(10.0+20.0, imag(regular.GlyphPosition), 1e-9)
	env.Same(env.cell(f, 2, 2).Glyph, f.CellAt(env.cell(f, 2, 2).Origin+arithm.P(1, 1)).Glyph)
	env.Require().NoError(env.ctrl.Set("column-widths", "mono"))
	f = env.refresh()
	for _, w := range f.Geometry.ColumnWidths {
		env.InDelta(100.0, w, 1e-9)
	}
}

func (env *ControllerTestEnviron) TestRefreshIsLazy() {
	f1 := env.refresh()
	env.False(env.ctrl.IsDirty())
	env.Same(f1, env.refresh())
	env.Require().NoError(env.ctrl.Set("highlight-sources", "true"))
	env.True(env.ctrl.IsDirty())
	f2 := env.refresh()
	env.NotSame(f1, f2)
	env.Equal(SourceBorder, env.cell(f2, 4, 1).Border)
	env.Equal(f1.Version+1, f2.Version)
	env.Equal(DirtyBuild, DirtyFor("insert-sources"))
	env.Equal(DirtyPrepare, DirtyFor("text"))
	env.Equal(DirtyOptions, DirtyFor("discrete-location"))
	env.Equal(DirtyUpdate, DirtyFor("apply-kerning"))
}

func (env *ControllerTestEnviron) TestRejectedSetting() {
	f1 := env.refresh()
	err := env.ctrl.Set("x-count", "lots")
	env.True(core.IsInvalid(err))
	env.False(env.ctrl.IsDirty())
	env.Equal(f1.Version, env.ctrl.Settings().Version)
}

func (env *ControllerTestEnviron) TestInsertSourcesAndInstances() {
	env.Require().NoError(env.ctrl.Set("x-mode", "locations"))
	env.Require().NoError(env.ctrl.Set("x-locations", "60 80"))
	env.refresh()
	env.Equal([]float64{60, 80}, env.ctrl.Grid().Columns)
	env.Require().NoError(env.ctrl.Set("insert-sources", "true"))
	env.refresh()
	env.Equal([]float64{50, 60, 80, 100}, env.ctrl.Grid().Columns)
	src, ok := env.ctrl.SourceAt(0, 1)
	env.True(ok)
	env.Equal("Condensed", src.Name)
	_, ok = env.ctrl.SourceAt(1, 1)
	env.False(ok)
	_, ok = env.ctrl.SourceAt(10, 1)
	env.False(ok)
	env.Require().NoError(env.ctrl.Set("insert-sources", "false"))
	env.refresh()
	env.Equal([]float64{60, 80}, env.ctrl.Grid().Columns, "insertion is not cumulative")
}

func (env *ControllerTestEnviron) TestHighlights() {
	env.Require().NoError(env.ctrl.Set("highlight-sources", "true"))
	env.Require().NoError(env.ctrl.Set("highlight-instances", "true"))
	f := env.refresh()
	env.Equal(SourceBorder, env.cell(f, 4, 1).Border)
	env.Equal(InstanceBorder, env.cell(f, 0, 4).Border)
	env.Equal(NoBorder, env.cell(f, 2, 2).Border)
}

func (env *ControllerTestEnviron) TestUnsmoothMarkers() {
	env.Require().NoError(env.ctrl.Set("text", "D"))
	env.Require().NoError(env.ctrl.Set("highlight-unsmooths", "true"))
	f := env.refresh()
	env.Empty(env.cell(f, 4, 1).Markers, "the default source is the model")
	markers := env.cell(f, 4, 4).Markers
	env.Require().Len(markers, 1)
	env.InDelta(200.0, real(markers[0].Position), 1e-9)
	env.InDelta(0.0, imag(markers[0].Position), 1e-9)
	env.Equal(1.0, markers[0].Alpha)
	env.InDelta(100.0, markers[0].Size, 1e-9)
	env.Require().NoError(env.ctrl.Set("highlight-unsmooths", "false"))
	f = env.refresh()
	env.Empty(env.cell(f, 4, 4).Markers)
}

func (env *ControllerTestEnviron) TestPrepolatorSwitch() {
	env.Require().NoError(env.ctrl.Set("use-prepolator", "false"))
	f := env.refresh()
	env.Empty(f.Incompatible)
	// the operator refuses incompatible masters by itself
	env.InDelta(600.0, env.cell(f, 4, 1).Glyph.Width, 1e-9)
}

func (env *ControllerTestEnviron) TestPlaceholderAndSuffix() {
	env.Require().NoError(env.ctrl.Set("text", "/?H"))
	env.Require().NoError(env.ctrl.Set("current-glyph", "D"))
	f := env.refresh()
	env.Equal([]string{"D", "H"}, f.GlyphNames)
	env.Empty(env.ctrl.Suffixes())
}

func (env *ControllerTestEnviron) TestEmptyText() {
	env.Require().NoError(env.ctrl.Set("text", ""))
	f := env.refresh()
	for _, c := range f.Cells {
		env.True(c.Glyph.IsEmpty())
		env.Equal(0.0, c.Glyph.Width)
	}
	env.InDelta(20.0, f.Geometry.ColumnWidths[0], 1e-9)
}

// blankAdvisor knows nothing about the glyphs.
type blankAdvisor struct{}

func (blankAdvisor) Snapshot([]string, designspace.Location) *hashset.Set { return nil }

func (env *ControllerTestEnviron) TestAdvisorWithoutSnapshot() {
	op := testOperator(env.T())
	env.ctrl = New(op, blankAdvisor{}, DefaultSettings())
	env.Require().NoError(env.ctrl.Set("text", "HD"))
	f := env.refresh()
	env.Empty(f.Incompatible)
	env.False(env.cell(f, 0, 0).Glyph.IsEmpty())
}

func (env *ControllerTestEnviron) TestInvalidUTF8Text() {
	env.Require().NoError(env.ctrl.Set("text", "H\xffD"))
	f := env.refresh()
	env.Equal([]string{"H", "\uFFFD", "D"}, f.GlyphNames)
	env.False(env.cell(f, 0, 0).Glyph.IsEmpty())
}
