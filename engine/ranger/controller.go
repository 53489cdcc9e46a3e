package ranger

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/outline"
	"github.com/npillmayer/spaceranger/engine/compile"
	"github.com/npillmayer/spaceranger/engine/gridlayout"
	"github.com/npillmayer/spaceranger/engine/sampling"
	"github.com/npillmayer/spaceranger/engine/smoothness"
	"github.com/npillmayer/spaceranger/engine/textinput"
)

// Engine is the interpolation engine a controller draws from.
// masters.Operator implements it.
type Engine interface {
	compile.Interpolator
	DesignSpace() *designspace.DesignSpace
	ProcessRules(loc designspace.Location, glyphNames []string) []string
	GlyphNames(discrete designspace.Location) []string
	CharacterMap(discrete designspace.Location) map[rune]string
}

// Advisor reports glyphs which cannot be interpolated. masters.Advisor
// implements it.
type Advisor interface {
	Snapshot(glyphNames []string, discrete designspace.Location) *hashset.Set
}

// Dirty flags the stages of a controller which have to be redone.
type Dirty uint8

// Stages, each implying the ones below it.
const (
	DirtyUpdate  Dirty = 1 << iota // glyphs changed: compile and lay out
	DirtyPrepare                   // text changed: derive glyph names
	DirtyBuild                     // sampling changed: rebuild the grid
	DirtyOptions                   // design space changed: resolve settings
	DirtyAll     = DirtyOptions | DirtyBuild | DirtyPrepare | DirtyUpdate
)

// Controller drives a grid view. It is not safe for concurrent use.
type Controller struct {
	engine   Engine
	advisor  Advisor // may be nil
	settings Settings
	resolved Settings
	Metrics  gridlayout.Metrics
	Origin   gridlayout.Origin
	dirty    Dirty
	grid     sampling.Grid
	names    []string
	suffixes []string
	frame    *Frame
}

// New creates a controller. advisor may be nil.
func New(engine Engine, advisor Advisor, settings Settings) *Controller {
	return &Controller{
		engine:   engine,
		advisor:  advisor,
		settings: settings,
		Metrics:  gridlayout.DefaultMetrics(),
		Origin:   gridlayout.BottomLeft,
		dirty:    DirtyAll,
	}
}

// Settings returns the settings of c, as set by the client.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Resolved returns the settings adapted to the design space, as of the last
// refresh.
func (c *Controller) Resolved() Settings {
	return c.resolved
}

// Set changes a single setting. Invalid values are rejected with an
// EINVALID error and leave the settings untouched.
func (c *Controller) Set(key, value string) error {
	s, err := c.settings.With(key, value)
	if err != nil {
		return err
	}
	c.settings = s
	c.Invalidate(DirtyFor(key))
	return nil
}

// SetSettings replaces all settings.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s
	c.Invalidate(DirtyAll)
}

// DirtyFor returns the stage which has to be redone after a change of the
// setting key.
func DirtyFor(key string) Dirty {
	switch key {
	case "discrete-location":
		return DirtyOptions
	case "x-axis", "x-mode", "x-count", "x-locations",
		"y-axis", "y-mode", "y-count", "y-locations",
		"insert-sources", "insert-instances":
		return DirtyBuild
	case "text", "suffix", "current-glyph":
		return DirtyPrepare
	}
	return DirtyUpdate
}

// Invalidate marks a stage, and implicitly all following stages, as dirty.
func (c *Controller) Invalidate(d Dirty) {
	c.dirty |= d
}

// IsDirty is true if the next refresh has work to do.
func (c *Controller) IsDirty() bool {
	return c.dirty != 0
}

// Grid returns the grid of the last refresh.
func (c *Controller) Grid() sampling.Grid {
	return c.grid
}

// GlyphNames returns the glyph names derived from the text input, as of the
// last refresh.
func (c *Controller) GlyphNames() []string {
	return c.names
}

// Suffixes returns the glyph name suffixes of the font, as of the last
// refresh.
func (c *Controller) Suffixes() []string {
	return c.suffixes
}

// Refresh redoes all dirty stages and returns an up to date frame. If
// nothing is dirty, the previous frame is returned. On error, the previous
// frame stays in place and the dirty stages stay dirty.
func (c *Controller) Refresh() (*Frame, error) {
	if c.engine == nil {
		return nil, core.Error(core.EMISSING, "controller has no interpolation engine")
	}
	if c.dirty == 0 {
		return c.frame, nil
	}
	ds := c.engine.DesignSpace()
	c.resolved = ResolveOptions(ds, c.settings)
	if c.dirty >= DirtyOptions {
		c.suffixes = textinput.Suffixes(c.engine.GlyphNames(c.resolved.DiscreteLocation))
	}
	if c.dirty >= DirtyBuild {
		grid, err := c.build(ds)
		if err != nil {
			return c.frame, err
		}
		c.grid = grid
	}
	if c.dirty >= DirtyPrepare {
		c.names = c.prepare()
	}
	c.frame = c.update(ds)
	c.dirty = 0
	return c.frame, nil
}

func (c *Controller) build(ds *designspace.DesignSpace) (sampling.Grid, error) {
	s := c.resolved
	discrete := s.DiscreteLocation
	req := sampling.GridRequest{
		Discrete:        discrete,
		Defaults:        designspace.Location{},
		Sources:         ds.SourceLocations(ds.SourcesForDiscreteLocation(discrete)),
		Instances:       ds.InstanceLocations(ds.InstancesForDiscreteLocation(discrete)),
		InsertSources:   s.InsertSources,
		InsertInstances: s.InsertInstances,
	}
	x, err := c.axisRequest(ds, s.X, req.Instances)
	if err != nil {
		return sampling.Grid{}, err
	}
	req.X = x
	if s.Y.Name != "" {
		y, err := c.axisRequest(ds, s.Y, req.Instances)
		if err != nil {
			return sampling.Grid{}, err
		}
		req.Y = &y
	}
	for _, a := range ds.Axes {
		if a.Name != s.X.Name && a.Name != s.Y.Name {
			req.Defaults[a.Name] = a.Default
		}
	}
	grid, err := sampling.BuildGrid(req)
	if err != nil {
		return grid, err
	}
	tracer().Infof("grid: %d × %d cells", grid.ColumnCount(), grid.RowCount())
	return grid, nil
}

func (c *Controller) axisRequest(ds *designspace.DesignSpace, a AxisSetting, instances []designspace.Location) (sampling.AxisRequest, error) {
	axis, ok := ds.Axis(a.Name)
	if !ok {
		return sampling.AxisRequest{}, core.Error(core.EINVALID, "no axis %q in design space", a.Name)
	}
	return sampling.AxisRequest{
		Name:           a.Name,
		Spec:           a.Spec(),
		Minimum:        axis.Minimum,
		Maximum:        axis.Maximum,
		Default:        axis.Default,
		InstanceCoords: sampling.InstanceCoordinates(instances, a.Name, c.resolved.DiscreteLocation),
	}, nil
}

func (c *Controller) prepare() []string {
	s := c.resolved
	names := textinput.Split(s.Text, c.engine.CharacterMap(s.DiscreteLocation))
	available := hashset.New()
	for _, name := range c.engine.GlyphNames(s.DiscreteLocation) {
		available.Add(name)
	}
	names = textinput.Process(names, s.CurrentGlyph, s.Suffix, available)
	tracer().Debugf("glyph names: %v", names)
	return names
}

func (c *Controller) update(ds *designspace.DesignSpace) *Frame {
	s := c.resolved
	incompatible := hashset.New()
	if s.UsePrepolator && c.advisor != nil && len(c.names) > 0 {
		if snapshot := c.advisor.Snapshot(c.names, s.DiscreteLocation); snapshot != nil {
			incompatible = snapshot
		}
	}
	frame := &Frame{
		Version:      s.Version,
		Metrics:      c.Metrics,
		Cells:        make([]CellFrame, len(c.grid.Cells)),
		GlyphNames:   c.names,
		Incompatible: sortedNames(incompatible),
	}
	columns := make([][]float64, c.grid.ColumnCount())
	for i, cell := range c.grid.Cells {
		info := c.engine.MakeOneInfo(cell.Location)
		glyph := c.compile(cell.Location, incompatible, false)
		scale := gridlayout.Scale(c.Metrics.PointSize, info.UnitsPerEm)
		frame.Cells[i] = CellFrame{
			Column:     cell.Column,
			Row:        cell.Row,
			Location:   cell.Location,
			Label:      cell.Location.Label(),
			IsSource:   cell.IsSource,
			IsInstance: cell.IsInstance,
			Glyph:      glyph,
			Info:       info,
			Scale:      scale,
		}
		columns[cell.Column] = append(columns[cell.Column], glyph.Width*scale)
	}
	frame.Geometry = gridlayout.Layout(columns, s.ColumnWidths, c.Metrics, c.grid.RowCount(), c.Origin)
	var points []smoothness.Point
	var model *outline.Glyph
	if s.HighlightUnsmooths {
		model = c.compile(ds.DefaultLocation(s.DiscreteLocation), incompatible, true)
		points = smoothness.FindSmoothPoints(model)
	}
	for i := range frame.Cells {
		cf := &frame.Cells[i]
		cf.Origin = frame.Geometry.Origin(cf.Column, cf.Row)
		cf.Width, cf.Height = frame.Geometry.CellSize(cf.Column)
		cf.GlyphPosition = gridlayout.GlyphPosition(cf.Width, cf.Glyph.Width, cf.Info.Descender,
			cf.Scale, c.Metrics.Padding)
		switch {
		case s.HighlightSources && cf.IsSource:
			cf.Border = SourceBorder
		case s.HighlightInstances && cf.IsInstance:
			cf.Border = InstanceBorder
		}
		if model != nil && cf.Scale > 0 {
			cf.Markers = c.markers(points, model, cf.Glyph, cf.Scale)
		}
	}
	tracer().Infof("frame v%d: %d cells, %d incompatible glyphs", frame.Version, len(frame.Cells), incompatible.Size())
	return frame
}

func (c *Controller) compile(loc designspace.Location, incompatible compile.NameSet, smooth bool) *outline.Glyph {
	s := c.resolved
	names := c.names
	if s.ApplyRules {
		names = c.engine.ProcessRules(loc, names)
	}
	return compile.Compile(c.engine, compile.Request{
		GlyphNames:   names,
		Location:     loc,
		Incompatible: incompatible,
		Kerning:      s.ApplyKerning,
		Smooth:       smooth,
	})
}

func (c *Controller) markers(points []smoothness.Point, model, glyph *outline.Glyph, scale float64) []Marker {
	samples := smoothness.Compare(points, len(model.Contours), glyph,
		smoothness.DefaultTolerance, c.resolved.UnsmoothThreshold)
	if len(samples) == 0 {
		return nil
	}
	size := c.Metrics.PointSize * 0.1 / scale
	markers := make([]Marker, len(samples))
	for i, sample := range samples {
		on := glyph.Contours[sample.Contour].Segments[sample.Segment].On
		markers[i] = Marker{
			Position: on,
			Size:     size,
			Alpha:    sample.Deviation,
		}
	}
	return markers
}

// SourceAt returns the source located at the cell at column and row of the
// last refresh. The second return value is false if the cell is not a
// source.
func (c *Controller) SourceAt(column, row int) (designspace.Source, bool) {
	if column < 0 || column >= c.grid.ColumnCount() || row < 0 || row >= c.grid.RowCount() {
		return designspace.Source{}, false
	}
	cell := c.grid.Cell(column, row)
	if !cell.IsSource {
		return designspace.Source{}, false
	}
	ds := c.engine.DesignSpace()
	for _, src := range ds.SourcesForDiscreteLocation(c.resolved.DiscreteLocation) {
		if ds.Complete(src.Location).Equal(cell.Location) {
			return src, true
		}
	}
	return designspace.Source{}, false
}

func sortedNames(set *hashset.Set) []string {
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	sort.Strings(names)
	return names
}
