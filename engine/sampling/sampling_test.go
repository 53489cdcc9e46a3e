package sampling

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountEndpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	values, err := SampleAxis(CountSpec(5), 0, 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 250, 500, 750, 1000}, values)
	values, err = SampleAxis(CountSpec(2), -1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1}, values)
}

func TestCountDegenerateAxis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	values, err := SampleAxis(CountSpec(3), 400, 400, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{400, 400, 400}, values)
}

func TestCountRejectsInvalidInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	_, err := SampleAxis(CountSpec(1), 0, 1000, nil)
	assert.True(t, core.IsInvalid(err))
	_, err = SampleAxis(CountSpec(5), math.NaN(), 1000, nil)
	assert.True(t, core.IsInvalid(err))
	_, err = SampleAxis(CountSpec(5), 0, math.Inf(1), nil)
	assert.True(t, core.IsInvalid(err))
	_, err = SampleAxis(CountSpec(5), 10, 0, nil)
	assert.True(t, core.IsInvalid(err))
	_, err = SampleAxis(LocationsSpec(1, math.NaN()), 0, 0, nil)
	assert.True(t, core.IsInvalid(err))
}

func TestCountClamp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	for n := -5; n < 30; n++ {
		c := ClampCount(n)
		switch {
		case n < 2:
			assert.Equal(t, 2, c)
		case n > 20:
			assert.Equal(t, 20, c)
		default:
			assert.Equal(t, n, c)
		}
	}
	n, err := ParseCount(" 1 ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = ParseCount("99")
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	_, err = ParseCount("many")
	assert.True(t, core.IsInvalid(err))
}

func TestParseLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	values, err := ParseLocations(" 100  -50 3.5 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{100, -50, 3.5}, values)
	assert.Equal(t, "100 -50 3.5", FormatLocations(values))
	_, err = ParseLocations("100 abc")
	assert.True(t, core.IsInvalid(err))
	_, err = ParseLocations("NaN")
	assert.True(t, core.IsInvalid(err))
}

func TestLocationsKeepOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	values, err := SampleAxis(LocationsSpec(700, 100, 400, 100), 0, 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{700, 100, 400, 100}, values)
}

func TestInstancesMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	instances := []designspace.Location{
		{"weight": 700, "italic": 0},
		{"weight": 300, "italic": 0},
		{"weight": 700, "italic": 0},
		{"weight": 500, "italic": 1},
		{"width": 50, "italic": 0},
	}
	coords := InstanceCoordinates(instances, "weight", designspace.Location{"italic": 0})
	values, err := SampleAxis(InstancesSpec(), 0, 1000, coords)
	require.NoError(t, err)
	assert.Equal(t, []float64{300, 700}, values)
}

// --- Grid ------------------------------------------------------------------

func weightWidthRequest() GridRequest {
	return GridRequest{
		X: AxisRequest{Name: "width", Spec: CountSpec(3), Minimum: 0, Maximum: 100, Default: 100},
		Y: &AxisRequest{Name: "weight", Spec: CountSpec(2), Minimum: 100, Maximum: 900, Default: 400},
		Discrete: designspace.Location{"italic": 0},
		Defaults: designspace.Location{"opsz": 12},
		Sources: []designspace.Location{
			{"width": 100, "weight": 100, "italic": 0, "opsz": 12},
			{"width": 75, "weight": 400, "italic": 0, "opsz": 12},
		},
		Instances: []designspace.Location{
			{"width": 50, "weight": 900, "italic": 0, "opsz": 12},
			{"width": 25, "weight": 900, "italic": 0, "opsz": 12},
		},
	}
}

func TestGridSingleRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	req := weightWidthRequest()
	req.Y = nil
	grid, err := BuildGrid(req)
	require.NoError(t, err)
	assert.Equal(t, 1, grid.RowCount())
	assert.Equal(t, 3, grid.ColumnCount())
	for _, cell := range grid.Cells {
		assert.Len(t, cell.Location, 3) // width, italic, opsz
		_, hasWeight := cell.Location["weight"]
		assert.False(t, hasWeight)
	}
}

func TestGridOrderAndBindings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	grid, err := BuildGrid(weightWidthRequest())
	require.NoError(t, err)
	require.Len(t, grid.Cells, 6)
	assert.Equal(t, []float64{0, 50, 100}, grid.Columns)
	assert.Equal(t, []float64{100, 900}, grid.Rows)
	expected := []Cell{
		{Column: 0, Row: 0, Location: designspace.Location{"width": 0, "weight": 100, "italic": 0, "opsz": 12}},
		{Column: 0, Row: 1, Location: designspace.Location{"width": 0, "weight": 900, "italic": 0, "opsz": 12}},
		{Column: 1, Row: 0, Location: designspace.Location{"width": 50, "weight": 100, "italic": 0, "opsz": 12}},
		{Column: 1, Row: 1, Location: designspace.Location{"width": 50, "weight": 900, "italic": 0, "opsz": 12}, IsInstance: true},
		{Column: 2, Row: 0, Location: designspace.Location{"width": 100, "weight": 100, "italic": 0, "opsz": 12}, IsSource: true},
		{Column: 2, Row: 1, Location: designspace.Location{"width": 100, "weight": 900, "italic": 0, "opsz": 12}},
	}
	if diff := cmp.Diff(expected, grid.Cells); diff != "" {
		t.Errorf("grid cells differ (-want +got):\n%s", diff)
	}
	assert.Equal(t, grid.Cells[3], grid.Cell(1, 1))
}

func TestGridInsertion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	req := weightWidthRequest()
	plain, err := BuildGrid(req)
	require.NoError(t, err)
	req.InsertSources = true
	withSources, err := BuildGrid(req)
	require.NoError(t, err)
	// source width 75 is new, width 100 is sampled already
	assert.Equal(t, plain.ColumnCount()+1, withSources.ColumnCount())
	assert.Equal(t, []float64{0, 50, 75, 100}, withSources.Columns)
	assert.Equal(t, []float64{100, 400, 900}, withSources.Rows)
	assert.True(t, withSources.Cell(2, 1).IsSource)
	req.InsertInstances = true
	withBoth, err := BuildGrid(req)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 25, 50, 75, 100}, withBoth.Columns)
	req.InsertSources, req.InsertInstances = false, false
	again, err := BuildGrid(req)
	require.NoError(t, err)
	if diff := cmp.Diff(plain, again); diff != "" {
		t.Errorf("grid rebuild is not idempotent (-want +got):\n%s", diff)
	}
}

func TestGridInsertionSortsExplicitLocations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	req := weightWidthRequest()
	req.X.Spec = LocationsSpec(100, 0, 100)
	grid, err := BuildGrid(req)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 0, 100}, grid.Columns, "order kept without insertion")
	req.InsertSources = true
	grid, err = BuildGrid(req)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 75, 100}, grid.Columns)
}

func TestGridRejectsSameAxes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spaceranger.sampling")
	defer teardown()
	//
	req := weightWidthRequest()
	req.Y.Name = "width"
	_, err := BuildGrid(req)
	assert.True(t, core.IsInvalid(err))
}
