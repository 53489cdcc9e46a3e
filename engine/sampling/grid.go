package sampling

import (
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
)

// AxisRequest describes the sampling of one grid dimension.
type AxisRequest struct {
	Name           string
	Spec           Spec
	Minimum        float64
	Maximum        float64
	Default        float64
	InstanceCoords []float64 // for mode Instances
}

// GridRequest collects the inputs of BuildGrid.
type GridRequest struct {
	X               AxisRequest
	Y               *AxisRequest // nil: single row
	Discrete        designspace.Location
	Defaults        designspace.Location // values for the unsampled continuous axes
	Sources         []designspace.Location
	Instances       []designspace.Location
	InsertSources   bool
	InsertInstances bool
}

// Cell is one position of the grid.
type Cell struct {
	Column     int
	Row        int
	Location   designspace.Location
	IsSource   bool
	IsInstance bool
}

// Grid is the result of BuildGrid. Cells are ordered column-major: columns
// outer, rows inner.
type Grid struct {
	Columns []float64
	Rows    []float64
	Cells   []Cell
	HasY    bool
}

// ColumnCount is the number of columns of g.
func (g Grid) ColumnCount() int { return len(g.Columns) }

// RowCount is the number of rows of g.
func (g Grid) RowCount() int { return len(g.Rows) }

// Cell returns the cell at column c and row r.
func (g Grid) Cell(c, r int) Cell {
	return g.Cells[c*len(g.Rows)+r]
}

// BuildGrid samples the X and Y axes and creates a cell for every
// combination of column and row coordinates.
//
// If sources or instances are to be inserted, their coordinates not already
// present are added to the column and row coordinates, which are then sorted
// and de-duplicated. Without insertion, sampled coordinates keep their order.
// Source and instance flags are set by exact location equality, regardless
// of insertion.
func BuildGrid(req GridRequest) (Grid, error) {
	if req.X.Name == "" {
		return Grid{}, core.Error(core.EINVALID, "grid needs an x axis")
	}
	columns, err := SampleAxis(req.X.Spec, req.X.Minimum, req.X.Maximum, req.X.InstanceCoords)
	if err != nil {
		return Grid{}, err
	}
	rows := []float64{0}
	hasY := req.Y != nil && req.Y.Name != ""
	if hasY {
		if req.Y.Name == req.X.Name {
			return Grid{}, core.Error(core.EINVALID, "x and y axis must differ, both are %q", req.X.Name)
		}
		if rows, err = SampleAxis(req.Y.Spec, req.Y.Minimum, req.Y.Maximum, req.Y.InstanceCoords); err != nil {
			return Grid{}, err
		}
	}
	var inserted []designspace.Location
	if req.InsertSources {
		inserted = append(inserted, req.Sources...)
	}
	if req.InsertInstances {
		inserted = append(inserted, req.Instances...)
	}
	sortColumns, sortRows := false, false
	for _, loc := range inserted {
		if v := coordinate(loc, req.X); !contains(columns, v) {
			columns = append(columns, v)
			sortColumns = true
		}
		if hasY {
			if v := coordinate(loc, *req.Y); !contains(rows, v) {
				rows = append(rows, v)
				sortRows = true
			}
		}
	}
	if sortColumns {
		columns = sortedUnique(columns)
	}
	if sortRows {
		rows = sortedUnique(rows)
	}
	base := req.Discrete.Merge(req.Defaults)
	grid := Grid{
		Columns: columns,
		Rows:    rows,
		Cells:   make([]Cell, 0, len(columns)*len(rows)),
		HasY:    hasY,
	}
	for c, x := range columns {
		for r, y := range rows {
			loc := base.Clone()
			loc[req.X.Name] = x
			if hasY {
				loc[req.Y.Name] = y
			}
			grid.Cells = append(grid.Cells, Cell{
				Column:     c,
				Row:        r,
				Location:   loc,
				IsSource:   designspace.ContainsLocation(req.Sources, loc),
				IsInstance: designspace.ContainsLocation(req.Instances, loc),
			})
		}
	}
	tracer().Debugf("built grid of %d columns × %d rows", len(columns), len(rows))
	return grid, nil
}

// coordinate reads the binding of axis from loc, defaulting to the axis default.
func coordinate(loc designspace.Location, axis AxisRequest) float64 {
	if v, ok := loc[axis.Name]; ok {
		return v
	}
	return axis.Default
}

func contains(values []float64, v float64) bool {
	for _, w := range values {
		if w == v {
			return true
		}
	}
	return false
}
