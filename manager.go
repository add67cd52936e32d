package linechart

import (
	"math"

	"github.com/gogpu/gg"
)

// AxisManager owns the X and Y axes of one chart and reconciles their
// tick geometry with the global layout constraints: strict square cells
// and whole-pixel grid snapping.
type AxisManager struct {
	X, Y *Axis

	// HasNegative records whether the data forced a split Y axis.
	HasNegative bool

	// SharedZero suppresses the duplicated "0" label where the axes
	// intersect.
	SharedZero bool
}

// NewAxisManager builds both axes from the dataset. Everything is rebuilt
// in full; there is no incremental update path.
func NewAxisManager(ds Dataset, cfg Config) (*AxisManager, error) {
	f := NewFormatter(cfg.Scale.ShorthandNumerics)
	x, err := NewXAxis(ds.MaxLength(), cfg, f)
	if err != nil {
		return nil, err
	}
	y, err := NewYAxis(ds.Values(), cfg, f)
	if err != nil {
		return nil, err
	}
	return &AxisManager{
		X: x, Y: y,
		HasNegative: ds.HasNegative(),
		SharedZero:  cfg.Grid.SharedAxisZero,
	}, nil
}

// ApplyGrid computes the grid cell size from the plot extents and applies
// the configured grid constraints, mutating the layout in place.
//
// Strict mode forces square cells at the smaller of the two sizes.
// Optimise-square-size snaps the horizontal cell to a whole pixel: a
// round-up is only accepted when the right padding can absorb the
// accumulated shift across all ticks, otherwise the size rounds down.
// After the cell size is final, both plot edges and their paddings are
// recomputed from it so the last tick on each axis stays inside the
// canvas; sub-pixel drift across many ticks must never push it past the
// edge.
func (m *AxisManager) ApplyGrid(l *Layout, cfg Config, canvasWidth, canvasHeight float64) {
	xTicks := float64(m.X.TickCount())
	yTicks := float64(m.Y.TickCount())

	l.GridSize = gg.Pt(l.Plot.Width()/xTicks, l.Plot.Height()/yTicks)

	switch {
	case cfg.Grid.Strict:
		side := math.Min(l.GridSize.X, l.GridSize.Y)
		l.GridSize = gg.Pt(side, side)
		Logger().Debug("strict grid", "cell", side)

	case cfg.Grid.OptimiseSquareSize:
		raw := l.GridSize.X
		snapped := math.Round(raw)
		if snapped > raw && l.Padding.Right-(snapped-raw)*xTicks < 0 {
			snapped = math.Floor(raw)
		}
		l.GridSize.X = snapped
		Logger().Debug("grid size snapped", "raw", raw, "snapped", snapped)
	}

	// Reconcile the plot with the final cell size so the last tick on
	// each axis is exactly on the plot edge.
	l.Plot.Max.X = l.Plot.Min.X + l.GridSize.X*xTicks
	l.Padding.Right = canvasWidth - l.Plot.Max.X
	l.Plot.Max.Y = l.Plot.Min.Y + l.GridSize.Y*yTicks
	l.Padding.Bottom = canvasHeight - l.Plot.Max.Y
}
