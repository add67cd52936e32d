package linechart

import (
	"github.com/gogpu/gg"
)

const (
	// splineTension scales the Catmull-Rom tangents of smoothed series.
	splineTension = 0.2

	// pointRadius is the marker circle radius at each sample.
	pointRadius = 3.0

	// seriesLineWidth and frameLineWidth are the stroke widths of data
	// lines and axis/grid lines.
	seriesLineWidth = 2.0
	frameLineWidth  = 1.0
)

// Option configures a Chart during creation.
type Option func(*Chart)

// WithMeasurer injects the text-measurement capability. Defaults to a
// FixedMeasurer; pass a FaceMeasurer to measure with a real font.
func WithMeasurer(m TextMeasurer) Option {
	return func(c *Chart) { c.measurer = m }
}

// Chart owns the full computation pipeline for one line chart. A Chart
// belongs to a single goroutine: draws must be serialized by the caller.
type Chart struct {
	cfg      Config
	pos      LegendPosition
	align    LegendAlignment
	data     Dataset
	measurer TextMeasurer
}

// New validates the configuration and creates a chart. Invalid legend
// enums degrade to defaults with a warning; an invalid tick count is
// fatal.
func New(cfg Config, opts ...Option) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pos, align := cfg.legendPlacement()
	c := &Chart{
		cfg:      cfg,
		pos:      pos,
		align:    align,
		measurer: FixedMeasurer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetData replaces the chart's dataset. Axes, scales and layout are
// rebuilt from scratch on the next pass; nothing is carried over. Unset
// series colours are assigned from the default palette.
func (c *Chart) SetData(ds Dataset) {
	ds.assignDefaults()
	c.data = ds
}

// ComputeAxes rebuilds both axes from the current dataset.
func (c *Chart) ComputeAxes() (*AxisManager, error) {
	return NewAxisManager(c.data, c.cfg)
}

// LegendEntries derives the legend rows from the current dataset.
func (c *Chart) LegendEntries() []LegendEntry {
	entries := make([]LegendEntry, len(c.data.Series))
	for i, s := range c.data.Series {
		entries[i] = LegendEntry{Label: s.Label, Color: s.Color, Dash: s.Dash}
	}
	return entries
}

// ComputeLayout derives the padding, plot rectangle and grid geometry for
// the given canvas size. The legend layout is computed first because its
// footprint feeds the padding; it is nil when legend drawing is off.
func (c *Chart) ComputeLayout(width, height int, mgr *AxisManager) (*Layout, *LegendLayout, error) {
	var legend *LegendLayout
	if c.cfg.Legend.Draw {
		legend = ComputeLegendLayout(c.LegendEntries(), c.pos, c.align, c.measurer, c.cfg)
	}
	layout, err := ComputeLayout(float64(width), float64(height), mgr, legend, c.measurer, c.cfg)
	if err != nil {
		return nil, nil, err
	}
	mgr.ApplyGrid(layout, c.cfg, float64(width), float64(height))
	return layout, legend, nil
}

// Draw runs one full pass: axes, layout, optional grid, every series,
// and the legend swatches, emitted as geometry and style commands on r.
// Tick label text is not rendered here (font rendering is the host's
// concern); PlacedLabels returns where the host should draw each label.
func (c *Chart) Draw(r LineRenderer, width, height int) error {
	if len(c.data.Series) == 0 {
		return &DataError{Reason: "dataset has no series"}
	}
	mgr, err := c.ComputeAxes()
	if err != nil {
		return err
	}
	layout, legend, err := c.ComputeLayout(width, height, mgr)
	if err != nil {
		return err
	}
	guard := boundsGuard{
		w: float64(width), h: float64(height),
		bypass: c.cfg.BypassOutOfBounds,
	}

	if c.cfg.Grid.Gridded {
		if err := c.drawGrid(r, layout, mgr); err != nil {
			return err
		}
	}
	if err := c.drawFrame(r, layout, mgr); err != nil {
		return err
	}
	mapper := newPlotMapper(layout, mgr)
	for _, s := range c.data.Series {
		if err := c.drawSeries(r, s, mapper, guard); err != nil {
			return err
		}
	}
	if legend != nil {
		return c.drawLegend(r, layout, legend)
	}
	return nil
}

// plotMapper converts sample indices and values to pixel coordinates
// using the grid cell geometry of the current pass.
type plotMapper struct {
	origin gg.Point
	xUnit  float64 // pixels per data index
	yUnit  float64 // pixels per data unit
	yMax   float64 // value at the topmost tick
}

func newPlotMapper(l *Layout, mgr *AxisManager) plotMapper {
	_, yMax := mgr.Y.Bounds()
	return plotMapper{
		origin: l.Plot.Min,
		xUnit:  l.GridSize.X / mgr.X.Step(),
		yUnit:  l.GridSize.Y / mgr.Y.Step(),
		yMax:   yMax,
	}
}

func (m plotMapper) point(index int, value float64) gg.Point {
	return gg.Pt(
		m.origin.X+float64(index)*m.xUnit,
		m.origin.Y+(m.yMax-value)*m.yUnit,
	)
}

// boundsGuard enforces the canvas bounds on computed coordinates.
type boundsGuard struct {
	w, h   float64
	bypass bool
}

// check returns whether the point may be drawn. Out-of-bounds points are
// fatal unless bypass is set, in which case the draw call is skipped with
// a warning.
func (g boundsGuard) check(p gg.Point) (bool, error) {
	if p.X >= 0 && p.X <= g.w && p.Y >= 0 && p.Y <= g.h {
		return true, nil
	}
	if g.bypass {
		Logger().Warn("skipping out-of-bounds draw call",
			"x", p.X, "y", p.Y, "width", g.w, "height", g.h)
		return false, nil
	}
	return false, &GeometryError{X: p.X, Y: p.Y, Width: g.w, Height: g.h}
}

// drawFrame strokes the Y axis line along the plot's left edge and the X
// axis line at the zero level of the Y axis.
func (c *Chart) drawFrame(r LineRenderer, l *Layout, mgr *AxisManager) error {
	r.ClearDash()
	r.SetLineWidth(frameLineWidth)
	r.SetColor(gg.RGB(0.25, 0.25, 0.25).Color())

	top := l.Plot.Min
	bottom := gg.Pt(l.Plot.Min.X, l.Plot.Min.Y+l.GridSize.Y*float64(mgr.Y.TickCount()))
	r.MoveTo(top.X, top.Y)
	r.LineTo(bottom.X, bottom.Y)

	zeroY := bottom.Y
	if mgr.Y.Negative != nil {
		m := newPlotMapper(l, mgr)
		zeroY = m.point(0, 0).Y
	}
	r.MoveTo(l.Plot.Min.X, zeroY)
	r.LineTo(l.Plot.Max.X, zeroY)
	return r.Stroke()
}

// drawGrid strokes one vertical line per X tick and one horizontal line
// per Y tick across the plot.
func (c *Chart) drawGrid(r LineRenderer, l *Layout, mgr *AxisManager) error {
	r.ClearDash()
	r.SetLineWidth(frameLineWidth)
	r.SetColor(gg.RGB(0.85, 0.85, 0.85).Color())

	height := l.GridSize.Y * float64(mgr.Y.TickCount())
	width := l.GridSize.X * float64(mgr.X.TickCount())
	for i := 0; i <= mgr.X.TickCount(); i++ {
		x := l.Plot.Min.X + float64(i)*l.GridSize.X
		r.MoveTo(x, l.Plot.Min.Y)
		r.LineTo(x, l.Plot.Min.Y+height)
	}
	for i := 0; i <= mgr.Y.TickCount(); i++ {
		y := l.Plot.Min.Y + float64(i)*l.GridSize.Y
		r.MoveTo(l.Plot.Min.X, y)
		r.LineTo(l.Plot.Min.X+width, y)
	}
	return r.Stroke()
}

// drawSeries strokes one series as a polyline or smoothed spline, then
// marks each sample with a circle.
func (c *Chart) drawSeries(r LineRenderer, s Series, m plotMapper, guard boundsGuard) error {
	points := make([]gg.Point, 0, len(s.Data))
	for i, v := range s.Data {
		p := m.point(i, v)
		ok, err := guard.check(p)
		if err != nil {
			return err
		}
		if ok {
			points = append(points, p)
		}
	}
	if len(points) == 0 {
		return nil
	}

	r.SetColor(s.Color.Color())
	r.SetLineWidth(seriesLineWidth)
	if s.Dash.IsDashed() {
		r.SetDash(s.Dash.Array...)
	} else {
		r.ClearDash()
	}

	cps := Interpolate(points, splineTension)
	if s.Interpolation == InterpolationCubic && cps != nil {
		n := len(points)
		r.MoveTo(points[0].X, points[0].Y)
		r.QuadraticTo(cps[0].Prev.X, cps[0].Prev.Y, points[1].X, points[1].Y)
		for i := 1; i <= n-3; i++ {
			r.CubicTo(
				cps[i-1].Next.X, cps[i-1].Next.Y,
				cps[i].Prev.X, cps[i].Prev.Y,
				points[i+1].X, points[i+1].Y,
			)
		}
		r.QuadraticTo(cps[n-3].Next.X, cps[n-3].Next.Y, points[n-1].X, points[n-1].Y)
	} else {
		r.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			r.LineTo(p.X, p.Y)
		}
	}
	if err := r.Stroke(); err != nil {
		return err
	}

	r.ClearDash()
	for _, p := range points {
		r.DrawCircle(p.X, p.Y, pointRadius)
	}
	return r.Stroke()
}

// drawLegend strokes one swatch per entry in the entry's series style.
func (c *Chart) drawLegend(r LineRenderer, l *Layout, legend *LegendLayout) error {
	for i, e := range c.LegendEntries() {
		at := c.legendEntryOrigin(l, legend, i)
		r.SetColor(e.Color.Color())
		r.SetLineWidth(seriesLineWidth)
		if e.Dash.IsDashed() {
			r.SetDash(e.Dash.Array...)
		} else {
			r.ClearDash()
		}
		r.MoveTo(at.X, at.Y)
		r.LineTo(at.X+legendBoxSize, at.Y)
		if err := r.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// legendEntryOrigin returns the left end of entry i's swatch line.
func (c *Chart) legendEntryOrigin(l *Layout, legend *LegendLayout, i int) gg.Point {
	if legend.Position.horizontal() {
		start := legend.Start(l.Plot.Min.X, l.Plot.Max.X)
		x := start + legend.Offsets[i] + legendPadding
		y := l.Plot.Min.Y - legend.Breadth/2
		if legend.Position == PositionBottom {
			y = l.Plot.Max.Y + l.Padding.Bottom - legend.Breadth/2
		}
		return gg.Pt(x, y)
	}
	start := legend.Start(l.Plot.Min.Y, l.Plot.Max.Y)
	y := start + legend.Offsets[i] + legendBoxSize/2
	x := l.Padding.Left - legend.Breadth
	if legend.Position == PositionRight {
		x = l.Plot.Max.X + l.Padding.Right - legend.Breadth
	}
	return gg.Pt(x, y)
}
