package linechart

import "github.com/gogpu/gg"

// textPadding is the gap between labels and the geometry they annotate.
const textPadding = 6.0

// Padding is the space reserved on each side of the plot rectangle.
type Padding struct {
	Top, Left, Right, Bottom float64

	// Text is the label-to-geometry gap used inside the reserved space.
	Text float64
}

// Layout is the geometry of one draw pass: outer padding, the plot
// rectangle the series occupy, and the grid cell size. It is re-derived
// from the current padding and canvas size on every pass, never cached.
type Layout struct {
	Padding Padding

	// Plot is the rectangle available to the plotted data. Min is the
	// top-left begin coordinate, Max the bottom-right end coordinate.
	Plot gg.Rect

	// GridSize is the pixel spacing between adjacent ticks per axis,
	// filled in by the axis manager after the base layout exists.
	GridSize gg.Point
}

// Center returns the center point of the plot rectangle.
func (l *Layout) Center() gg.Point {
	return gg.Pt(
		(l.Plot.Min.X+l.Plot.Max.X)/2,
		(l.Plot.Min.Y+l.Plot.Max.Y)/2,
	)
}

// ComputeLayout derives padding and the plot rectangle for a canvas of
// width x height. The left padding absorbs the widest Y tick label, the
// bottom absorbs the X label row, the top grows for a title, and the
// legend's breadth extends whichever side it occupies. legend may be nil
// when the legend is not drawn.
func ComputeLayout(width, height float64, mgr *AxisManager, legend *LegendLayout, m TextMeasurer, cfg Config) (*Layout, error) {
	maxYLabel := 0.0
	for _, label := range mgr.Y.Labels() {
		if w := m.Measure(label, cfg.LabelFontSize); w > maxYLabel {
			maxYLabel = w
		}
	}

	pad := Padding{
		Top:    cfg.Padding,
		Left:   cfg.Padding + maxYLabel + textPadding,
		Right:  cfg.Padding,
		Bottom: cfg.Padding + cfg.LabelFontSize + textPadding,
		Text:   textPadding,
	}
	if cfg.Title.Text != "" {
		pad.Top += cfg.Title.FontSize + textPadding
	}
	if legend != nil {
		switch legend.Position {
		case PositionTop:
			pad.Top += legend.Breadth
		case PositionBottom:
			pad.Bottom += legend.Breadth
		case PositionLeft:
			pad.Left += legend.Breadth
		case PositionRight:
			pad.Right += legend.Breadth
		}
	}

	if width-pad.Right <= pad.Left || height-pad.Bottom <= pad.Top {
		return nil, &GeometryError{
			X: pad.Left, Y: pad.Top,
			Width: width, Height: height,
		}
	}

	return &Layout{
		Padding: pad,
		Plot: gg.NewRect(
			gg.Pt(pad.Left, pad.Top),
			gg.Pt(width-pad.Right, height-pad.Bottom),
		),
	}, nil
}
