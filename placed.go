package linechart

// PlacedLabel tells the host where to render one piece of text. AX and
// AY are anchor fractions in [0, 1] following gg's DrawStringAnchored
// convention: (0.5, 0.5) centers the text on (X, Y).
type PlacedLabel struct {
	Text     string
	X, Y     float64
	AX, AY   float64
	FontSize float64
}

// PlacedLabels computes every text position of the chart: tick labels on
// both axes, the title, and legend entry labels. Font rendering itself is
// out of the core's scope, so hosts draw these through their own text
// facility:
//
//	for _, pl := range chart.PlacedLabels(layout, mgr, legend) {
//	    dc.DrawStringAnchored(pl.Text, pl.X, pl.Y, pl.AX, pl.AY)
//	}
//
// With SharedAxisZero set, the duplicated "0" where the axes meet is
// dropped from the X axis row.
func (c *Chart) PlacedLabels(l *Layout, mgr *AxisManager, legend *LegendLayout) []PlacedLabel {
	var out []PlacedLabel

	xLabels := mgr.X.Labels()
	yLabels := mgr.Y.Labels()
	yBottom := l.Plot.Min.Y + l.GridSize.Y*float64(mgr.Y.TickCount())

	for i, label := range xLabels {
		if i == 0 && mgr.SharedZero && label == "0" && len(yLabels) > 0 && yLabels[0] == "0" {
			continue
		}
		out = append(out, PlacedLabel{
			Text:     label,
			X:        l.Plot.Min.X + float64(i)*l.GridSize.X,
			Y:        yBottom + l.Padding.Text,
			AX:       0.5, AY: 1,
			FontSize: c.cfg.LabelFontSize,
		})
	}

	// Y labels are ordered most negative first, so index 0 sits at the
	// bottom tick.
	for i, label := range yLabels {
		out = append(out, PlacedLabel{
			Text:     label,
			X:        l.Plot.Min.X - l.Padding.Text,
			Y:        yBottom - float64(i)*l.GridSize.Y,
			AX:       1, AY: 0.5,
			FontSize: c.cfg.LabelFontSize,
		})
	}

	if c.cfg.Title.Text != "" {
		out = append(out, PlacedLabel{
			Text:     c.cfg.Title.Text,
			X:        (l.Plot.Min.X + l.Plot.Max.X) / 2,
			Y:        c.cfg.Padding + c.cfg.Title.FontSize,
			AX:       0.5, AY: 0,
			FontSize: c.cfg.Title.FontSize,
		})
	}

	if legend != nil {
		for i, e := range c.LegendEntries() {
			at := c.legendEntryOrigin(l, legend, i)
			out = append(out, PlacedLabel{
				Text:     e.Label,
				X:        at.X + legendBoxSize + legendPadding,
				Y:        at.Y,
				AX:       0, AY: 0.5,
				FontSize: c.cfg.LabelFontSize,
			})
		}
	}
	return out
}
