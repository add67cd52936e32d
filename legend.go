package linechart

import (
	"strings"

	"github.com/gogpu/gg"
)

// LegendPosition places the legend block on one side of the plot.
type LegendPosition int

const (
	PositionTop LegendPosition = iota
	PositionBottom
	PositionLeft
	PositionRight
)

func (p LegendPosition) String() string {
	switch p {
	case PositionBottom:
		return "bottom"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	default:
		return "top"
	}
}

// horizontal reports whether entries run along the X axis.
func (p LegendPosition) horizontal() bool {
	return p == PositionTop || p == PositionBottom
}

// ParseLegendPosition maps a config string to a position. Unknown values
// return the default PositionTop and false.
func ParseLegendPosition(s string) (LegendPosition, bool) {
	switch strings.ToLower(s) {
	case "top":
		return PositionTop, true
	case "bottom":
		return PositionBottom, true
	case "left":
		return PositionLeft, true
	case "right":
		return PositionRight, true
	}
	return PositionTop, false
}

// LegendAlignment anchors the legend along its layout axis.
type LegendAlignment int

const (
	AlignStart LegendAlignment = iota
	AlignCenter
	AlignEnd
)

func (a LegendAlignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return "center"
	}
}

// ParseLegendAlignment maps a config string to an alignment. Unknown
// values return the default AlignCenter and false.
func ParseLegendAlignment(s string) (LegendAlignment, bool) {
	switch strings.ToLower(s) {
	case "start":
		return AlignStart, true
	case "center", "centre":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	}
	return AlignCenter, false
}

// LegendEntry is one swatch-plus-label row of the legend.
type LegendEntry struct {
	Label string
	Color gg.RGBA
	Dash  *gg.Dash
}

const (
	// legendPadding separates a swatch from its label and one entry
	// from the next.
	legendPadding = 8.0

	// legendBoxSize is the edge length of the colour swatch.
	legendBoxSize = 12.0
)

// LegendLayout is the computed footprint and per-entry placement of the
// legend block.
type LegendLayout struct {
	Position  LegendPosition
	Alignment LegendAlignment

	// RequiredSpace is the total extent along the layout axis. It is
	// measured over all entries before individual offsets are computed
	// and always equals the accumulated offset delta.
	RequiredSpace float64

	// Breadth is the extent across the layout axis, fed back into the
	// padding calculation.
	Breadth float64

	// Offsets holds each entry's position along the layout axis,
	// relative to the aligned start returned by Start.
	Offsets []float64
}

// ComputeLegendLayout measures entries and computes their offsets under
// the given placement policy. Horizontal entries each need
// 2*padding + box + measured label width; vertical entries stack at
// box + padding per row, with the breadth bounded by the longest label.
func ComputeLegendLayout(entries []LegendEntry, pos LegendPosition, align LegendAlignment, m TextMeasurer, cfg Config) *LegendLayout {
	l := &LegendLayout{Position: pos, Alignment: align}

	// Pass 1: measure.
	spacing := make([]float64, len(entries))
	maxWidth := 0.0
	for i, e := range entries {
		w := m.Measure(e.Label, cfg.LabelFontSize)
		if w > maxWidth {
			maxWidth = w
		}
		if pos.horizontal() {
			spacing[i] = 2*legendPadding + legendBoxSize + w
		} else {
			spacing[i] = legendBoxSize + legendPadding
		}
		l.RequiredSpace += spacing[i]
	}
	if pos.horizontal() {
		l.Breadth = legendBoxSize + 2*legendPadding
	} else {
		l.Breadth = legendBoxSize + legendPadding + maxWidth
	}

	// Pass 2: position. Each entry starts where the previous one's
	// spacing ends.
	l.Offsets = make([]float64, len(entries))
	at := 0.0
	for i := range entries {
		l.Offsets[i] = at
		at += spacing[i]
	}
	return l
}

// Start returns the absolute coordinate of the first entry given the
// plot's extent along the layout axis. Start alignment uses the leading
// edge unmodified, center subtracts half the footprint from the plot
// center, end subtracts the full footprint from the trailing edge.
func (l *LegendLayout) Start(begin, end float64) float64 {
	switch l.Alignment {
	case AlignStart:
		return begin
	case AlignEnd:
		return end - l.RequiredSpace
	default:
		return (begin+end)/2 - l.RequiredSpace/2
	}
}
