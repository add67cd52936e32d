package linechart

import (
	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// Interpolation selects how the samples of a series are joined.
type Interpolation int

const (
	// InterpolationLinear joins samples with straight segments.
	InterpolationLinear Interpolation = iota

	// InterpolationCubic joins samples with a Catmull-Rom smoothed
	// spline. Series shorter than three samples fall back to linear.
	InterpolationCubic
)

// Series is one ordered sequence of numeric samples plus its stroke
// style. A Series is treated as immutable once handed to a draw pass.
type Series struct {
	Label string
	Data  []float64

	// Color is the stroke colour. The zero value means "unset"; SetData
	// assigns the next palette colour.
	Color gg.RGBA

	// Dash is the stroke dash pattern; nil draws solid.
	Dash *gg.Dash

	Interpolation Interpolation
}

// Dataset is the full set of series drawn by one chart.
type Dataset struct {
	Series []Series
}

// MaxLength returns the longest series length, which fixes the X domain.
func (d Dataset) MaxLength() int {
	n := 0
	for _, s := range d.Series {
		if len(s.Data) > n {
			n = len(s.Data)
		}
	}
	return n
}

// Values returns every sample across all series, in series order. The Y
// axis is scaled over this sequence.
func (d Dataset) Values() []float64 {
	out := make([]float64, 0, d.MaxLength()*len(d.Series))
	for _, s := range d.Series {
		out = append(out, s.Data...)
	}
	return out
}

// HasNegative reports whether any sample is strictly negative.
func (d Dataset) HasNegative() bool {
	for _, s := range d.Series {
		for _, v := range s.Data {
			if v < 0 {
				return true
			}
		}
	}
	return false
}

// defaultPalette is cycled over series that carry no explicit colour.
var defaultPalette = []gg.RGBA{
	gg.FromColor(colornames.Steelblue),
	gg.FromColor(colornames.Orangered),
	gg.FromColor(colornames.Mediumseagreen),
	gg.FromColor(colornames.Goldenrod),
	gg.FromColor(colornames.Mediumpurple),
	gg.FromColor(colornames.Lightseagreen),
	gg.FromColor(colornames.Palevioletred),
	gg.FromColor(colornames.Slategray),
}

// PaletteColor returns the i-th default series colour, cycling.
func PaletteColor(i int) gg.RGBA {
	return defaultPalette[i%len(defaultPalette)]
}

// assignDefaults fills unset series colours from the palette.
func (d *Dataset) assignDefaults() {
	for i := range d.Series {
		if d.Series[i].Color == (gg.RGBA{}) {
			d.Series[i].Color = PaletteColor(i)
		}
	}
}
