package linechart

import (
	"unicode/utf8"

	"github.com/gogpu/gg/text"
)

// TextMeasurer is the capability the layout engine uses to size labels.
// Implementations must be synchronous and side-effect free as observed by
// the core; the font family is a property of the measurer itself.
type TextMeasurer interface {
	// Measure returns the horizontal advance of s at the given font
	// size, in pixels.
	Measure(s string, fontSize float64) float64
}

// FaceMeasurer measures text with a real font through gg/text. This is
// the production measurer used when rendering with a gg context.
type FaceMeasurer struct {
	source *text.FontSource
}

// NewFaceMeasurer wraps a gg/text font source.
func NewFaceMeasurer(src *text.FontSource) *FaceMeasurer {
	return &FaceMeasurer{source: src}
}

// Measure returns the shaped advance of s at fontSize.
func (m *FaceMeasurer) Measure(s string, fontSize float64) float64 {
	return m.source.Face(fontSize).Advance(s)
}

// FixedMeasurer is a deterministic TextMeasurer for tests and headless
// layout: every rune advances by EmWidth of the font size.
type FixedMeasurer struct {
	// EmWidth is the per-rune advance as a fraction of the font size.
	// The zero value uses 0.6, a typical average for UI fonts.
	EmWidth float64
}

// Measure returns rune count times the fixed advance.
func (m FixedMeasurer) Measure(s string, fontSize float64) float64 {
	em := m.EmWidth
	if em == 0 {
		em = 0.6
	}
	return float64(utf8.RuneCountInString(s)) * em * fontSize
}
