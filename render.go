package linechart

import (
	"image/color"

	"github.com/gogpu/gg"
)

// LineRenderer is the drawing capability a chart emits into. The core
// produces geometry and style instructions only; it never touches raw
// pixels. *gg.Context satisfies the interface directly:
//
//	dc := gg.NewContext(800, 600)
//	chart.Draw(dc, 800, 600)
type LineRenderer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Stroke() error
	DrawCircle(x, y, r float64)
	SetDash(lengths ...float64)
	ClearDash()
	SetColor(c color.Color)
	SetLineWidth(width float64)
}

var _ LineRenderer = (*gg.Context)(nil)

// Recorder is a LineRenderer that captures commands instead of drawing.
// Hosts use it to test their chart configuration without a canvas.
type Recorder struct {
	Ops []RecordedOp
}

// RecordedOp is one captured renderer command.
type RecordedOp struct {
	Name string
	Args []float64
}

func (r *Recorder) record(name string, args ...float64) {
	r.Ops = append(r.Ops, RecordedOp{Name: name, Args: args})
}

func (r *Recorder) MoveTo(x, y float64) { r.record("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record("LineTo", x, y) }
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.record("QuadraticTo", cx, cy, x, y)
}
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record("CubicTo", c1x, c1y, c2x, c2y, x, y)
}
func (r *Recorder) Stroke() error               { r.record("Stroke"); return nil }
func (r *Recorder) DrawCircle(x, y, rad float64) { r.record("DrawCircle", x, y, rad) }
func (r *Recorder) SetDash(lengths ...float64)  { r.record("SetDash", lengths...) }
func (r *Recorder) ClearDash()                  { r.record("ClearDash") }
func (r *Recorder) SetColor(color.Color)        { r.record("SetColor") }
func (r *Recorder) SetLineWidth(width float64)  { r.record("SetLineWidth", width) }

// Count returns how many captured ops carry the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}
