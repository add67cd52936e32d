// Package linechart computes line-chart layout geometry for the GoGPU
// ecosystem.
//
// # Overview
//
// linechart is the non-visual engine behind a line chart: it turns numeric
// series plus a configuration value into axis scales, tick labels, a padded
// plot rectangle, cubic-spline control points for smooth curves, and a
// positioned legend. Rasterization is delegated to a LineRenderer — in
// practice a *gg.Context from github.com/gogpu/gg, which satisfies the
// interface directly.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/linechart"
//	)
//
//	chart, _ := linechart.New(linechart.DefaultConfig())
//	chart.SetData(linechart.Dataset{Series: []linechart.Series{
//	    {Label: "latency", Data: []float64{4, 8, 15, 16, 23, 42}},
//	}})
//
//	dc := gg.NewContext(800, 600)
//	if err := chart.Draw(dc, 800, 600); err != nil {
//	    // handle
//	}
//	dc.SavePNG("chart.png")
//
// # Architecture
//
// The computation pipeline runs leaves-first on every draw pass:
//   - Scale: nice-number tick step and rounded bounds for one extent
//   - Axis: one or two scales per dimension, ordered tick labels
//   - AxisManager: negative detection, grid cell geometry, square snapping
//   - Layout: padding and the derived plot rectangle
//   - Interpolate: Catmull-Rom control points for curve segments
//   - LegendLayout: legend footprint and per-entry offsets
//
// Everything is rebuilt in full on each pass; nothing is cached across
// draws. A Chart is owned by a single goroutine — concurrent draws on the
// same instance are not supported.
//
// # Text Measurement
//
// Label widths come from the TextMeasurer capability. FaceMeasurer wraps a
// gg/text font face for production use; FixedMeasurer is a deterministic
// stub for tests and headless layout.
package linechart

// Version is the current version of the library.
const Version = "0.2.0"
