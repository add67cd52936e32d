package linechart

import "fmt"

// ConfigError reports an invalid configuration value that cannot be
// degraded to a default, such as a non-positive tick count. Recoverable
// configuration problems (unknown enum strings) are not errors: they fall
// back to documented defaults with a logged warning.
type ConfigError struct {
	Field  string // configuration key, e.g. "scale.x.ticks"
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("linechart: invalid config %s: %s", e.Field, e.Reason)
}

// DataError reports an empty or degenerate data set. Most call sites
// degrade instead of returning it: an empty series yields a single default
// tick and a warning. It is surfaced only where no sensible fallback
// exists, such as a dataset with zero series.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return "linechart: " + e.Reason
}

// GeometryError reports a computed coordinate outside the canvas bounds.
// Fatal by default; with Config.BypassOutOfBounds the offending draw call
// is skipped and a warning logged instead.
type GeometryError struct {
	X, Y          float64
	Width, Height float64 // canvas bounds the coordinate escaped
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("linechart: point (%.2f, %.2f) outside canvas %gx%g",
		e.X, e.Y, e.Width, e.Height)
}
