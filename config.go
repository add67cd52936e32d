package linechart

import (
	"github.com/BurntSushi/toml"
)

// Config is the full configuration surface of a chart. It is an explicit,
// immutable value: every recognized key is enumerated here, defaults come
// from DefaultConfig, and validation happens once in Validate rather than
// piecemeal at each use site.
//
// Config can be populated from a TOML file via LoadConfig:
//
//	[grid]
//	gridded = true
//	strict = false
//
//	[scale.x]
//	ticks = 10
//
//	[legend]
//	draw = true
//	position = "bottom"
type Config struct {
	Grid    GridConfig   `toml:"grid"`
	Scale   ScaleSurface `toml:"scale"`
	Legend  LegendConfig `toml:"legend"`
	Title   TitleConfig  `toml:"title"`
	Padding float64      `toml:"padding"`

	// LabelFontSize is the size, in pixels, tick labels are measured at.
	LabelFontSize float64 `toml:"labelFontSize"`

	// BypassOutOfBounds downgrades geometry errors during the draw pass
	// to a warning plus a skipped draw call.
	BypassOutOfBounds bool `toml:"bypassOutOfBounds"`
}

// GridConfig controls grid line drawing and grid cell geometry.
type GridConfig struct {
	// Gridded enables drawing of grid lines at every tick.
	Gridded bool `toml:"gridded"`

	// Strict forces square grid cells: both dimensions of the grid cell
	// take the smaller of the two computed sizes.
	Strict bool `toml:"strict"`

	// OptimiseSquareSize snaps the horizontal grid cell size to a whole
	// pixel, recomputing right padding so the last tick stays on canvas.
	OptimiseSquareSize bool `toml:"optimiseSquareSize"`

	// SharedAxisZero suppresses the duplicated "0" label where the X and
	// Y axes intersect.
	SharedAxisZero bool `toml:"sharedAxisZero"`
}

// ScaleSurface groups the per-dimension scale options.
type ScaleSurface struct {
	X XScaleConfig `toml:"x"`
	Y YScaleConfig `toml:"y"`

	// ShorthandNumerics compresses large integer labels to suffixed
	// short forms (1200000 -> "1.2m").
	ShorthandNumerics bool `toml:"shorthandNumerics"`
}

// XScaleConfig configures the horizontal (index-based) scale.
type XScaleConfig struct {
	Ticks int `toml:"ticks"`

	// OptimiseTicks rounds the tick step to a nice number; when false the
	// exact division of the extent is used unrounded.
	OptimiseTicks bool `toml:"optimiseTicks"`

	// TickLabels overrides computed labels. When shorter than the tick
	// count the sequence is cycled.
	TickLabels []string `toml:"tickLabels"`
}

// YScaleConfig configures the vertical (value-based) scale.
type YScaleConfig struct {
	Ticks int `toml:"ticks"`

	// StartAtZero forces the rounded minimum of the positive scale to 0
	// instead of the floored data minimum.
	StartAtZero bool `toml:"startAtZero"`
}

// LegendConfig controls legend drawing and placement. Position and
// Alignment are free-form strings here; unknown values degrade to "top"
// and "center" with a warning when the config is normalized.
type LegendConfig struct {
	Draw      bool   `toml:"draw"`
	Position  string `toml:"position"`
	Alignment string `toml:"alignment"`
}

// TitleConfig controls the chart title block.
type TitleConfig struct {
	Text     string  `toml:"text"`
	FontSize float64 `toml:"fontSize"`
}

// DefaultConfig returns the documented defaults: 10 ticks per axis with
// nice-number rounding, 14px labels, no grid lines, no legend, 12px outer
// padding.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{},
		Scale: ScaleSurface{
			X: XScaleConfig{Ticks: 10, OptimiseTicks: true},
			Y: YScaleConfig{Ticks: 10},
		},
		Legend: LegendConfig{
			Position:  "top",
			Alignment: "center",
		},
		Title:         TitleConfig{FontSize: 18},
		Padding:       12,
		LabelFontSize: 14,
	}
}

// LoadConfig reads a TOML chart configuration from path, layered over
// DefaultConfig so absent keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports fatal configuration problems. Tick counts must be
// positive; everything else degrades rather than fails.
func (c Config) Validate() error {
	if c.Scale.X.Ticks <= 0 {
		return &ConfigError{Field: "scale.x.ticks", Reason: "tick count must be > 0"}
	}
	if c.Scale.Y.Ticks <= 0 {
		return &ConfigError{Field: "scale.y.ticks", Reason: "tick count must be > 0"}
	}
	return nil
}

// legendPlacement resolves the legend position and alignment enums,
// falling back to top/center for unrecognized values.
func (c Config) legendPlacement() (LegendPosition, LegendAlignment) {
	pos, ok := ParseLegendPosition(c.Legend.Position)
	if !ok {
		Logger().Warn("unknown legend position, using default",
			"value", c.Legend.Position, "default", PositionTop)
	}
	align, ok := ParseLegendAlignment(c.Legend.Alignment)
	if !ok {
		Logger().Warn("unknown legend alignment, using default",
			"value", c.Legend.Alignment, "default", AlignCenter)
	}
	return pos, align
}
