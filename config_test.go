package linechart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Scale.X.Ticks != 10 || cfg.Scale.Y.Ticks != 10 {
		t.Errorf("default ticks = %d, %d, want 10, 10", cfg.Scale.X.Ticks, cfg.Scale.Y.Ticks)
	}
	if !cfg.Scale.X.OptimiseTicks {
		t.Error("default x scale must optimise ticks")
	}
	if cfg.Legend.Position != "top" || cfg.Legend.Alignment != "center" {
		t.Errorf("default legend = %q/%q, want top/center", cfg.Legend.Position, cfg.Legend.Alignment)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero x ticks", func(c *Config) { c.Scale.X.Ticks = 0 }, true},
		{"negative y ticks", func(c *Config) { c.Scale.Y.Ticks = -3 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				var cerr *ConfigError
				if !errors.As(err, &cerr) {
					t.Errorf("err = %v, want *ConfigError", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_LegendPlacementFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Legend.Position = "sideways"
	cfg.Legend.Alignment = "justify"

	// Unknown enum values degrade to documented defaults, never fail.
	pos, align := cfg.legendPlacement()
	if pos != PositionTop {
		t.Errorf("position = %v, want fallback %v", pos, PositionTop)
	}
	if align != AlignCenter {
		t.Errorf("alignment = %v, want fallback %v", align, AlignCenter)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	doc := `
padding = 20
labelFontSize = 11

[grid]
gridded = true
strict = true

[scale]
shorthandNumerics = true

[scale.x]
ticks = 5
tickLabels = ["a", "b"]

[scale.y]
startAtZero = true

[legend]
draw = true
position = "bottom"

[title]
text = "requests"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Padding != 20 || cfg.LabelFontSize != 11 {
		t.Errorf("padding/font = %v/%v, want 20/11", cfg.Padding, cfg.LabelFontSize)
	}
	if !cfg.Grid.Gridded || !cfg.Grid.Strict {
		t.Error("grid flags not loaded")
	}
	if !cfg.Scale.ShorthandNumerics || !cfg.Scale.Y.StartAtZero {
		t.Error("scale flags not loaded")
	}
	if cfg.Scale.X.Ticks != 5 || len(cfg.Scale.X.TickLabels) != 2 {
		t.Errorf("x scale = %+v", cfg.Scale.X)
	}
	if !cfg.Legend.Draw || cfg.Legend.Position != "bottom" {
		t.Errorf("legend = %+v", cfg.Legend)
	}
	if cfg.Title.Text != "requests" {
		t.Errorf("title = %q", cfg.Title.Text)
	}

	// Absent keys keep their defaults.
	if cfg.Scale.Y.Ticks != 10 {
		t.Errorf("y ticks = %d, want default 10", cfg.Scale.Y.Ticks)
	}
	if cfg.Legend.Alignment != "center" {
		t.Errorf("alignment = %q, want default center", cfg.Legend.Alignment)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadConfig on a missing file must fail")
	}
}
