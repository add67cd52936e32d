package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/spf13/cobra"

	"github.com/gogpu/linechart"
)

// NewRenderCmd builds the render subcommand: TOML config + CSV data in,
// PNG out.
func NewRenderCmd() *cobra.Command {
	var (
		configPath string
		dataPath   string
		output     string
		fontPath   string
		width      int
		height     int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := linechart.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = linechart.LoadConfig(configPath); err != nil {
					return fmt.Errorf("load config: %w", err)
				}
			}
			ds, err := readSeries(dataPath)
			if err != nil {
				return fmt.Errorf("read data: %w", err)
			}

			opts := []linechart.Option{}
			var source *text.FontSource
			if fontPath != "" {
				if source, err = text.NewFontSourceFromFile(fontPath); err != nil {
					return fmt.Errorf("load font: %w", err)
				}
				defer source.Close()
				opts = append(opts, linechart.WithMeasurer(linechart.NewFaceMeasurer(source)))
			}

			chart, err := linechart.New(cfg, opts...)
			if err != nil {
				return err
			}
			chart.SetData(ds)

			dc := gg.NewContext(width, height)
			dc.ClearWithColor(gg.RGB(1, 1, 1))
			if err := chart.Draw(dc, width, height); err != nil {
				return err
			}
			if source != nil {
				drawLabels(dc, chart, source, width, height)
			}
			return dc.SavePNG(output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML chart configuration")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "CSV data file (header row names series)")
	cmd.Flags().StringVarP(&output, "output", "o", "chart.png", "output PNG path")
	cmd.Flags().StringVarP(&fontPath, "font", "f", "", "TTF/OTF font for labels")
	cmd.Flags().IntVar(&width, "width", 800, "canvas width")
	cmd.Flags().IntVar(&height, "height", 600, "canvas height")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

// drawLabels renders the chart's placed labels with the loaded font.
func drawLabels(dc *gg.Context, chart *linechart.Chart, source *text.FontSource, width, height int) {
	mgr, err := chart.ComputeAxes()
	if err != nil {
		return
	}
	layout, legend, err := chart.ComputeLayout(width, height, mgr)
	if err != nil {
		return
	}
	dc.SetColor(gg.RGB(0.1, 0.1, 0.1).Color())
	for _, pl := range chart.PlacedLabels(layout, mgr, legend) {
		dc.SetFont(source.Face(pl.FontSize))
		dc.DrawStringAnchored(pl.Text, pl.X, pl.Y, pl.AX, pl.AY)
	}
}

// readSeries parses a CSV file into a dataset: one series per header
// column, one sample per row. Blank cells are skipped at the tail of a
// shorter series.
func readSeries(path string) (linechart.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return linechart.Dataset{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return linechart.Dataset{}, err
	}
	if len(records) < 2 {
		return linechart.Dataset{}, fmt.Errorf("%s: need a header row and at least one sample row", path)
	}

	header := records[0]
	series := make([]linechart.Series, len(header))
	for i, label := range header {
		series[i].Label = label
	}
	for row, record := range records[1:] {
		for col, cell := range record {
			if col >= len(series) || cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return linechart.Dataset{}, fmt.Errorf("%s row %d col %d: %w", path, row+2, col+1, err)
			}
			series[col].Data = append(series[col].Data, v)
		}
	}
	return linechart.Dataset{Series: series}, nil
}
