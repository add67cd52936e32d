// Package cli implements the linechart command-line interface.
package cli

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/gogpu/linechart"
)

// SetupLogging routes the library's slog output through charmbracelet/log
// on stderr. verbose lowers the threshold to debug so layout diagnostics
// (grid snapping, padding) become visible.
func SetupLogging(verbose bool) {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	linechart.SetLogger(slog.New(handler))
}
