package linechart

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter turns tick values into label strings. Integer values are
// grouped with locale separators ("12,500"); in shorthand mode large
// integers compress to suffixed short forms ("12.5k").
type Formatter struct {
	shorthand bool
	printer   *message.Printer
}

// NewFormatter creates a label formatter. shorthand enables the
// k/m/b/t compression of large integers.
func NewFormatter(shorthand bool) *Formatter {
	return &Formatter{
		shorthand: shorthand,
		printer:   message.NewPrinter(language.English),
	}
}

// shorthandUnits are the compression thresholds, largest first.
var shorthandUnits = []struct {
	value  float64
	suffix string
}{
	{1e12, "t"},
	{1e9, "b"},
	{1e6, "m"},
	{1e3, "k"},
}

// Format renders one tick value. Zero always renders as "0" so a split
// axis never produces a "-0" boundary label.
func (f *Formatter) Format(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) {
		if f.shorthand {
			if s, ok := f.compress(v); ok {
				return s
			}
		}
		return f.printer.Sprintf("%d", int64(v))
	}
	// Two decimals is plenty for tick labels; trailing zeros dropped.
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// compress renders an integer value in suffixed short form. Returns
// false for magnitudes below the smallest threshold.
func (f *Formatter) compress(v float64) (string, bool) {
	abs := math.Abs(v)
	for _, u := range shorthandUnits {
		if abs < u.value {
			continue
		}
		scaled := v / u.value
		if scaled == math.Trunc(scaled) {
			return strconv.FormatFloat(scaled, 'f', 0, 64) + u.suffix, true
		}
		return strconv.FormatFloat(math.Round(scaled*10)/10, 'f', -1, 64) + u.suffix, true
	}
	return "", false
}
