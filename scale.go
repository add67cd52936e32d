package linechart

import "math"

// ScaleKind selects which half of a split axis a scale describes. Both
// kinds share one computation path; a negative scale is built over the
// absolute values of the negative subset and negates its tick values on
// output.
type ScaleKind int

const (
	ScalePositive ScaleKind = iota
	ScaleNegative
)

// ScaleOptions are the inputs to scale computation.
type ScaleOptions struct {
	// Min and Max bound the data extent, Max >= Min.
	Min, Max float64

	// TickCount is the number of tick intervals. The scale produces
	// TickCount+1 tick values. Must be > 0.
	TickCount int

	// MinimumStep, when positive, is a floor on the computed step.
	// Index-based X scales use 1 so tick spacing never goes fractional.
	MinimumStep float64

	// OptimiseTicks rounds the step up to a nice number from the
	// sequence {1, 2, 5, 10}x10^k. When false the exact division of the
	// extent is used unrounded.
	OptimiseTicks bool

	// StartAtZero forces the rounded minimum to 0 instead of the data
	// minimum floored to a step multiple.
	StartAtZero bool
}

// Scale maps one numeric extent to evenly spaced tick values.
//
// Invariants established by NewScale:
//   - Step > 0
//   - RoundedMin + float64(TickCount)*Step >= Max
//   - len(Values()) == TickCount+1
type Scale struct {
	Kind       ScaleKind
	Min, Max   float64
	TickCount  int
	Step       float64
	RoundedMin float64
	Range      float64

	startAtZero bool
}

// NewScale computes the tick step and rounded bounds for one extent.
// A degenerate extent (Max == Min) is widened by one unit so the step
// stays positive.
func NewScale(kind ScaleKind, opts ScaleOptions) (*Scale, error) {
	if opts.TickCount <= 0 {
		return nil, &ConfigError{Field: "ticks", Reason: "tick count must be > 0"}
	}
	min, max := opts.Min, opts.Max
	if max < min {
		return nil, &ConfigError{Field: "scale", Reason: "max below min"}
	}

	s := &Scale{
		Kind: kind, Min: min, Max: max,
		TickCount:   opts.TickCount,
		startAtZero: opts.StartAtZero,
	}

	if max == min {
		// Widen to avoid a zero extent; the step falls back to the
		// configured floor.
		max = min + 1
		s.Step = 1
		if opts.MinimumStep > 0 {
			s.Step = opts.MinimumStep
		}
		s.RoundedMin = s.roundMin(min, opts.StartAtZero)
		s.Range = float64(s.TickCount) * s.Step
		return s, nil
	}

	ticks := float64(opts.TickCount)
	step := (max - min) / ticks
	if opts.OptimiseTicks {
		step = niceStep(step)
	}
	if opts.MinimumStep > 0 && step < opts.MinimumStep {
		step = opts.MinimumStep
	}
	s.Step = step
	s.RoundedMin = s.roundMin(min, opts.StartAtZero)

	// Flooring the minimum can leave the last tick short of Max; regrow
	// the step from the widened extent until the scale covers it.
	for i := 0; s.RoundedMin+ticks*s.Step < max && i < 8; i++ {
		grown := (max - s.RoundedMin) / ticks
		if opts.OptimiseTicks {
			grown = niceStep(grown)
		}
		if grown <= s.Step {
			if opts.OptimiseTicks {
				grown = niceStep(s.Step * 1.5)
			} else {
				grown = s.Step + s.Step/ticks
			}
		}
		s.Step = grown
		s.RoundedMin = s.roundMin(min, opts.StartAtZero)
	}

	s.Range = float64(s.TickCount) * s.Step
	return s, nil
}

func (s *Scale) roundMin(min float64, startAtZero bool) float64 {
	if startAtZero {
		return 0
	}
	return math.Floor(min/s.Step) * s.Step
}

// Values returns the TickCount+1 tick values of the scale in draw order.
// A positive scale ascends from RoundedMin; a negative scale negates its
// values and orders them descending toward zero.
func (s *Scale) Values() []float64 {
	vals := make([]float64, s.TickCount+1)
	for i := 0; i <= s.TickCount; i++ {
		v := s.RoundedMin + float64(i)*s.Step
		if s.Kind == ScaleNegative {
			vals[s.TickCount-i] = -v
		} else {
			vals[i] = v
		}
	}
	return vals
}

// Labels returns the tick values formatted by f, in the same order as
// Values.
func (s *Scale) Labels(f *Formatter) []string {
	vals := s.Values()
	labels := make([]string, len(vals))
	for i, v := range vals {
		labels[i] = f.Format(v)
	}
	return labels
}

// niceStep rounds raw up to the nearest step from {1, 2, 5, 10}x10^k.
// This is the classic nice-number tick algorithm.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	pow := math.Pow(10, exp)
	frac := raw / pow

	var nice float64
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * pow
}
