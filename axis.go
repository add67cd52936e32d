package linechart

import "math"

// AxisKind identifies the dimension an axis describes.
type AxisKind int

const (
	AxisX AxisKind = iota
	AxisY
)

// Axis is one dimension's full tick and label set. A Y axis over data
// containing negative values splits into two scales that meet at zero;
// after construction both scales always share one step so tick spacing is
// visually uniform above and below the axis.
type Axis struct {
	Kind     AxisKind
	Positive *Scale
	Negative *Scale // nil when the data has no negative values

	labels []string
}

// NewXAxis builds the index-based horizontal axis over [0, length-1].
// The step floor of 1 keeps tick spacing on whole sample indices. A zero
// length degrades to a single default tick with a warning.
func NewXAxis(length int, cfg Config, f *Formatter) (*Axis, error) {
	opts := ScaleOptions{
		Max:           float64(length - 1),
		TickCount:     cfg.Scale.X.Ticks,
		MinimumStep:   1,
		OptimiseTicks: cfg.Scale.X.OptimiseTicks,
	}
	if length <= 1 {
		Logger().Warn("empty x extent, using a single default tick", "length", length)
		opts.Max = 1
		opts.TickCount = 1
	}
	scale, err := NewScale(ScalePositive, opts)
	if err != nil {
		return nil, err
	}
	a := &Axis{Kind: AxisX, Positive: scale}
	if override := cfg.Scale.X.TickLabels; len(override) > 0 {
		a.labels = cycleLabels(override, scale.TickCount+1)
	} else {
		a.labels = scale.Labels(f)
	}
	return a, nil
}

// NewYAxis builds the vertical axis over the sampled values. When
// negatives are present the tick budget is halved between a negative
// scale (over the absolute values of the negative subset) and a positive
// scale, and both are resynchronized to the larger of the two steps.
func NewYAxis(values []float64, cfg Config, f *Formatter) (*Axis, error) {
	if len(values) == 0 {
		Logger().Warn("empty y data set, using a single default tick")
		scale, err := NewScale(ScalePositive, ScaleOptions{
			Max: 1, TickCount: 1, StartAtZero: true,
		})
		if err != nil {
			return nil, err
		}
		return &Axis{Kind: AxisY, Positive: scale, labels: scale.Labels(f)}, nil
	}

	var posMax, negMax float64
	hasNeg := false
	for _, v := range values {
		if v < 0 {
			hasNeg = true
			if -v > negMax {
				negMax = -v
			}
		} else if v > posMax {
			posMax = v
		}
	}

	if !hasNeg {
		min := math.Inf(1)
		for _, v := range values {
			if v < min {
				min = v
			}
		}
		scale, err := NewScale(ScalePositive, ScaleOptions{
			Min:           min,
			Max:           posMax,
			TickCount:     cfg.Scale.Y.Ticks,
			OptimiseTicks: true,
			StartAtZero:   cfg.Scale.Y.StartAtZero,
		})
		if err != nil {
			return nil, err
		}
		return &Axis{Kind: AxisY, Positive: scale, labels: scale.Labels(f)}, nil
	}

	// Split the configured budget between the halves. Each half is
	// anchored at zero so the scales meet exactly at the axis.
	half := cfg.Scale.Y.Ticks / 2
	if half < 1 {
		half = 1
	}
	pos, err := NewScale(ScalePositive, ScaleOptions{
		Max: posMax, TickCount: half, OptimiseTicks: true, StartAtZero: true,
	})
	if err != nil {
		return nil, err
	}
	neg, err := NewScale(ScaleNegative, ScaleOptions{
		Max: negMax, TickCount: half, OptimiseTicks: true, StartAtZero: true,
	})
	if err != nil {
		return nil, err
	}

	// Synchronize: the larger step wins on both sides, guaranteeing equal
	// visual spacing per tick above and below zero.
	common := math.Max(pos.Step, neg.Step)
	pos = pos.withStep(common)
	neg = neg.withStep(common)

	a := &Axis{Kind: AxisY, Positive: pos, Negative: neg}
	a.labels = mergeSplitLabels(neg.Labels(f), pos.Labels(f))
	return a, nil
}

// Labels returns the ordered tick labels, most negative first for a split
// axis, with the shared zero boundary deduplicated.
func (a *Axis) Labels() []string { return a.labels }

// Step returns the synchronized tick step of the axis.
func (a *Axis) Step() float64 { return a.Positive.Step }

// TickCount returns the number of tick intervals spanned by the axis,
// counting both halves of a split axis.
func (a *Axis) TickCount() int {
	n := a.Positive.TickCount
	if a.Negative != nil {
		n += a.Negative.TickCount
	}
	return n
}

// Bounds returns the value range covered by the axis ticks. For a split
// axis the minimum is the most negative tick value.
func (a *Axis) Bounds() (min, max float64) {
	max = a.Positive.RoundedMin + float64(a.Positive.TickCount)*a.Positive.Step
	if a.Negative != nil {
		min = -(a.Negative.RoundedMin + float64(a.Negative.TickCount)*a.Negative.Step)
	} else {
		min = a.Positive.RoundedMin
	}
	return min, max
}

// withStep returns a copy of the scale rebuilt around a forced step.
// Used by split-axis synchronization; the rounded minimum is re-derived
// so the invariants keep holding.
func (s *Scale) withStep(step float64) *Scale {
	out := *s
	out.Step = step
	out.RoundedMin = out.roundMin(s.Min, s.startAtZero)
	out.Range = float64(out.TickCount) * step
	return &out
}

// mergeSplitLabels concatenates the negative labels (descending toward
// zero) with the positive labels, dropping the duplicated zero boundary.
func mergeSplitLabels(neg, pos []string) []string {
	if len(neg) > 0 && len(pos) > 0 && neg[len(neg)-1] == pos[0] {
		neg = neg[:len(neg)-1]
	}
	out := make([]string, 0, len(neg)+len(pos))
	out = append(out, neg...)
	out = append(out, pos...)
	return out
}

// cycleLabels repeats override labels until n are produced. Explicit
// label sequences shorter than the tick count cycle from the start.
func cycleLabels(override []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = override[i%len(override)]
	}
	return out
}
