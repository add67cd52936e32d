package linechart

import (
	"testing"
)

func TestNewXAxis_IndexSteps(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFormatter(false)

	// Short series: the step floor of 1 keeps ticks on whole indices.
	a, err := NewXAxis(5, cfg, f)
	if err != nil {
		t.Fatalf("NewXAxis: %v", err)
	}
	if a.Step() != 1 {
		t.Errorf("Step = %v, want 1", a.Step())
	}
	if a.Negative != nil {
		t.Error("x axis must never carry a negative scale")
	}
}

func TestNewXAxis_EmptyLength(t *testing.T) {
	a, err := NewXAxis(0, DefaultConfig(), NewFormatter(false))
	if err != nil {
		t.Fatalf("NewXAxis degraded case: %v", err)
	}
	if got := len(a.Labels()); got != 2 {
		t.Errorf("len(Labels()) = %d, want 2 (single default tick)", got)
	}
}

func TestNewXAxis_LabelOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale.X.Ticks = 5
	cfg.Scale.X.TickLabels = []string{"Mon", "Tue", "Wed"}

	a, err := NewXAxis(6, cfg, NewFormatter(false))
	if err != nil {
		t.Fatalf("NewXAxis: %v", err)
	}
	labels := a.Labels()
	want := []string{"Mon", "Tue", "Wed", "Mon", "Tue", "Wed"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q (cycled)", i, labels[i], want[i])
		}
	}
}

func TestNewYAxis_NoNegatives(t *testing.T) {
	a, err := NewYAxis([]float64{3, 10, 20}, DefaultConfig(), NewFormatter(false))
	if err != nil {
		t.Fatalf("NewYAxis: %v", err)
	}
	if a.Negative != nil {
		t.Error("Negative scale present for all-positive data")
	}
	if got := len(a.Labels()); got != DefaultConfig().Scale.Y.Ticks+1 {
		t.Errorf("len(Labels()) = %d, want %d", got, DefaultConfig().Scale.Y.Ticks+1)
	}
}

func TestNewYAxis_SplitSynchronized(t *testing.T) {
	// Mixed-sign data [-5, -3, 10, 20] with 10 ticks.
	a, err := NewYAxis([]float64{-5, -3, 10, 20}, DefaultConfig(), NewFormatter(false))
	if err != nil {
		t.Fatalf("NewYAxis: %v", err)
	}
	if a.Negative == nil {
		t.Fatal("Negative scale missing for data with negatives")
	}
	if a.Positive.Step != a.Negative.Step {
		t.Errorf("steps not synchronized: pos %v, neg %v", a.Positive.Step, a.Negative.Step)
	}

	labels := a.Labels()
	zeros := 0
	for _, l := range labels {
		if l == "0" || l == "-0" {
			zeros++
		}
	}
	if zeros != 1 {
		t.Errorf("labels %v contain %d zero entries, want exactly 1", labels, zeros)
	}

	// Both halves keep their full tick budget; the merged label list
	// drops only the shared boundary.
	want := a.Positive.TickCount + a.Negative.TickCount + 1
	if len(labels) != want {
		t.Errorf("len(Labels()) = %d, want %d", len(labels), want)
	}
}

func TestNewYAxis_SplitOrder(t *testing.T) {
	a, err := NewYAxis([]float64{-5, 20}, DefaultConfig(), NewFormatter(false))
	if err != nil {
		t.Fatalf("NewYAxis: %v", err)
	}
	labels := a.Labels()
	if labels[0][0] != '-' {
		t.Errorf("labels[0] = %q, want the most negative tick first", labels[0])
	}
	if last := labels[len(labels)-1]; last[0] == '-' {
		t.Errorf("last label = %q, want a positive tick", last)
	}
}

func TestNewYAxis_Empty(t *testing.T) {
	a, err := NewYAxis(nil, DefaultConfig(), NewFormatter(false))
	if err != nil {
		t.Fatalf("NewYAxis degraded case: %v", err)
	}
	if got := len(a.Labels()); got != 2 {
		t.Errorf("len(Labels()) = %d, want 2 (single default tick)", got)
	}
}

func TestAxis_Bounds(t *testing.T) {
	a, err := NewYAxis([]float64{-5, -3, 10, 20}, DefaultConfig(), NewFormatter(false))
	if err != nil {
		t.Fatalf("NewYAxis: %v", err)
	}
	min, max := a.Bounds()
	if min >= 0 {
		t.Errorf("Bounds min = %v, want negative", min)
	}
	if max < 20 {
		t.Errorf("Bounds max = %v, want >= 20", max)
	}
	// Split halves are symmetric after synchronization: both span the
	// same number of equally sized steps.
	if -min != max {
		t.Errorf("split bounds not symmetric: min %v, max %v", min, max)
	}
}
