package linechart

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestInterpolate_PairCount(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   int
	}{
		{"empty", 0, 0},
		{"single", 1, 0},
		{"pair", 2, 0},
		{"minimum cubic", 3, 1},
		{"five", 5, 3},
		{"many", 50, 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]gg.Point, tt.points)
			for i := range points {
				points[i] = gg.Pt(float64(i)*10, float64(i%3)*5)
			}
			cps := Interpolate(points, 0.2)
			if tt.points < 3 {
				if cps != nil {
					t.Fatalf("Interpolate(%d points) = %v, want nil", tt.points, cps)
				}
				return
			}
			if len(cps) != tt.want {
				t.Errorf("len(cps) = %d, want %d", len(cps), tt.want)
			}
		})
	}
}

func TestInterpolate_TangentGeometry(t *testing.T) {
	points := []gg.Point{gg.Pt(0, 0), gg.Pt(10, 10), gg.Pt(20, 0)}
	cps := Interpolate(points, 0.25)
	if len(cps) != 1 {
		t.Fatalf("len(cps) = %d, want 1", len(cps))
	}

	// Tangent at the interior point is (p2 - p0) * tension = (5, 0).
	want := ControlPoint{Prev: gg.Pt(5, 10), Next: gg.Pt(15, 10)}
	if !pointsNear(cps[0].Prev, want.Prev) || !pointsNear(cps[0].Next, want.Next) {
		t.Errorf("cps[0] = %+v, want %+v", cps[0], want)
	}

	// Prev and Next straddle the data point symmetrically.
	mid := cps[0].Prev.Lerp(cps[0].Next, 0.5)
	if !pointsNear(mid, points[1]) {
		t.Errorf("control midpoint = %v, want %v", mid, points[1])
	}
}

func TestInterpolate_Pure(t *testing.T) {
	points := []gg.Point{gg.Pt(0, 3), gg.Pt(5, 1), gg.Pt(9, 7), gg.Pt(12, 2)}
	a := Interpolate(points, 0.2)
	b := Interpolate(points, 0.2)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same input produced different output at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	// Input must be untouched.
	if points[1] != gg.Pt(5, 1) {
		t.Errorf("input mutated: %v", points[1])
	}
}

func TestSplineSegments(t *testing.T) {
	points := []gg.Point{gg.Pt(0, 0), gg.Pt(10, 5), gg.Pt(20, 3), gg.Pt(30, 8), gg.Pt(40, 1)}
	quads, cubics := SplineSegments(points, 0.2)

	// Two quadratic boundary segments, one cubic per interior segment.
	if len(quads) != 2 {
		t.Fatalf("len(quads) = %d, want 2", len(quads))
	}
	if len(cubics) != len(points)-3 {
		t.Fatalf("len(cubics) = %d, want %d", len(cubics), len(points)-3)
	}

	if quads[0].P0 != points[0] || quads[0].P2 != points[1] {
		t.Errorf("first quad spans %v..%v, want %v..%v", quads[0].P0, quads[0].P2, points[0], points[1])
	}
	if quads[1].P0 != points[3] || quads[1].P2 != points[4] {
		t.Errorf("last quad spans %v..%v, want %v..%v", quads[1].P0, quads[1].P2, points[3], points[4])
	}

	// Adjacent segments share endpoints: the curve is continuous.
	if cubics[0].P0 != points[1] || cubics[0].P3 != points[2] {
		t.Errorf("cubic[0] spans %v..%v, want %v..%v", cubics[0].P0, cubics[0].P3, points[1], points[2])
	}
}

func TestSplineSegments_TooFewPoints(t *testing.T) {
	quads, cubics := SplineSegments([]gg.Point{gg.Pt(0, 0), gg.Pt(1, 1)}, 0.2)
	if quads != nil || cubics != nil {
		t.Errorf("SplineSegments(2 points) = %v, %v, want nil, nil", quads, cubics)
	}
}

func pointsNear(a, b gg.Point) bool {
	return almostEqual(a.X, b.X, epsilon) && almostEqual(a.Y, b.Y, epsilon)
}
