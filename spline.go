package linechart

import "github.com/gogpu/gg"

// ControlPoint is the pair of auxiliary coordinates that bend the curve
// smoothly through one interior data point. Prev steers the segment
// arriving at the point, Next the segment leaving it.
type ControlPoint struct {
	Prev, Next gg.Point
}

// Interpolate computes Catmull-Rom style control points for a smooth
// curve through points. The tangent at interior point i is
// (points[i+1] - points[i-1]) scaled by tension; Prev and Next sit the
// tangent's length before and after the point.
//
// Exactly len(points)-2 pairs are returned, index-aligned to the interior
// points. Fewer than three points cannot carry a cubic segment, so the
// result is nil and the caller falls back to straight lines.
//
// Interpolate is a pure function; it never mutates points.
func Interpolate(points []gg.Point, tension float64) []ControlPoint {
	if len(points) < 3 {
		return nil
	}
	cps := make([]ControlPoint, len(points)-2)
	for i := 1; i <= len(points)-2; i++ {
		tangent := points[i+1].Sub(points[i-1]).Mul(tension)
		cps[i-1] = ControlPoint{
			Prev: points[i].Sub(tangent),
			Next: points[i].Add(tangent),
		}
	}
	return cps
}

// SplineSegments assembles the drawable curve for points. The two
// boundary segments have no symmetric neighbour and come back as
// quadratics steered by the single adjacent control point; every interior
// segment is a full cubic. For fewer than three points both return values
// are nil.
func SplineSegments(points []gg.Point, tension float64) (quads []gg.QuadBez, cubics []gg.CubicBez) {
	cps := Interpolate(points, tension)
	if cps == nil {
		return nil, nil
	}
	n := len(points)
	quads = []gg.QuadBez{
		gg.NewQuadBez(points[0], cps[0].Prev, points[1]),
		gg.NewQuadBez(points[n-2], cps[n-3].Next, points[n-1]),
	}
	for i := 1; i <= n-3; i++ {
		cubics = append(cubics, gg.NewCubicBez(
			points[i], cps[i-1].Next, cps[i].Prev, points[i+1],
		))
	}
	return quads, cubics
}
