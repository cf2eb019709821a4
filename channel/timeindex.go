package channel

import "github.com/g3n/panima/math32"

// maxPivotRecursion bounds FindWithPivot's linear walk before it falls
// back to binary search (spec §4.2).
const maxPivotRecursion = 2

// Find maps t through the effective time-frame and returns the
// surrounding keyframe indices and interpolation factor (spec §4.2). An
// empty channel returns (-1, -1, 0) as its sentinel (the spec's
// "infinity" sentinel, expressed as -1 since Go indices are ints).
func (c *Channel) Find(t float32) (i, j int, f float32) {

	n := c.keys.Len()
	if n == 0 {
		return -1, -1, 0
	}
	tl := c.effective.ToLocal(t)

	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		if c.keys.GetTime(mid) > tl {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	k := lo
	if k == n {
		return n - 1, n - 1, 0
	}
	if k == 0 {
		return 0, 0, 0
	}
	t0, t1 := c.keys.GetTime(k-1), c.keys.GetTime(k)
	return k - 1, k, (tl - t0) / (t1 - t0)
}

// FindWithPivot is Find, but starting the search from pivot and widening
// by at most maxPivotRecursion steps before falling back to the full
// binary search — an O(1) amortized fast path for callers that advance
// roughly monotonically in time (spec §4.2).
func (c *Channel) FindWithPivot(t float32, pivot int) (i, j int, f float32) {

	return c.findWithPivotDepth(t, pivot, 0)
}

func (c *Channel) findWithPivotDepth(t float32, pivot, depth int) (i, j int, f float32) {

	n := c.keys.Len()
	if pivot < 0 || pivot >= n || n < 2 || depth == maxPivotRecursion {
		return c.Find(t)
	}
	tl := c.effective.ToLocal(t)
	tPivot := c.keys.GetTime(pivot)
	if tl >= tPivot {
		if pivot == n-1 {
			return n - 1, n - 1, 0
		}
		tNext := c.keys.GetTime(pivot + 1)
		if tl < tNext {
			return pivot, pivot + 1, (tl - tPivot) / (tNext - tPivot)
		}
		return c.findWithPivotDepth(t, pivot+1, depth+1)
	}
	if pivot == 0 {
		return 0, 0, 0
	}
	return c.findWithPivotDepth(t, pivot-1, depth+1)
}

// FindValueIndex returns the single index whose timestamp equals t
// within eps, or false if no sample is that close (spec §4.2).
func (c *Channel) FindValueIndex(t float32, eps float32) (int, bool) {

	n := c.keys.Len()
	if n == 0 {
		return -1, false
	}
	i, j, f := c.Find(t)
	if i < 0 {
		return -1, false
	}
	if f == 0 && i == j {
		if i == 0 && math32.Abs(c.keys.GetTime(0)-t) >= eps {
			return -1, false
		}
		if i == n-1 && math32.Abs(c.keys.GetTime(n-1)-t) >= eps {
			return -1, false
		}
	}
	gap := c.keys.GetTime(j) - c.keys.GetTime(i)
	scaled := f * gap
	if scaled < eps {
		return i, true
	}
	if gap-scaled < eps {
		return j, true
	}
	return -1, false
}
