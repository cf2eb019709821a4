package channel

import "github.com/g3n/panima/valuekind"

// Sample evaluates the channel at world time t (spec §4.4): map through
// the time-frame, resolve the surrounding keyframes, interpolate, then
// run the bound expression (if any) over the result.
func (c *Channel) Sample(t float32) any {

	if c.keys.IsEmpty() {
		return valuekind.Zero(c.ValueKind())
	}
	i, j, f := c.Find(t)
	return c.sampleFromIndices(t, i, j, f)
}

// sampleWithPivot is Sample but starting the index search from pivot,
// for callers that sweep through time and can amortize the search via
// FindWithPivot.
func (c *Channel) sampleWithPivot(t float32, pivot int) any {

	if c.keys.IsEmpty() {
		return valuekind.Zero(c.ValueKind())
	}
	i, j, f := c.FindWithPivot(t, pivot)
	return c.sampleFromIndices(t, i, j, f)
}

func (c *Channel) sampleFromIndices(t float32, i, j int, f float32) any {

	var v any
	if i == j {
		v = c.keys.GetValue(i)
	} else {
		v = c.interpolateAt(i, j, f)
	}
	if c.expression != nil {
		v = c.expression.apply(c, t, i, v)
	}
	return v
}

// interpolateAt blends between keyframes i and j at factor f according to
// the channel's interpolation mode and the value kind's own rule (lerp,
// slerp, round-lerp, or step — spec §4.4).
func (c *Channel) interpolateAt(i, j int, f float32) any {

	a, b := c.keys.GetValue(i), c.keys.GetValue(j)
	if c.interpolation == Step {
		if f < 0.5 {
			return a
		}
		return b
	}
	return valuekind.Lerp(c.ValueKind(), a, b, f)
}

// getInterpolatedValue is the internal helper edit operations use to
// synthesize a value at an arbitrary time without going through the
// expression binding (GetDataInRange's boundaries, ClearRange's caps,
// InsertSample and Decimate all sample "raw" interpolated values,
// matching the source's GetInterpolatedValue<T>).
func (c *Channel) getInterpolatedValue(t float32) any {

	if c.keys.IsEmpty() {
		return valuekind.Zero(c.ValueKind())
	}
	i, j, f := c.Find(t)
	if i == j {
		return c.keys.GetValue(i)
	}
	return c.interpolateAt(i, j, f)
}

func (c *Channel) getInterpolatedValueWithPivot(t float32, pivot int) any {

	if c.keys.IsEmpty() {
		return valuekind.Zero(c.ValueKind())
	}
	i, j, f := c.FindWithPivot(t, pivot)
	if i == j {
		return c.keys.GetValue(i)
	}
	return c.interpolateAt(i, j, f)
}
