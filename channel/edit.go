package channel

import (
	"sort"

	"github.com/g3n/panima/math32"
	"github.com/g3n/panima/reducer"
	"github.com/g3n/panima/valuekind"
)

// mergeRuleIncomingWins names the collision rule InsertValues' merge pass
// applies when an incoming sample and an existing sample land within
// TimeEpsilon of each other: the incoming sample is kept and the
// existing one is dropped. The source's merge walk leaves the winner
// unspecified (spec Open Question); this is the explicit, tested choice.
const mergeRuleIncomingWins = true

// Transform is a scaled rigid transform: scale uniformly, then rotate,
// then translate. TransformGlobal applies it to Vector3 (point) and
// Quaternion (rotation) channels and leaves every other kind untouched.
type Transform struct {
	Translation math32.Vector3
	Rotation    math32.Quaternion
	Scale       float32
}

// AddValue inserts or overwrites the sample at time t (spec §4.5). If t
// snaps to an existing timestamp within ValueEpsilon, that sample's
// value is overwritten; otherwise a new sample is inserted in sorted
// order. Returns the index the value now lives at.
func (c *Channel) AddValue(t float32, v any) int {

	if idx, ok := c.FindValueIndex(t, ValueEpsilon); ok {
		c.keys.SetValue(idx, v)
		return idx
	}
	at := sort.Search(c.keys.Len(), func(k int) bool { return c.keys.GetTime(k) > t })
	c.keys.InsertAt(at, t, v)
	c.updateEffective()
	return at
}

// writeBlock grows the array at the correct sorted position and writes
// times/values verbatim, the "size up and write the new block" half of
// both InsertValues' clear-mode and MergeValues (spec §4.5).
func (c *Channel) writeBlock(times []float32, values []any) int {

	start := sort.Search(c.keys.Len(), func(k int) bool { return c.keys.GetTime(k) >= times[0] })
	c.keys.AddRange(start, len(times))
	for k := range times {
		c.keys.SetTime(start+k, times[k])
		c.keys.SetValue(start+k, values[k])
	}
	c.updateEffective()
	return start
}

// insertClearMode clears [times[0]-TimeEpsilon, times[last]+TimeEpsilon]
// and writes the block, the "ClearExistingDataInRange" half of
// InsertValues.
func (c *Channel) insertClearMode(times []float32, values []any) int {

	c.ClearRange(times[0]-TimeEpsilon, times[len(times)-1]+TimeEpsilon, false)
	return c.writeBlock(times, values)
}

// GetDataInRange returns the samples covering [tStart, tEnd]: existing
// keyframes strictly inside the range, plus synthetic interpolated
// boundary samples at tStart/tEnd when no keyframe sits there exactly
// (spec §4.3, supplementing KeyStore). Used by InsertValues' merge path
// and by Decimate.
func (c *Channel) GetDataInRange(tStart, tEnd float32) ([]float32, []any) {

	if c.keys.IsEmpty() {
		return nil, nil
	}
	var times []float32
	var values []any

	if _, ok := c.FindValueIndex(tStart, TimeEpsilon); !ok {
		times = append(times, tStart)
		values = append(values, c.getInterpolatedValue(tStart))
	}
	n := c.keys.Len()
	start := sort.Search(n, func(k int) bool { return c.keys.GetTime(k) >= tStart-TimeEpsilon })
	end := sort.Search(n, func(k int) bool { return c.keys.GetTime(k) > tEnd+TimeEpsilon })
	for k := start; k < end; k++ {
		times = append(times, c.keys.GetTime(k))
		values = append(values, c.keys.GetValue(k))
	}
	if _, ok := c.FindValueIndex(tEnd, TimeEpsilon); !ok {
		times = append(times, tEnd)
		values = append(values, c.getInterpolatedValue(tEnd))
	}
	return times, values
}

// mergeSamples merges two ascending (time, value) streams, resolving a
// collision within TimeEpsilon in favor of the incoming stream
// (mergeRuleIncomingWins).
func mergeSamples(existingT []float32, existingV []any, incomingT []float32, incomingV []any) ([]float32, []any) {

	var outT []float32
	var outV []any
	i, j := 0, 0
	for i < len(existingT) || j < len(incomingT) {
		switch {
		case j >= len(incomingT):
			outT, outV = append(outT, existingT[i]), append(outV, existingV[i])
			i++
		case i >= len(existingT):
			outT, outV = append(outT, incomingT[j]), append(outV, incomingV[j])
			j++
		case math32.Abs(existingT[i]-incomingT[j]) < TimeEpsilon:
			outT, outV = append(outT, incomingT[j]), append(outV, incomingV[j])
			i++
			j++
		case incomingT[j] < existingT[i]:
			outT, outV = append(outT, incomingT[j]), append(outV, incomingV[j])
			j++
		default:
			outT, outV = append(outT, existingT[i]), append(outV, existingV[i])
			i++
		}
	}
	return outT, outV
}

// InsertValues writes len(times) (time, value) samples, shifted by
// offset first, merging with existing data in their range unless
// ClearExistingDataInRange is set (spec §4.5). Returns the index the
// first written sample lives at.
func (c *Channel) InsertValues(times []float32, values []any, offset float32, flags InsertFlags) (int, *Error) {

	if len(times) == 0 || len(times) != len(values) {
		return 0, newError(InvalidRange, "times/values length mismatch")
	}
	local := make([]float32, len(times))
	for i, t := range times {
		local[i] = t + offset
	}

	var start int
	if flags.has(ClearExistingDataInRange) {
		start = c.insertClearMode(local, values)
	} else {
		existT, existV := c.GetDataInRange(local[0], local[len(local)-1])
		mergedT, mergedV := mergeSamples(existT, existV, local, values)
		start = c.insertClearMode(mergedT, mergedV)
	}
	if flags.has(DecimateInsertedData) {
		c.Decimate(local[0], local[len(local)-1], DefaultDecimateError)
	}
	return start, nil
}

// ClearRange removes every sample in [start, end] (clamped to channel
// bounds), optionally re-inserting interpolated boundary samples at the
// (possibly clamped) start/end times first (spec §4.5).
func (c *Channel) ClearRange(start, end float32, addCaps bool) (bool, *Error) {

	if c.keys.IsEmpty() {
		return false, nil
	}
	if start > end {
		return false, newError(InvalidRange, "start > end")
	}
	minT, maxT := c.MinTime(), c.MaxTime()
	if end < minT-TimeEpsilon || start > maxT+TimeEpsilon {
		return false, newError(InvalidRange, "range outside channel bounds")
	}
	if start < minT {
		start = minT
	}
	if end > maxT {
		end = maxT
	}

	var startCap, endCap any
	if addCaps {
		startCap = c.getInterpolatedValue(start)
		endCap = c.getInterpolatedValue(end)
	}

	si, sj, sf := c.Find(start)
	startIdx := sj
	if sf < TimeEpsilon {
		startIdx = si
	}
	ei, ej, ef := c.Find(end)
	endIdx := ei
	if ef > 1-TimeEpsilon {
		endIdx = ej
	}

	if startIdx <= endIdx {
		c.keys.RemoveRange(startIdx, endIdx-startIdx+1)
		c.updateEffective()
	}
	if addCaps {
		c.AddValue(start, startCap)
		c.AddValue(end, endCap)
	}
	return true, nil
}

// ResolveDuplicates removes any neighbor of the sample nearest t that
// falls within TimeEpsilon, repeating until none remain (spec §4.5).
func (c *Channel) ResolveDuplicates(t float32) {

	for {
		idx, ok := c.FindValueIndex(t, TimeEpsilon)
		if !ok {
			return
		}
		switch {
		case idx > 0 && math32.Abs(c.keys.GetTime(idx)-c.keys.GetTime(idx-1)) < TimeEpsilon:
			c.keys.RemoveAt(idx - 1)
		case idx < c.keys.Len()-1 && math32.Abs(c.keys.GetTime(idx+1)-c.keys.GetTime(idx)) < TimeEpsilon:
			c.keys.RemoveAt(idx + 1)
		default:
			return
		}
		c.updateEffective()
	}
}

// InsertSample interpolates a synthetic value at t and inserts it if no
// sample already sits there (spec §4.5's boundary_indices helper).
func (c *Channel) InsertSample(t float32) (int, *Error) {

	if c.keys.IsEmpty() {
		return 0, newError(EmptyChannel, "channel has no samples")
	}
	if idx, ok := c.FindValueIndex(t, TimeEpsilon); ok {
		return idx, nil
	}
	return c.AddValue(t, c.getInterpolatedValue(t)), nil
}

// BoundaryIndices resolves tStart/tEnd to sample indices. Without
// retain, it snaps to the nearest existing sample and fails if either
// endpoint lies outside the channel's range (padded by TimeEpsilon).
// With retain, it first calls InsertSample at both endpoints so exact
// samples are guaranteed to exist (spec §4.5).
func (c *Channel) BoundaryIndices(tStart, tEnd float32, retain bool) (int, int, bool) {

	if retain {
		c.InsertSample(tStart)
		c.InsertSample(tEnd)
	}
	si, ok := c.FindValueIndex(tStart, TimeEpsilon)
	if !ok {
		return 0, 0, false
	}
	ei, ok := c.FindValueIndex(tEnd, TimeEpsilon)
	if !ok {
		return 0, 0, false
	}
	return si, ei, true
}

// ShiftTimeInRange adds delta to every timestamp in [tStart, tEnd] (spec
// §4.5). With retainBoundary, the trailing edge's original value is
// re-inserted at its original time afterward, so a caller sampling that
// time still sees continuity rather than a hole.
func (c *Channel) ShiftTimeInRange(tStart, tEnd, delta float32, retainBoundary bool) *Error {

	if math32.Abs(delta) <= TimeEpsilon*1.5 {
		return nil
	}
	idxStart, idxEnd, ok := c.BoundaryIndices(tStart, tEnd, retainBoundary)
	if !ok {
		return newError(InvalidRange, "range not found")
	}

	var trailingT float32
	var trailingV any
	haveTrailing := retainBoundary
	if retainBoundary {
		if delta < 0 {
			trailingT, trailingV = c.keys.GetTime(idxEnd), c.keys.GetValue(idxEnd)
			c.ClearRange(tStart+delta, tStart-TimeEpsilon, false)
		} else {
			trailingT, trailingV = c.keys.GetTime(idxStart), c.keys.GetValue(idxStart)
			c.ClearRange(tEnd+TimeEpsilon, tEnd+delta, false)
		}
		idxStart, idxEnd, ok = c.BoundaryIndices(tStart, tEnd, false)
		if !ok {
			return newError(InvalidRange, "range lost after pre-clear")
		}
	}

	for k := idxStart; k <= idxEnd; k++ {
		c.keys.SetTime(k, c.keys.GetTime(k)+delta)
	}
	c.updateEffective()
	c.ResolveDuplicates(c.keys.GetTime(idxStart))
	c.ResolveDuplicates(c.keys.GetTime(idxEnd))

	if haveTrailing {
		c.AddValue(trailingT, trailingV)
	}
	return nil
}

// ScaleTimeInRange applies t' = tPivot + (t-tPivot)*scale to every
// timestamp in [tStart, tEnd] (spec §4.5).
func (c *Channel) ScaleTimeInRange(tStart, tEnd, tPivot, scale float32, retainBoundary bool) *Error {

	idxStart, idxEnd, ok := c.BoundaryIndices(tStart, tEnd, retainBoundary)
	if !ok {
		return newError(InvalidRange, "range not found")
	}
	var startVal, endVal any
	if retainBoundary {
		startVal, endVal = c.keys.GetValue(idxStart), c.keys.GetValue(idxEnd)
	}

	tStartScaled := tPivot + (tStart-tPivot)*scale
	tEndScaled := tPivot + (tEnd-tPivot)*scale
	lo, hi := tStartScaled, tEndScaled
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < tStart {
		c.ClearRange(lo, tStart-TimeEpsilon, false)
	}
	if hi > tEnd {
		c.ClearRange(tEnd+TimeEpsilon, hi, false)
	}
	idxStart, idxEnd, ok = c.BoundaryIndices(tStart, tEnd, false)
	if !ok {
		return newError(InvalidRange, "range lost after pre-clear")
	}

	for k := idxStart; k <= idxEnd; k++ {
		t := c.keys.GetTime(k)
		c.keys.SetTime(k, tPivot+(t-tPivot)*scale)
	}
	c.updateEffective()
	c.ResolveDuplicates(tStartScaled)
	c.ResolveDuplicates(tEndScaled)

	if retainBoundary {
		pullInStart := (scale < 1 && tPivot >= tStart) || (scale > 1 && tPivot <= tStart)
		pullInEnd := (scale < 1 && tPivot <= tEnd) || (scale > 1 && tPivot >= tEnd)
		if pullInStart {
			c.AddValue(tStart, startVal)
		}
		if pullInEnd {
			c.AddValue(tEnd, endVal)
		}
	}
	return nil
}

// MergeValues overwrites this channel's data in other's time range with
// other's data, converting other's values to this channel's kind (spec
// §4.5). other is left unmodified.
func (c *Channel) MergeValues(other *Channel) *Error {

	if other.Len() == 0 {
		return nil
	}
	if !valuekind.Convertible(other.ValueKind(), c.ValueKind()) {
		return newError(TypeMismatch, "source kind not convertible to target kind")
	}
	c.ClearRange(other.MinTime(), other.MaxTime(), false)

	n := other.Len()
	times := make([]float32, n)
	values := make([]any, n)
	for k := 0; k < n; k++ {
		times[k] = other.keys.GetTime(k)
		v := other.keys.GetValue(k)
		if other.ValueKind() != c.ValueKind() {
			v, _ = valuekind.Convert(v, other.ValueKind(), c.ValueKind())
		}
		values[k] = v
	}
	c.writeBlock(times, values)
	return nil
}

// TransformGlobal applies xform in place to Vector3 (as a point) and
// Quaternion (as a rotation, composed on the left) channels; every other
// kind is left untouched (spec §4.5).
func (c *Channel) TransformGlobal(xform Transform) {

	switch c.ValueKind() {
	case valuekind.Vector3:
		for i := 0; i < c.keys.Len(); i++ {
			p := c.keys.GetValue(i).(math32.Vector3)
			p.MultiplyScalar(xform.Scale)
			p.ApplyQuaternion(&xform.Rotation)
			p.Add(&xform.Translation)
			c.keys.SetValue(i, p)
		}
	case valuekind.Quaternion:
		for i := 0; i < c.keys.Len(); i++ {
			q := c.keys.GetValue(i).(math32.Quaternion)
			composed := xform.Rotation
			composed.Multiply(&q)
			c.keys.SetValue(i, composed)
		}
	}
}

// Optimize removes keyframes that lie on the chord between their
// neighbors within OptimizeEpsilon, returning the count removed (spec
// §4.5).
func (c *Channel) Optimize() int {

	if !valuekind.IsAnimatable(c.ValueKind()) {
		return 0
	}
	removed := 0
	for i := c.keys.Len() - 2; i >= 1; i-- {
		t0, t1, t2 := c.keys.GetTime(i-1), c.keys.GetTime(i), c.keys.GetTime(i+1)
		if t2 == t0 {
			continue
		}
		f := (t1 - t0) / (t2 - t0)
		lerped := valuekind.Lerp(c.ValueKind(), c.keys.GetValue(i-1), c.keys.GetValue(i+1), f)
		if valuekind.Equal(c.ValueKind(), c.keys.GetValue(i), lerped, OptimizeEpsilon) {
			c.keys.RemoveAt(i)
			removed++
		}
	}
	if c.keys.Len() == 2 && valuekind.Equal(c.ValueKind(), c.keys.GetValue(0), c.keys.GetValue(1), OptimizeEpsilon) {
		c.keys.RemoveAt(1)
		removed++
	}
	if removed > 0 {
		c.updateEffective()
	}
	return removed
}

// Decimate simplifies [tStart, tEnd] by running the Reducer over each
// component of the value kind independently, then recomposing the
// surviving timestamps back into a single multi-component sample per
// timestamp (spec §4.5). A component not picked by the reducer at a
// given surviving timestamp is filled by resampling the original,
// pre-decimation channel there.
func (c *Channel) Decimate(tStart, tEnd float32, maxError float32) *Error {

	if !valuekind.IsAnimatable(c.ValueKind()) {
		return nil
	}
	n := c.keys.Len()
	start := sort.Search(n, func(k int) bool { return c.keys.GetTime(k) >= tStart-TimeEpsilon })
	end := sort.Search(n, func(k int) bool { return c.keys.GetTime(k) > tEnd+TimeEpsilon })
	if start >= end {
		return nil
	}

	width := valuekind.NumComponents(c.ValueKind())
	var red reducer.BezierReducer
	reduced := make([][]reducer.Point, width)
	for comp := 0; comp < width; comp++ {
		pts := make([]reducer.Point, 0, end-start)
		for k := start; k < end; k++ {
			val := valuekind.RawComponent(c.ValueKind(), c.keys.GetValue(k), comp)
			pts = append(pts, reducer.Point{X: c.keys.GetTime(k), Y: float32(val)})
		}
		reduced[comp] = red.Reduce(pts, maxError)
	}

	timeSet := map[float32]bool{}
	for _, pts := range reduced {
		for _, p := range pts {
			timeSet[p.X] = true
		}
	}
	times := make([]float32, 0, len(timeSet))
	for t := range timeSet {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	values := make([]any, len(times))
	for i, t := range times {
		base := c.getInterpolatedValue(t)
		for comp := 0; comp < width; comp++ {
			if y, ok := nearestReducedPoint(reduced[comp], t); ok {
				base = valuekind.SetRawComponent(c.ValueKind(), base, comp, float64(y))
			}
		}
		values[i] = base
	}

	c.ClearRange(tStart-TimeEpsilon, tEnd+TimeEpsilon, false)
	c.writeBlock(times, values)
	return nil
}

func nearestReducedPoint(points []reducer.Point, t float32) (float32, bool) {

	for _, p := range points {
		if math32.Abs(p.X-t) < TimeEpsilon {
			return p.Y, true
		}
	}
	return 0, false
}

// Validate checks invariant 2 (strict monotonic ordering with
// TimeEpsilon/2 headroom), first recovering via ResolveDuplicates at
// every offending pair and only then reporting any violation that
// recovery could not fix (the spec's Validate recovery-path Open
// Question, resolved in favor of making the recovery reachable).
func (c *Channel) Validate() *Error {

	for i := 1; i < c.keys.Len(); i++ {
		if c.keys.GetTime(i-1)+TimeEpsilon/2 > c.keys.GetTime(i) {
			c.ResolveDuplicates(c.keys.GetTime(i - 1))
			if i < c.keys.Len() {
				c.ResolveDuplicates(c.keys.GetTime(i))
			}
		}
	}
	for i := 1; i < c.keys.Len(); i++ {
		prev, cur := c.keys.GetTime(i-1), c.keys.GetTime(i)
		if prev > cur {
			return newError(Invariant, "times not in order")
		}
		if prev+TimeEpsilon/2 > cur {
			return newError(Invariant, "times too close")
		}
	}
	return nil
}
