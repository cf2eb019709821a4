package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/panima/math32"
	"github.com/g3n/panima/valuekind"
)

func TestTransformGlobal_Vector3(t *testing.T) {

	c := New(valuekind.Vector3)
	c.AddValue(0, math32.Vector3{X: 1, Y: 0, Z: 0})
	c.AddValue(1, math32.Vector3{X: 0, Y: 1, Z: 0})

	xform := Transform{
		Translation: math32.Vector3{X: 1, Y: 0, Z: 0},
		Rotation:    math32.Quaternion{X: 0, Y: 0, Z: 0, W: 1},
		Scale:       2,
	}
	c.TransformGlobal(xform)

	v0, _ := c.GetValue(0)
	got := v0.(math32.Vector3)
	assert.InDelta(t, 3, got.X, 1e-5)
	assert.InDelta(t, 0, got.Y, 1e-5)
	assert.InDelta(t, 0, got.Z, 1e-5)
}

func TestTransformGlobal_LeavesOtherKindsUntouched(t *testing.T) {

	c := floatChannel(t, []float32{0, 1}, []float32{5, 10})
	c.TransformGlobal(Transform{Scale: 100})

	v0, _ := c.GetValue(0)
	assert.Equal(t, float32(5), v0)
}

func TestMergeValues_OverwritesOverlappingRange(t *testing.T) {

	dst := floatChannel(t, []float32{0, 1, 2, 3}, []float32{0, 10, 20, 30})
	src := floatChannel(t, []float32{1, 2}, []float32{100, 200})

	err := dst.MergeValues(src)
	require.Nil(t, err)

	v1, ok := dst.FindValueIndex(1, TimeEpsilon)
	require.True(t, ok)
	val, _ := dst.GetValue(v1)
	assert.Equal(t, float32(100), val)

	v2, ok := dst.FindValueIndex(2, TimeEpsilon)
	require.True(t, ok)
	val, _ = dst.GetValue(v2)
	assert.Equal(t, float32(200), val)

	// src is left unmodified.
	assert.Equal(t, 2, src.Len())
}

func TestMergeValues_RejectsInconvertibleKind(t *testing.T) {

	dst := floatChannel(t, []float32{0, 1}, []float32{0, 10})
	src := New(valuekind.Vector3)
	src.AddValue(0, math32.Vector3{X: 1})

	err := dst.MergeValues(src)
	assert.NotNil(t, err)
}

func TestScaleTimeInRange_StretchesTimestamps(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3}, []float32{0, 10, 20, 30})
	err := c.ScaleTimeInRange(1, 2, 1, 2, false)
	require.Nil(t, err)

	t1, _ := c.GetTime(1)
	t2, _ := c.GetTime(2)
	assert.InDelta(t, 1, t1, 1e-5)
	assert.InDelta(t, 3, t2, 1e-5)
}

func TestBoundaryIndices_OutsideRangeFails(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2}, []float32{0, 10, 20})
	_, _, ok := c.BoundaryIndices(-5, -4, false)
	assert.False(t, ok)
}

func TestBoundaryIndices_RetainInsertsSamples(t *testing.T) {

	c := floatChannel(t, []float32{0, 2}, []float32{0, 20})
	si, ei, ok := c.BoundaryIndices(0.5, 1.5, true)
	require.True(t, ok)
	assert.Equal(t, 4, c.Len())
	assert.Less(t, si, ei)
}

func TestInsertSample_NoOpWhenSampleExists(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2}, []float32{0, 10, 20})
	idx, err := c.InsertSample(1)
	require.Nil(t, err)
	assert.Equal(t, 3, c.Len())
	v, _ := c.GetValue(idx)
	assert.Equal(t, float32(10), v)
}

func TestInsertSample_InterpolatesNewSample(t *testing.T) {

	c := floatChannel(t, []float32{0, 2}, []float32{0, 20})
	idx, err := c.InsertSample(1)
	require.Nil(t, err)
	require.Equal(t, 3, c.Len())
	v, _ := c.GetValue(idx)
	assert.InDelta(t, 10, v, 1e-5)
}

func TestGetDataInRange_SynthesizesBoundaries(t *testing.T) {

	c := floatChannel(t, []float32{0, 2, 4}, []float32{0, 20, 40})
	times, values := c.GetDataInRange(1, 3)

	require.Len(t, times, 3)
	assert.InDelta(t, 1, times[0], 1e-5)
	assert.InDelta(t, 2, times[1], 1e-5)
	assert.InDelta(t, 3, times[2], 1e-5)
	assert.InDelta(t, 10, values[0], 1e-5)
	assert.Equal(t, float32(20), values[1])
	assert.InDelta(t, 30, values[2], 1e-5)
}

func TestClearRange_WithoutCapsLeavesGap(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3}, []float32{0, 10, 20, 30})
	ok, err := c.ClearRange(1, 2, false)
	require.True(t, ok)
	require.Nil(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestDecimate_ReducesCollinearRegion(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3, 4}, []float32{0, 10, 20, 30, 40})
	err := c.Decimate(0, 4, DefaultDecimateError)
	require.Nil(t, err)
	assert.LessOrEqual(t, c.Len(), 5)
	assert.InDelta(t, 0, c.Sample(float32(0)), 1e-4)
	assert.InDelta(t, 40, c.Sample(float32(4)), 1e-4)
	assert.InDelta(t, 20, c.Sample(float32(2)), float64(DefaultDecimateError)+1e-3)
}
