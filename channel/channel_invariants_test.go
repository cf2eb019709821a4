package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/panima/math32"
	"github.com/g3n/panima/store"
	"github.com/g3n/panima/valuekind"
)

func assertOrdered(t *testing.T, c *Channel) {

	t.Helper()
	n := c.Len()
	for i := 1; i < n; i++ {
		ti, _ := c.GetTime(i)
		tp, _ := c.GetTime(i - 1)
		assert.GreaterOrEqual(t, ti-tp, TimeEpsilon/2)
	}
}

// Invariant 1 & 2: every mutating op keeps times/values in lockstep and
// strictly increasing with at least TimeEpsilon/2 headroom.
func TestInvariant_MutationsKeepOrder(t *testing.T) {

	c := New(valuekind.Float)
	for _, tm := range []float32{5, 1, 3, 2, 4} {
		c.AddValue(tm, tm*10)
	}
	assertOrdered(t, c)

	c.InsertValues([]float32{2.5, 3.5}, []any{float32(99), float32(98)}, 0, 0)
	assertOrdered(t, c)

	c.ClearRange(1.5, 3.5, false)
	assertOrdered(t, c)

	c.ShiftTimeInRange(c.MinTime(), c.MaxTime(), 10, false)
	assertOrdered(t, c)

	c.ScaleTimeInRange(c.MinTime(), c.MaxTime(), c.MinTime(), 2, false)
	assertOrdered(t, c)

	c.Optimize()
	assertOrdered(t, c)
}

// Invariant 2: sampling a Float channel at a keyframe's own time returns
// that keyframe's value within 1e-5.
func TestInvariant_SampleAtKeyframeMatchesValue(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3}, []float32{1, 2, 3, 4})
	for i := 0; i < c.Len(); i++ {
		tm, _ := c.GetTime(i)
		v, _ := c.GetValue(i)
		assert.InDelta(t, v, c.Sample(tm), 1e-5)
	}
}

// Invariant 3: time-frame mapping composes with plain-channel sampling.
func TestInvariant_TimeFrameMapping(t *testing.T) {

	plain := floatChannel(t, []float32{0, 1, 2}, []float32{0, 10, 20})

	framed := floatChannel(t, []float32{0, 1, 2}, []float32{0, 10, 20})
	framed.SetTimeFrame(TimeFrame{StartOffset: 2, Scale: 3, Duration: -1})

	got := framed.Sample(2.5).(float32)
	want := plain.Sample((2.5 - 2) * 3).(float32)
	assert.Equal(t, want, got)
}

// Invariant 4: Round trip through Save/Load preserves sampling.
func TestInvariant_SaveLoadRoundTrip(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3}, []float32{0, 10, 5, 20})
	c.SetInterpolation(Linear)

	data, err := c.Save()
	require.NoError(t, err)

	loaded, err := Load(data, store.SliceFactory{})
	require.NoError(t, err)

	for tm := float32(-1); tm <= 4; tm += 0.5 {
		assert.InDelta(t, c.Sample(tm), loaded.Sample(tm), 1e-5)
	}
}

// Invariant 6: shift then inverse-shift reproduces the original times.
func TestInvariant_ShiftThenInverse(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3}, []float32{0, 10, 20, 30})
	original := make([]float32, c.Len())
	for i := range original {
		original[i], _ = c.GetTime(i)
	}

	require.Nil(t, c.ShiftTimeInRange(1, 2, 0.5, false))
	require.Nil(t, c.ShiftTimeInRange(1.5, 2.5, -0.5, false))

	require.Equal(t, len(original), c.Len())
	for i, want := range original {
		got, _ := c.GetTime(i)
		assert.InDelta(t, want, got, float64(TimeEpsilon))
	}
}

// Invariant 8: optimize never perturbs sampling by more than OptimizeEpsilon.
func TestInvariant_OptimizePreservesSampling(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3, 4}, []float32{0, 5, 10, 15, 20})
	before := make([]float32, 0)
	for tm := float32(0); tm <= 4; tm += 0.25 {
		before = append(before, c.Sample(tm).(float32))
	}
	c.Optimize()
	i := 0
	for tm := float32(0); tm <= 4; tm += 0.25 {
		assert.InDelta(t, before[i], c.Sample(tm), float64(OptimizeEpsilon)+1e-6)
		i++
	}
}

// Serialization must not panic for kinds with no named expression
// components (Bool, and the matrix kinds, which have no x/y/z/w symbols
// at all) — only the Vector/Quaternion/EulerAngles/int kinds used to get
// a getComp/setComp pair.
func TestSaveLoad_BoolChannelRoundTrips(t *testing.T) {

	c := New(valuekind.Bool)
	c.AddValue(0, true)
	c.AddValue(1, false)

	data, err := c.Save()
	require.NoError(t, err)

	loaded, err := Load(data, store.SliceFactory{})
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	v0, _ := loaded.GetValue(0)
	v1, _ := loaded.GetValue(1)
	assert.Equal(t, true, v0)
	assert.Equal(t, false, v1)
}

func TestSaveLoad_MatrixChannelsRoundTrip(t *testing.T) {

	m3a := math32.Mat3x4{}
	m3a.Identity()
	m3b := math32.Mat3x4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	c := New(valuekind.Mat3x4)
	c.AddValue(0, m3a)
	c.AddValue(1, m3b)

	data, err := c.Save()
	require.NoError(t, err)
	loaded, err := Load(data, store.SliceFactory{})
	require.NoError(t, err)

	got, _ := loaded.GetValue(1)
	assert.Equal(t, m3b, got.(math32.Mat3x4))
}

func TestValidate_RecoversDuplicatesBeforeReporting(t *testing.T) {

	c := New(valuekind.Float)
	c.keys.Resize(3)
	c.keys.SetTime(0, 0)
	c.keys.SetValue(0, float32(0))
	c.keys.SetTime(1, 0.0001)
	c.keys.SetValue(1, float32(1))
	c.keys.SetTime(2, 1)
	c.keys.SetValue(2, float32(2))

	err := c.Validate()
	assert.Nil(t, err)
	assert.Equal(t, 2, c.Len())
}

func TestInsertValues_MergeCollisionIncomingWins(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2}, []float32{0, 10, 20})
	_, err := c.InsertValues([]float32{1, 3}, []any{float32(999), float32(30)}, 0, 0)
	require.Nil(t, err)

	v1, ok := c.FindValueIndex(1, TimeEpsilon)
	require.True(t, ok)
	val, _ := c.GetValue(v1)
	assert.Equal(t, float32(999), val)
}
