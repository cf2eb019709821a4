package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/panima/chanpath"
	"github.com/g3n/panima/math32"
	"github.com/g3n/panima/valuekind"
)

func floatChannel(t *testing.T, times []float32, values []float32) *Channel {

	c := New(valuekind.Float)
	for i, tm := range times {
		c.AddValue(tm, values[i])
	}
	return c
}

// S1 - linear sample.
func TestScenario_LinearSample(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2}, []float32{0, 10, 0})
	assert.Equal(t, float32(5), c.Sample(0.5))
	assert.Equal(t, float32(5), c.Sample(1.5))
	assert.Equal(t, float32(0), c.Sample(-1))
	assert.Equal(t, float32(0), c.Sample(3))
}

// S2 - quaternion slerp.
func TestScenario_QuaternionSlerp(t *testing.T) {

	c := New(valuekind.Quaternion)
	c.AddValue(0, math32.Quaternion{X: 1, Y: 0, Z: 0, W: 0})
	c.AddValue(1, math32.Quaternion{X: 0, Y: 1, Z: 0, W: 0})

	got := c.Sample(0.5).(math32.Quaternion)
	const root2over2 = 0.70710678
	assert.InDelta(t, root2over2, got.X, 1e-6)
	assert.InDelta(t, root2over2, got.Y, 1e-6)
	assert.InDelta(t, 0, got.Z, 1e-6)
	assert.InDelta(t, 0, got.W, 1e-6)
}

// S3 - clear_range with caps.
func TestScenario_ClearRangeWithCaps(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3}, []float32{0, 10, 20, 30})
	ok, err := c.ClearRange(0.5, 2.5, true)
	require.True(t, ok)
	require.Nil(t, err)

	require.Equal(t, 4, c.Len())
	wantTimes := []float32{0, 0.5, 2.5, 3}
	wantValues := []float32{0, 5, 25, 30}
	for i, wt := range wantTimes {
		tm, _ := c.GetTime(i)
		v, _ := c.GetValue(i)
		assert.Equal(t, wt, tm)
		assert.Equal(t, wantValues[i], v)
	}
}

// S4 - optimize collinear.
func TestScenario_OptimizeCollinear(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2}, []float32{0, 5, 10})
	removed := c.Optimize()
	assert.Equal(t, 1, removed)
	require.Equal(t, 2, c.Len())
	t0, _ := c.GetTime(0)
	t1, _ := c.GetTime(1)
	v0, _ := c.GetValue(0)
	v1, _ := c.GetValue(1)
	assert.Equal(t, float32(0), t0)
	assert.Equal(t, float32(2), t1)
	assert.Equal(t, float32(0), v0)
	assert.Equal(t, float32(10), v1)
}

// S5 - shift_time_in_range retain.
func TestScenario_ShiftRetainBoundary(t *testing.T) {

	c := floatChannel(t, []float32{0, 1, 2, 3}, []float32{0, 10, 20, 30})
	err := c.ShiftTimeInRange(1, 2, 0.5, true)
	require.Nil(t, err)

	require.Equal(t, 4, c.Len())
	wantTimes := []float32{0, 1.5, 2.5, 3}
	wantValues := []float32{0, 10, 20, 30}
	for i, wt := range wantTimes {
		tm, _ := c.GetTime(i)
		v, _ := c.GetValue(i)
		assert.Equal(t, wt, tm)
		assert.Equal(t, wantValues[i], v)
	}

	sampled := c.Sample(1).(float32)
	assert.Greater(t, sampled, float32(0))
	assert.Less(t, sampled, float32(10))
}

// S6 - channel path URI round trip.
func TestScenario_ChannelPathRoundTrip(t *testing.T) {

	c := New(valuekind.Vector3)
	c.SetTargetPath(chanpath.New("panima:/skeleton/bone0/position?components=x,z"))
	assert.Equal(t, "panima:/skeleton/bone0/position?components=x,z", c.TargetPath().ToURI(true))
}
