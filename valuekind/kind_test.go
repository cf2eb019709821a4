package valuekind

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g3n/panima/math32"
)

func TestKind_StringRoundTrip(t *testing.T) {

	for k := Bool; k < numKinds; k++ {
		name := k.String()
		parsed, ok := ParseKind(name)
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}
}

func TestKind_ParseUnknown(t *testing.T) {

	_, ok := ParseKind("NotAKind")
	assert.False(t, ok)
}

func TestLerp_FloatAndQuaternion(t *testing.T) {

	got := Lerp(Float, float32(0), float32(10), 0.25)
	assert.Equal(t, float32(2.5), got)

	qa := math32.Quaternion{X: 1, Y: 0, Z: 0, W: 0}
	qb := math32.Quaternion{X: 0, Y: 1, Z: 0, W: 0}
	gotQ := Lerp(Quaternion, qa, qb, 0.5).(math32.Quaternion)
	assert.InDelta(t, 0.70710678, gotQ.X, 1e-6)
}

func TestLerp_IntegerRounds(t *testing.T) {

	got := Lerp(Int32, int32(0), int32(10), 0.24)
	assert.Equal(t, int32(2), got)
}

func TestIsAnimatable_AllKindsTrue(t *testing.T) {

	for k := Bool; k < numKinds; k++ {
		assert.True(t, IsAnimatable(k), k.String())
	}
}

func TestIsStepOnly_BoolAndIntegers(t *testing.T) {

	assert.True(t, IsStepOnly(Bool))
	assert.True(t, IsStepOnly(Int32))
	assert.False(t, IsStepOnly(Float))
	assert.False(t, IsStepOnly(Vector3))
}

func TestComponents_ScalarVsVector(t *testing.T) {

	assert.Nil(t, Components(Float))
	assert.Equal(t, []string{"x", "y", "z"}, Components(Vector3))
}

func TestRawComponent_BoolAndMatrices(t *testing.T) {

	assert.Equal(t, 1, NumComponents(Bool))
	assert.Equal(t, float64(1), RawComponent(Bool, true, 0))
	assert.Equal(t, false, SetRawComponent(Bool, true, 0, 0))

	assert.Equal(t, 12, NumComponents(Mat3x4))
	m3 := Zero(Mat3x4).(math32.Mat3x4)
	m3 = SetRawComponent(Mat3x4, m3, 3, 7).(math32.Mat3x4)
	assert.Equal(t, float64(7), RawComponent(Mat3x4, m3, 3))

	assert.Equal(t, 16, NumComponents(Mat4))
	m4 := Zero(Mat4).(math32.Matrix4)
	m4 = SetRawComponent(Mat4, m4, 15, 9).(math32.Matrix4)
	assert.Equal(t, float64(9), RawComponent(Mat4, m4, 15))
}

func TestConvert_ScalarAndVector(t *testing.T) {

	v, ok := Convert(float32(3), Float, Double)
	assert.True(t, ok)
	assert.Equal(t, float64(3), v)

	vi, ok := Convert(math32.Vector3{X: 1.7, Y: 2.2, Z: 3.9}, Vector3, Vector3i)
	assert.True(t, ok)
	got := vi.(math32.Vector3i)
	assert.Equal(t, int32(2), got.X)
	assert.Equal(t, int32(2), got.Y)
	assert.Equal(t, int32(4), got.Z)

	_, ok = Convert(math32.Vector3{}, Vector3, Vector2)
	assert.False(t, ok)
}
