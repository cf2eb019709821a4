// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// AlmostEquals returns true if this vector is equal to other within tolerance
// per component. Mirrors Vector3.AlmostEquals for the value kinds that don't
// already define it.
func (v *Vector2) AlmostEquals(other *Vector2, tolerance float32) bool {

	return Abs(v.X-other.X) <= tolerance && Abs(v.Y-other.Y) <= tolerance
}

// AlmostEquals returns true if this vector is equal to other within tolerance
// per component.
func (v *Vector4) AlmostEquals(other *Vector4, tolerance float32) bool {

	return Abs(v.X-other.X) <= tolerance && Abs(v.Y-other.Y) <= tolerance && Abs(v.Z-other.Z) <= tolerance && Abs(v.W-other.W) <= tolerance
}

// AlmostEquals returns true if this quaternion is equal to other within
// tolerance per component.
func (q *Quaternion) AlmostEquals(other *Quaternion, tolerance float32) bool {

	return Abs(q.X-other.X) <= tolerance && Abs(q.Y-other.Y) <= tolerance && Abs(q.Z-other.Z) <= tolerance && Abs(q.W-other.W) <= tolerance
}

// Lerp sets this matrix to the element-wise linear interpolation between
// itself and other at alpha. Used only for animation sampling; not a
// geometric operation (interpolating rotation via raw matrix elements is
// an approximation, acceptable only because Matrix4 channels are rare and
// the engine does not claim tangent-correct blending, per spec).
func (m *Matrix4) Lerp(other *Matrix4, alpha float32) *Matrix4 {

	for i := range m {
		m[i] += (other[i] - m[i]) * alpha
	}
	return m
}

// AlmostEquals returns true if this matrix equals other within tolerance
// per element.
func (m *Matrix4) AlmostEquals(other *Matrix4, tolerance float32) bool {

	for i := range m {
		if Abs(m[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}
