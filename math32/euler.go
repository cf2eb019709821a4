// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// EulerAngles holds a rotation as three axis angles, in radians.
// Unlike Quaternion it is not used for composing rotations; it exists
// as an animatable value kind in its own right (component-wise lerp),
// matching channels authored directly in Euler form.
type EulerAngles struct {
	X float32
	Y float32
	Z float32
}

// NewEulerAngles creates and returns a pointer to a new EulerAngles.
func NewEulerAngles(x, y, z float32) *EulerAngles {

	return &EulerAngles{X: x, Y: y, Z: z}
}

// Set sets this value's components.
func (e *EulerAngles) Set(x, y, z float32) *EulerAngles {

	e.X = x
	e.Y = y
	e.Z = z
	return e
}

// ToQuaternion converts these Euler angles to an equivalent quaternion.
func (e *EulerAngles) ToQuaternion() *Quaternion {

	q := NewQuaternion(0, 0, 0, 1)
	q.SetFromEuler(&Vector3{X: e.X, Y: e.Y, Z: e.Z})
	return q
}

// Lerp sets this value to the component-wise linear interpolation
// between itself and other at alpha.
func (e *EulerAngles) Lerp(other *EulerAngles, alpha float32) *EulerAngles {

	e.X += (other.X - e.X) * alpha
	e.Y += (other.Y - e.Y) * alpha
	e.Z += (other.Z - e.Z) * alpha
	return e
}

// Equals returns true if this value equals other within eps per component.
func (e *EulerAngles) Equals(other *EulerAngles, eps float32) bool {

	return Abs(e.X-other.X) <= eps && Abs(e.Y-other.Y) <= eps && Abs(e.Z-other.Z) <= eps
}
