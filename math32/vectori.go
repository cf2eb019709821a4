// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2i is a 2-component vector of int32, used for integer-valued
// animation channels (e.g. pixel offsets, tile indices).
type Vector2i struct {
	X int32
	Y int32
}

// NewVector2i creates and returns a pointer to a new Vector2i.
func NewVector2i(x, y int32) *Vector2i {

	return &Vector2i{X: x, Y: y}
}

// Set sets this vector's components.
func (v *Vector2i) Set(x, y int32) *Vector2i {

	v.X = x
	v.Y = y
	return v
}

// Equals returns true if this vector equals other.
func (v *Vector2i) Equals(other *Vector2i) bool {

	return v.X == other.X && v.Y == other.Y
}

// Vector3i is a 3-component vector of int32.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// NewVector3i creates and returns a pointer to a new Vector3i.
func NewVector3i(x, y, z int32) *Vector3i {

	return &Vector3i{X: x, Y: y, Z: z}
}

// Set sets this vector's components.
func (v *Vector3i) Set(x, y, z int32) *Vector3i {

	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// Equals returns true if this vector equals other.
func (v *Vector3i) Equals(other *Vector3i) bool {

	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Vector4i is a 4-component vector of int32.
type Vector4i struct {
	X int32
	Y int32
	Z int32
	W int32
}

// NewVector4i creates and returns a pointer to a new Vector4i.
func NewVector4i(x, y, z, w int32) *Vector4i {

	return &Vector4i{X: x, Y: y, Z: z, W: w}
}

// Set sets this vector's components.
func (v *Vector4i) Set(x, y, z, w int32) *Vector4i {

	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
	return v
}

// Equals returns true if this vector equals other.
func (v *Vector4i) Equals(other *Vector4i) bool {

	return v.X == other.X && v.Y == other.Y && v.Z == other.Z && v.W == other.W
}
