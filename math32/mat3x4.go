// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Mat3x4 is a 3x4 matrix (3 rows, 4 columns), organized row-major, commonly
// used for skinning/bone transforms where the bottom affine row (0,0,0,1)
// is implicit and not stored. It supports only the operations the channel
// engine needs: component-wise lerp and equality.
type Mat3x4 [12]float32

// NewMat3x4 creates and returns a pointer to a new Mat3x4 initialized
// as the identity transform.
func NewMat3x4() *Mat3x4 {

	var m Mat3x4
	m.Identity()
	return &m
}

// Identity sets this matrix to the identity transform.
func (m *Mat3x4) Identity() *Mat3x4 {

	*m = Mat3x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
	return m
}

// Lerp sets this matrix to the component-wise linear interpolation
// between itself and other at alpha.
func (m *Mat3x4) Lerp(other *Mat3x4, alpha float32) *Mat3x4 {

	for i := range m {
		m[i] += (other[i] - m[i]) * alpha
	}
	return m
}

// Equals returns true if this matrix equals other within eps per component.
func (m *Mat3x4) Equals(other *Mat3x4, eps float32) bool {

	for i := range m {
		if Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}
