// Package valuekind enumerates the closed set of value types a Channel may
// hold and exposes the per-kind operations (lerp, identity, component
// access, convertibility) the channel engine dispatches on. The dispatch
// surface is closed: every switch over Kind in this package is expected to
// be exhaustive, and adding a Kind means touching every file here.
package valuekind

import "fmt"

// Kind identifies one of the value types a Channel can animate.
type Kind int

const (
	Bool Kind = iota
	Int8
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Float
	Double
	Vector2
	Vector3
	Vector4
	Vector2i
	Vector3i
	Vector4i
	Quaternion
	EulerAngles
	Mat3x4
	Mat4

	numKinds
)

var kindNames = [numKinds]string{
	Bool:        "Bool",
	Int8:        "Int8",
	UInt8:       "UInt8",
	Int16:       "Int16",
	UInt16:      "UInt16",
	Int32:       "Int32",
	UInt32:      "UInt32",
	Int64:       "Int64",
	UInt64:      "UInt64",
	Float:       "Float",
	Double:      "Double",
	Vector2:     "Vector2",
	Vector3:     "Vector3",
	Vector4:     "Vector4",
	Vector2i:    "Vector2i",
	Vector3i:    "Vector3i",
	Vector4i:    "Vector4i",
	Quaternion:  "Quaternion",
	EulerAngles: "EulerAngles",
	Mat3x4:      "Mat3x4",
	Mat4:        "Mat4",
}

// String returns the canonical name of the kind, as used in Save/Load.
func (k Kind) String() string {

	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the given canonical name.
func ParseKind(name string) (Kind, bool) {

	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsValid returns whether k is one of the enumerated kinds.
func (k Kind) IsValid() bool {

	return k >= 0 && k < numKinds
}
