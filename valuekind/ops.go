package valuekind

import "math"

// Zero returns the identity/default value for the kind.
func Zero(k Kind) any {

	return registry[k].zero()
}

// IsAnimatable reports whether values of this kind may be interpolated,
// optimized and decimated. It is true for every kind: Bool and the
// integer kinds are included, and Lerp blends them by step or round(lerp).
func IsAnimatable(k Kind) bool {

	d := registry[k]
	return d.animatable || d.integer
}

// IsStepOnly reports whether the kind only supports nearest-neighbor
// interpolation (bool and all integer scalar/vector kinds).
func IsStepOnly(k Kind) bool {

	return registry[k].integer
}

// Lerp interpolates between a and b at factor f (in [0,1]) according to
// the kind's interpolation rule: component-wise lerp for float vectors and
// matrices, slerp for Quaternion, round(lerp) for integer kinds, and a
// 0.5 step function for Bool.
func Lerp(k Kind, a, b any, f float32) any {

	return registry[k].lerp(a, b, f)
}

// Equal reports whether a and b are equal within eps (per-component,
// absolute) for float-valued kinds, or exactly equal for Bool and the
// integer kinds.
func Equal(k Kind, a, b any, eps float32) bool {

	return registry[k].equal(a, b, eps)
}

// Components returns the ordered symbol names (x, y, z, w) an expression
// may bind for this kind's value, or nil for scalar and matrix kinds,
// which bind "value" instead (the first element, for a matrix).
func Components(k Kind) []string {

	return registry[k].components
}

// NumComponents returns the flat float64 width Save/Load serializes a
// value of this kind as: 1 for scalars, len(Components(k)) for vectors/
// quaternion/Euler angles, and the backing array length (12, 16) for the
// matrix kinds, which have no named expression components but still need
// a serialization width.
func NumComponents(k Kind) int {

	return registry[k].width
}

// RawComponent returns the float64 value at flat index idx (per
// NumComponents), independent of named component binding. Used by
// Serialization, which must read every kind including matrices.
func RawComponent(k Kind, v any, idx int) float64 {

	return registry[k].getComp(v, idx)
}

// SetRawComponent returns a copy of v with the flat component at idx
// replaced. Used by Serialization.
func SetRawComponent(k Kind, v any, idx int, val float64) any {

	return registry[k].setComp(v, idx, val)
}

// ComponentValue returns the numeric value of the named component (or
// "value" for scalar kinds) as a float64, for expression binding.
func ComponentValue(k Kind, v any, name string) (float64, bool) {

	if name == "value" && registry[k].components == nil {
		return registry[k].getComp(v, 0), true
	}
	idx := componentIndex(k, name)
	if idx < 0 {
		return 0, false
	}
	return registry[k].getComp(v, idx), true
}

// SetComponentValue returns a copy of v with the named component replaced.
func SetComponentValue(k Kind, v any, name string, val float64) (any, bool) {

	if name == "value" && registry[k].components == nil {
		return registry[k].setComp(v, 0, val), true
	}
	idx := componentIndex(k, name)
	if idx < 0 {
		return v, false
	}
	return registry[k].setComp(v, idx, val), true
}

func componentIndex(k Kind, name string) int {

	for i, c := range registry[k].components {
		if c == name {
			return i
		}
	}
	return -1
}

func isScalarNumeric(k Kind) bool {

	switch k {
	case Bool, Int8, UInt8, Int16, UInt16, Int32, UInt32, Int64, UInt64, Float, Double:
		return true
	}
	return false
}

// vectorArity returns the component count for vector-shaped kinds sharing
// an int/float pairing (Vector*/Vector*i), or 0 if k is not such a kind.
func vectorArity(k Kind) int {

	switch k {
	case Vector2, Vector2i:
		return 2
	case Vector3, Vector3i:
		return 3
	case Vector4, Vector4i:
		return 4
	}
	return 0
}

func isIntVector(k Kind) bool {

	return k == Vector2i || k == Vector3i || k == Vector4i
}

// Convertible reports whether a value of kind `from` can be converted to
// kind `to` by Convert. Any kind converts to itself. Scalar numeric kinds
// freely interconvert. Vector float kinds interconvert with their integer
// counterpart of the same arity (component truncation/rounding).
func Convertible(from, to Kind) bool {

	if from == to {
		return true
	}
	if isScalarNumeric(from) && isScalarNumeric(to) {
		return true
	}
	arityFrom, arityTo := vectorArity(from), vectorArity(to)
	if arityFrom != 0 && arityFrom == arityTo {
		return true
	}
	return false
}

// Convert converts v (of kind from) to kind to. ok is false if the kinds
// are not convertible; callers (MergeValues) must check Convertible first
// or handle the failure.
func Convert(v any, from, to Kind) (any, bool) {

	if from == to {
		return v, true
	}
	if !Convertible(from, to) {
		return nil, false
	}
	if isScalarNumeric(from) && isScalarNumeric(to) {
		f, _ := ComponentValue(from, v, "value")
		out, _ := SetComponentValue(to, Zero(to), "value", f)
		return out, true
	}
	// same-arity vector <-> vector-int conversion, component-wise
	arity := vectorArity(from)
	out := Zero(to)
	names := Components(from)
	if names == nil {
		names = Components(to)
	}
	for i := 0; i < arity; i++ {
		name := names[i]
		val, _ := ComponentValue(from, v, name)
		if isIntVector(to) {
			val = math.Round(val)
		}
		out, _ = SetComponentValue(to, out, name, val)
	}
	return out, true
}
