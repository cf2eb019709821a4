package valuekind

import (
	"math"

	"github.com/g3n/panima/math32"
)

// descriptor is the per-kind v-table: the closed set of operations the
// channel engine needs without knowing the concrete Go type behind a Kind.
type descriptor struct {
	animatable bool
	integer    bool // nearest-neighbor-only interpolation (round(lerp))
	zero       func() any
	lerp       func(a, b any, f float32) any
	equal      func(a, b any, eps float32) bool
	components []string // ordered component names bound into expressions; nil for scalars (use "value")
	width      int      // flat float64 component count for serialization; always set, even when components is nil
	getComp    func(v any, idx int) float64
	setComp    func(v any, idx int, val float64) any
}

var registry [numKinds]descriptor

func init() {
	registry[Bool] = descriptor{
		integer: true,
		width:   1,
		zero:    func() any { return false },
		lerp:    func(a, b any, f float32) any { return stepLerp(a, b, f) },
		equal:   func(a, b any, _ float32) bool { return a.(bool) == b.(bool) },
		getComp: func(v any, _ int) float64 {
			if v.(bool) {
				return 1
			}
			return 0
		},
		setComp: func(_ any, _ int, val float64) any { return val != 0 },
	}
	registerIntKind(Int8, func() any { return int8(0) }, func(v float64) any { return int8(v) }, func(v any) float64 { return float64(v.(int8)) })
	registerIntKind(UInt8, func() any { return uint8(0) }, func(v float64) any { return uint8(v) }, func(v any) float64 { return float64(v.(uint8)) })
	registerIntKind(Int16, func() any { return int16(0) }, func(v float64) any { return int16(v) }, func(v any) float64 { return float64(v.(int16)) })
	registerIntKind(UInt16, func() any { return uint16(0) }, func(v float64) any { return uint16(v) }, func(v any) float64 { return float64(v.(uint16)) })
	registerIntKind(Int32, func() any { return int32(0) }, func(v float64) any { return int32(v) }, func(v any) float64 { return float64(v.(int32)) })
	registerIntKind(UInt32, func() any { return uint32(0) }, func(v float64) any { return uint32(v) }, func(v any) float64 { return float64(v.(uint32)) })
	registerIntKind(Int64, func() any { return int64(0) }, func(v float64) any { return int64(v) }, func(v any) float64 { return float64(v.(int64)) })
	registerIntKind(UInt64, func() any { return uint64(0) }, func(v float64) any { return uint64(v) }, func(v any) float64 { return float64(v.(uint64)) })

	registry[Float] = descriptor{
		animatable: true,
		width:      1,
		zero:       func() any { return float32(0) },
		lerp:       func(a, b any, f float32) any { return a.(float32) + (b.(float32)-a.(float32))*f },
		equal:      func(a, b any, eps float32) bool { return math32.Abs(a.(float32)-b.(float32)) <= eps },
		getComp:    func(v any, _ int) float64 { return float64(v.(float32)) },
		setComp:    func(_ any, _ int, val float64) any { return float32(val) },
	}
	registry[Double] = descriptor{
		animatable: true,
		width:      1,
		zero:       func() any { return float64(0) },
		lerp:       func(a, b any, f float32) any { return a.(float64) + (b.(float64)-a.(float64))*float64(f) },
		equal:      func(a, b any, eps float32) bool { return math.Abs(a.(float64)-b.(float64)) <= float64(eps) },
		getComp:    func(v any, _ int) float64 { return v.(float64) },
		setComp:    func(_ any, _ int, val float64) any { return val },
	}

	registry[Vector2] = descriptor{
		animatable: true,
		width:      2,
		zero:       func() any { return math32.Vector2{} },
		lerp: func(a, b any, f float32) any {
			va, vb := a.(math32.Vector2), b.(math32.Vector2)
			return *va.Lerp(&vb, f)
		},
		equal:      func(a, b any, eps float32) bool { va, vb := a.(math32.Vector2), b.(math32.Vector2); return va.AlmostEquals(&vb, eps) },
		components: []string{"x", "y"},
		getComp:    func(v any, idx int) float64 { vv := v.(math32.Vector2); return []float64{float64(vv.X), float64(vv.Y)}[idx] },
		setComp: func(v any, idx int, val float64) any {
			vv := v.(math32.Vector2)
			switch idx {
			case 0:
				vv.X = float32(val)
			case 1:
				vv.Y = float32(val)
			}
			return vv
		},
	}
	registry[Vector3] = descriptor{
		animatable: true,
		width:      3,
		zero:       func() any { return math32.Vector3{} },
		lerp: func(a, b any, f float32) any {
			va, vb := a.(math32.Vector3), b.(math32.Vector3)
			return *va.Lerp(&vb, f)
		},
		equal:      func(a, b any, eps float32) bool { va, vb := a.(math32.Vector3), b.(math32.Vector3); return va.AlmostEquals(&vb, eps) },
		components: []string{"x", "y", "z"},
		getComp:    func(v any, idx int) float64 { vv := v.(math32.Vector3); return []float64{float64(vv.X), float64(vv.Y), float64(vv.Z)}[idx] },
		setComp: func(v any, idx int, val float64) any {
			vv := v.(math32.Vector3)
			switch idx {
			case 0:
				vv.X = float32(val)
			case 1:
				vv.Y = float32(val)
			case 2:
				vv.Z = float32(val)
			}
			return vv
		},
	}
	registry[Vector4] = descriptor{
		animatable: true,
		width:      4,
		zero:       func() any { return math32.Vector4{} },
		lerp: func(a, b any, f float32) any {
			va, vb := a.(math32.Vector4), b.(math32.Vector4)
			return *va.Lerp(&vb, f)
		},
		equal:      func(a, b any, eps float32) bool { va, vb := a.(math32.Vector4), b.(math32.Vector4); return va.AlmostEquals(&vb, eps) },
		components: []string{"x", "y", "z", "w"},
		getComp: func(v any, idx int) float64 {
			vv := v.(math32.Vector4)
			return []float64{float64(vv.X), float64(vv.Y), float64(vv.Z), float64(vv.W)}[idx]
		},
		setComp: func(v any, idx int, val float64) any {
			vv := v.(math32.Vector4)
			switch idx {
			case 0:
				vv.X = float32(val)
			case 1:
				vv.Y = float32(val)
			case 2:
				vv.Z = float32(val)
			case 3:
				vv.W = float32(val)
			}
			return vv
		},
	}

	registerIntVecKind2(Vector2i)
	registerIntVecKind3(Vector3i)
	registerIntVecKind4(Vector4i)

	registry[Quaternion] = descriptor{
		animatable: true,
		width:      4,
		zero:       func() any { return math32.Quaternion{X: 0, Y: 0, Z: 0, W: 1} },
		lerp: func(a, b any, f float32) any {
			qa, qb := a.(math32.Quaternion), b.(math32.Quaternion)
			return *qa.Slerp(&qb, f)
		},
		equal:      func(a, b any, eps float32) bool { qa, qb := a.(math32.Quaternion), b.(math32.Quaternion); return qa.AlmostEquals(&qb, eps) },
		components: []string{"x", "y", "z", "w"},
		getComp: func(v any, idx int) float64 {
			qv := v.(math32.Quaternion)
			return []float64{float64(qv.X), float64(qv.Y), float64(qv.Z), float64(qv.W)}[idx]
		},
		setComp: func(v any, idx int, val float64) any {
			qv := v.(math32.Quaternion)
			switch idx {
			case 0:
				qv.X = float32(val)
			case 1:
				qv.Y = float32(val)
			case 2:
				qv.Z = float32(val)
			case 3:
				qv.W = float32(val)
			}
			return qv
		},
	}
	registry[EulerAngles] = descriptor{
		animatable: true,
		width:      3,
		zero:       func() any { return math32.EulerAngles{} },
		lerp: func(a, b any, f float32) any {
			ea, eb := a.(math32.EulerAngles), b.(math32.EulerAngles)
			return *ea.Lerp(&eb, f)
		},
		equal:      func(a, b any, eps float32) bool { ea, eb := a.(math32.EulerAngles), b.(math32.EulerAngles); return ea.Equals(&eb, eps) },
		components: []string{"x", "y", "z"},
		getComp: func(v any, idx int) float64 {
			ev := v.(math32.EulerAngles)
			return []float64{float64(ev.X), float64(ev.Y), float64(ev.Z)}[idx]
		},
		setComp: func(v any, idx int, val float64) any {
			ev := v.(math32.EulerAngles)
			switch idx {
			case 0:
				ev.X = float32(val)
			case 1:
				ev.Y = float32(val)
			case 2:
				ev.Z = float32(val)
			}
			return ev
		},
	}
	registry[Mat3x4] = descriptor{
		animatable: true,
		width:      12,
		zero:       func() any { m := math32.Mat3x4{}; m.Identity(); return m },
		lerp: func(a, b any, f float32) any {
			ma, mb := a.(math32.Mat3x4), b.(math32.Mat3x4)
			return *ma.Lerp(&mb, f)
		},
		equal:   func(a, b any, eps float32) bool { ma, mb := a.(math32.Mat3x4), b.(math32.Mat3x4); return ma.Equals(&mb, eps) },
		getComp: func(v any, idx int) float64 { mv := v.(math32.Mat3x4); return float64(mv[idx]) },
		setComp: func(v any, idx int, val float64) any {
			mv := v.(math32.Mat3x4)
			mv[idx] = float32(val)
			return mv
		},
	}
	registry[Mat4] = descriptor{
		animatable: true,
		width:      16,
		zero:       func() any { m := math32.Matrix4{}; m.Identity(); return m },
		lerp: func(a, b any, f float32) any {
			ma, mb := a.(math32.Matrix4), b.(math32.Matrix4)
			return *ma.Lerp(&mb, f)
		},
		equal:   func(a, b any, eps float32) bool { ma, mb := a.(math32.Matrix4), b.(math32.Matrix4); return ma.AlmostEquals(&mb, eps) },
		getComp: func(v any, idx int) float64 { mv := v.(math32.Matrix4); return float64(mv[idx]) },
		setComp: func(v any, idx int, val float64) any {
			mv := v.(math32.Matrix4)
			mv[idx] = float32(val)
			return mv
		},
	}
}

func registerIntKind(k Kind, zero func() any, fromF64 func(float64) any, toF64 func(any) float64) {

	registry[k] = descriptor{
		integer: true,
		width:   1,
		zero:    zero,
		lerp: func(a, b any, f float32) any {
			va, vb := toF64(a), toF64(b)
			return fromF64(math.Round(va + (vb-va)*float64(f)))
		},
		equal:   func(a, b any, _ float32) bool { return toF64(a) == toF64(b) },
		getComp: func(v any, _ int) float64 { return toF64(v) },
		setComp: func(_ any, _ int, val float64) any { return fromF64(val) },
	}
}

func registerIntVecKind2(k Kind) {

	registry[k] = descriptor{
		integer:    true,
		width:      2,
		zero:       func() any { return math32.Vector2i{} },
		components: []string{"x", "y"},
		lerp: func(a, b any, f float32) any {
			va, vb := a.(math32.Vector2i), b.(math32.Vector2i)
			return math32.Vector2i{X: roundLerpI32(va.X, vb.X, f), Y: roundLerpI32(va.Y, vb.Y, f)}
		},
		equal:   func(a, b any, _ float32) bool { va, vb := a.(math32.Vector2i), b.(math32.Vector2i); return va.Equals(&vb) },
		getComp: func(v any, idx int) float64 { vv := v.(math32.Vector2i); return []float64{float64(vv.X), float64(vv.Y)}[idx] },
		setComp: func(v any, idx int, val float64) any {
			vv := v.(math32.Vector2i)
			if idx == 0 {
				vv.X = int32(math.Round(val))
			} else {
				vv.Y = int32(math.Round(val))
			}
			return vv
		},
	}
}

func registerIntVecKind3(k Kind) {

	registry[k] = descriptor{
		integer:    true,
		width:      3,
		zero:       func() any { return math32.Vector3i{} },
		components: []string{"x", "y", "z"},
		lerp: func(a, b any, f float32) any {
			va, vb := a.(math32.Vector3i), b.(math32.Vector3i)
			return math32.Vector3i{X: roundLerpI32(va.X, vb.X, f), Y: roundLerpI32(va.Y, vb.Y, f), Z: roundLerpI32(va.Z, vb.Z, f)}
		},
		equal: func(a, b any, _ float32) bool { va, vb := a.(math32.Vector3i), b.(math32.Vector3i); return va.Equals(&vb) },
		getComp: func(v any, idx int) float64 {
			vv := v.(math32.Vector3i)
			return []float64{float64(vv.X), float64(vv.Y), float64(vv.Z)}[idx]
		},
		setComp: func(v any, idx int, val float64) any {
			vv := v.(math32.Vector3i)
			switch idx {
			case 0:
				vv.X = int32(math.Round(val))
			case 1:
				vv.Y = int32(math.Round(val))
			case 2:
				vv.Z = int32(math.Round(val))
			}
			return vv
		},
	}
}

func registerIntVecKind4(k Kind) {

	registry[k] = descriptor{
		integer:    true,
		width:      4,
		zero:       func() any { return math32.Vector4i{} },
		components: []string{"x", "y", "z", "w"},
		lerp: func(a, b any, f float32) any {
			va, vb := a.(math32.Vector4i), b.(math32.Vector4i)
			return math32.Vector4i{X: roundLerpI32(va.X, vb.X, f), Y: roundLerpI32(va.Y, vb.Y, f), Z: roundLerpI32(va.Z, vb.Z, f), W: roundLerpI32(va.W, vb.W, f)}
		},
		equal: func(a, b any, _ float32) bool { va, vb := a.(math32.Vector4i), b.(math32.Vector4i); return va.Equals(&vb) },
		getComp: func(v any, idx int) float64 {
			vv := v.(math32.Vector4i)
			return []float64{float64(vv.X), float64(vv.Y), float64(vv.Z), float64(vv.W)}[idx]
		},
		setComp: func(v any, idx int, val float64) any {
			vv := v.(math32.Vector4i)
			switch idx {
			case 0:
				vv.X = int32(math.Round(val))
			case 1:
				vv.Y = int32(math.Round(val))
			case 2:
				vv.Z = int32(math.Round(val))
			case 3:
				vv.W = int32(math.Round(val))
			}
			return vv
		},
	}
}

func roundLerpI32(a, b int32, f float32) int32 {

	return int32(math.Round(float64(a) + float64(b-a)*float64(f)))
}

func stepLerp(a, b any, f float32) any {

	if f < 0.5 {
		return a
	}
	return b
}
