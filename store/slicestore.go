package store

import "github.com/g3n/panima/valuekind"

// sliceArray is an Array backed by a plain Go slice of boxed values. It
// has no compressed representation, so SetUncompressedPersistent is
// recorded but otherwise a no-op; that is documented behavior, not a
// silently dropped feature (there is nothing to pin).
type sliceArray struct {
	kind                   valuekind.Kind
	data                   []any
	uncompressedPersistent bool
}

// NewArray creates an empty Array holding values of the given kind.
func NewArray(kind valuekind.Kind) Array {

	return &sliceArray{kind: kind}
}

func (a *sliceArray) Len() int { return len(a.data) }

func (a *sliceArray) IsEmpty() bool { return len(a.data) == 0 }

func (a *sliceArray) Resize(n int) {

	if n <= len(a.data) {
		a.data = a.data[:n]
		return
	}
	grown := make([]any, n)
	copy(grown, a.data)
	for i := len(a.data); i < n; i++ {
		grown[i] = valuekind.Zero(a.kind)
	}
	a.data = grown
}

func (a *sliceArray) Kind() valuekind.Kind { return a.kind }

func (a *sliceArray) SetKind(k valuekind.Kind) { a.kind = k }

func (a *sliceArray) Get(i int) any { return a.data[i] }

func (a *sliceArray) Set(i int, v any) { a.data[i] = v }

func (a *sliceArray) Insert(i int, v any) {

	a.data = append(a.data, nil)
	copy(a.data[i+1:], a.data[i:])
	a.data[i] = v
}

func (a *sliceArray) Remove(i int) {

	a.data = append(a.data[:i], a.data[i+1:]...)
}

func (a *sliceArray) AddRange(i, n int) {

	if n <= 0 {
		return
	}
	fill := make([]any, n)
	for j := range fill {
		fill[j] = valuekind.Zero(a.kind)
	}
	tail := append([]any{}, a.data[i:]...)
	a.data = append(a.data[:i], append(fill, tail...)...)
}

func (a *sliceArray) RemoveRange(i, n int) {

	if n <= 0 {
		return
	}
	a.data = append(a.data[:i], a.data[i+n:]...)
}

func (a *sliceArray) SetUncompressedPersistent(v bool) { a.uncompressedPersistent = v }

// SliceFactory is the Factory that produces sliceArrays.
type SliceFactory struct{}

func (SliceFactory) MakeArray(kind valuekind.Kind) Array { return NewArray(kind) }
