package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g3n/panima/valuekind"
)

func TestSliceArray_InsertRemove(t *testing.T) {

	a := NewArray(valuekind.Float)
	a.Insert(0, float32(1))
	a.Insert(1, float32(3))
	a.Insert(1, float32(2))
	require.Equal(t, 3, a.Len())
	assert.Equal(t, float32(1), a.Get(0))
	assert.Equal(t, float32(2), a.Get(1))
	assert.Equal(t, float32(3), a.Get(2))

	a.Remove(1)
	require.Equal(t, 2, a.Len())
	assert.Equal(t, float32(3), a.Get(1))
}

func TestSliceArray_ResizeFillsZero(t *testing.T) {

	a := NewArray(valuekind.Float)
	a.Resize(3)
	require.Equal(t, 3, a.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, float32(0), a.Get(i))
	}
	a.Resize(1)
	assert.Equal(t, 1, a.Len())
}

func TestSliceArray_AddRemoveRange(t *testing.T) {

	a := NewArray(valuekind.Float)
	a.Resize(2)
	a.Set(0, float32(1))
	a.Set(1, float32(2))

	a.AddRange(1, 2)
	require.Equal(t, 4, a.Len())
	assert.Equal(t, float32(1), a.Get(0))
	assert.Equal(t, float32(0), a.Get(1))
	assert.Equal(t, float32(0), a.Get(2))
	assert.Equal(t, float32(2), a.Get(3))

	a.RemoveRange(1, 2)
	require.Equal(t, 2, a.Len())
	assert.Equal(t, float32(1), a.Get(0))
	assert.Equal(t, float32(2), a.Get(1))
}

func TestSliceFactory_MakeArray(t *testing.T) {

	f := SliceFactory{}
	a := f.MakeArray(valuekind.Vector3)
	assert.Equal(t, valuekind.Vector3, a.Kind())
	assert.True(t, a.IsEmpty())
}
