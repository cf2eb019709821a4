package proptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {

	n := Node{}
	n.Set("name", "bone0")
	n.Set("times", []float32{0, 1, 2})

	data, err := Marshal(n)
	require.NoError(t, err)

	loaded, err := Unmarshal(data)
	require.NoError(t, err)

	name, ok := loaded.String("name")
	assert.True(t, ok)
	assert.Equal(t, "bone0", name)

	times, ok := loaded.Float32Slice("times")
	assert.True(t, ok)
	assert.Equal(t, []float32{0, 1, 2}, times)
}

func TestGet_MissingKey(t *testing.T) {

	n := Node{}
	_, ok := n.Get("missing")
	assert.False(t, ok)
	_, ok = n.String("missing")
	assert.False(t, ok)
	_, ok = n.Float32Slice("missing")
	assert.False(t, ok)
}
