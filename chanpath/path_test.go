package chanpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SchemeAndQuery(t *testing.T) {

	p := New("panima:/skeleton/bone0/position?components=x,z")
	assert.Equal(t, "/skeleton/bone0/position", p.PathString())
	comps, ok := p.Components()
	assert.True(t, ok)
	assert.Equal(t, []string{"x", "z"}, comps)
}

func TestNew_UnknownSchemeYieldsEmpty(t *testing.T) {

	p := New("http://example.com/foo")
	assert.Equal(t, "", p.PathString())
	_, ok := p.Components()
	assert.False(t, ok)
}

func TestNew_NoScheme(t *testing.T) {

	p := New("bone0/translation")
	assert.Equal(t, "bone0/translation", p.PathString())
}

func TestNew_PercentAndSpaceDecoding(t *testing.T) {

	p := New("panima:bone%200/rot?components=x%2Cy")
	assert.Equal(t, "bone 0/rot", p.PathString())
	comps, ok := p.Components()
	assert.True(t, ok)
	assert.Equal(t, []string{"x,y"}, comps)
}

func TestToURI_RoundTrip(t *testing.T) {

	const uri = "panima:/skeleton/bone0/position?components=x,z"
	p := New(uri)
	assert.Equal(t, uri, p.ToURI(true))
}

func TestEqual(t *testing.T) {

	a := New("panima:foo?components=x,y")
	b := New("panima:foo?components=x,y")
	c := New("panima:foo")
	d := New("panima:bar?components=x,y")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestUnrecognizedQueryParamIgnored(t *testing.T) {

	p := New("panima:foo?unknown=1&components=x")
	comps, ok := p.Components()
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, comps)
}
