package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEval_UsesTimeAndComponents(t *testing.T) {

	p, err := Compile("x * scale + time")
	require.NoError(t, err)

	got, err := Eval(p, Env{X: 2, Scale: 3, Time: 1})
	require.NoError(t, err)
	assert.Equal(t, float64(7), got)
}

func TestCompile_SyntaxError(t *testing.T) {

	_, err := Compile("x * * 2")
	assert.Error(t, err)
}

func TestCompile_NonNumericResultRejected(t *testing.T) {

	// expr.AsFloat64() enforces the return type at compile time, so a
	// non-numeric expression never reaches Eval.
	_, err := Compile(`"not a number"`)
	assert.Error(t, err)
}

func TestProgram_Source(t *testing.T) {

	p, err := Compile("value * 2")
	require.NoError(t, err)
	assert.Equal(t, "value * 2", p.Source())
}
