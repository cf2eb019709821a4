package channel

import (
	exprpkg "github.com/g3n/panima/expr"
	"github.com/g3n/panima/valuekind"
)

// boundExpression is a compiled per-sample transform attached to a
// Channel (spec §4.6). It holds only the compiled program and its
// source text; it does not hold a reference back to the channel, unlike
// the C++ original — Go's value-based Env makes that unnecessary, and it
// sidesteps the copy/re-initialization hazard entirely rather than just
// documenting it.
type boundExpression struct {
	source  string
	program *exprpkg.Program
}

// compileExpressionFor compiles src for channel c. Compilation does not
// depend on c's value kind; the kind's components are bound in apply.
func compileExpressionFor(c *Channel, src string) (*boundExpression, error) {

	prog, err := exprpkg.Compile(src)
	if err != nil {
		return nil, err
	}
	return &boundExpression{source: src, program: prog}, nil
}

// SetValueExpression compiles and installs src as the channel's
// per-sample expression. On failure the previous expression (if any) is
// left intact, per spec §4.6 and §7 (ExpressionCompile never corrupts
// channel state).
func (c *Channel) SetValueExpression(src string) error {

	be, err := compileExpressionFor(c, src)
	if err != nil {
		log.Warn("expression compile failed: %s", err.Error())
		return newError(ExpressionCompile, err.Error())
	}
	c.expression = be
	return nil
}

// TestValueExpression compiles src without installing it, to validate a
// candidate expression before committing to SetValueExpression.
func (c *Channel) TestValueExpression(src string) error {

	if _, err := compileExpressionFor(c, src); err != nil {
		return newError(ExpressionCompile, err.Error())
	}
	return nil
}

// ClearValueExpression removes any attached expression.
func (c *Channel) ClearValueExpression() { c.expression = nil }

// ValueExpression returns the source text of the attached expression, if
// any.
func (c *Channel) ValueExpression() (string, bool) {

	if c.expression == nil {
		return "", false
	}
	return c.expression.source, true
}

// apply runs the bound expression over v, following the operation order
// of spec §4.4: map time -> find indices -> interpolate -> expression.
// For scalar kinds the result replaces "value"; for multi-component
// kinds (vectors, quaternions, Euler angles) the single scalar result of
// the expression is broadcast to every bound component. A true
// per-component expression language (independent x/y/z/w outputs) would
// need a statement-capable evaluator, out of scope for the ExprEval
// contract this wraps.
func (be *boundExpression) apply(c *Channel, t float32, timeIndex int, v any) any {

	kind := c.ValueKind()
	env := exprpkg.Env{
		Time:        float64(t),
		TimeIndex:   float64(timeIndex),
		StartOffset: float64(c.effective.StartOffset),
		Scale:       float64(c.effective.Scale),
		Duration:    float64(c.effective.Duration),
	}
	comps := valuekind.Components(kind)
	if comps == nil {
		val, _ := valuekind.ComponentValue(kind, v, "value")
		env.Value = val
	} else {
		for _, name := range comps {
			val, _ := valuekind.ComponentValue(kind, v, name)
			bindComponent(&env, name, val)
		}
	}

	result, err := exprpkg.Eval(be.program, env)
	if err != nil {
		log.Error("expression evaluation failed: %s", err.Error())
		return v
	}

	if comps == nil {
		out, _ := valuekind.SetComponentValue(kind, v, "value", result)
		return out
	}
	out := v
	for _, name := range comps {
		out, _ = valuekind.SetComponentValue(kind, out, name, result)
	}
	return out
}

func bindComponent(env *exprpkg.Env, name string, val float64) {

	switch name {
	case "x":
		env.X = val
	case "y":
		env.Y = val
	case "z":
		env.Z = val
	case "w":
		env.W = val
	}
}
