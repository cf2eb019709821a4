// Package expr implements the ExprEval contract (spec §6) the channel
// engine's expression binding (channel/expression.go) compiles per-sample
// transforms against. No pack example ships a full expression-evaluator
// module importable as a library (other_examples/ only has standalone
// compiler/VM files, not buildable packages), so this wraps the
// well-known ecosystem package github.com/expr-lang/expr rather than
// hand-rolling a parser (see DESIGN.md).
package expr

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the symbol table bound into every expression: time/time-frame
// context plus the current value's components, per spec §4.6. Unused
// fields are harmless; expr-lang only resolves the identifiers the
// expression source actually references.
type Env struct {
	Time        float64 `expr:"time"`
	TimeIndex   float64 `expr:"timeIndex"`
	StartOffset float64 `expr:"startOffset"`
	Scale       float64 `expr:"scale"`
	Duration    float64 `expr:"duration"`
	Value       float64 `expr:"value"`
	X           float64 `expr:"x"`
	Y           float64 `expr:"y"`
	Z           float64 `expr:"z"`
	W           float64 `expr:"w"`
}

// Program is a compiled expression ready to be evaluated repeatedly
// against rebound Env values.
type Program struct {
	program *vm.Program
	source  string
}

// Source returns the original expression text, persisted verbatim by
// Serialization (spec §4.7).
func (p *Program) Source() string { return p.source }

// Compile compiles src against the Env symbol table. The returned error's
// text is the diagnostic the spec's ExpressionCompile error kind carries.
func Compile(src string) (*Program, error) {

	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsFloat64())
	if err != nil {
		return nil, err
	}
	return &Program{program: program, source: src}, nil
}

// Eval runs the compiled program against env and returns the result as a
// float64 (the channel engine narrows it back to the target component's
// native width).
func Eval(p *Program, env Env) (float64, error) {

	out, err := expr.Run(p.program, env)
	if err != nil {
		return 0, err
	}
	f, ok := out.(float64)
	if !ok {
		return 0, &typeError{got: out}
	}
	return f, nil
}

type typeError struct{ got any }

func (e *typeError) Error() string {
	return "expression did not evaluate to a number"
}
