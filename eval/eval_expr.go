/*
File    : susumu/eval/eval_expr.go

General expression dispatch: literals, identifiers, arithmetic,
property access, plain call syntax, and the two early-exit expressions
(return/error). Arrow chains, if/foreach/while, and match each get their
own file since they carry most of the evaluator's domain logic.
*/
package eval

import (
	"github.com/susumu-lang/susumu/diagnostics"
	"github.com/susumu-lang/susumu/parser"
	"github.com/susumu-lang/susumu/scope"
	"github.com/susumu-lang/susumu/values"
)

// EvalExpr evaluates any expression node against env.
func (e *Evaluator) EvalExpr(expr parser.Expr, env *scope.Scope) (values.Value, error) {
	if err := e.step(expr.Position()); err != nil {
		return nil, err
	}
	switch ex := expr.(type) {
	case *parser.NumberLit:
		return &values.Number{Value: ex.Value}, nil
	case *parser.StringLit:
		return &values.String{Value: ex.Value}, nil
	case *parser.BoolLit:
		return &values.Bool{Value: ex.Value}, nil
	case *parser.NullLit:
		return values.NullValue, nil
	case *parser.Ident:
		v, err := e.resolveCallee(ex.Name, env)
		if err != nil {
			pos := ex.Position()
			return nil, diagnostics.New(diagnostics.NameError, pos.Line, pos.Column, "undefined name %q", ex.Name)
		}
		return v, nil
	case *parser.ArrayLit:
		elements := make([]values.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.EvalExpr(el, env)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return &values.Array{Elements: elements}, nil
	case *parser.ObjectLit:
		obj := values.NewObject()
		for _, f := range ex.Fields {
			v, err := e.EvalExpr(f.Value, env)
			if err != nil {
				return nil, err
			}
			obj.Set(f.Key, v)
		}
		return obj, nil
	case *parser.TupleLit:
		elements := make([]values.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.EvalExpr(el, env)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return &values.Tuple{Elements: elements}, nil
	case *parser.PropertyAccess:
		return e.evalPropertyAccess(ex, env)
	case *parser.Binary:
		return e.evalBinary(ex, env)
	case *parser.Unary:
		return e.evalUnary(ex, env)
	case *parser.Call:
		return e.evalCall(ex, env)
	case *parser.ArrowChain:
		return e.evalArrowChain(ex, env)
	case *parser.If:
		return e.evalIf(ex, env, values.NullValue)
	case *parser.Foreach:
		return e.evalForeach(ex, env)
	case *parser.While:
		return e.evalWhile(ex, env)
	case *parser.Match:
		return e.evalMatch(ex, env)
	case *parser.Return:
		v, err := e.EvalExpr(ex.Value, env)
		if err != nil {
			return nil, err
		}
		return &values.ReturnSignal{Value: v}, nil
	case *parser.ErrorExpr:
		v, err := e.EvalExpr(ex.Value, env)
		if err != nil {
			return nil, err
		}
		return &values.ErrorSignal{Value: v}, nil
	default:
		pos := expr.Position()
		return nil, diagnostics.New(diagnostics.ControlError, pos.Line, pos.Column, "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalPropertyAccess(ex *parser.PropertyAccess, env *scope.Scope) (values.Value, error) {
	target, err := e.EvalExpr(ex.Target, env)
	if err != nil {
		return nil, err
	}
	pos := ex.Position()
	obj, ok := values.Unwrap(target).(*values.Object)
	if !ok {
		return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "cannot access property %q of %s", ex.Property, target.Kind())
	}
	v, found := obj.Get(ex.Property)
	if !found {
		return nil, diagnostics.New(diagnostics.NameError, pos.Line, pos.Column, "object has no field %q", ex.Property)
	}
	return v, nil
}

func (e *Evaluator) evalBinary(ex *parser.Binary, env *scope.Scope) (values.Value, error) {
	left, err := e.EvalExpr(ex.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.EvalExpr(ex.Right, env)
	if err != nil {
		return nil, err
	}
	pos := ex.Position()

	if ex.Op == parser.OpAdd {
		ls, lok := left.(*values.String)
		rs, rok := right.(*values.String)
		if lok || rok {
			if !lok || !rok {
				return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "cannot add %s and %s", left.Kind(), right.Kind())
			}
			return &values.String{Value: ls.Value + rs.Value}, nil
		}
	}

	ln, lok := left.(*values.Number)
	rn, rok := right.(*values.Number)
	if !lok || !rok {
		return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "operator %s requires two numbers, got %s and %s", ex.Op, left.Kind(), right.Kind())
	}
	switch ex.Op {
	case parser.OpAdd:
		return &values.Number{Value: ln.Value + rn.Value}, nil
	case parser.OpSub:
		return &values.Number{Value: ln.Value - rn.Value}, nil
	case parser.OpMul:
		return &values.Number{Value: ln.Value * rn.Value}, nil
	case parser.OpDiv:
		if rn.Value == 0 {
			return nil, diagnostics.New(diagnostics.ArithmeticError, pos.Line, pos.Column, "division by zero")
		}
		return &values.Number{Value: ln.Value / rn.Value}, nil
	default:
		return nil, diagnostics.New(diagnostics.ControlError, pos.Line, pos.Column, "unknown binary operator %s", ex.Op)
	}
}

func (e *Evaluator) evalUnary(ex *parser.Unary, env *scope.Scope) (values.Value, error) {
	v, err := e.EvalExpr(ex.Operand, env)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*values.Number)
	if !ok {
		pos := ex.Position()
		return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "unary '-' requires a number, got %s", v.Kind())
	}
	return &values.Number{Value: -n.Value}, nil
}

// evalCall handles conventional call syntax `f(a, b)`, distinct from arrow
// composition: it resolves the callee expression, evaluates every argument,
// and invokes CallFunction directly with no pending-call bookkeeping.
func (e *Evaluator) evalCall(ex *parser.Call, env *scope.Scope) (values.Value, error) {
	callee, err := e.EvalExpr(ex.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]values.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.EvalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if _, ok := callee.(values.Callable); !ok {
		pos := ex.Position()
		return nil, diagnostics.New(diagnostics.TypeError, pos.Line, pos.Column, "value of kind %s is not callable", callee.Kind())
	}
	v, err := e.CallFunction(callee, args)
	if d, ok := err.(*diagnostics.Diagnostic); ok && d.Line == 0 && d.Column == 0 {
		pos := ex.Position()
		return nil, diagnostics.New(d.Kind, pos.Line, pos.Column, "%s", d.Message)
	}
	return v, err
}
