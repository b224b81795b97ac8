package gameparse

import (
	"strconv"

	"github.com/saddlekit/zerosum/field"
)

// Expr is a payoff expression over the two declared variables.
//
// Eval substitutes concrete values for the variables and computes the
// payoff; the only runtime failure is division by the field's zero,
// surfaced as field.ErrDivisionByZero.
//
// Diff returns the exact symbolic partial derivative with respect to one
// variable. No simplification is performed beyond constant folding of
// trivial cases, so derivatives stay structurally deterministic.
type Expr[T field.Elem[T]] interface {
	Eval(x, y T) (T, error)
	Diff(v Var) Expr[T]
	String() string
}

// num is a numeric literal.
type num[T field.Elem[T]] struct {
	v T
}

func (n num[T]) Eval(_, _ T) (T, error) { return n.v, nil }

func (n num[T]) Diff(Var) Expr[T] {
	var zero T

	return num[T]{v: zero}
}

func (n num[T]) String() string { return n.v.String() }

// vr is a variable reference.
type vr[T field.Elem[T]] struct {
	v    Var
	name string
}

func (r vr[T]) Eval(x, y T) (T, error) {
	if r.v == VarX {
		return x, nil
	}

	return y, nil
}

func (r vr[T]) Diff(v Var) Expr[T] {
	var zero T
	if r.v == v {
		return num[T]{v: zero.One()}
	}

	return num[T]{v: zero}
}

func (r vr[T]) String() string { return r.name }

// add is u + v.
type add[T field.Elem[T]] struct {
	u, w Expr[T]
}

func (e add[T]) Eval(x, y T) (T, error) {
	u, err := e.u.Eval(x, y)
	if err != nil {
		var zero T

		return zero, err
	}
	w, err := e.w.Eval(x, y)
	if err != nil {
		var zero T

		return zero, err
	}

	return u.Add(w), nil
}

func (e add[T]) Diff(v Var) Expr[T] { return add[T]{u: e.u.Diff(v), w: e.w.Diff(v)} }

func (e add[T]) String() string { return e.u.String() + " + " + e.w.String() }

// sub is u − v.
type sub[T field.Elem[T]] struct {
	u, w Expr[T]
}

func (e sub[T]) Eval(x, y T) (T, error) {
	u, err := e.u.Eval(x, y)
	if err != nil {
		var zero T

		return zero, err
	}
	w, err := e.w.Eval(x, y)
	if err != nil {
		var zero T

		return zero, err
	}

	return u.Sub(w), nil
}

func (e sub[T]) Diff(v Var) Expr[T] { return sub[T]{u: e.u.Diff(v), w: e.w.Diff(v)} }

func (e sub[T]) String() string { return e.u.String() + " - " + paren(e.w, false) }

// mul is u × v; Diff applies the product rule.
type mul[T field.Elem[T]] struct {
	u, w Expr[T]
}

func (e mul[T]) Eval(x, y T) (T, error) {
	u, err := e.u.Eval(x, y)
	if err != nil {
		var zero T

		return zero, err
	}
	w, err := e.w.Eval(x, y)
	if err != nil {
		var zero T

		return zero, err
	}

	return u.Mul(w), nil
}

func (e mul[T]) Diff(v Var) Expr[T] {
	// (u·w)' = u'·w + u·w'
	return add[T]{
		u: mul[T]{u: e.u.Diff(v), w: e.w},
		w: mul[T]{u: e.u, w: e.w.Diff(v)},
	}
}

func (e mul[T]) String() string { return paren(e.u, false) + "*" + paren(e.w, false) }

// div is u ÷ v; Diff applies the quotient rule.
type div[T field.Elem[T]] struct {
	u, w Expr[T]
}

func (e div[T]) Eval(x, y T) (T, error) {
	var zero T
	u, err := e.u.Eval(x, y)
	if err != nil {
		return zero, err
	}
	w, err := e.w.Eval(x, y)
	if err != nil {
		return zero, err
	}

	return u.Div(w)
}

func (e div[T]) Diff(v Var) Expr[T] {
	// (u/w)' = (u'·w − u·w') / w²
	return div[T]{
		u: sub[T]{
			u: mul[T]{u: e.u.Diff(v), w: e.w},
			w: mul[T]{u: e.u, w: e.w.Diff(v)},
		},
		w: mul[T]{u: e.w, w: e.w},
	}
}

func (e div[T]) String() string { return paren(e.u, false) + "/" + paren(e.w, true) }

// pow is base^n for a non-negative integer exponent.
type pow[T field.Elem[T]] struct {
	base Expr[T]
	n    int
}

func (e pow[T]) Eval(x, y T) (T, error) {
	var zero T
	b, err := e.base.Eval(x, y)
	if err != nil {
		return zero, err
	}
	acc := zero.One()
	for i := 0; i < e.n; i++ {
		acc = acc.Mul(b)
	}

	return acc, nil
}

func (e pow[T]) Diff(v Var) Expr[T] {
	var zero T
	if e.n == 0 {
		return num[T]{v: zero}
	}
	if e.n == 1 {
		return e.base.Diff(v)
	}
	// (u^n)' = n·u^(n−1)·u'
	var inner Expr[T]
	if e.n == 2 {
		inner = e.base // u^1
	} else {
		inner = pow[T]{base: e.base, n: e.n - 1}
	}

	return mul[T]{
		u: mul[T]{u: num[T]{v: zero.FromInt(int64(e.n))}, w: inner},
		w: e.base.Diff(v),
	}
}

func (e pow[T]) String() string { return paren(e.base, true) + "^" + strconv.Itoa(e.n) }

// neg is −u.
type neg[T field.Elem[T]] struct {
	u Expr[T]
}

func (e neg[T]) Eval(x, y T) (T, error) {
	u, err := e.u.Eval(x, y)
	if err != nil {
		var zero T

		return zero, err
	}

	return u.Neg(), nil
}

func (e neg[T]) Diff(v Var) Expr[T] { return neg[T]{u: e.u.Diff(v)} }

func (e neg[T]) String() string { return "-" + paren(e.u, true) }

// paren wraps the rendering of child expressions whose operators bind
// looser than the parent's. tight additionally wraps products and
// quotients (for '^', unary '-' and divisor positions).
func paren[T field.Elem[T]](e Expr[T], tight bool) string {
	switch e.(type) {
	case add[T], sub[T], neg[T]:
		return "(" + e.String() + ")"
	case mul[T], div[T]:
		if tight {
			return "(" + e.String() + ")"
		}
	}

	return e.String()
}
