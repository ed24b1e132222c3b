package calc

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates the expression. If an error occurs, e.g. division by zero or
// an argument to a function is outside the function's domain, then the error
// is an *Error and the result is zero. Otherwise, the result is finite.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum, nodeConst:
		return n.num, nil
	case nodeCall:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return n.fn.call(x, n.pos)
	case nodeNeg:
		x, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return n.binary(l, r)
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// binary applies a binary operator node to its evaluated operands.
func (n *node) binary(l, r float64) (float64, error) {
	var x float64
	switch n.kind {
	case nodeAdd:
		x = l + r
	case nodeSub:
		x = l - r
	case nodeMul:
		x = l * r
	case nodeDiv:
		if r == 0 {
			return 0, &Error{Kind: DivisionByZero, Col: n.pos, Text: n.name}
		}
		x = l / r
	case nodeMod:
		if r == 0 {
			return 0, &Error{Kind: DivisionByZero, Col: n.pos, Text: n.name}
		}
		x = math.Mod(l, r)
	case nodePow:
		if l < 0 && r != math.Trunc(r) {
			return 0, &Error{Kind: DomainError, Col: n.pos, Text: n.name, X: l}
		}
		if l == 0 && r < 0 {
			return 0, &Error{Kind: DivisionByZero, Col: n.pos, Text: n.name}
		}
		x = math.Pow(l, r)
	default:
		panic("calc: invalid binary node " + n.kind.String())
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, &Error{Kind: DomainError, Col: n.pos, Text: n.name, X: l, Range: true}
	}
	return x, nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// Format formats a result in the shortest decimal notation that parses back
// to the same value. The notation never uses an exponent, so the result is
// itself a valid expression.
func Format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
