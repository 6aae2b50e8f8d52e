package keycalc

import (
	"io"
	"strings"
)

// Eval evaluates the expression with float64 arithmetic. Division by zero and
// overflow produce infinities or NaN rather than errors; callers decide what a
// non-finite result means.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.val
	case nodeNeg:
		return -n.left.eval()
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	default:
		panic("keycalc: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
