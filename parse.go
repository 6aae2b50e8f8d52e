package keycalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = Sum
// Sum = Prod | Sum '+' Prod | Sum '-' Prod
// Prod = Neg | Prod '*' Neg | Prod '/' Neg
// Neg = num | '-' num

// Expr is a parsed arithmetic expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an arithmetic expression over decimal literals and the
// operators + - * /. Multiplication and division bind more tightly than
// addition and subtraction, and operators of equal precedence associate left.
// A single minus sign may precede any operand.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		panic("keycalc: parse ended on " + tok.String() + " instead of EOF")
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses operands joined by operators more binding than until. If
// there is no error, then parseterm pushes the last token it scans.
func parseterm(scan *lexer, until operator) (*node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			// Operands must be joined by operators: "1 2" is not 1*2.
			return nil, &TermError{Col: tok.pos, Text: tok.text}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenEOF:
			scan.push(tok)
			return n, nil
		default:
			panic("keycalc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses a single operand, including its sign.
func parselhs(scan *lexer, until operator) (*node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return numnode(tok.text), nil
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		// Only one sign per operand.
		peek, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch peek.kind {
		case tokenOp:
			return nil, &OperatorError{Col: peek.pos, Operator: peek.text, Unary: true}
		case tokenEOF:
			return nil, &EmptyExpressionError{Col: peek.pos}
		}
		scan.push(peek)
		if !prec.moreBinding(until) {
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("keycalc: unknown token: " + tok.String())
	}
}

// numnode creates a number node from a literal the lexer has accepted.
// Literals too large for a float64 become infinities.
func numnode(text string) *node {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("keycalc: invalid number: " + text + " (" + err.Error() + ")")
	}
	return &node{kind: nodeNum, name: text, val: v}
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire expression.
var exprprec = operator{-128, true, nodeNone}
