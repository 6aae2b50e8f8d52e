package main

import (
	"strings"

	"github.com/zephyrtronium/keycalc"
)

// action is what a key does to a calculator.
type action int

const (
	actionNone action = iota
	actionDigit
	actionOperator
	actionClear
	actionEquals
)

func (a action) String() string {
	switch a {
	case actionDigit:
		return "digit"
	case actionOperator:
		return "operator"
	case actionClear:
		return "clear"
	case actionEquals:
		return "equals"
	default:
		return "none"
	}
}

// keyAction classifies a key.
func keyAction(r rune) action {
	switch {
	case strings.ContainsRune(keycalc.Digits, r):
		return actionDigit
	case strings.ContainsRune(keycalc.Operators, r):
		return actionOperator
	case r == 'c', r == 'C':
		return actionClear
	case r == '=':
		return actionEquals
	default:
		return actionNone
	}
}

// press applies a key to c and reports what it did. Keys with no action still
// go to Append, which ignores them.
func press(c *keycalc.Calculator, r rune) action {
	a := keyAction(r)
	switch a {
	case actionClear:
		c.Clear()
	case actionEquals:
		c.Evaluate()
	default:
		c.Append(r)
	}
	return a
}
