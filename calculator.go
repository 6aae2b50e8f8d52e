package keycalc

import (
	"math"
	"strings"
)

// ErrorKind classifies evaluation failures. The String form of each kind is
// the text a calculator display shows for it.
type ErrorKind int8

const (
	// MalformedExpression is a structural failure: a trailing operator, an
	// empty operand, or an unparseable token sequence.
	MalformedExpression ErrorKind = iota + 1
	// DivisionByZero is any non-finite result, including NaN from 0/0 and
	// overflow to infinity.
	DivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedExpression:
		return "Error: Malformed expression"
	case DivisionByZero:
		return "Error: Division by zero"
	default:
		return "Error"
	}
}

// EvalError is the error returned by Calculator.Evaluate. Its message is the
// display text for its kind.
type EvalError struct {
	// Kind is the class of failure.
	Kind ErrorKind
	// Err is the parse error behind a MalformedExpression, if any.
	Err error
}

func (err *EvalError) Error() string {
	return err.Kind.String()
}

func (err *EvalError) Unwrap() error {
	return err.Err
}

// Option is an option for creating a Calculator.
type Option interface {
	calcOption(*Calculator)
}

type resumeopt struct{}

func (resumeopt) calcOption(c *Calculator) {
	c.resume = true
}

// ResumeOnAppend makes every accepted Append discard the last result, so that
// the display returns to showing the input. By default a result stays on the
// display until the next Clear or Evaluate.
func ResumeOnAppend() Option {
	return resumeopt{}
}

// Calculator accumulates an arithmetic expression from single key presses and
// evaluates it on demand. The zero value is an empty calculator ready to use.
// It is not safe to use a Calculator concurrently.
type Calculator struct {
	input strings.Builder
	// last is the last input rune, or 0 if the input is empty.
	last rune

	hasResult bool
	result    float64
	err       *EvalError

	resume bool
}

// New creates a calculator with empty input and no result.
func New(opts ...Option) *Calculator {
	var c Calculator
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.calcOption(&c)
	}
	return &c
}

// Append adds a single key to the input. Keys other than digits, the decimal
// point, and the operators + - * / are ignored, as are keys that would make
// the input malformed at the character level: an operator other than minus at
// the start or after another operator, or a second decimal point in one
// number. A decimal point that starts a number is preceded by a zero.
func (c *Calculator) Append(r rune) {
	switch {
	case isDigit(r):
		c.write(r)
	case r == '.':
		if c.hasDot() {
			return
		}
		if c.last == 0 || isOperator(c.last) {
			c.write('0')
		}
		c.write('.')
	case r == '-' && (c.last == 0 || isOperator(c.last)):
		// A sign at the start or after another operator.
		c.write(r)
	case isOperator(r):
		if c.last == 0 || isOperator(c.last) {
			return
		}
		c.write(r)
	}
}

func (c *Calculator) write(r rune) {
	if c.resume {
		c.clearResult()
	}
	c.input.WriteRune(r)
	c.last = r
}

// hasDot reports whether the trailing numeric segment of the input already
// has a decimal point, scanning backward to the nearest operator.
func (c *Calculator) hasDot() bool {
	s := c.input.String()
	for i := len(s) - 1; i >= 0; i-- {
		switch {
		case s[i] == '.':
			return true
		case isOperator(rune(s[i])):
			return false
		}
	}
	return false
}

// Evaluate evaluates the input and records the outcome as the result. Empty
// input evaluates to 0. A malformed input yields an *EvalError of kind
// MalformedExpression, and a non-finite value one of kind DivisionByZero.
// The input is left unchanged.
func (c *Calculator) Evaluate() (float64, error) {
	c.hasResult = true
	c.result, c.err = 0, nil
	src := c.input.String()
	if strings.TrimSpace(src) == "" {
		return 0, nil
	}
	r, err := EvalString(src)
	switch {
	case err != nil:
		c.err = &EvalError{Kind: MalformedExpression, Err: err}
	case math.IsInf(r, 0) || math.IsNaN(r):
		c.err = &EvalError{Kind: DivisionByZero}
	default:
		c.result = r
		return r, nil
	}
	return 0, c.err
}

// Display returns the text to show: the result if there is one, otherwise the
// input, otherwise "0".
func (c *Calculator) Display() string {
	switch {
	case c.err != nil:
		return c.err.Error()
	case c.hasResult:
		return FormatNumber(c.result)
	case c.input.Len() != 0:
		return c.input.String()
	default:
		return "0"
	}
}

// Clear discards the input and the result.
func (c *Calculator) Clear() {
	c.input.Reset()
	c.last = 0
	c.clearResult()
}

func (c *Calculator) clearResult() {
	c.hasResult = false
	c.result = 0
	c.err = nil
}

// Input returns the accumulated input.
func (c *Calculator) Input() string {
	return c.input.String()
}

// HasResult reports whether the calculator holds a result from Evaluate.
func (c *Calculator) HasResult() bool {
	return c.hasResult
}

// Result returns the last result. If the last evaluation failed, the error is
// the *EvalError it returned. If there is no result, Result returns 0, nil.
func (c *Calculator) Result() (float64, error) {
	if c.err != nil {
		return 0, c.err
	}
	return c.result, nil
}
