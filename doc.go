// Package keycalc implements the input and evaluation core of a pocket
// calculator.
//
// A Calculator builds an arithmetic expression one key at a time. Keys that
// would make the expression malformed at the character level are dropped
// silently: an operator with no operand before it, a second decimal point in
// one number. A minus sign is accepted as a sign at the start of the input or
// right after another operator, so "5*-3" can be typed directly.
//
// Evaluation uses a small dedicated parser for decimal literals and the
// operators + - * /, with the usual precedence and left associativity.
// Failures never escape as panics. A malformed expression and a non-finite
// result each produce an *EvalError whose message is the text to display.
//
package keycalc
