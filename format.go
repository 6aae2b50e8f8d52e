package keycalc

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber formats x with the fewest digits that parse back to x. Values
// with magnitude in [1e-6, 1e21) use fixed notation; others use an exponent
// without leading zeros, e.g. "1e+21" or "1.5e-7". Negative zero formats as
// "0".
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	if a := math.Abs(x); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	k := strings.IndexByte(s, 'e')
	// s[k+1] is the exponent sign.
	exp := strings.TrimLeft(s[k+2:], "0")
	return s[:k+2] + exp
}
