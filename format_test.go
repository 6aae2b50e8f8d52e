package keycalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/keycalc"
)

func TestFormatNumber(t *testing.T) {
	tenth, fifth := 0.1, 0.2
	cases := []struct {
		name string
		x    float64
		want string
	}{
		{"zero", 0, "0"},
		{"negzero", math.Copysign(0, -1), "0"},
		{"one", 1, "1"},
		{"neg", -15, "-15"},
		{"frac", 123.456, "123.456"},
		{"sum", tenth + fifth, "0.30000000000000004"},
		{"third", 1.0 / 3, "0.3333333333333333"},
		{"big-fixed", 1e20, "100000000000000000000"},
		{"big-exp", 1e21, "1e+21"},
		{"big-exp-frac", 1.5e22, "1.5e+22"},
		{"max", math.MaxFloat64, "1.7976931348623157e+308"},
		{"small-fixed", 0.000001, "0.000001"},
		{"small-exp", 1.5e-7, "1.5e-7"},
		{"tiny", 2.5e-10, "2.5e-10"},
		{"neg-small-exp", -1e-7, "-1e-7"},
		{"inf", math.Inf(1), "Infinity"},
		{"neginf", math.Inf(-1), "-Infinity"},
		{"nan", math.NaN(), "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := keycalc.FormatNumber(c.x); got != c.want {
				t.Errorf("FormatNumber(%g): want %q, got %q", c.x, c.want, got)
			}
		})
	}
}
