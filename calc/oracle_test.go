package calc

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
)

// randomExpr builds a well-formed infix expression over small integers and
// the variables a, b and c, with every token separated by a space.
func randomExpr(r *rand.Rand, depth int) string {
	if depth == 0 || r.IntN(3) == 0 {
		if r.IntN(4) == 0 {
			return string(rune('a' + r.IntN(3)))
		}

		return strconv.Itoa(1 + r.IntN(9))
	}

	op := string(Operators[r.IntN(len(Operators))])
	left, right := randomExpr(r, depth-1), randomExpr(r, depth-1)

	if r.IntN(2) == 0 {
		return "( " + left + " " + op + " " + right + " )"
	}

	return left + " " + op + " " + right
}

func sameFloat(a, b float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}

	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// TestEvaluate_MatchesExpr checks precedence and associativity against an
// independent expression engine.
func TestEvaluate_MatchesExpr(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	vars := map[string]any{"a": 2.0, "b": 0.5, "c": -3.0}

	c := New()
	for name, v := range vars {
		c.Env().Set(name[0], v.(float64))
	}

	for range 500 {
		line := randomExpr(r, 4)

		want, err := expr.Eval(line, vars)
		if err != nil {
			t.Fatalf("expr.Eval(%q): %v", line, err)
		}

		var wantf float64
		switch w := want.(type) {
		case int:
			wantf = float64(w)
		case float64:
			wantf = w
		default:
			t.Fatalf("expr.Eval(%q) returned %T", line, want)
		}

		got, err := c.Evaluate(t.Context(), line)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", line, err)
		}

		if !sameFloat(got, wantf) {
			t.Errorf("Evaluate(%q) = %v, expr says %v", line, got, wantf)
		}
	}
}

func TestEvaluate_LeftAssociative(t *testing.T) {
	for _, line := range []string{"100 - 10 - 1", "100 / 10 / 2", "2 * 3 / 4 * 5", "1 - 2 + 3 - 4"} {
		got, err := New().Evaluate(t.Context(), line)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", line, err)
		}

		want, err := expr.Eval(line, nil)
		if err != nil {
			t.Fatalf("expr.Eval(%q): %v", line, err)
		}

		var wantf float64
		switch w := want.(type) {
		case int:
			wantf = float64(w)
		case float64:
			wantf = w
		}

		if got != wantf {
			t.Errorf("%s = %v, want %v", strings.TrimSpace(line), got, wantf)
		}
	}
}
