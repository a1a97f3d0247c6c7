package calc

import (
	"errors"
	"math"
	"testing"
)

func postfixOf(t *testing.T, infix string) []Token {
	t.Helper()

	tokens, err := Lex(infix)
	if err != nil {
		t.Fatalf("Lex(%q): %v", infix, err)
	}

	postfix, err := ToPostfix(tokens)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", infix, err)
	}

	return postfix
}

func TestEvalPostfix(t *testing.T) {
	env := NewEnv()
	env.Set('x', 4)
	env.Set('y', 0.5)

	tests := []struct {
		infix string
		want  float64
	}{
		{"7", 7},
		{"1 + 2 * 3", 7},
		{"( 1 + 2 ) * 3", 9},
		{"8 - 3 - 2", 3},
		{"8 / 4 / 2", 1},
		{"x * y", 2},
		{"x - z", 4},
		{"-1 * x", -4},
		{"0.1 + 0.2", 0.30000000000000004},
	}

	for _, tt := range tests {
		t.Run(tt.infix, func(t *testing.T) {
			got, err := EvalPostfix(postfixOf(t, tt.infix), env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, ok := env.Lookup('z'); ok {
		t.Error("reading z created it")
	}
}

func TestEvalPostfix_DivisionByZero(t *testing.T) {
	tests := []struct {
		infix string
		check func(float64) bool
	}{
		{"1 / 0", func(v float64) bool { return math.IsInf(v, 1) }},
		{"-1 / 0", func(v float64) bool { return math.IsInf(v, -1) }},
		{"0 / 0", math.IsNaN},
		{"q / q", math.IsNaN},
	}

	for _, tt := range tests {
		got, err := EvalPostfix(postfixOf(t, tt.infix), nil)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.infix, err)

			continue
		}
		if !tt.check(got) {
			t.Errorf("%s: got %v", tt.infix, got)
		}
	}
}

func TestEvalPostfix_Errors(t *testing.T) {
	tests := []struct {
		infix string
		want  error
	}{
		{"", ErrEmpty},
		{"( )", ErrEmpty},
		{"+", ErrStackUnderflow},
		{"1 +", ErrStackUnderflow},
		{"* 2", ErrStackUnderflow},
		{"1 2", ErrResidue},
		{"1 2 3 +", ErrResidue},
		{"x y", ErrResidue},
	}

	for _, tt := range tests {
		t.Run(tt.infix, func(t *testing.T) {
			_, err := EvalPostfix(postfixOf(t, tt.infix), nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
