package calc

import (
	"errors"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-3", -3, true},
		{"+3", 3, true},
		{"2.5", 2.5, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"1E-2", 0.01, true},
		{"0x1p-2", 0.25, true},
		{"1e999", math.Inf(1), true},
		{"-1e999", math.Inf(-1), true},
		{"inf", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"", 0, false},
		{"x", 0, false},
		{"1..2", 0, false},
		{"1 2", 0, false},
		{"--1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if IsNumber(tt.in) != tt.ok {
				t.Errorf("IsNumber(%q) disagrees with ParseNumber", tt.in)
			}
		})
	}

	if v, ok := ParseNumber("NaN"); !ok || !math.IsNaN(v) {
		t.Errorf("ParseNumber(NaN) = %v, %v", v, ok)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		in                          string
		variable, operand, operator bool
		lparen, rparen              bool
	}{
		{in: "a", variable: true, operand: true},
		{in: "z", variable: true, operand: true},
		{in: "A"},
		{in: "ab"},
		{in: "7", operand: true},
		{in: "-7", operand: true},
		{in: "+", operator: true},
		{in: "-", operator: true},
		{in: "*", operator: true},
		{in: "/", operator: true},
		{in: "%"},
		{in: "++"},
		{in: "(", lparen: true},
		{in: ")", rparen: true},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsVariable(tt.in); got != tt.variable {
				t.Errorf("IsVariable = %v, want %v", got, tt.variable)
			}
			if got := IsOperand(tt.in); got != tt.operand {
				t.Errorf("IsOperand = %v, want %v", got, tt.operand)
			}
			if got := IsOperator(tt.in); got != tt.operator {
				t.Errorf("IsOperator = %v, want %v", got, tt.operator)
			}
			if got := IsLeftParen(tt.in); got != tt.lparen {
				t.Errorf("IsLeftParen = %v, want %v", got, tt.lparen)
			}
			if got := IsRightParen(tt.in); got != tt.rparen {
				t.Errorf("IsRightParen = %v, want %v", got, tt.rparen)
			}
		})
	}
}

func TestPrecedence(t *testing.T) {
	for op, want := range map[string]int{"+": 0, "-": 0, "*": 1, "/": 1} {
		got, err := Precedence(op)
		if err != nil || got != want {
			t.Errorf("Precedence(%q) = %d, %v; want %d", op, got, err, want)
		}
	}

	for _, s := range []string{"(", "x", "1", "^"} {
		if _, err := Precedence(s); !errors.Is(err, ErrBadToken) {
			t.Errorf("Precedence(%q) error = %v, want %v", s, err, ErrBadToken)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"(", KindLParen},
		{")", KindRParen},
		{"-", KindOperator},
		{"-1", KindNumber},
		{"e", KindVariable},
		{"inf", KindNumber},
	}

	for _, tt := range tests {
		tok, ok := Classify(tt.in)
		if !ok {
			t.Errorf("Classify(%q) failed", tt.in)

			continue
		}
		if tok.Kind() != tt.kind {
			t.Errorf("Classify(%q) kind = %v, want %v", tt.in, tok.Kind(), tt.kind)
		}
		if tok.Text() != tt.in {
			t.Errorf("Classify(%q) text = %q", tt.in, tok.Text())
		}
	}

	if _, ok := Classify("?"); ok {
		t.Error("Classify(?) succeeded")
	}
}
