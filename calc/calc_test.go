package calc

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/calc/log"
)

// run evaluates lines in order on one calculator and returns what would be
// printed for each.
func run(c *Calculator, lines ...string) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		v, err := c.Evaluate(context.Background(), line)
		if err != nil {
			out[i] = Sentinel

			continue
		}

		out[i] = FormatValue(v)
	}

	return out
}

func TestCalculator_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"precedence", []string{"1 + 2 * 3"}, []string{"7.0"}},
		{"parentheses", []string{"(1 + 2) * 3"}, []string{"9.0"}},
		{"assign then use", []string{"x = 2 + 3", "x * 4"}, []string{"5.0", "20.0"}},
		{"unassigned is zero", []string{"y + 1"}, []string{"1.0"}},
		{"two equals", []string{"a = b = 1"}, []string{Sentinel}},
		{"unbalanced", []string{"(1 + 2"}, []string{Sentinel}},
		{
			"error does not stop the session",
			[]string{"a = 4", "a +", "a / 8"},
			[]string{"4.0", Sentinel, "0.5"},
		},
		{
			"reassignment",
			[]string{"n = 1", "n = n + 1", "n = n * 10", "n"},
			[]string{"1.0", "2.0", "20.0", "20.0"},
		},
		{"division by zero", []string{"1 / 0", "0 / 0"}, []string{"Infinity", "NaN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(New(), tt.lines...)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculator_Whitespace(t *testing.T) {
	c := New()

	for _, line := range []string{
		"1 + 2", "  1 + 2", "1 + 2  ", "1\t+\t2", "1   +    2", "(1) + (2)", " ( 1 + 2 ) ",
	} {
		v, err := c.Evaluate(t.Context(), line)
		if err != nil || v != 3 {
			t.Errorf("Evaluate(%q) = %v, %v; want 3", line, v, err)
		}
	}
}

func TestCalculator_Assignment(t *testing.T) {
	tests := []struct {
		line  string
		name  byte
		value float64
	}{
		{"x=5", 'x', 5},
		{" x = 5", 'x', 5},
		{"\tq =(2)", 'q', 2},
		{"z = z + 1", 'z', 1},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c := New()

			v, err := c.Evaluate(t.Context(), tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != tt.value {
				t.Errorf("value = %v, want %v", v, tt.value)
			}
			if got, ok := c.Env().Lookup(tt.name); !ok || got != tt.value {
				t.Errorf("env[%c] = %v, %v", tt.name, got, ok)
			}
		})
	}
}

func TestCalculator_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"x =", ErrEmpty},
		{"= 5", ErrBadAssignLHS},
		{"X = 5", ErrBadAssignLHS},
		{"xy = 5", ErrBadAssignLHS},
		{"1 = 5", ErrBadAssignLHS},
		{"(x) = 5", ErrBadAssignLHS},
		{"a = b = 1", ErrTooManyEquals},
		{"==", ErrTooManyEquals},
		{"(1 + 2", ErrBadParen},
		{"1 + 2)", ErrBadParen},
		{"1+2", ErrBadToken},
		{"a = 1 ^ 2", ErrBadToken},
		{"1 +", ErrStackUnderflow},
		{"1 2", ErrResidue},
		{"x = 1 2", ErrResidue},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := New().Evaluate(t.Context(), tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !IsIllegal(err) {
				t.Errorf("IsIllegal(%v) = false", err)
			}
		})
	}
}

func TestCalculator_FailedLineLeavesEnvUnchanged(t *testing.T) {
	c := New()
	run(c, "a = 1", "b = 2")

	before := *c.Env()

	for _, line := range []string{
		"a = 5 +", "c = (1", "a = b = 3", "ab = 1", "c = 1 2", "b = ?",
	} {
		if _, err := c.Evaluate(t.Context(), line); err == nil {
			t.Fatalf("Evaluate(%q) succeeded", line)
		}
		if *c.Env() != before {
			t.Fatalf("env changed after %q", line)
		}
	}
}

func TestCalculator_ReadDoesNotCreate(t *testing.T) {
	c := New()
	run(c, "k + m * 2")

	if c.Env().Len() != 0 {
		t.Errorf("reading created %d variables", c.Env().Len())
	}
}

func TestCalculator_WithEnv(t *testing.T) {
	env := NewEnv()
	env.Set('r', 2)

	c := New(WithEnv(env), WithEnv(nil))
	run(c, "s = r * r")

	if env.Get('s') != 4 {
		t.Errorf("shared env s = %v, want 4", env.Get('s'))
	}
}

func TestCalculator_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.Make(&buf, log.WithLevel(log.LevelTrace), log.WithFormat(log.FormatJSON))

	c := New(WithLogger(logger))
	run(c, "x = 1 + 2", "1 +")

	out := buf.String()
	for _, want := range []string{
		`"component":"calc"`,
		`"msg":"postfix"`,
		`"postfix":"1 2 +"`,
		`"msg":"variable assigned"`,
		`"msg":"line rejected"`,
		`"error":"operator is missing an operand"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}
