package calc

import (
	"errors"
	"log/slog"
	"strconv"
)

// ParseNumber parses s with [strconv.ParseFloat] at 64-bit precision. This is
// the only numeric parser in the package; [IsNumber] and number evaluation
// both go through it.
//
// Accepted forms include an optional sign, decimal integers and fractions
// ("3", "-2.5", ".5", "5."), exponents ("1e3"), hexadecimal floats
// ("0x1p-2"), and the case-insensitive words "inf", "infinity" and "nan".
// Values too large for a float64 parse to an infinity of the matching sign
// rather than failing.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}

		return 0, false
	}

	return v, true
}

// IsNumber reports whether the entire string is accepted by [ParseNumber].
func IsNumber(s string) bool {
	_, ok := ParseNumber(s)

	return ok
}

// IsVariable reports whether s is exactly one lowercase ASCII letter.
func IsVariable(s string) bool {
	return len(s) == 1 && isLetter(s[0])
}

// IsOperand reports whether s is a number or a variable.
func IsOperand(s string) bool {
	return IsNumber(s) || IsVariable(s)
}

// IsOperator reports whether s is exactly one of the bytes in [Operators].
func IsOperator(s string) bool {
	return len(s) == 1 && isOperatorByte(s[0])
}

// IsLeftParen reports whether s is "(".
func IsLeftParen(s string) bool { return s == "(" }

// IsRightParen reports whether s is ")".
func IsRightParen(s string) bool { return s == ")" }

// Precedence returns the precedence of the operator spelled s. It fails with
// [ErrBadToken] if s is not an operator.
func Precedence(s string) (int, error) {
	if !IsOperator(s) {
		return 0, ErrBadToken.With(slog.String("token", s))
	}

	return Operator(s[0]).Precedence(), nil
}

// Classify converts a single token string into a [Token]. Numbers are tried
// before variables. The second result is false if s is none of operand,
// operator, or parenthesis.
func Classify(s string) (Token, bool) {
	switch {
	case IsLeftParen(s):
		return LParen, true
	case IsRightParen(s):
		return RParen, true
	case IsOperator(s):
		return OperatorToken(Operator(s[0])), true
	}

	if v, ok := ParseNumber(s); ok {
		return NumberToken(v, s), true
	}

	if IsVariable(s) {
		return VariableToken(s[0]), true
	}

	return Token{}, false
}

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' }

func isOperatorByte(c byte) bool {
	switch Operator(c) {
	case Add, Sub, Mul, Div:
		return true
	}

	return false
}
