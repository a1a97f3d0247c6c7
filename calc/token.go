package calc

import "strconv"

// Kind identifies the variant of a [Token].
type Kind int

const (
	KindNumber   Kind = iota // number
	KindVariable             // variable
	KindOperator             // operator
	KindLParen               // (
	KindRParen               // )
)

// Operator is one of the four binary arithmetic operators.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

// Operators contains the bytes which are considered to be operators.
const Operators = "+-*/"

// Precedence returns the binding strength of op. Add and Sub share
// precedence 0, Mul and Div share precedence 1. All four are
// left-associative.
func (op Operator) Precedence() int {
	switch op {
	case Mul, Div:
		return 1
	default:
		return 0
	}
}

// Apply computes left op right. Division by zero follows IEEE 754 and yields
// an infinity or NaN.
func (op Operator) Apply(left, right float64) float64 {
	switch op {
	case Add:
		return left + right
	case Sub:
		return left - right
	case Mul:
		return left * right
	case Div:
		return left / right
	default:
		panic("calc: invalid operator " + strconv.QuoteRune(rune(op)))
	}
}

func (op Operator) String() string { return string(rune(op)) }

// Token is a lexical element of an expression. Tokens are immutable; the
// zero value is not a valid token.
type Token struct {
	text  string
	value float64 // KindNumber only
	kind  Kind
	sym   byte // variable letter or operator byte
}

// Predefined parenthesis tokens.
var (
	LParen = Token{text: "(", kind: KindLParen, sym: '('}
	RParen = Token{text: ")", kind: KindRParen, sym: ')'}
)

// NumberToken returns a number token with the given value. The text is the
// source spelling; if empty, the shortest representation of v is used.
func NumberToken(v float64, text string) Token {
	if text == "" {
		text = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return Token{text: text, value: v, kind: KindNumber}
}

// VariableToken returns a variable token for letter. Panics if letter is not
// a lowercase ASCII letter.
func VariableToken(letter byte) Token {
	if !isLetter(letter) {
		panic("calc: invalid variable " + strconv.QuoteRune(rune(letter)))
	}

	return Token{text: string(rune(letter)), kind: KindVariable, sym: letter}
}

// OperatorToken returns an operator token for op. Panics if op is not one of
// [Operators].
func OperatorToken(op Operator) Token {
	if !isOperatorByte(byte(op)) {
		panic("calc: invalid operator " + strconv.QuoteRune(rune(op)))
	}

	return Token{text: op.String(), kind: KindOperator, sym: byte(op)}
}

// Kind returns the token's variant.
func (t Token) Kind() Kind { return t.kind }

// Text returns the token as it was spelled in the source.
func (t Token) Text() string { return t.text }

// Number returns the value of a number token.
func (t Token) Number() float64 { return t.value }

// Variable returns the letter of a variable token.
func (t Token) Variable() byte { return t.sym }

// Operator returns the operator of an operator token.
func (t Token) Operator() Operator { return Operator(t.sym) }

// IsOperand reports whether t is a number or a variable.
func (t Token) IsOperand() bool {
	return t.kind == KindNumber || t.kind == KindVariable
}

func (t Token) String() string { return t.text }
