package calc

import (
	"log/slog"
	"strings"
)

// parenSpacer surrounds every parenthesis with spaces so that parentheses
// always stand alone as tokens.
var parenSpacer = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize splits a raw line into its token strings.
//
// Parentheses are isolated from surrounding text, leading and trailing
// whitespace (including control characters) is stripped, and the rest is
// split on runs of space or horizontal tab. No other character delimits
// tokens, so "1+2" is a single (unknown) token. An empty or blank line
// yields no tokens.
func Tokenize(line string) []string {
	line = strings.TrimFunc(parenSpacer.Replace(line), isTrimmable)

	return strings.FieldsFunc(line, isDelimiter)
}

// Lex tokenizes line and classifies each token. It is the only place
// classification can fail: a token that is neither operand, operator, nor
// parenthesis is rejected with [ErrBadToken].
func Lex(line string) ([]Token, error) {
	fields := Tokenize(line)
	tokens := make([]Token, 0, len(fields))

	for i, s := range fields {
		tok, ok := Classify(s)
		if !ok {
			return nil, ErrBadToken.With(
				slog.String("token", s),
				slog.Int("index", i),
			)
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func isDelimiter(r rune) bool { return r == ' ' || r == '\t' }

func isTrimmable(r rune) bool { return r <= ' ' }
