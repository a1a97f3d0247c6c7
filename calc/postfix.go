package calc

import (
	"log/slog"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ToPostfix converts an infix token sequence into postfix order using the
// shunting-yard algorithm.
//
// Operands go straight to the output. An operator first pops every operator
// of greater or equal precedence above the nearest "(" (all operators are
// left-associative), then is pushed. A ")" pops operators up to and including
// the matching "(". The returned sequence never contains parentheses.
//
// A ")" without a matching "(" and a "(" left open at the end both fail with
// [ErrBadParen].
func ToPostfix(infix []Token) ([]Token, error) {
	ops := arraystack.New()
	postfix := make([]Token, 0, len(infix))

	for i, tok := range infix {
		switch tok.Kind() {
		case KindNumber, KindVariable:
			postfix = append(postfix, tok)

		case KindLParen:
			ops.Push(tok)

		case KindRParen:
			matched := false

			for !ops.Empty() {
				top := pop(ops)
				if top.Kind() == KindLParen {
					matched = true

					break
				}

				postfix = append(postfix, top)
			}

			if !matched {
				return nil, ErrBadParen.With(
					slog.String("paren", ")"),
					slog.Int("index", i),
				)
			}

		case KindOperator:
			prec := tok.Operator().Precedence()

			for !ops.Empty() {
				top := peek(ops)
				if top.Kind() != KindOperator ||
					top.Operator().Precedence() < prec {
					break
				}

				postfix = append(postfix, pop(ops))
			}

			ops.Push(tok)

		default:
			return nil, ErrBadToken.With(
				slog.String("token", tok.Text()),
				slog.Int("index", i),
			)
		}
	}

	for !ops.Empty() {
		top := pop(ops)
		if top.Kind() == KindLParen {
			return nil, ErrBadParen.With(slog.String("paren", "("))
		}

		postfix = append(postfix, top)
	}

	return postfix, nil
}

// pop removes the top token from a non-empty stack.
func pop(s *arraystack.Stack) Token {
	v, _ := s.Pop()

	return v.(Token)
}

// peek returns the top token of a non-empty stack.
func peek(s *arraystack.Stack) Token {
	v, _ := s.Peek()

	return v.(Token)
}
