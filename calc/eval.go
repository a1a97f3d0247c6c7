package calc

import (
	"log/slog"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// EvalPostfix computes the value of a postfix token sequence.
//
// Number tokens push their value and variable tokens push their value in env
// (0 if unassigned; a nil env reads every variable as 0). An operator pops
// the right operand, then the left one, and pushes left op right.
//
// Evaluation fails with [ErrStackUnderflow] when an operator finds fewer than
// two values, with [ErrEmpty] when there are no tokens, and with
// [ErrResidue] when more than one value remains at the end.
func EvalPostfix(postfix []Token, env *Env) (float64, error) {
	if len(postfix) == 0 {
		return 0, ErrEmpty
	}

	values := arraystack.New()

	for i, tok := range postfix {
		switch tok.Kind() {
		case KindNumber:
			values.Push(tok.Number())

		case KindVariable:
			values.Push(env.Get(tok.Variable()))

		case KindOperator:
			if values.Size() < 2 {
				return 0, ErrStackUnderflow.With(
					slog.String("operator", tok.Text()),
					slog.Int("index", i),
					slog.Int("depth", values.Size()),
				)
			}

			right, left := popValue(values), popValue(values)
			values.Push(tok.Operator().Apply(left, right))

		default:
			return 0, ErrBadToken.With(
				slog.String("token", tok.Text()),
				slog.Int("index", i),
			)
		}
	}

	if values.Size() != 1 {
		return 0, ErrResidue.With(slog.Int("depth", values.Size()))
	}

	return popValue(values), nil
}

func popValue(s *arraystack.Stack) float64 {
	v, _ := s.Pop()

	return v.(float64)
}
