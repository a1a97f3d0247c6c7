package calc

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/calc/log"
)

// Calculator evaluates one line at a time against a variable environment
// that persists across lines. It is not safe for concurrent use.
type Calculator struct {
	env    *Env
	logger log.Logger
}

// Option configures a [Calculator].
type Option func(*Calculator)

// WithLogger sets the logger used for per-line diagnostics. The zero
// [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger.With(slog.String("component", "calc"))
	}
}

// WithEnv makes the calculator read and write env instead of a fresh
// environment.
func WithEnv(env *Env) Option {
	return func(c *Calculator) {
		if env != nil {
			c.env = env
		}
	}
}

// New returns a Calculator with an empty environment.
func New(opts ...Option) *Calculator {
	c := &Calculator{env: NewEnv()}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Env returns the calculator's variable environment.
func (c *Calculator) Env() *Env { return c.env }

// assignSign separates the assignment target from the expression.
const assignSign = "="

// Evaluate computes the value of one input line.
//
// A line without "=" is an expression and its value is returned. A line with
// exactly one "=" is an assignment: the right-hand side is evaluated, the
// trimmed left-hand side must be a single variable letter, and the value is
// stored and returned. A line with more "=" signs is illegal.
//
// Every failure is an [*Error]; [IsIllegal] reports true for it. A failed
// line never modifies the environment.
func (c *Calculator) Evaluate(ctx context.Context, line string) (float64, error) {
	value, err := c.dispatch(ctx, line)
	if err != nil {
		c.logger.DebugContext(ctx, "line rejected",
			slog.String("line", line),
			slog.Any("error", err),
		)

		return 0, err
	}

	c.logger.TraceContext(ctx, "line evaluated",
		slog.String("line", line),
		slog.Float64("value", value),
	)

	return value, nil
}

func (c *Calculator) dispatch(ctx context.Context, line string) (float64, error) {
	switch k := strings.Count(line, assignSign); k {
	case 0:
		return c.evaluateInfix(ctx, line)

	case 1:
		lhs, rhs, _ := strings.Cut(line, assignSign)

		value, err := c.evaluateInfix(ctx, rhs)
		if err != nil {
			return 0, err
		}

		name := strings.TrimFunc(lhs, isTrimmable)
		if !IsVariable(name) {
			return 0, ErrBadAssignLHS.With(slog.String("lhs", name))
		}

		c.env.Set(name[0], value)

		c.logger.TraceContext(ctx, "variable assigned",
			slog.String("name", name),
			slog.Float64("value", value),
		)

		return value, nil

	default:
		return 0, ErrTooManyEquals.With(slog.Int("count", k))
	}
}

// evaluateInfix runs the tokenizer, shunting-yard, and postfix evaluator on
// an expression without assignment.
func (c *Calculator) evaluateInfix(
	ctx context.Context,
	expr string,
) (float64, error) {
	infix, err := Lex(expr)
	if err != nil {
		return 0, err
	}

	postfix, err := ToPostfix(infix)
	if err != nil {
		return 0, err
	}

	c.logger.TraceContext(ctx, "postfix",
		slog.String("infix", joinTokens(infix)),
		slog.String("postfix", joinTokens(postfix)),
	)

	return EvalPostfix(postfix, c.env)
}

func joinTokens(tokens []Token) string {
	var b strings.Builder

	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(tok.Text())
	}

	return b.String()
}
