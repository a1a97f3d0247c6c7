package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/calc/calc"
	"github.com/ardnew/calc/log"
)

// Eval evaluates expressions given as arguments, in order, sharing one
// variable environment.
type Eval struct {
	Expr []string `arg:"" help:"Expression or assignment, one per argument" name:"expr"`
	Halt bool     `       help:"Stop after the first illegal expression"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	c := calc.New(calc.WithLogger(log.Default()))

	return EvalArgs(ctx, stdout(ctx), c, e.Halt, e.Expr...)
}

// EvalArgs writes one output line per expression in exprs. Each expression
// is a single line as given; a newline inside it makes it illegal rather than
// splitting it. With halt, nothing after the first illegal expression is
// evaluated.
func EvalArgs(
	ctx context.Context,
	w io.Writer,
	c *calc.Calculator,
	halt bool,
	exprs ...string,
) error {
	out := bufio.NewWriter(w)

	for i, expr := range exprs {
		if err := ctx.Err(); err != nil {
			_ = out.Flush()

			return err
		}

		legal, err := writeResult(ctx, out, c, expr)
		if err != nil {
			return ErrWriteOutput.With(slog.Int("arg", i+1)).Wrap(err)
		}

		if !legal && halt {
			log.InfoContext(ctx, "halted on illegal expression", slog.Int("arg", i+1))

			break
		}
	}

	if err := out.Flush(); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
