package cmd

import (
	"context"

	"github.com/ardnew/calc/calc"
	"github.com/ardnew/calc/cli/cmd/repl"
	"github.com/ardnew/calc/log"
)

// Repl starts an interactive session.
type Repl struct {
	History string `help:"History file (history is kept in memory if empty)" type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger := log.Default()

	return repl.Run(ctx, calc.New(calc.WithLogger(logger)), r.History, logger)
}
