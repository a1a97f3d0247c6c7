package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/ardnew/calc/calc"
	"github.com/ardnew/calc/log"
)

// Run evaluates input line by line and prints one result per line.
type Run struct {
	Source []string `help:"Input file(s) or '-' for stdin"     name:"source" short:"s" type:"existingfile"`
	Halt   bool     `help:"Stop after the first illegal line"`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	srcs, err := openSources(ctx, r.Source)
	if err != nil {
		return err
	}
	defer srcs.Close()

	c := calc.New(calc.WithLogger(log.Default()))

	return Process(ctx, srcs.Reader(), stdout(ctx), c, r.Halt)
}

// Process reads lines from r until end of input and writes, for each line,
// either the formatted value computed by c or [calc.Sentinel].
//
// Lines end at "\n"; a trailing "\r" is removed too, and the last line need
// not be terminated. Illegal lines do not stop processing unless halt is set,
// in which case Process returns nil right after writing the first sentinel.
// Only read and write failures and cancellation of ctx are returned.
func Process(
	ctx context.Context,
	r io.Reader,
	w io.Writer,
	c *calc.Calculator,
	halt bool,
) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			_ = out.Flush()

			return err
		}

		line, rerr := in.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			_ = out.Flush()

			return ErrReadInput.With(slog.Int("line", n)).Wrap(rerr)
		}

		if line == "" && rerr != nil {
			break
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		legal, werr := writeResult(ctx, out, c, line)
		if werr != nil {
			return ErrWriteOutput.With(slog.Int("line", n)).Wrap(werr)
		}

		// Keep interactive sessions responsive.
		if in.Buffered() == 0 {
			if err := out.Flush(); err != nil {
				return ErrWriteOutput.With(slog.Int("line", n)).Wrap(err)
			}
		}

		if !legal && halt {
			log.InfoContext(ctx, "halted on illegal line", slog.Int("line", n))

			break
		}

		if rerr != nil {
			break
		}
	}

	if err := out.Flush(); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// writeResult evaluates line and writes its output line. It reports whether
// the line was legal.
func writeResult(
	ctx context.Context,
	w io.StringWriter,
	c *calc.Calculator,
	line string,
) (bool, error) {
	result := calc.Sentinel

	v, err := c.Evaluate(ctx, line)
	if err == nil {
		result = calc.FormatValue(v)
	}

	_, werr := w.WriteString(result + "\n")

	return err == nil, werr
}
