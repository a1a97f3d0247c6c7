package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/calc/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer that receives results: the kong application's
// standard output if one is bound to ctx, otherwise [os.Stdout].
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// sourceFiles reads a list of input files back to back. Standard input, if
// requested, is read after every regular file.
type sourceFiles struct {
	files    []*os.File
	hasStdin bool
}

// Reader returns a reader over all sources in order.
func (s *sourceFiles) Reader() io.Reader {
	readers := make([]io.Reader, 0, len(s.files)+1)
	for _, f := range s.files {
		readers = append(readers, f)
	}

	if s.hasStdin {
		readers = append(readers, os.Stdin)
	}

	return io.MultiReader(readers...)
}

// Close closes every regular file. Standard input is left open.
func (s *sourceFiles) Close() error {
	var errs []error

	for _, f := range s.files {
		errs = append(errs, f.Close())
	}

	return errors.Join(errs...)
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// openSources opens the given source paths for reading.
//
// No paths, or only "-", selects standard input. Duplicate paths (including
// symlinks and relative spellings of the same file) are read once, and all
// occurrences of "-" collapse to a single stdin reader placed last.
func openSources(ctx context.Context, sources []string) (*sourceFiles, error) {
	var srcs sourceFiles

	if len(sources) == 0 {
		srcs.hasStdin = true

		return &srcs, nil
	}

	seen := make(map[fileKey]struct{})

	stdinKey, stdinOK := statKey(os.Stdin)

	for _, src := range sources {
		if src == stdinSource {
			srcs.hasStdin = true

			continue
		}

		file, err := openFile(src)
		if err != nil {
			_ = srcs.Close()

			return nil, ErrOpenSource.With(slog.String("file", src)).Wrap(err)
		}

		key, ok := statKey(file)
		if !ok {
			srcs.files = append(srcs.files, file)

			continue
		}

		// Stdin named by path, e.g. /dev/stdin.
		if stdinOK && key == stdinKey {
			srcs.hasStdin = true

			_ = file.Close()

			continue
		}

		if _, dup := seen[key]; dup {
			log.DebugContext(ctx, "skip duplicate source", slog.String("file", src))

			_ = file.Close()

			continue
		}

		seen[key] = struct{}{}
		srcs.files = append(srcs.files, file)
	}

	return &srcs, nil
}

// openFile resolves path through symlinks and opens it.
func openFile(path string) (*os.File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, err
	}

	return os.Open(resolved)
}

// statKey returns the device/inode pair of an open file.
func statKey(f *os.File) (fileKey, bool) {
	info, err := f.Stat()
	if err != nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}
