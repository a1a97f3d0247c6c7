package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/calc/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// The document is a single mapping from flag name to value. Flag names may
// be spelled with hyphens or underscores:
//
//	log-level: debug
//	log_format: json
//	log-pretty: true
//	halt: true
//
// Scalars are handed to kong as strings, sequences as lists of strings.
// Command-line flags override config file values. A file that is empty or
// not a mapping is logged and ignored.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WarnContext(ctx, "ignoring configuration file",
					slog.String("error", err.Error()),
				)
			}

			return config{}, nil
		}

		cfg := make(config, len(doc))
		for key, val := range doc {
			cfg[key] = flagString(val)
		}

		return cfg, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	name := flag.Name
	underscoreName := strings.ReplaceAll(name, "-", "_")

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[underscoreName]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flagString converts a decoded YAML value to the form kong parses flags
// from.
func flagString(v any) any {
	switch v := v.(type) {
	case nil:
		return nil

	case string:
		return v

	case bool:
		return strconv.FormatBool(v)

	case int:
		return strconv.Itoa(v)

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		list := make([]any, len(v))
		for i, e := range v {
			list[i] = flagString(e)
		}

		return list

	default:
		return v
	}
}
