// Package cli contains the command line interface for calc.
//
// # Usage
//
// With no command, calc reads lines from standard input (or --source files)
// and prints one result per line:
//
//	$ printf 'x = 2 + 3\nx * 4\na = b = 1\n' | calc
//	5.0
//	20.0
//	CHYBA
//
// Other commands:
//
//	calc eval 'r = 2' '3 * r * r'   # arguments as lines
//	calc repl                       # interactive session
//	calc init                       # write the configuration file
//
// # Configuration File
//
// Flags may also be set in a YAML file at $XDG_CONFIG_HOME/calc/config.yaml
// (see [os.UserConfigDir]). The file is optional. It is read by a kong
// resolver, so command-line flags always win:
//
//	log-level: debug
//	log-format: json
//	halt: true
//
// # Logging Options
//
// Logs are written to standard error.
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default
//     $XDG_CACHE_HOME/calc/pprof)
package cli
