// Package profile provides optional runtime profiling for calc.
//
// Profiling is built on [github.com/pkg/profile] and only exists in binaries
// built with the "pprof" build tag:
//
//	go build -tags pprof .
//	./calc --pprof-mode cpu < input.txt
//	go tool pprof ./calc $XDG_CACHE_HOME/calc/pprof/cpu.pprof
//
// Without the tag every [Profiler] is a no-op and [Modes] is empty.
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread and trace. A binary built with the tag also registers the
// [net/http/pprof] handlers on [net/http.DefaultServeMux]; calc itself never
// starts an HTTP server.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
