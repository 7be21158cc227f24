// Package profile wraps [github.com/pkg/profile] behind the pprof
// build tag.
//
// Built normally, every entry point is a safe no-op and the profiler
// adds nothing to the binary. Built with
//
//	go build -tags pprof
//
// the CLI gains a working --pprof-mode flag accepting the modes listed
// by [Modes] (cpu, mem, block, mutex, goroutine, trace, ...), writing
// profile data beneath the cache directory.
package profile

// Tag is the build tag that enables profiling support.
const Tag = `pprof`
