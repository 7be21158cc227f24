//go:build !pprof

package profile

// Modes returns no modes when built without the pprof build tag.
func Modes() []string { return nil }

// start is a no-op without the pprof build tag.
func start(string, string, bool) interface{ Stop() } { return ignore{} }
