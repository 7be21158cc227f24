package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/note35/lamdef/extract"
	"github.com/note35/lamdef/log"
)

// Identifiers for kong variables shared between cli and cmd.
const (
	ConfigIdentifier = "config"
	CacheIdentifier  = "cache"
)

// contextKey is used to store a [kong.Context] value in context.Context.
type contextKey struct{}

// WithContext returns a new context containing the given kong.Context.
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

// stdout returns the parser's output writer when a kong context is
// present, falling back to the process stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// Engine carries the shared extraction settings parsed from top-level
// flags and the config file.
type Engine struct {
	// Keyword is the anonymous-function keyword to locate.
	Keyword string
	// DeclKeyword introduces emitted declarations.
	DeclKeyword string
	// IndentStep is the indentation added to extracted bodies.
	IndentStep int
	// NameRule is the raw naming-rule expression, kept for init.
	NameRule string
	// Rule is the compiled naming rule, nil when NameRule is empty.
	Rule *extract.NameRule
}

// Options converts the settings into engine options.
func (e Engine) Options() []extract.Option {
	opts := []extract.Option{
		extract.WithKeyword(e.Keyword),
		extract.WithDeclKeyword(e.DeclKeyword),
		extract.WithIndentStep(e.IndentStep),
		extract.WithLogger(log.Default()),
	}

	if e.Rule != nil {
		opts = append(opts, extract.WithNameRule(e.Rule))
	}

	return opts
}

// KeywordOrDefault returns the configured keyword, falling back to the
// engine default when unset.
func (e Engine) KeywordOrDefault() string {
	if e.Keyword == "" {
		return extract.DefaultKeyword
	}

	return e.Keyword
}

type engineKey struct{}

// WithEngine returns a new context carrying the shared engine settings.
func WithEngine(ctx context.Context, engine Engine) context.Context {
	return context.WithValue(ctx, engineKey{}, engine)
}

// EngineFrom retrieves the engine settings stored by [WithEngine].
// A context without settings yields the zero Engine, whose options
// resolve to engine defaults.
func EngineFrom(ctx context.Context) Engine {
	engine, _ := ctx.Value(engineKey{}).(Engine)

	return engine
}
