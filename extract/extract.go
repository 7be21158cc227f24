package extract

import (
	"context"
	"log/slog"

	"github.com/note35/lamdef/log"
)

// DefaultKeyword is the anonymous-function keyword the engine locates.
const DefaultKeyword = "lamdef"

// Position is where the extraction was requested.
type Position struct {
	// Line is the zero-based invocation line.
	Line int
	// Col is the cursor column, reported back unchanged.
	Col int
}

// config holds per-invocation engine settings.
type config struct {
	keyword     string
	declKeyword string
	indentStep  int
	rule        *NameRule
	logger      log.Logger
}

// Option applies a configuration option to an extraction.
type Option func(*config)

// WithKeyword sets the anonymous-function keyword to locate.
func WithKeyword(keyword string) Option {
	return func(c *config) {
		if keyword != "" {
			c.keyword = keyword
		}
	}
}

// WithDeclKeyword sets the keyword introducing the emitted declaration.
func WithDeclKeyword(keyword string) Option {
	return func(c *config) {
		if keyword != "" {
			c.declKeyword = keyword
		}
	}
}

// WithIndentStep sets the indentation added to the declaration body.
func WithIndentStep(step int) Option {
	return func(c *config) {
		if step > 0 {
			c.indentStep = step
		}
	}
}

// WithNameRule overrides the built-in naming heuristic with a compiled
// user rule. The heuristic remains the fallback when the rule yields
// nothing usable.
func WithNameRule(rule *NameRule) Option {
	return func(c *config) { c.rule = rule }
}

// WithLogger attaches a logger to the extraction. The zero logger
// discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func makeConfig(opts ...Option) config {
	cfg := config{
		keyword:     DefaultKeyword,
		declKeyword: DefaultDeclKeyword,
		indentStep:  DefaultIndentStep,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Extract locates the lamdef block at pos in the snapshot and computes
// the edit that replaces it with a named declaration and a rewritten
// call site. The snapshot is never modified; on error no edit exists
// and the caller's buffer is untouched by construction.
func Extract(
	ctx context.Context,
	snap Snapshot,
	pos Position,
	opts ...Option,
) (Edit, error) {
	cfg := makeConfig(opts...)

	if pos.Line < 0 || pos.Line >= len(snap) {
		return Edit{}, ErrNotApplicable.
			With(slog.Int("line", pos.Line))
	}

	header, err := analyzeHeader(snap[pos.Line], cfg.keyword)
	if err != nil {
		return Edit{}, WrapError(err).With(slog.Int("line", pos.Line))
	}

	name := resolveName(header, snap[pos.Line], cfg.rule)

	region, err := scanRegion(snap, pos.Line)
	if err != nil {
		return Edit{}, WrapError(err).With(slog.Int("line", pos.Line))
	}

	body := transformBody(snap, region, cfg.indentStep)
	decl := emitDeclaration(header, name, region, body, cfg.declKeyword)
	site := rewriteCallSite(header, name, region)

	edit := Edit{
		Name:        name,
		DeleteFrom:  region.Start,
		DeleteTo:    region.LastRemoved(),
		Declaration: decl,
		Replacement: site,
		CursorLine:  region.Start + len(decl),
		CursorCol:   pos.Col,
	}

	cfg.logger.TraceContext(ctx, "extraction computed",
		slog.String("name", name),
		slog.String("mode", header.Mode.String()),
		slog.Int("start", region.Start),
		slog.Int("end", region.End),
		slog.Bool("closer", region.HasCloser),
	)

	return edit, nil
}

// ExtractBuffer snapshots b and runs [Extract] against the snapshot.
func ExtractBuffer(
	ctx context.Context,
	b Buffer,
	pos Position,
	opts ...Option,
) (Edit, error) {
	return Extract(ctx, SnapBuffer(b), pos, opts...)
}
