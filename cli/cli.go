package cli

import (
	"context"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/note35/lamdef/cli/cmd"
	"github.com/note35/lamdef/extract"
	"github.com/note35/lamdef/pkg"
)

// CLI is the top-level command-line interface for lamdef.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Keyword     string `default:"lamdef" help:"Anonymous-function keyword to locate"`
	DeclKeyword string `default:"def"    help:"Keyword introducing emitted declarations"     name:"decl-keyword"`
	IndentStep  int    `default:"4"      help:"Indentation added to extracted bodies"        name:"indent-step"`
	NameRule    string `                 help:"Expression overriding the naming heuristic"   name:"name-rule"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Extract cmd.Extract `cmd:"" help:"Extract the lamdef block at a given line"`
	List    cmd.List    `cmd:"" help:"List extractable lamdef lines in a source"`
	Tui     cmd.Tui     `cmd:"" default:"withargs" help:"Pick, preview, and apply extractions interactively"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
}

// engine builds the shared engine settings from parsed flag values.
func (c *CLI) engine() (cmd.Engine, error) {
	rule, err := extract.CompileNameRule(c.NameRule)
	if err != nil {
		return cmd.Engine{}, err
	}

	return cmd.Engine{
		Keyword:     c.Keyword,
		DeclKeyword: c.DeclKeyword,
		IndentStep:  c.IndentStep,
		NameRule:    c.NameRule,
		Rule:        rule,
	}, nil
}

// Run executes the lamdef CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Name + " " + strings.TrimSpace(pkg.Version),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so early configuration holds regardless
	// of flag position. TextUnmarshaler on logFormat/logLevel handles
	// those flags during normal parsing, but this early scan also
	// catches boolean flags like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		kong.Configuration(resolveYAML, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	engine, err := cli.engine()
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithEngine(ctx, engine)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof.
	defer cli.Pprof.start(ctx)()

	// Execute the selected command
	return ktx.Run(ctx, &cli)
}
