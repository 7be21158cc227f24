package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/note35/lamdef/log"
)

// Init writes a configuration file seeded from the current settings.
type Init struct {
	Path  string `default:"${config}" help:"Configuration file to write" type:"path"`
	Force bool   `help:"Overwrite an existing file" short:"f"`
}

// configFile is the on-disk configuration schema. Keys mirror the
// top-level flag names resolved by the YAML config loader.
type configFile struct {
	Keyword     string `yaml:"keyword"`
	DeclKeyword string `yaml:"decl-keyword"`
	IndentStep  int    `yaml:"indent-step"`
	NameRule    string `yaml:"name-rule,omitempty"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	if !i.Force {
		_, err := os.Stat(i.Path)
		if err == nil {
			return ErrFileExists.With(slog.String("path", i.Path))
		}

		if !errors.Is(err, os.ErrNotExist) {
			return ErrWriteConfig.Wrap(err).
				With(slog.String("path", i.Path))
		}
	}

	engine := EngineFrom(ctx)

	data, err := yaml.Marshal(configFile{
		Keyword:     engine.Keyword,
		DeclKeyword: engine.DeclKeyword,
		IndentStep:  engine.IndentStep,
		NameRule:    engine.NameRule,
	})
	if err != nil {
		return ErrWriteConfig.Wrap(err).
			With(slog.String("path", i.Path))
	}

	err = os.MkdirAll(filepath.Dir(i.Path), 0o755)
	if err != nil {
		return ErrWriteConfig.Wrap(err).
			With(slog.String("path", i.Path))
	}

	err = os.WriteFile(i.Path, data, 0o644)
	if err != nil {
		return ErrWriteConfig.Wrap(err).
			With(slog.String("path", i.Path))
	}

	log.InfoContext(ctx, "configuration written",
		slog.String("path", i.Path))

	return nil
}
