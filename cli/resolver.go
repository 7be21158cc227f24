package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolveYAML is a [kong.ConfigurationLoader] for YAML config files.
//
// The file is a flat mapping whose keys mirror flag names; hyphens and
// underscores are interchangeable:
//
//	keyword: lamdef
//	indent-step: 4
//	name-rule: '"_" + join(singular(variable), "key")'
//	log-level: debug
//	log-format: text
//
// Command-line flags override config file values. An unreadable or
// malformed file resolves to an empty configuration rather than an
// error, so a broken config never locks the user out of the CLI.
func resolveYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return yamlConfig{}, nil
	}

	var raw map[string]any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return yamlConfig{}, nil
	}

	return yamlConfig(raw), nil
}

// yamlConfig implements [kong.Resolver] for YAML configs.
type yamlConfig map[string]any

// Validate implements [kong.Resolver].
func (c yamlConfig) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c yamlConfig) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[flag.Name]; ok {
		return value, nil
	}

	underscored := strings.ReplaceAll(flag.Name, "-", "_")
	if value, ok := c[underscored]; ok {
		return value, nil
	}

	return nil, nil
}
