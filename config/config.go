// Package config loads the optional svgc yaml configuration.
package config

import (
	"errors"
	"fmt"
	"maps"

	"github.com/signadot/svgc/emit"
	"github.com/signadot/svgc/format"
	"github.com/signadot/svgc/normalize"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

var ErrConfig = errors.New("config error")

// Config is the optional YAML configuration of svgc.  Unset fields keep
// their defaults.
type Config struct {
	Format *format.Format `yaml:"format"`

	// IgnoredElements and IgnoredAttributes replace the default lists
	// when set.
	IgnoredElements   []string `yaml:"ignoredElements"`
	IgnoredAttributes []string `yaml:"ignoredAttributes"`
	// Renames are added to the default rename table.
	Renames map[string]string `yaml:"renames"`

	// TemplateText replaces the default component template.
	TemplateText string `yaml:"template"`
}

func Load(fsys afero.Fs, path string) (*Config, error) {
	d, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
	}
	return Parse(d)
}

func Parse(d []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalWithOptions(d, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for from, to := range c.Renames {
		if from == "" || to == "" {
			return fmt.Errorf("%w: empty rename %q -> %q", ErrConfig, from, to)
		}
	}
	if c.TemplateText != "" {
		if _, err := emit.NewTemplate(c.TemplateText); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	return nil
}

func (c *Config) Tables() normalize.Tables {
	t := normalize.DefaultTables()
	if c == nil {
		return t
	}
	if c.IgnoredElements != nil {
		t.IgnoredElements = c.IgnoredElements
	}
	if c.IgnoredAttributes != nil {
		t.IgnoredAttributes = c.IgnoredAttributes
	}
	maps.Copy(t.Renames, c.Renames)
	return t
}

func (c *Config) Template() *emit.Template {
	if c == nil || c.TemplateText == "" {
		return emit.DefaultTemplate
	}
	return emit.MustTemplate(c.TemplateText)
}
