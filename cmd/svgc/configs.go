package main

import (
	"fmt"
	"os"

	"github.com/signadot/svgc/config"
	"github.com/signadot/svgc/convert"
	"github.com/signadot/svgc/format"
	"github.com/signadot/svgc/ir"
	"github.com/signadot/svgc/logger"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Output  bool   `cli:"name=o aliases=output desc='log components even with -c'"`
	Color   bool   `cli:"name=color desc='color logged markup'"`
	Diff    bool   `cli:"name=diff desc='show diffs against components which already exist'"`
	Config  string `cli:"name=config desc='yaml configuration file'"`
	Verbose bool   `cli:"name=v desc='debug logging'"`
	Select  string `cli:"name=select desc='convert only the element at this path, like $.svg.defs.symbol[0]'"`

	Create bool
	Dir    string
	Format *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = &f
		return f, nil
	})
}

// createOpt handles -c=dir and -create=dir.  A bare -c is rewritten by
// splitCreate before the options are parsed.
func (cfg *MainConfig) createOpt(_ *cli.Context, v string) (any, error) {
	cfg.Create = true
	cfg.Dir = v
	return v, nil
}

func (cfg *MainConfig) checkSelect() error {
	if cfg.Select == "" {
		return nil
	}
	if _, err := ir.ParsePath(cfg.Select); err != nil {
		return fmt.Errorf("%w: -select: %w", cli.ErrUsage, err)
	}
	return nil
}

func (cfg *MainConfig) logConfig() *logger.Config {
	lc := logger.DefaultConfig()
	if cfg.Verbose {
		lc.Level = logger.DebugLevel
	}
	return lc
}

func (cfg *MainConfig) options(cc *cli.Context, fileCfg *config.Config) convert.Options {
	opts := convert.Options{
		Create: cfg.Create,
		Dir:    cfg.Dir,
		Output: cfg.Output,
		Diff:   cfg.Diff,
		Color:  cfg.colors(cc),
		Select: cfg.Select,
	}
	switch {
	case cfg.Format != nil:
		opts.Format = *cfg.Format
	case fileCfg != nil && fileCfg.Format != nil:
		opts.Format = *fileCfg.Format
	}
	return opts
}

func (cfg *MainConfig) colors(cc *cli.Context) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
