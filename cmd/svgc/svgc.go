package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/svgc/config"
	"github.com/signadot/svgc/convert"
	"github.com/signadot/svgc/logger"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func svgcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	create, dir, args := splitCreate(args)
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if create {
		cfg.Create = true
		if dir != "" {
			cfg.Dir = dir
		}
	}
	if err := cfg.checkSelect(); err != nil {
		return err
	}
	if len(args) == 0 {
		cfg.Main.Usage(cc, fmt.Errorf("%w: no input files", cli.ErrUsage))
		return nil
	}

	fsys := afero.NewOsFs()
	var fileCfg *config.Config
	if cfg.Config != "" {
		fileCfg, err = config.Load(fsys, cfg.Config)
		if err != nil {
			return err
		}
	}
	log := logger.NewLogger(cfg.logConfig())
	ctx := logger.ContextWithLogger(context.Background(), log)

	c := convert.New(fsys, cc.Out, fileCfg.Tables(), cfg.options(cc, fileCfg))
	c.Template = fileCfg.Template()
	res, err := c.Run(ctx, args)
	if err != nil {
		log.Error("conversion failed", "converted", len(res), "err", err)
		return cli.ExitCodeErr(1)
	}
	log.Debug("converted", "files", len(res))
	return nil
}

// splitCreate pulls -c and -create out of args.  The flag takes an
// optional directory: the following argument is the directory unless it
// is another flag or an svg file.
func splitCreate(args []string) (create bool, dir string, rest []string) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		switch strings.TrimLeft(a, "-") {
		case "c", "create":
			if !strings.HasPrefix(a, "-") {
				rest = append(rest, a)
				continue
			}
			create = true
			if i+1 < len(args) && isDirArg(args[i+1]) {
				dir = args[i+1]
				i++
			}
		default:
			rest = append(rest, a)
		}
	}
	return create, dir, rest
}

func isDirArg(a string) bool {
	return !strings.HasPrefix(a, "-") && !strings.HasSuffix(a, ".svg")
}
