package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "c",
			Aliases:     []string{"create"},
			Description: "write components to files, in dir if given (default .)",
			Type:        cli.NamedFuncOpt(cfg.createOpt, "[dir]"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "component format: tsx/t, jsx/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		})

	return cli.NewCommandAt(&cfg.Main, "svgc").
		WithSynopsis("svgc [-c [dir]] [-o] [opts] files.svg...").
		WithDescription("svgc converts svg files to react components.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return svgcMain(cfg, cc, args)
		})
}
