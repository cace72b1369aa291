package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/arcflume/natded/sexpr"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	stop, err := prepare(cfg.MainConfig)
	if err != nil {
		return err
	}
	defer stop()
	if len(args) != 1 {
		return fmt.Errorf("%w: render requires exactly one formula file", cli.ErrUsage)
	}
	data, err := readArg(args[0])
	if err != nil {
		return err
	}
	f, err := sexpr.ParseFormula(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, sexpr.RenderFormula(f))
	return nil
}
