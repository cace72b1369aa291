package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/arcflume/natded/graph"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	stop, err := prepare(cfg.MainConfig)
	if err != nil {
		return err
	}
	defer stop()
	if len(args) != 1 {
		return fmt.Errorf("%w: check requires exactly one graph file", cli.ErrUsage)
	}
	data, err := readArg(args[0])
	if err != nil {
		return err
	}
	g, err := graph.Load(data)
	if err != nil {
		return err
	}
	if err := g.VerifyAll(); err != nil {
		if colorEnabled(cfg.MainConfig, cc.Out) {
			return fmt.Errorf("%s", failColor("%v", err))
		}
		return err
	}
	msg := fmt.Sprintf("ok: %d nodes verified", len(g.Nodes))
	if colorEnabled(cfg.MainConfig, cc.Out) {
		msg = okColor("%s", msg)
	}
	fmt.Fprintln(cc.Out, msg)
	return nil
}
