package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/arcflume/natded/graph"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	stop, err := prepare(cfg.MainConfig)
	if err != nil {
		return err
	}
	defer stop()
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a graph file and a JSON Patch file", cli.ErrUsage)
	}
	original, err := readArg(args[0])
	if err != nil {
		return err
	}
	patchDoc, err := readArg(args[1])
	if err != nil {
		return err
	}
	out, err := graph.ApplyPatch(original, patchDoc)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, string(out))
	return nil
}
