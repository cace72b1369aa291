package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/arcflume/natded/graph"
	"github.com/arcflume/natded/query"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	stop, err := prepare(cfg.MainConfig)
	if err != nil {
		return err
	}
	defer stop()
	if len(args) != 2 {
		return fmt.Errorf("%w: query requires a graph file and an expression", cli.ErrUsage)
	}
	data, err := readArg(args[0])
	if err != nil {
		return err
	}
	g, err := graph.Load(data)
	if err != nil {
		return err
	}
	result, err := query.Run(g, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, result)
	return nil
}
