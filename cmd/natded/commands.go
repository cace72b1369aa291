package main

import "github.com/scott-cotton/cli"

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "natded").
		WithSynopsis("natded <command> [args]").
		WithDescription("natded checks natural-deduction proofs node by node.").
		WithOpts(opts...).
		WithSubs(
			CheckCommand(cfg),
			RenderCommand(cfg),
			TPTPCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check <graph.json>").
		WithDescription("load a proof graph and verify every node; exits non-zero on the first failure").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render <formula-file|->").
		WithDescription("parse an S-expression formula and re-render it").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func TPTPCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TPTPConfig{MainConfig: mainCfg, Name: "n", Type: "axiom"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.TPTP, "tptp").
		WithSynopsis("tptp [-name n] [-type axiom] <formula-file|->").
		WithDescription("render a first-order formula as TPTP fof syntax").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return renderTPTP(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <graph.json> <expr>").
		WithDescription("evaluate a read-only expr-lang expression against a loaded graph").
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch <graph.json> <patch.json>").
		WithDescription("apply an RFC 6902 JSON Patch to a graph document and print the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
