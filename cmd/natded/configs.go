package main

import "github.com/scott-cotton/cli"

// MainConfig holds state shared by every subcommand, the way cmd/o's
// subcommands all embed *MainConfig for its i/o and color flags.
type MainConfig struct {
	Color     bool   `cli:"name=color desc='colorize output (auto-detected for terminals)'"`
	DiagAgent bool   `cli:"name=diag-agent desc='start a gops diagnostics agent'"`
	Config    string `cli:"name=config desc='YAML file of default flag values'"`

	Main *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type RenderConfig struct {
	*MainConfig
	Render *cli.Command
}

type TPTPConfig struct {
	*MainConfig
	Name string `cli:"name=name desc='TPTP annotated-formula name'"`
	Type string `cli:"name=type desc='TPTP formula role (axiom, conjecture, ...)'"`
	TPTP *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}
