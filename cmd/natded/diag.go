package main

import "github.com/google/gops/agent"

// maybeStartDiagAgent starts a gops diagnostics agent when -diag-agent is
// set, so an operator can attach gops to a natded process that's working
// through a large graph.
func maybeStartDiagAgent(cfg *MainConfig) (stop func(), err error) {
	if !cfg.DiagAgent {
		return func() {}, nil
	}
	if err := agent.Listen(agent.Options{}); err != nil {
		return nil, err
	}
	return agent.Close, nil
}

// prepare applies a -config file's defaults and starts the diagnostics
// agent if requested. Every subcommand calls this right after parsing its
// own flags so -config and -diag-agent work uniformly across the tree.
func prepare(cfg *MainConfig) (stop func(), err error) {
	if cfg.Config != "" {
		fc, err := loadFileConfig(cfg.Config)
		if err != nil {
			return nil, err
		}
		applyFileConfig(cfg, fc)
	}
	return maybeStartDiagAgent(cfg)
}
