package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the subset of MainConfig that can be defaulted from a
// -config file, the way cmd/o defaults its encoding flags before checking
// for an explicit override on the command line.
type fileConfig struct {
	Color     *bool `yaml:"color"`
	DiagAgent *bool `yaml:"diag_agent"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// applyFileConfig fills in cfg fields the command line left unset, never
// overriding a flag the user actually passed.
func applyFileConfig(cfg *MainConfig, fc *fileConfig) {
	if fc == nil {
		return
	}
	if fc.Color != nil && !optSet(cfg.Main, "color") {
		cfg.Color = *fc.Color
	}
	if fc.DiagAgent != nil && !optSet(cfg.Main, "diag-agent") {
		cfg.DiagAgent = *fc.DiagAgent
	}
}
