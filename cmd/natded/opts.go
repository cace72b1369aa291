package main

import "github.com/scott-cotton/cli"

// optSet reports whether name was given an explicit value on cmd's command
// line, mirroring the cfg.Main.Opts scan cmd/o's parseOpts/encOpts use to
// tell "flag absent" apart from "flag explicitly set to its zero value".
func optSet(cmd *cli.Command, name string) bool {
	for _, opt := range cmd.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}
