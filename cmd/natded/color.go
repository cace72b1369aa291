package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// colorEnabled decides whether output to w should be colorized: an
// explicit -color flag wins, an explicit "no color was requested" wins
// the other way, and otherwise it auto-detects a terminal the same way
// cmd/o's encOpts does for its own -color flag.
func colorEnabled(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if optSet(cfg.Main, "color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

var (
	okColor   = color.New(color.FgGreen).SprintfFunc()
	failColor = color.New(color.FgRed).SprintfFunc()
)
