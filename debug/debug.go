// Package debug gates verbose tracing behind environment variables, so a
// user can turn on diagnostics for one subsystem (the permutation search,
// bound-variable resolution, graph loading) without recompiling.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Permute  bool
	Bind     bool
	Verify   bool
	Load     bool
	Instance bool
}

var d *debug

func init() {
	d = &debug{}
	d.Permute = boolEnv("NATDED_DEBUG_PERMUTE")
	d.Bind = boolEnv("NATDED_DEBUG_BIND")
	d.Verify = boolEnv("NATDED_DEBUG_VERIFY")
	d.Load = boolEnv("NATDED_DEBUG_LOAD")
	d.Instance = boolEnv("NATDED_DEBUG_INSTANCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Permute reports whether the permutation search in verify.Verify should
// trace each premise ordering it tries.
func Permute() bool {
	return d.Permute
}

// Bind reports whether formula's bound-variable queries should trace
// quantifier-stack shadowing decisions.
func Bind() bool {
	return d.Bind
}

// Verify reports whether individual rule pre-checks should trace their
// pass/fail outcome.
func Verify() bool {
	return d.Verify
}

// Load reports whether graph.Load should trace node/link construction.
func Load() bool {
	return d.Load
}

// Instance reports whether the query package should trace expr-lang
// compilation and evaluation, in the spirit of the teacher's schema
// instantiation tracing.
func Instance() bool {
	return d.Instance
}
