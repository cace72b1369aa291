package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// LogAny writes v to stderr as JSON, falling back to %v if it cannot be
// marshaled.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

// Logf writes a trace line to stderr. Any argument with a String() method
// (formula.Formula's S-expression renderings are typically passed this
// way, already converted by the caller) is left to fmt's normal verb
// handling; Logf exists as a single choke point so debug output has one
// place to change format.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
