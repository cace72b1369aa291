// Package diffmsg renders a human-readable, character-level diff between two
// S-expression strings for use in verification diagnostics.
package diffmsg

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Format returns want and got quoted, followed by a character diff of the
// two in parentheses (deletions as [-...-], insertions as {+...+}), e.g.:
//
//	expected "(and A B)", got "(and A C)" ((and A [-B-]{+C+}))
//
// If want and got are identical it returns want unchanged.
func Format(want, got string) string {
	if want == got {
		return want
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(&b, "[-%s-]", d.Text)
		case diffpatch.DiffInsert:
			fmt.Fprintf(&b, "{+%s+}", d.Text)
		}
	}
	return fmt.Sprintf("expected %q, got %q (%s)", want, got, b.String())
}
