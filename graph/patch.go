package graph

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/arcflume/natded/checkerr"
)

// ApplyPatch applies an RFC 6902 JSON Patch document to a graph's raw JSON
// (the same wire shape Load accepts) and returns the patched bytes,
// mirroring the decode-apply-reparse shape of the teacher's json-patch
// merge operator: here there is no intermediate document tree to marshal
// back out of, so the patch runs directly against the original bytes.
func ApplyPatch(original, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: graph: decoding patch: %v", checkerr.ErrSyntax, err)
	}
	out, err := ops.Apply(original)
	if err != nil {
		return nil, fmt.Errorf("%w: graph: applying patch: %v", checkerr.ErrSyntax, err)
	}
	return out, nil
}
