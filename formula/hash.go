package formula

import (
	"hash/maphash"

	"github.com/arcflume/natded/term"
)

// Hash returns a 64-bit structural hash of f. Equal formulas (per Equal)
// always hash equal; the converse need not hold, so Hash is a fast-path
// filter ahead of a full Equal call, not a replacement for one.
func Hash(f Formula) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeHash(&h, f)
	return h.Sum64()
}

// hashSeed is shared by every Hash call so that results are comparable
// within one process.
var hashSeed = maphash.MakeSeed()

func writeHash(h *maphash.Hash, f Formula) {
	h.WriteByte(byte(f.Tag()))
	switch v := f.(type) {
	case *Pred:
		h.WriteString(v.Name)
		for _, a := range v.Args {
			writeTermHash(h, a)
		}
	case *Not:
		writeHash(h, v.Arg)
	case *And:
		writeHash(h, v.Left)
		writeHash(h, v.Right)
	case *Or:
		writeHash(h, v.Left)
		writeHash(h, v.Right)
	case *If:
		writeHash(h, v.Left)
		writeHash(h, v.Right)
	case *Iff:
		writeHash(h, v.Left)
		writeHash(h, v.Right)
	case *Forall:
		h.WriteString(v.Var)
		writeHash(h, v.Body)
	case *Exists:
		h.WriteString(v.Var)
		writeHash(h, v.Body)
	}
}

func writeTermHash(h *maphash.Hash, t *term.Term) {
	h.WriteString(t.Name)
	for _, a := range t.Args {
		writeTermHash(h, a)
	}
}
