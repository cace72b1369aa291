package term

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Term
		expected bool
	}{
		{"same constant", NewConst("a"), NewConst("a"), true},
		{"different constant", NewConst("a"), NewConst("b"), false},
		{"same function", NewFunc("f", NewConst("a")), NewFunc("f", NewConst("a")), true},
		{"different arity", NewFunc("f", NewConst("a")), NewFunc("f", NewConst("a"), NewConst("b")), false},
		{"different args", NewFunc("f", NewConst("a")), NewFunc("f", NewConst("b")), false},
		{"nested", NewFunc("f", NewFunc("g", NewConst("a"))), NewFunc("f", NewFunc("g", NewConst("a"))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
			if got := tt.b.Equal(tt.a); got != tt.expected {
				t.Errorf("Equal() symmetric = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCopyIndependent(t *testing.T) {
	orig := NewFunc("f", NewConst("a"), NewFunc("g", NewConst("b")))
	cp := orig.Copy()
	if !orig.Equal(cp) {
		t.Fatalf("copy not structurally equal to original")
	}
	cp.Args[0].Name = "z"
	if orig.Args[0].Name == "z" {
		t.Fatalf("mutating copy affected original: shared storage")
	}
}

func TestSubconstantsAndFunctions(t *testing.T) {
	// f(a, g(b), c)
	f := NewFunc("f", NewConst("a"), NewFunc("g", NewConst("b")), NewConst("c"))

	sc := f.Subconstants()
	if len(sc) != 2 || sc[0].Name != "a" || sc[1].Name != "c" {
		t.Errorf("Subconstants() = %v, want [a c]", sc)
	}

	asc := f.AllSubconstants()
	if len(asc) != 3 || asc[0].Name != "a" || asc[1].Name != "b" || asc[2].Name != "c" {
		t.Errorf("AllSubconstants() = %v, want [a b c]", asc)
	}

	af := f.AllFunctions()
	if len(af) != 2 || af[0] != f || af[1].Name != "g" {
		t.Errorf("AllFunctions() wrong: %v", af)
	}

	if got := NewConst("a").AllConstants(); len(got) != 1 || got[0].Name != "a" {
		t.Errorf("AllConstants() on a constant = %v, want [a]", got)
	}
}

func TestDepth(t *testing.T) {
	tests := []struct {
		name string
		t    *Term
		want int
	}{
		{"leaf", NewConst("a"), 1},
		{"one level", NewFunc("f", NewConst("a")), 2},
		{"two levels", NewFunc("f", NewFunc("g", NewConst("a"))), 3},
		{"max over args", NewFunc("f", NewConst("a"), NewFunc("g", NewConst("b"))), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.Depth(); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIdentifiers(t *testing.T) {
	tr := NewFunc("f", NewConst("a"), NewFunc("g", NewConst("a"), NewConst("b")))
	ids := tr.Identifiers()
	want := []string{"f", "a", "g", "b"}
	for _, w := range want {
		if _, ok := ids[w]; !ok {
			t.Errorf("Identifiers() missing %q, got %v", w, ids)
		}
	}
	if len(ids) != len(want) {
		t.Errorf("Identifiers() = %v, want exactly %v", ids, want)
	}
}
