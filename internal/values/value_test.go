package values

import "testing"

func TestEqualAtoms(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal ints", Int(3), Int(3), true},
		{"different ints", Int(3), Int(4), false},
		{"equal strings", Str("hi"), Str("hi"), true},
		{"different tags", Int(3), Str("3"), false},
		{"equal nils", Nil(), Nil(), true},
		{"equal symbols", Sym("x"), Sym("x"), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.a, c.b); got != c.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestEqualConsIsStructural(t *testing.T) {
	a := ConsSeq(Int(1), Int(2), Int(3))
	b := ConsSeq(Int(1), Int(2), Int(3))
	if !Equal(a, b) {
		t.Errorf("expected structurally equal cons lists to be Equal")
	}
	c := ConsSeq(Int(1), Int(2))
	if Equal(a, c) {
		t.Errorf("expected differently-lengthed cons lists to not be Equal")
	}
}

func TestEqualVectorsByIdentityFirst(t *testing.T) {
	v1 := NewVectorRecord(1)
	v2 := NewVectorRecord(2)
	if !Equal(VectorVal(v1), VectorVal(v1)) {
		t.Errorf("a vector must equal itself")
	}
	if Equal(VectorVal(v1), VectorVal(v2)) {
		t.Errorf("two empty vectors with distinct identities must not be Equal (absvector) != (absvector)")
	}
	v1.Set(1, Int(1))
	v2.Set(1, Int(1))
	if !Equal(VectorVal(v1), VectorVal(v2)) {
		t.Errorf("distinct-identity vectors with equal contents must still be structurally Equal")
	}
	v2.Set(1, Int(2))
	if Equal(VectorVal(v1), VectorVal(v2)) {
		t.Errorf("vectors with different contents must not be Equal")
	}
}

func TestThunksAreNeverEqual(t *testing.T) {
	th := NewThunk(func() (Value, error) { return Int(1), nil })
	if Equal(th, th) {
		t.Errorf("a thunk must never be Equal, even to itself")
	}
}

func TestApplyUnwindsThunksAndDones(t *testing.T) {
	done := NewDone(Int(42))
	v, err := Apply(done, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !v.IsInt() || v.AsInt() != 42 {
		t.Errorf("Apply(done, nil) = %#v, want int 42", v)
	}

	thunk := NewThunk(func() (Value, error) { return Str("lazy"), nil })
	v, err = Force(thunk)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !v.IsString() || v.AsString() != "lazy" {
		t.Errorf("Force(thunk) = %#v, want string \"lazy\"", v)
	}
}

func TestApplyCurriedChain(t *testing.T) {
	// A curried two-argument adder: add(a)(b) = a + b.
	add := NewPartial("add", func(a Value) (Value, error) {
		return NewPartial("add", func(b Value) (Value, error) {
			return NewDone(Int(a.AsInt() + b.AsInt())), nil
		}), nil
	})
	v, err := Apply(add, []Value{Int(2), Int(3)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !v.IsInt() || v.AsInt() != 5 {
		t.Errorf("Apply(add, [2, 3]) = %#v, want int 5", v)
	}
}

func TestApplyPartialSaturationLeavesPartial(t *testing.T) {
	add := NewPartial("add", func(a Value) (Value, error) {
		return NewPartial("add", func(b Value) (Value, error) {
			return NewDone(Int(a.AsInt() + b.AsInt())), nil
		}), nil
	})
	v, err := Apply(add, []Value{Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !v.IsClosure() || v.AsClosure().Kind != KindPartial {
		t.Errorf("expected a still-partial closure after one of two arguments, got %#v", v)
	}
}

func TestPrintRendersAtomsAndCons(t *testing.T) {
	unrename := func(s string) string { return s }
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"int", Int(7), "7"},
		{"string", Str("hi"), "hi"},
		{"symbol", Sym("x"), "x"},
		{"nil", Nil(), ""},
		{"cons", ConsSeq(Int(1), Int(2)), "(1 2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Print(c.v, unrename); got != c.want {
				t.Errorf("Print(%v) = %q, want %q", c.v, got, c.want)
			}
		})
	}
}
