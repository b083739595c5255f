package primitives

import (
	"testing"

	"github.com/klambda-lang/klambda/internal/values"
)

func TestConsHdTl(t *testing.T) {
	ctx := newArithCtx(t)
	list := values.ConsSeq(values.Int(1), values.Int(2), values.Int(3))
	cons := apply(t, lookup(t, ctx, "cons"), values.Int(0), list)
	if cons.AsCons()[0].AsInt() != 0 {
		t.Errorf("cons prepended wrong head")
	}

	hd := apply(t, lookup(t, ctx, "hd"), list)
	if !hd.IsInt() || hd.AsInt() != 1 {
		t.Errorf("hd(list) = %#v, want int 1", hd)
	}

	tl := apply(t, lookup(t, ctx, "tl"), list)
	if len(tl.AsCons()) != 2 || tl.AsCons()[0].AsInt() != 2 {
		t.Errorf("tl(list) = %#v, want (2 3)", tl)
	}
}

func TestConsHdOfNonConsIsError(t *testing.T) {
	ctx := newArithCtx(t)
	_, err := values.Apply(lookup(t, ctx, "hd"), []values.Value{values.Int(1)})
	if err == nil {
		t.Errorf("expected a type error applying hd to a non-cons")
	}
}

func TestConsPredicate(t *testing.T) {
	ctx := newArithCtx(t)
	v := apply(t, lookup(t, ctx, "cons?"), values.ConsSeq(values.Int(1)))
	if !values.IsTrue(v) {
		t.Errorf("cons? of a cons should be true")
	}
	v = apply(t, lookup(t, ctx, "cons?"), values.Int(1))
	if values.IsTrue(v) {
		t.Errorf("cons? of an int should be false")
	}
}

func TestConsEqualityIsStructural(t *testing.T) {
	ctx := newArithCtx(t)
	a := values.ConsSeq(values.Int(1), values.Int(2))
	b := values.ConsSeq(values.Int(1), values.Int(2))
	v := apply(t, lookup(t, ctx, "="), a, b)
	if !values.IsTrue(v) {
		t.Errorf("structurally equal cons lists should be =")
	}
}
