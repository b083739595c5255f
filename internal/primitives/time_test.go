package primitives

import (
	"testing"

	"github.com/klambda-lang/klambda/internal/values"
)

func TestGetTimeRunIsNonNegative(t *testing.T) {
	ctx := newArithCtx(t)
	v := apply(t, lookup(t, ctx, "get-time"), values.Sym(kwRun))
	if !v.IsFloat() || v.AsFloat() < 0 {
		t.Errorf("get-time 'run = %#v, want a non-negative float", v)
	}
}

func TestGetTimeRealIsPositive(t *testing.T) {
	ctx := newArithCtx(t)
	v := apply(t, lookup(t, ctx, "get-time"), values.Sym(kwReal))
	if !v.IsFloat() || v.AsFloat() <= 0 {
		t.Errorf("get-time 'real = %#v, want a positive wall-clock float", v)
	}
}

func TestGetTimeRejectsUnknownSymbol(t *testing.T) {
	ctx := newArithCtx(t)
	_, err := values.Apply(lookup(t, ctx, "get-time"), []values.Value{values.Sym("bogus")})
	if err == nil {
		t.Errorf("expected an error for a get-time argument that is neither 'run nor 'real")
	}
}
