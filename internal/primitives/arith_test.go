package primitives

import (
	"testing"

	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

func lookup(t *testing.T, ctx *runtime.Context, name string) values.Value {
	t.Helper()
	v, err := ctx.Functions.Lookup(reader.SanitizeKeyword(name))
	if err != nil {
		t.Fatalf("Lookup(%q): %s", name, err)
	}
	return v
}

func apply(t *testing.T, fn values.Value, args ...values.Value) values.Value {
	t.Helper()
	v, err := values.Apply(fn, args)
	if err != nil {
		t.Fatalf("Apply: %s", err)
	}
	return v
}

func newArithCtx(t *testing.T) *runtime.Context {
	t.Helper()
	ctx := runtime.New()
	Register(ctx)
	return ctx
}

func TestArithAddInts(t *testing.T) {
	ctx := newArithCtx(t)
	v := apply(t, lookup(t, ctx, "+"), values.Int(2), values.Int(3))
	if !v.IsInt() || v.AsInt() != 5 {
		t.Errorf("2+3 = %#v, want int 5", v)
	}
}

func TestArithMixedIntFloatPromotesToFloat(t *testing.T) {
	ctx := newArithCtx(t)
	v := apply(t, lookup(t, ctx, "+"), values.Int(2), values.Float(0.5))
	if !v.IsFloat() || v.AsFloat() != 2.5 {
		t.Errorf("2+0.5 = %#v, want float 2.5", v)
	}
}

func TestArithAddOverflowIsError(t *testing.T) {
	ctx := newArithCtx(t)
	fn := lookup(t, ctx, "+")
	_, err := values.Apply(fn, []values.Value{values.Int(9223372036854775807), values.Int(1)})
	if err == nil {
		t.Errorf("expected an overflow error for maxint64 + 1")
	}
}

func TestArithDivisionByZeroIsError(t *testing.T) {
	ctx := newArithCtx(t)
	fn := lookup(t, ctx, "/")
	_, err := values.Apply(fn, []values.Value{values.Int(1), values.Int(0)})
	if err == nil {
		t.Errorf("expected a division-by-zero error")
	}
}

func TestArithComparisons(t *testing.T) {
	ctx := newArithCtx(t)
	cases := []struct {
		op   string
		a, b int64
		want bool
	}{
		{"<", 1, 2, true},
		{"<", 2, 1, false},
		{">", 2, 1, true},
		{"<=", 2, 2, true},
		{">=", 1, 2, false},
	}
	for _, c := range cases {
		v := apply(t, lookup(t, ctx, c.op), values.Int(c.a), values.Int(c.b))
		if values.IsTrue(v) != c.want {
			t.Errorf("%d %s %d = %v, want %v", c.a, c.op, c.b, values.IsTrue(v), c.want)
		}
	}
}
