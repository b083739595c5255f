package primitives

import (
	"math/big"

	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

func numericPair(args []values.Value, op string) (values.Value, values.Value, error) {
	a, b := args[0], args[1]
	if (!a.IsInt() && !a.IsFloat()) || (!b.IsInt() && !b.IsFloat()) {
		return values.Value{}, values.Value{}, errs.New(errs.Type, "%s: expected numeric arguments", op)
	}
	return a, b, nil
}

// checkedInt64 funnels int64 arithmetic through math/big so overflow
// is detected rather than silently wrapping (§3: "Overflow is an
// error, not a wrap").
func checkedInt64(op string, a, b int64, f func(x, y *big.Int) *big.Int) (values.Value, error) {
	r := f(big.NewInt(a), big.NewInt(b))
	if !r.IsInt64() {
		return values.Value{}, errs.New(errs.Domain, "%s: integer overflow", op)
	}
	return values.Int(r.Int64()), nil
}

func registerArith(_ *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("+")] = curried("+", 2, func(args []values.Value) (values.Value, error) {
		a, b, err := numericPair(args, "+")
		if err != nil {
			return values.Value{}, err
		}
		if a.IsInt() && b.IsInt() {
			return checkedInt64("+", a.AsInt(), b.AsInt(), (*big.Int).Add)
		}
		return values.Float(asFloat(a) + asFloat(b)), nil
	})

	fns[reader.SanitizeKeyword("-")] = curried("-", 2, func(args []values.Value) (values.Value, error) {
		a, b, err := numericPair(args, "-")
		if err != nil {
			return values.Value{}, err
		}
		if a.IsInt() && b.IsInt() {
			return checkedInt64("-", a.AsInt(), b.AsInt(), (*big.Int).Sub)
		}
		return values.Float(asFloat(a) - asFloat(b)), nil
	})

	fns[reader.SanitizeKeyword("*")] = curried("*", 2, func(args []values.Value) (values.Value, error) {
		a, b, err := numericPair(args, "*")
		if err != nil {
			return values.Value{}, err
		}
		if a.IsInt() && b.IsInt() {
			return checkedInt64("*", a.AsInt(), b.AsInt(), (*big.Int).Mul)
		}
		return values.Float(asFloat(a) * asFloat(b)), nil
	})

	fns[reader.SanitizeKeyword("/")] = curried("/", 2, func(args []values.Value) (values.Value, error) {
		a, b, err := numericPair(args, "/")
		if err != nil {
			return values.Value{}, err
		}
		if isZero(b) {
			return values.Value{}, errs.New(errs.Domain, "/: division by zero")
		}
		if a.IsInt() && b.IsInt() {
			if a.AsInt() == minInt64 && b.AsInt() == -1 {
				return values.Value{}, errs.New(errs.Domain, "/: integer overflow")
			}
			return values.Int(a.AsInt() / b.AsInt()), nil
		}
		return values.Float(asFloat(a) / asFloat(b)), nil
	})

	fns[reader.SanitizeKeyword("<")] = comparisonOp("<", func(c int) bool { return c < 0 })
	fns[reader.SanitizeKeyword(">")] = comparisonOp(">", func(c int) bool { return c > 0 })
	fns[reader.SanitizeKeyword("<=")] = comparisonOp("<=", func(c int) bool { return c <= 0 })
	fns[reader.SanitizeKeyword(">=")] = comparisonOp(">=", func(c int) bool { return c >= 0 })
}

const minInt64 = -9223372036854775808

func asFloat(v values.Value) float64 {
	if v.IsInt() {
		return float64(v.AsInt())
	}
	return v.AsFloat()
}

func isZero(v values.Value) bool {
	if v.IsInt() {
		return v.AsInt() == 0
	}
	return v.AsFloat() == 0
}

func comparisonOp(name string, test func(int) bool) values.Value {
	return curried(name, 2, func(args []values.Value) (values.Value, error) {
		a, b, err := numericPair(args, name)
		if err != nil {
			return values.Value{}, err
		}
		var cmp int
		if a.IsInt() && b.IsInt() {
			switch {
			case a.AsInt() < b.AsInt():
				cmp = -1
			case a.AsInt() > b.AsInt():
				cmp = 1
			}
		} else {
			af, bf := asFloat(a), asFloat(b)
			switch {
			case af < bf:
				cmp = -1
			case af > bf:
				cmp = 1
			}
		}
		return values.Bool(test(cmp)), nil
	})
}
