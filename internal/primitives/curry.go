// Package primitives implements §4.5: the KLambda primitive library,
// registered into a runtime.Context's function table by Register.
package primitives

import "github.com/klambda-lang/klambda/internal/values"

// curried wraps a fixed-arity Go function as the nested chain of
// Partial closures (or a single Thunk when arity is 0) the
// application protocol of §4.4 expects every function-table entry to
// be, regardless of whether it was compiled from KLambda source or
// implemented natively here.
func curried(name string, arity int, fn func(args []values.Value) (values.Value, error)) values.Value {
	if arity == 0 {
		return values.NewThunk(func() (values.Value, error) { return fn(nil) })
	}
	var build func(idx int, collected []values.Value) values.Value
	build = func(idx int, collected []values.Value) values.Value {
		isLast := idx == arity-1
		return values.NewPartial(name, func(arg values.Value) (values.Value, error) {
			newCollected := append(append([]values.Value{}, collected...), arg)
			if isLast {
				return fn(newCollected)
			}
			return build(idx+1, newCollected), nil
		})
	}
	return build(0, nil)
}
