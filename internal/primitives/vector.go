package primitives

import (
	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// registerVector wires `absvector`/`address->`/`<-address`/
// `absvector?` (§4.5), keeping the back-index table (§3) in step with
// every in-place store.
func registerVector(ctx *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("absvector")] = curried("absvector", 0, func([]values.Value) (values.Value, error) {
		return values.VectorVal(ctx.NewVector()), nil
	})

	fns[reader.SanitizeKeyword("address->")] = curried("address->", 3, func(args []values.Value) (values.Value, error) {
		if !args[0].IsVector() {
			return values.Value{}, errs.New(errs.Type, "address->: first argument must be a vector")
		}
		if !args[1].IsInt() {
			return values.Value{}, errs.New(errs.Type, "address->: index must be an integer")
		}
		vec := args[0].AsVector()
		idx := int(args[1].AsInt())
		isComposite, ok := vec.Set(idx, args[2])
		if !ok {
			return values.Value{}, errs.New(errs.Domain, "address->: index %d out of range", idx)
		}
		ctx.BackIndex.Record(vec.ID, idx, isComposite)
		return args[0], nil
	})

	fns[reader.SanitizeKeyword("<-address")] = curried("<-address", 2, func(args []values.Value) (values.Value, error) {
		if !args[0].IsVector() {
			return values.Value{}, errs.New(errs.Type, "<-address: first argument must be a vector")
		}
		if !args[1].IsInt() {
			return values.Value{}, errs.New(errs.Type, "<-address: index must be an integer")
		}
		val, ok := args[0].AsVector().Get(int(args[1].AsInt()))
		if !ok {
			return values.Nil(), nil
		}
		return val, nil
	})

	fns[reader.SanitizeKeyword("absvector?")] = curried("absvector?", 1, func(args []values.Value) (values.Value, error) {
		return values.Bool(args[0].IsVector()), nil
	})
}
