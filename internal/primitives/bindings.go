package primitives

import (
	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

func registerBindings(ctx *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("set")] = curried("set", 2, func(args []values.Value) (values.Value, error) {
		if !args[0].IsSymbol() {
			return values.Value{}, errs.New(errs.Type, "set: first argument must be a symbol")
		}
		ctx.Symbols.Set(args[0].AsSymbol(), args[1])
		return values.Nil(), nil
	})

	fns[reader.SanitizeKeyword("value")] = curried("value", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsSymbol() {
			return values.Value{}, errs.New(errs.Type, "value: argument must be a symbol")
		}
		return ctx.Symbols.Get(args[0].AsSymbol())
	})
}
