package primitives

import (
	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// registerCons wires `cons`/`hd`/`tl`/`cons?`/`=`. The flat sequence
// values.ConsSeq stores is already logical head-first (see
// values.ConsSeq's doc comment), so hd/tl need no reversal.
func registerCons(_ *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("cons")] = curried("cons", 2, func(args []values.Value) (values.Value, error) {
		if !args[1].IsCons() {
			return values.Value{}, errs.New(errs.Type, "cons: second argument must be a cons")
		}
		elems := append([]values.Value{args[0]}, args[1].AsCons()...)
		return values.ConsSeq(elems...), nil
	})

	fns[reader.SanitizeKeyword("hd")] = curried("hd", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsCons() {
			return values.Value{}, errs.New(errs.Type, "hd: argument must be a cons")
		}
		elems := args[0].AsCons()
		if len(elems) == 0 {
			return values.Nil(), nil
		}
		return elems[0], nil
	})

	fns[reader.SanitizeKeyword("tl")] = curried("tl", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsCons() {
			return values.Value{}, errs.New(errs.Type, "tl: argument must be a cons")
		}
		elems := args[0].AsCons()
		if len(elems) == 0 {
			return values.ConsSeq(), nil
		}
		return values.ConsSeq(elems[1:]...), nil
	})

	fns[reader.SanitizeKeyword("cons?")] = curried("cons?", 1, func(args []values.Value) (values.Value, error) {
		return values.Bool(args[0].IsCons()), nil
	})

	fns[reader.SanitizeKeyword("=")] = curried("=", 2, func(args []values.Value) (values.Value, error) {
		return values.Bool(values.Equal(args[0], args[1])), nil
	})
}
