package primitives

import (
	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// registerString wires `pos`/`tlstr`/`cn`/`str`/`string?`/`number?`/
// `n->string`/`string->n` (§4.5). `pos` and `tlstr` index in unicode
// scalars (§3), walking runes rather than bytes; `n->string` and
// `string->n` work on a single byte.
func registerString(ctx *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("pos")] = curried("pos", 2, func(args []values.Value) (values.Value, error) {
		if !args[0].IsString() {
			return values.Value{}, errs.New(errs.Type, "pos: first argument must be a string")
		}
		if !args[1].IsInt() {
			return values.Value{}, errs.New(errs.Type, "pos: second argument must be an integer")
		}
		runes := []rune(args[0].AsString())
		idx := int(args[1].AsInt())
		if idx < 0 || idx >= len(runes) {
			return values.Value{}, errs.New(errs.Domain, "pos: index %d out of range", idx)
		}
		return values.Str(string(runes[idx])), nil
	})

	fns[reader.SanitizeKeyword("tlstr")] = curried("tlstr", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsString() {
			return values.Value{}, errs.New(errs.Type, "tlstr: argument must be a string")
		}
		runes := []rune(args[0].AsString())
		if len(runes) == 0 {
			return values.Value{}, errs.New(errs.Domain, "tlstr: empty string")
		}
		return values.Str(string(runes[1:])), nil
	})

	fns[reader.SanitizeKeyword("cn")] = curried("cn", 2, func(args []values.Value) (values.Value, error) {
		if !args[0].IsString() || !args[1].IsString() {
			return values.Value{}, errs.New(errs.Type, "cn: both arguments must be strings")
		}
		return values.Str(args[0].AsString() + args[1].AsString()), nil
	})

	fns[reader.SanitizeKeyword("str")] = curried("str", 1, func(args []values.Value) (values.Value, error) {
		if args[0].IsClosure() || args[0].IsStream() {
			return values.Value{}, errs.New(errs.Type, "str: %s has no printed representation", args[0].Tag())
		}
		return values.Str(values.Print(args[0], ctx.Unrename)), nil
	})

	fns[reader.SanitizeKeyword("string?")] = curried("string?", 1, func(args []values.Value) (values.Value, error) {
		return values.Bool(args[0].IsString()), nil
	})

	fns[reader.SanitizeKeyword("number?")] = curried("number?", 1, func(args []values.Value) (values.Value, error) {
		return values.Bool(args[0].IsInt() || args[0].IsFloat()), nil
	})

	fns[reader.SanitizeKeyword("n->string")] = curried("n->string", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsInt() {
			return values.Value{}, errs.New(errs.Type, "n->string: argument must be an integer code point")
		}
		n := args[0].AsInt()
		if n < 0 || n > 255 {
			return values.Value{}, errs.New(errs.Domain, "n->string: argument must be a single byte (0-255)")
		}
		return values.Str(string([]byte{byte(n)})), nil
	})

	fns[reader.SanitizeKeyword("string->n")] = curried("string->n", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsString() {
			return values.Value{}, errs.New(errs.Type, "string->n: argument must be a string")
		}
		s := args[0].AsString()
		if len(s) == 0 {
			return values.Value{}, errs.New(errs.Domain, "string->n: empty string")
		}
		return values.Int(int64(s[0])), nil
	})
}
