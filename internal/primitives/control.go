package primitives

import (
	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// registerControl wires the "evaluator primitives" named in §2/§4.3:
// if/and/or/cond are ordinary function-table entries the codegen
// package calls into with pre-thunked arguments, not special-cased
// native branches, so a KLambda program could in principle redefine
// them the way the bootstrap occasionally does. Every key is run
// through reader.SanitizeKeyword so it matches whatever the reader
// would produce for the same identifier in source — notably "if",
// which collides with Go's reserved word and arrives as "shen_if",
// and "trap-error"/"simple-error", whose hyphens are mnemonic-encoded.
func registerControl(_ *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("if")] = curried("if", 3, func(args []values.Value) (values.Value, error) {
		pred, err := values.Force(args[0])
		if err != nil {
			return values.Value{}, err
		}
		if values.IsTrue(pred) {
			return values.Force(args[1])
		}
		return values.Force(args[2])
	})

	fns[reader.SanitizeKeyword("and")] = curried("and", 2, func(args []values.Value) (values.Value, error) {
		left, err := values.Force(args[0])
		if err != nil {
			return values.Value{}, err
		}
		if !values.IsTrue(left) {
			return values.False, nil
		}
		right, err := values.Force(args[1])
		if err != nil {
			return values.Value{}, err
		}
		return values.Bool(values.IsTrue(right)), nil
	})

	fns[reader.SanitizeKeyword("or")] = curried("or", 2, func(args []values.Value) (values.Value, error) {
		left, err := values.Force(args[0])
		if err != nil {
			return values.Value{}, err
		}
		if values.IsTrue(left) {
			return values.True, nil
		}
		right, err := values.Force(args[1])
		if err != nil {
			return values.Value{}, err
		}
		return values.Bool(values.IsTrue(right)), nil
	})

	// cond receives a single cons list of (action . predicate) thunk
	// pairs, assembled by codegen. §9's open question resolves the
	// no-match case as an error rather than a silent None.
	fns[reader.SanitizeKeyword("cond")] = curried("cond", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsCons() {
			return values.Value{}, errs.New(errs.Type, "cond: expected a list of clauses")
		}
		for _, pair := range args[0].AsCons() {
			if !pair.IsCons() || len(pair.AsCons()) != 2 {
				return values.Value{}, errs.New(errs.Type, "cond: malformed clause")
			}
			action, pred := pair.AsCons()[0], pair.AsCons()[1]
			matched, err := values.Force(pred)
			if err != nil {
				return values.Value{}, err
			}
			if values.IsTrue(matched) {
				return values.Force(action)
			}
		}
		return values.Value{}, errs.New(errs.Domain, "None of the predicates evaluated to 'true'")
	})

	fns[reader.SanitizeKeyword("do")] = curried("do", 2, func(args []values.Value) (values.Value, error) {
		if _, err := values.Force(args[0]); err != nil {
			return values.Value{}, err
		}
		return args[1], nil
	})

	fns[reader.SanitizeKeyword("trap-error")] = curried("trap-error", 2, func(args []values.Value) (values.Value, error) {
		result, err := values.Force(args[0])
		if err != nil {
			msg := values.Str(errorMessage(err))
			return values.Apply(args[1], []values.Value{msg})
		}
		return result, nil
	})

	fns[reader.SanitizeKeyword("simple-error")] = curried("simple-error", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsString() {
			return values.Value{}, errs.New(errs.Type, "simple-error: expected a string message")
		}
		return values.Value{}, errs.New(errs.Domain, "%s", args[0].AsString())
	})

	fns[reader.SanitizeKeyword("intern")] = curried("intern", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsString() {
			return values.Value{}, errs.New(errs.Type, "intern: expected a string")
		}
		return values.Sym(args[0].AsString()), nil
	})
}

// errorMessage returns the message trap-error hands to its handler: the
// bare KLambdaError.Message (no "kind: " prefix), or err.Error() itself
// for an error raised outside this package's error kind.
func errorMessage(err error) string {
	if ke, ok := err.(*errs.KLambdaError); ok {
		return ke.Message
	}
	return err.Error()
}
