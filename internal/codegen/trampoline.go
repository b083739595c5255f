package codegen

import (
	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// runTrampoline is the fourth closure variant named in §3, the one
// that never becomes a user-visible Value: a loop that runs body,
// and whenever it returns a Recur marker, rebinds params to the
// marker's arguments and runs body again instead of recursing in Go.
// maxIter of 0 means unbounded.
func runTrampoline(ctx *runtime.Context, outerEnv *Env, params []string, args []values.Value, body Expr, maxIter int) (values.Value, error) {
	env := outerEnv
	for i, p := range params {
		env = env.Extend(p, args[i])
	}

	iterations := 0
	for {
		result, err := body(ctx, env)
		if err != nil {
			return values.Value{}, err
		}
		if !result.IsRecur() {
			return result, nil
		}
		next := result.AsRecurArgs()
		if len(next) != len(params) {
			return values.Value{}, errs.New(errs.Arity,
				"recur produced %d argument(s), expected %d", len(next), len(params))
		}
		iterations++
		if maxIter > 0 && iterations > maxIter {
			return values.Value{}, errs.New(errs.Domain,
				"trampoline exceeded %d iterations without terminating", maxIter)
		}
		env = outerEnv
		for i, p := range params {
			env = env.Extend(p, next[i])
		}
	}
}
