// Package primitives implements the KLambda standard library named in
// §4.5: arithmetic and comparison, cons-cell access, control-flow
// evaluator primitives, bindings, vectors, streams, time, and strings.
// Every entry is built with curried, so natively-implemented
// primitives present the identical nested-Partial shape as a compiled
// KLambda closure (§4.4).
package primitives

import (
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// Register installs the full standard library into ctx's function
// table. Called once at startup, before any source is read (§4.6).
func Register(ctx *runtime.Context) {
	fns := map[string]values.Value{}
	registerArith(ctx, fns)
	registerCons(ctx, fns)
	registerControl(ctx, fns)
	registerBindings(ctx, fns)
	registerVector(ctx, fns)
	registerIO(ctx, fns)
	registerTime(ctx, fns)
	registerString(ctx, fns)

	for name, fn := range fns {
		ctx.Functions.Install(name, fn)
	}
}
