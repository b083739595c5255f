// Package driver implements §4.6: loading a KLambda source file by
// reading it into forms, then compiling and running each top-level
// form in turn against a live runtime.Context.
package driver

import (
	"github.com/klambda-lang/klambda/internal/codegen"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

var kwDefun = reader.SanitizeKeyword("defun")

// Result reports what happened to one top-level form.
type Result struct {
	Form  values.Value
	Value values.Value
	Err   error
}

// LoadString reads src and runs every top-level form against ctx, in
// order, using ctx's own Sanitizer so that names stay consistent with
// anything already loaded into ctx. A top-level `(defun ...)` form is
// compiled and installed into the function table for its side effect;
// every other form is compiled and evaluated for its value.
//
// Per §7, a read (parse) error is fatal and aborts the whole load; a
// runtime error raised while running an individual form is not —
// loading continues with the next form, and the error is reported
// back in that form's Result.
func LoadString(ctx *runtime.Context, src string) ([]Result, error) {
	forms, _, err := reader.ReadAllWith(src, ctx.Sanitizer)
	if err != nil {
		return nil, err
	}
	return Run(ctx, forms), nil
}

// Run compiles and evaluates each of forms in turn against ctx. It
// never returns an error itself (forms are already read); per-form
// failures are carried in each Result.
func Run(ctx *runtime.Context, forms []values.Value) []Result {
	results := make([]Result, 0, len(forms))
	for _, form := range forms {
		expr, err := codegen.Compile(form, nil)
		if err != nil {
			results = append(results, Result{Form: form, Err: err})
			continue
		}
		v, err := expr(ctx, nil)
		results = append(results, Result{Form: form, Value: v, Err: err})
	}
	return results
}

// Errors filters results down to the ones that failed.
func Errors(results []Result) []error {
	var out []error
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r.Err)
		}
	}
	return out
}

// IsDefun reports whether form is a top-level `(defun name (params…)
// body)` form, comparing its head against the sanitized spelling of
// "defun".
func IsDefun(form values.Value) bool {
	if !form.IsCons() {
		return false
	}
	elems := form.AsCons()
	return len(elems) > 0 && elems[0].IsSymbol() && elems[0].AsSymbol() == kwDefun
}
