// Package codegen implements §4.3: translating reader/ast output into
// curried closure values ready for the §4.4 application protocol,
// parameterised by the compile-time lexical scope (`bound`) that
// decides whether a symbol atom reads from the runtime Env or falls
// back through the process-wide tables.
package codegen

import (
	"github.com/klambda-lang/klambda/internal/ast"
	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// Special-form head symbols as they appear after reader sanitisation
// (§4.1): "if" collides with Go's reserved word and arrives as
// "shen_if"; "trap-error" picks up its hyphen's mnemonic encoding.
// These must match the keys primitives.Register installs "if",
// "and", "or", "cond", and "trap-error" under.
var (
	kwDefun     = reader.SanitizeKeyword("defun")
	kwLambda    = reader.SanitizeKeyword("lambda")
	kwLet       = reader.SanitizeKeyword("let")
	kwIf        = reader.SanitizeKeyword("if")
	kwAnd       = reader.SanitizeKeyword("and")
	kwOr        = reader.SanitizeKeyword("or")
	kwCond      = reader.SanitizeKeyword("cond")
	kwFreeze    = reader.SanitizeKeyword("freeze")
	kwTrapError = reader.SanitizeKeyword("trap-error")
)

// Expr is the compiled form: a builder that, given the live runtime
// context and the current lexical frame, produces a value. For
// lambda/freeze it builds a Closure value; for defun it installs the
// built closure into the function table and yields nil; for atoms and
// application it evaluates directly.
type Expr func(ctx *runtime.Context, env *Env) (values.Value, error)

// Compile translates one AST form into an Expr. scope lists the names
// currently bound by an enclosing defun/lambda/let, innermost last.
func Compile(form values.Value, scope []string) (Expr, error) {
	switch {
	case form.IsRecur():
		return compileRecur(form, scope)
	case form.IsCons():
		return compileCons(form, scope)
	case form.IsSymbol():
		return compileSymbol(form, scope), nil
	default:
		// int, float, string, nil: self-evaluating literals.
		return func(*runtime.Context, *Env) (values.Value, error) {
			return form, nil
		}, nil
	}
}

func bound(name string, scope []string) bool {
	for _, s := range scope {
		if s == name {
			return true
		}
	}
	return false
}

func compileSymbol(form values.Value, scope []string) Expr {
	name := form.AsSymbol()
	if bound(name, scope) {
		return func(_ *runtime.Context, env *Env) (values.Value, error) {
			if v, ok := env.Lookup(name); ok {
				return v, nil
			}
			return values.Value{}, errs.New(errs.Domain, "internal error: %q missing from lexical frame", name)
		}
	}
	// A free symbol is a literal symbol value, not a lookup: only the
	// head of an application resolves a free symbol against the
	// function table (§4.3, application shape (c)).
	return func(*runtime.Context, *Env) (values.Value, error) {
		return form, nil
	}
}

func compileRecur(form values.Value, scope []string) (Expr, error) {
	argForms := form.AsRecurArgs()
	argExprs := make([]Expr, len(argForms))
	for i, af := range argForms {
		e, err := Compile(af, scope)
		if err != nil {
			return nil, err
		}
		argExprs[i] = e
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		args := make([]values.Value, len(argExprs))
		for i, e := range argExprs {
			v, err := e(ctx, env)
			if err != nil {
				return values.Value{}, err
			}
			args[i] = v
		}
		return values.Recur(args...), nil
	}, nil
}

func compileCons(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) == 0 {
		empty := values.ConsSeq()
		return func(*runtime.Context, *Env) (values.Value, error) { return empty, nil }, nil
	}

	if elems[0].IsSymbol() {
		switch elems[0].AsSymbol() {
		case kwDefun:
			return compileDefun(form, scope)
		case kwLambda:
			return compileLambda(form, scope)
		case kwLet:
			return compileLet(form, scope)
		case kwIf:
			return compileIf(form, scope)
		case kwAnd:
			return compileAndOr(form, scope, kwAnd)
		case kwOr:
			return compileAndOr(form, scope, kwOr)
		case kwCond:
			return compileCond(form, scope)
		case kwFreeze:
			return compileFreeze(form, scope)
		case kwTrapError:
			return compileTrapError(form, scope)
		}
	}
	return compileApplication(form, scope)
}

func symbolNames(form values.Value) []string {
	if !form.IsCons() {
		return nil
	}
	elems := form.AsCons()
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.AsSymbol()
	}
	return out
}

// defun name (params…) body
func compileDefun(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) != 4 || !elems[1].IsSymbol() {
		return nil, errs.New(errs.Type, "defun: expected (defun name (params…) body)")
	}
	name := elems[1].AsSymbol()
	params := symbolNames(elems[2])
	bodyForm := elems[3]

	tailPaths := ast.GetAllTailCalls(form)
	for _, p := range tailPaths {
		// Paths from GetAllTailCalls are relative to the body (index 3
		// of the defun form), so mark directly on bodyForm. An empty
		// path marks the body itself, so keep MarkRecur's result.
		bodyForm = ast.MarkRecur(bodyForm, p)
	}
	isTailRecursive := len(tailPaths) > 0

	innerScope := append(append([]string{}, scope...), params...)
	bodyExpr, err := Compile(bodyForm, innerScope)
	if err != nil {
		return nil, err
	}

	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		outerEnv := env
		var closureVal values.Value
		if len(params) == 0 {
			closureVal = values.NewThunk(func() (values.Value, error) {
				if isTailRecursive {
					return runTrampoline(ctx, outerEnv, nil, nil, bodyExpr, ctx.MaxTrampolineIterations)
				}
				return bodyExpr(ctx, outerEnv)
			})
		} else {
			closureVal = buildCurried(ctx, name, params, 0, outerEnv, nil, bodyExpr, isTailRecursive)
		}
		ctx.Functions.Install(name, closureVal)
		return values.Nil(), nil
	}, nil
}

// buildCurried builds the nested chain of Partial closures a defun
// with at least one parameter saturates into its body.
func buildCurried(ctx *runtime.Context, name string, params []string, idx int, frameEnv *Env, collected []values.Value, bodyExpr Expr, isTailRecursive bool) values.Value {
	param := params[idx]
	isLast := idx == len(params)-1
	return values.NewPartial(name, func(arg values.Value) (values.Value, error) {
		newEnv := frameEnv.Extend(param, arg)
		newCollected := append(append([]values.Value{}, collected...), arg)
		if !isLast {
			return buildCurried(ctx, name, params, idx+1, newEnv, newCollected, bodyExpr, isTailRecursive), nil
		}
		if isTailRecursive {
			outerEnv := frameEnvRoot(frameEnv, len(collected))
			return runTrampolineResult(ctx, outerEnv, params, newCollected, bodyExpr)
		}
		result, err := bodyExpr(ctx, newEnv)
		if err != nil {
			return values.Value{}, err
		}
		return values.NewDone(result), nil
	})
}

// frameEnvRoot walks back up n frames to recover the env the chain
// started from, before any of the defun's own parameters were bound —
// the base the trampoline re-extends on every iteration.
func frameEnvRoot(env *Env, n int) *Env {
	for i := 0; i < n; i++ {
		if env == nil {
			break
		}
		env = env.parent
	}
	return env
}

func runTrampolineResult(ctx *runtime.Context, outerEnv *Env, params []string, args []values.Value, bodyExpr Expr) (values.Value, error) {
	result, err := runTrampoline(ctx, outerEnv, params, args, bodyExpr, ctx.MaxTrampolineIterations)
	if err != nil {
		return values.Value{}, err
	}
	return values.NewDone(result), nil
}

// lambda param body
func compileLambda(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) != 3 || !elems[1].IsSymbol() {
		return nil, errs.New(errs.Type, "lambda: expected (lambda param body)")
	}
	param := elems[1].AsSymbol()
	bodyExpr, err := Compile(elems[2], append(append([]string{}, scope...), param))
	if err != nil {
		return nil, err
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		capturedEnv := env
		return values.NewPartial("lambda", func(arg values.Value) (values.Value, error) {
			newEnv := capturedEnv.Extend(param, arg)
			result, err := bodyExpr(ctx, newEnv)
			if err != nil {
				return values.Value{}, err
			}
			return values.NewDone(result), nil
		}), nil
	}, nil
}

// let var value body — lowered to ((lambda var body) value).
func compileLet(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) != 4 || !elems[1].IsSymbol() {
		return nil, errs.New(errs.Type, "let: expected (let var value body)")
	}
	param := elems[1].AsSymbol()
	valueExpr, err := Compile(elems[2], scope)
	if err != nil {
		return nil, err
	}
	bodyExpr, err := Compile(elems[3], append(append([]string{}, scope...), param))
	if err != nil {
		return nil, err
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		val, err := valueExpr(ctx, env)
		if err != nil {
			return values.Value{}, err
		}
		newEnv := env.Extend(param, val)
		return bodyExpr(ctx, newEnv)
	}, nil
}

// if p t e — compiled as a call to the "if" primitive with t and e
// wrapped as thunks, so only the taken branch is forced (§4.3/§4.5).
func compileIf(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) != 4 {
		return nil, errs.New(errs.Type, "if: expected (if p t e)")
	}
	predExpr, err := Compile(elems[1], scope)
	if err != nil {
		return nil, err
	}
	thenExpr, err := Compile(elems[2], scope)
	if err != nil {
		return nil, err
	}
	elseExpr, err := Compile(elems[3], scope)
	if err != nil {
		return nil, err
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		predVal, err := predExpr(ctx, env)
		if err != nil {
			return values.Value{}, err
		}
		thenThunk := values.NewThunk(func() (values.Value, error) { return thenExpr(ctx, env) })
		elseThunk := values.NewThunk(func() (values.Value, error) { return elseExpr(ctx, env) })
		fn, err := ctx.Functions.Lookup(kwIf)
		if err != nil {
			return values.Value{}, err
		}
		return values.Apply(fn, []values.Value{predVal, thenThunk, elseThunk})
	}, nil
}

// (and e1 e2) / (or e1 e2) — both operands thunked, short-circuit
// semantics implemented by the primitive.
func compileAndOr(form values.Value, scope []string, name string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) != 3 {
		return nil, errs.New(errs.Type, "%s: expected (%s e1 e2)", name, name)
	}
	leftExpr, err := Compile(elems[1], scope)
	if err != nil {
		return nil, err
	}
	rightExpr, err := Compile(elems[2], scope)
	if err != nil {
		return nil, err
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		leftThunk := values.NewThunk(func() (values.Value, error) { return leftExpr(ctx, env) })
		rightThunk := values.NewThunk(func() (values.Value, error) { return rightExpr(ctx, env) })
		fn, err := ctx.Functions.Lookup(name)
		if err != nil {
			return values.Value{}, err
		}
		return values.Apply(fn, []values.Value{leftThunk, rightThunk})
	}, nil
}

// (cond (p1 a1) (p2 a2) …) — each clause lowers to a (action . predicate)
// pair of thunks; the cond primitive walks the assembled list.
func compileCond(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	clauses := elems[1:]
	type compiledClause struct {
		pred, action Expr
	}
	compiled := make([]compiledClause, len(clauses))
	for i, c := range clauses {
		if !c.IsCons() || len(c.AsCons()) != 2 {
			return nil, errs.New(errs.Type, "cond: expected (predicate action) clauses")
		}
		ce := c.AsCons()
		predExpr, err := Compile(ce[0], scope)
		if err != nil {
			return nil, err
		}
		actionExpr, err := Compile(ce[1], scope)
		if err != nil {
			return nil, err
		}
		compiled[i] = compiledClause{pred: predExpr, action: actionExpr}
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		pairs := make([]values.Value, len(compiled))
		for i, c := range compiled {
			predThunk := values.NewThunk(func() (values.Value, error) { return c.pred(ctx, env) })
			actionThunk := values.NewThunk(func() (values.Value, error) { return c.action(ctx, env) })
			pairs[i] = values.ConsSeq(actionThunk, predThunk)
		}
		fn, err := ctx.Functions.Lookup(kwCond)
		if err != nil {
			return values.Value{}, err
		}
		return values.Apply(fn, []values.Value{values.ConsSeq(pairs...)})
	}, nil
}

// (freeze e) — a thunk that evaluates e in the captured environment
// when forced.
func compileFreeze(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) != 2 {
		return nil, errs.New(errs.Type, "freeze: expected (freeze e)")
	}
	innerExpr, err := Compile(elems[1], scope)
	if err != nil {
		return nil, err
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		return values.NewThunk(func() (values.Value, error) { return innerExpr(ctx, env) }), nil
	}, nil
}

// (trap-error protected handler) — forces protected; on error, builds
// a string from the error message and invokes handler on it.
func compileTrapError(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	if len(elems) != 3 {
		return nil, errs.New(errs.Type, "trap-error: expected (trap-error protected handler)")
	}
	protectedExpr, err := Compile(elems[1], scope)
	if err != nil {
		return nil, err
	}
	handlerExpr, err := Compile(elems[2], scope)
	if err != nil {
		return nil, err
	}
	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		protectedThunk := values.NewThunk(func() (values.Value, error) { return protectedExpr(ctx, env) })
		handlerVal, err := handlerExpr(ctx, env)
		if err != nil {
			return values.Value{}, err
		}
		fn, err := ctx.Functions.Lookup(kwTrapError)
		if err != nil {
			return values.Value{}, err
		}
		return values.Apply(fn, []values.Value{protectedThunk, handlerVal})
	}, nil
}

// Plain application (f arg1 … argN). f may be an inline cons form, a
// lexically bound identifier, or a free symbol resolved against the
// function table at call time (§4.3).
func compileApplication(form values.Value, scope []string) (Expr, error) {
	elems := form.AsCons()
	headForm := elems[0]
	argForms := elems[1:]

	argExprs := make([]Expr, len(argForms))
	for i, af := range argForms {
		e, err := Compile(af, scope)
		if err != nil {
			return nil, err
		}
		argExprs[i] = e
	}

	var headExpr Expr
	switch {
	case headForm.IsCons() || headForm.IsRecur():
		e, err := Compile(headForm, scope)
		if err != nil {
			return nil, err
		}
		headExpr = e
	case headForm.IsSymbol() && bound(headForm.AsSymbol(), scope):
		name := headForm.AsSymbol()
		headExpr = func(_ *runtime.Context, env *Env) (values.Value, error) {
			if v, ok := env.Lookup(name); ok {
				return v, nil
			}
			return values.Value{}, errs.New(errs.Domain, "internal error: %q missing from lexical frame", name)
		}
	case headForm.IsSymbol():
		name := headForm.AsSymbol()
		headExpr = func(ctx *runtime.Context, _ *Env) (values.Value, error) {
			return ctx.Functions.Lookup(name)
		}
	default:
		return nil, errs.New(errs.Type, "application head must be a symbol or a cons form, got %s", headForm.Tag())
	}

	return func(ctx *runtime.Context, env *Env) (values.Value, error) {
		fnVal, err := headExpr(ctx, env)
		if err != nil {
			return values.Value{}, err
		}
		argVals := make([]values.Value, len(argExprs))
		for i, ae := range argExprs {
			v, err := ae(ctx, env)
			if err != nil {
				return values.Value{}, err
			}
			argVals[i] = v
		}
		return values.Apply(fnVal, argVals)
	}, nil
}
