package codegen

import "github.com/klambda-lang/klambda/internal/values"

// Env is the runtime lexical frame a compiled Expr closes over: an
// immutable, parent-linked binding list. Compiling a defun/lambda/let
// extends it with one new name; looking a bound symbol up walks
// outward until it is found or the chain is exhausted.
type Env struct {
	name   string
	value  values.Value
	parent *Env
}

func (e *Env) Extend(name string, v values.Value) *Env {
	return &Env{name: name, value: v, parent: e}
}

func (e *Env) Lookup(name string) (values.Value, bool) {
	for f := e; f != nil; f = f.parent {
		if f.name == name {
			return f.value, true
		}
	}
	return values.Value{}, false
}
