// Package ast implements §4.2's path utilities and tail-call analysis
// over the cons-form tree produced by the reader. AST nodes are the
// same values.Value cons/atom shapes the runtime evaluates — KLambda
// code is data, so no separate AST type is needed (§4.3: "Atoms...
// are reflected into the matching value constructor").
package ast

import "github.com/klambda-lang/klambda/internal/values"

// Path is an ordered sequence of child indices locating a sub-form
// inside a cons-form, root-relative.
type Path []int

func extend(p Path, idx int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = idx
	return out
}

// At fetches the sub-form at path, or ok=false if the path leaves the
// tree (runs off the end of a cons, or descends into a non-cons).
func At(form values.Value, path Path) (values.Value, bool) {
	cur := form
	for _, idx := range path {
		if !cur.IsCons() {
			return values.Value{}, false
		}
		elems := cur.AsCons()
		if idx < 0 || idx >= len(elems) {
			return values.Value{}, false
		}
		cur = elems[idx]
	}
	return cur, true
}

// Set replaces the sub-form at path with newVal. Per §4.2 this
// happens in-place: the cons slice holding the target element is
// mutated directly rather than copied, since AST rewriting during
// codegen never needs to preserve the pre-rewrite tree.
func Set(form values.Value, path Path, newVal values.Value) values.Value {
	if len(path) == 0 {
		return newVal
	}
	parent, ok := At(form, path[:len(path)-1])
	if !ok || !parent.IsCons() {
		return form
	}
	parent.AsCons()[path[len(path)-1]] = newVal
	return form
}

// MarkRecur replaces the cons at path with a Recur marker carrying
// every element of that cons except its first (the callee name), per
// §4.2. The cons at path must exist; if it doesn't, form is returned
// unchanged.
func MarkRecur(form values.Value, path Path) values.Value {
	target, ok := At(form, path)
	if !ok || !target.IsCons() {
		return form
	}
	elems := target.AsCons()
	var args []values.Value
	if len(elems) > 1 {
		args = append(args, elems[1:]...)
	}
	return Set(form, path, values.Recur(args...))
}

func headSymbol(v values.Value) (string, bool) {
	if !v.IsCons() {
		return "", false
	}
	elems := v.AsCons()
	if len(elems) == 0 || !elems[0].IsSymbol() {
		return "", false
	}
	return elems[0].AsSymbol(), true
}
