package ast

import (
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/values"
)

// Special-form head symbols as they actually appear in the AST: the
// reader sanitises every symbol it reads (§4.1), so "if" — a Go
// reserved word — arrives as "shen_if". The rest contain no reserved
// words or mnemonic-table characters and pass through unchanged,
// except trap-error's hyphen.
var (
	kwIf        = reader.SanitizeKeyword("if")
	kwDefun     = reader.SanitizeKeyword("defun")
	kwLet       = reader.SanitizeKeyword("let")
	kwLambda    = reader.SanitizeKeyword("lambda")
	kwDo        = reader.SanitizeKeyword("do")
	kwCond      = reader.SanitizeKeyword("cond")
	kwTrapError = reader.SanitizeKeyword("trap-error")
)

// chainHeads are the special forms whose presence on the path from
// the function body's root down to a candidate tail call does NOT
// disqualify it — per §4.2, notably omitting trap-error: a call
// reached only through a trap-error's protected expression or handler
// is not treated as a true self-tail-call by start_of_function_chain,
// even though find_recursive_calls does descend into both of
// trap-error's branches while searching for candidates.
var chainHeads = map[string]bool{
	kwIf:     true,
	kwDefun:  true,
	kwLet:    true,
	kwLambda: true,
	kwDo:     true,
	kwCond:   true,
}

// FindRecursiveCalls walks body, restricted to the positions that can
// be tail positions (§4.2's per-special-form descent rules), and
// returns the path of every `(name arg1 … argN)` application found —
// including false positives sitting inside an outer application's
// argument position, which GetAllTailCalls filters out afterward via
// StartOfFunctionChain.
func FindRecursiveCalls(name string, arity int, body values.Value) []Path {
	var found []Path
	var walk func(v values.Value, path Path)
	walk = func(v values.Value, path Path) {
		if !v.IsCons() {
			return
		}
		elems := v.AsCons()
		if head, ok := headSymbol(v); ok && head == name && len(elems)-1 == arity {
			found = append(found, path)
		}

		head, _ := headSymbol(v)
		switch head {
		case kwIf:
			if len(elems) > 2 {
				walk(elems[2], extend(path, 2))
			}
			if len(elems) > 3 {
				walk(elems[3], extend(path, 3))
			}
		case kwCond:
			for i := 1; i < len(elems); i++ {
				pair := elems[i]
				if pair.IsCons() && len(pair.AsCons()) > 1 {
					walk(pair.AsCons()[1], extend(extend(path, i), 1))
				}
			}
		case kwTrapError:
			if len(elems) > 1 {
				walk(elems[1], extend(path, 1))
			}
			if len(elems) > 2 {
				walk(elems[2], extend(path, 2))
			}
		case kwLet:
			if len(elems) > 3 {
				walk(elems[3], extend(path, 3))
			}
		case kwDefun:
			if len(elems) > 3 {
				walk(elems[3], extend(path, 3))
			}
		case kwLambda:
			if len(elems) > 2 {
				walk(elems[2], extend(path, 2))
			}
		default:
			// Every other cons form: descend only into its last
			// element, the "value position" in left-to-right
			// evaluation. This includes plain applications, whose
			// last-argument descent is exactly what
			// StartOfFunctionChain later disqualifies when it isn't
			// genuinely the function's own tail position.
			if len(elems) > 0 {
				last := len(elems) - 1
				walk(elems[last], extend(path, last))
			}
		}
	}
	walk(body, Path{})
	return found
}

// StartOfFunctionChain reports, for a candidate tail-call path inside
// form, the first strict prefix of path that stops at a cons whose
// head is a symbol outside chainHeads — meaning the candidate
// actually sits inside an outer application's argument position and
// is therefore not a true tail call.
func StartOfFunctionChain(path Path, form values.Value) (Path, bool) {
	for i := 0; i < len(path); i++ {
		prefix := path[:i]
		sub, ok := At(form, prefix)
		if !ok || !sub.IsCons() {
			continue
		}
		if isCondClausePair(prefix, form) {
			continue
		}
		head, isSym := headSymbol(sub)
		if !isSym || !chainHeads[head] {
			return prefix, true
		}
	}
	return nil, false
}

// isCondClausePair reports whether the cons at prefix is itself one of
// cond's (predicate action) clause pairs rather than an application: its
// own first element is a predicate, not a function-chain head, so it must
// not be checked against chainHeads the way a true special form is.
func isCondClausePair(prefix Path, form values.Value) bool {
	if len(prefix) == 0 {
		return false
	}
	parent, ok := At(form, prefix[:len(prefix)-1])
	if !ok || !parent.IsCons() {
		return false
	}
	head, isSym := headSymbol(parent)
	return isSym && head == kwCond
}

// GetAllTailCalls returns the genuine tail-call paths (relative to
// the defun's body) of a `(defun name (args…) body)` form, after
// filtering find_recursive_calls's candidates through
// StartOfFunctionChain.
func GetAllTailCalls(defunForm values.Value) []Path {
	elems := defunForm.AsCons()
	if len(elems) < 4 || !elems[0].IsSymbol() || elems[0].AsSymbol() != kwDefun {
		return nil
	}
	name := elems[1].AsSymbol()
	arity := 0
	if elems[2].IsCons() {
		arity = len(elems[2].AsCons())
	}
	body := elems[3]

	candidates := FindRecursiveCalls(name, arity, body)
	var tail []Path
	for _, p := range candidates {
		if _, disqualified := StartOfFunctionChain(p, body); !disqualified {
			tail = append(tail, p)
		}
	}
	return tail
}
