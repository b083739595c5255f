// Package errs defines the error kinds raised throughout the KLambda
// runtime: reader failures, type/arity/domain/IO errors raised by
// primitives, and the "did you mean" suggestion helper used when a
// symbol or function name can't be found.
package errs

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Kind classifies an error the way §7 of the spec separates read
// errors (fatal) from the value-level errors every other primitive
// raises.
type Kind int

const (
	Read Kind = iota
	Type
	Arity
	Domain
	IO
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "read error"
	case Type:
		return "type error"
	case Arity:
		return "arity error"
	case Domain:
		return "domain error"
	case IO:
		return "i/o error"
	default:
		return "error"
	}
}

// Position is a 1-based line/column/offset into source text, used by
// read errors to point at the incomplete or erroneous token.
type Position struct {
	Line   int
	Column int
	Offset int
}

// KLambdaError is the error type every primitive and the reader raise.
// It carries a Kind, a Message, and, for read errors, an optional
// source Position — per §3, KLambda errors are plain values once they
// escape the reader, not structured exceptions.
type KLambdaError struct {
	Kind    Kind
	Message string
	Pos     *Position
}

func New(kind Kind, format string, args ...interface{}) *KLambdaError {
	return &KLambdaError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewAt(kind Kind, pos Position, format string, args ...interface{}) *KLambdaError {
	p := pos
	return &KLambdaError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: &p}
}

func (e *KLambdaError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unbound builds the "<subject> X is unbound" family of domain errors
// ("variable X is unbound", "function X is unbound"), appending a fuzzy
// "did you mean"
// suggestion drawn from candidates (the current symbol/function table
// keys) when a close match exists.
func Unbound(subject, name string, candidates []string) *KLambdaError {
	msg := fmt.Sprintf("%s %s is unbound", subject, name)
	if suggestion := suggest(name, candidates); suggestion != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return New(Domain, "%s", msg)
}

// suggest returns the best fuzzy match for name among candidates, or
// "" if none is close enough to be worth offering. Ranked the way
// the teacher's decorator-name suggestions are (RankFindFold, lowest
// distance wins), capped to avoid suggesting an unrelated name.
func suggest(name string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	best := ranks[0]
	if best.Distance > len(name)/2+2 {
		return ""
	}
	return best.Target
}
