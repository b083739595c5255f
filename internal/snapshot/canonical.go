// Package snapshot gives the reader's output a deterministic,
// content-addressed form, the way core/planfmt/canonical.go gives the
// teacher's execution plans one: a canonical tree plus a CBOR
// encoding and SHA-256 digest stable across runs, usable to detect
// whether two source files read to the same AST without comparing
// values.Value trees (which carry unexported fields) directly.
package snapshot

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klambda-lang/klambda/internal/values"
)

// Node mirrors one values.Value form produced by the reader: every
// top-level form the reader returns is a symbol, int, float, string,
// or cons, so closures/vectors/streams/recur never need a case here.
type Node struct {
	Tag      string
	Symbol   string  `cbor:",omitempty"`
	Int      int64   `cbor:",omitempty"`
	Float    float64 `cbor:",omitempty"`
	String   string  `cbor:",omitempty"`
	Elements []Node  `cbor:",omitempty"`
}

// Of converts a reader-produced form into its canonical Node. It
// returns an error for any tag a reader form can never carry
// (closure, vector, stream, recur), since those only ever arise
// during evaluation.
func Of(v values.Value) (Node, error) {
	switch v.Tag() {
	case values.TagNil:
		return Node{Tag: "nil"}, nil
	case values.TagSymbol:
		return Node{Tag: "symbol", Symbol: v.AsSymbol()}, nil
	case values.TagInt:
		return Node{Tag: "int", Int: v.AsInt()}, nil
	case values.TagFloat:
		return Node{Tag: "float", Float: v.AsFloat()}, nil
	case values.TagString:
		return Node{Tag: "string", String: v.AsString()}, nil
	case values.TagCons:
		elems := v.AsCons()
		out := make([]Node, len(elems))
		for i, e := range elems {
			n, err := Of(e)
			if err != nil {
				return Node{}, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = n
		}
		return Node{Tag: "cons", Elements: out}, nil
	default:
		return Node{}, fmt.Errorf("snapshot: %s has no canonical form", v.Tag())
	}
}

// OfForms canonicalizes a whole file's worth of top-level forms.
func OfForms(forms []values.Value) ([]Node, error) {
	out := make([]Node, len(forms))
	for i, f := range forms {
		n, err := Of(f)
		if err != nil {
			return nil, fmt.Errorf("form %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// MarshalBinary produces a deterministic CBOR encoding of nodes: same
// nodes in, same bytes out, regardless of process or platform.
func MarshalBinary(nodes []Node) ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("snapshot: building CBOR encoder: %w", err)
	}
	data, err := encMode.Marshal(nodes)
	if err != nil {
		return nil, fmt.Errorf("snapshot: CBOR encoding: %w", err)
	}
	return data, nil
}

// Hash computes the SHA-256 digest of nodes' canonical encoding.
func Hash(nodes []Node) ([32]byte, error) {
	data, err := MarshalBinary(nodes)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}
