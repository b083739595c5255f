package runtime

import (
	"io"
	"os"

	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/values"
)

// Context bundles the process-wide mutable state §9 calls for: the
// symbol table, function table, and vector back-index table, plus
// the identity factory and the sanitizer's inverse map (needed by
// `str`). Tests instantiate a fresh Context for isolation instead of
// sharing a package-level global.
type Context struct {
	Symbols    *SymbolTable
	Functions  *FunctionTable
	BackIndex  *BackIndexTable
	Identities *IdentityFactory
	Sanitizer  *reader.Sanitizer

	Stdout *values.Stream
	Stdin  *values.Stream

	Debug bool
	// MaxTrampolineIterations bounds the trampoline loop (§5) so a
	// runaway non-terminating tail-recursive function fails instead
	// of hanging forever; 0 means unbounded.
	MaxTrampolineIterations int
}

// New builds a Context wired to the process's real stdout/stdin and
// a fresh Sanitizer. Use NewWithIO in tests to substitute buffers.
func New() *Context {
	return NewWithIO(os.Stdin, os.Stdout)
}

func NewWithIO(stdin io.Reader, stdout io.Writer) *Context {
	var seed [16]byte
	return &Context{
		Symbols:    newSymbolTable(),
		Functions:  newFunctionTable(),
		BackIndex:  newBackIndexTable(),
		Identities: NewIdentityFactory(seed),
		Sanitizer:  reader.NewSanitizer(),
		Stdout:     values.NewOutStream("stdout", stdout),
		Stdin:      values.NewInStream("stdin", stdin),
	}
}

// NewVector allocates a fresh, zero-length, identity-bearing vector
// and has nothing to register yet in the back-index table (it gains
// entries only once composite values are stored into it).
func (c *Context) NewVector() *values.VectorRecord {
	id := c.Identities.Next()
	return values.NewVectorRecord(id)
}

// Unrename recovers a symbol's original printed form via the
// sanitizer's inverse map (§4.1, used by `str`).
func (c *Context) Unrename(sanitized string) string {
	return c.Sanitizer.Unrename(sanitized)
}
