package primitives

import (
	"testing"

	"github.com/klambda-lang/klambda/internal/reader"
)

func TestRegisterInstallsEveryPrimitive(t *testing.T) {
	ctx := newArithCtx(t)
	names := []string{
		"+", "-", "*", "/", "<", ">", "<=", ">=",
		"cons", "hd", "tl", "cons?", "=",
		"if", "and", "or", "cond", "trap-error", "simple-error", "intern",
		"set", "value",
		"absvector", "address->", "<-address", "absvector?",
		"write-byte", "read-byte", "open",
		"get-time",
		"pos", "tlstr", "cn", "str", "string?", "number?", "n->string", "string->n",
	}
	for _, name := range names {
		if _, err := ctx.Functions.Lookup(reader.SanitizeKeyword(name)); err != nil {
			t.Errorf("expected %q to be registered: %s", name, err)
		}
	}
}
