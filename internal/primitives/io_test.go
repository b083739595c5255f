package primitives

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klambda-lang/klambda/internal/values"
)

func TestIOWriteByteToOutStream(t *testing.T) {
	ctx := newArithCtx(t)
	var buf bytes.Buffer
	stream := values.StreamVal(values.NewOutStream("test", &buf))
	apply(t, lookup(t, ctx, "write-byte"), values.Int('A'), stream)
	if buf.String() != "A" {
		t.Errorf("wrote %q, want \"A\"", buf.String())
	}
}

func TestIOWriteByteToInStreamIsError(t *testing.T) {
	ctx := newArithCtx(t)
	stream := values.StreamVal(values.NewInStream("test", strings.NewReader("")))
	_, err := values.Apply(lookup(t, ctx, "write-byte"), []values.Value{values.Int('A'), stream})
	if err == nil {
		t.Errorf("expected an error writing to an input stream")
	}
}

func TestIOReadByteFromInStream(t *testing.T) {
	ctx := newArithCtx(t)
	stream := values.StreamVal(values.NewInStream("test", strings.NewReader("Z")))
	v := apply(t, lookup(t, ctx, "read-byte"), stream)
	if !v.IsInt() || v.AsInt() != int64('Z') {
		t.Errorf("read-byte = %#v, want int %d", v, 'Z')
	}
}

func TestIOReadByteAtEOFReturnsMinusOne(t *testing.T) {
	ctx := newArithCtx(t)
	stream := values.StreamVal(values.NewInStream("test", strings.NewReader("")))
	v := apply(t, lookup(t, ctx, "read-byte"), stream)
	if !v.IsInt() || v.AsInt() != -1 {
		t.Errorf("read-byte at EOF = %#v, want int -1", v)
	}
}
