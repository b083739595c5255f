package primitives

import (
	"io"
	"os"

	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// registerIO wires `write-byte`/`read-byte`/`open` (§4.5/§5): blocking
// byte I/O over values.Stream, only the `in` direction of `open`
// user-visible, matching the bootstrap's requirement.
func registerIO(_ *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("write-byte")] = curried("write-byte", 2, func(args []values.Value) (values.Value, error) {
		if !args[0].IsInt() {
			return values.Value{}, errs.New(errs.Type, "write-byte: first argument must be an integer")
		}
		if !args[1].IsStream() {
			return values.Value{}, errs.New(errs.Type, "write-byte: second argument must be a stream")
		}
		st := args[1].AsStream()
		if st.Dir != values.DirOut {
			return values.Value{}, errs.New(errs.IO, "write-byte: stream %q is not an output stream", st.Name)
		}
		if _, err := st.W.Write([]byte{byte(args[0].AsInt())}); err != nil {
			return values.Value{}, errs.New(errs.IO, "write-byte: %s", err)
		}
		return args[0], nil
	})

	fns[reader.SanitizeKeyword("read-byte")] = curried("read-byte", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsStream() {
			return values.Value{}, errs.New(errs.Type, "read-byte: argument must be a stream")
		}
		st := args[0].AsStream()
		if st.Dir != values.DirIn {
			return values.Value{}, errs.New(errs.IO, "read-byte: stream %q is not an input stream", st.Name)
		}
		var buf [1]byte
		n, err := st.R.Read(buf[:])
		if err == io.EOF || n == 0 {
			return values.Int(-1), nil
		}
		if err != nil {
			return values.Value{}, errs.New(errs.IO, "read-byte: %s", err)
		}
		return values.Int(int64(buf[0])), nil
	})

	fns[reader.SanitizeKeyword("open")] = curried("open", 2, func(args []values.Value) (values.Value, error) {
		if !args[0].IsString() {
			return values.Value{}, errs.New(errs.Type, "open: first argument must be a string path")
		}
		if !args[1].IsSymbol() || args[1].AsSymbol() != reader.SanitizeKeyword("in") {
			return values.Value{}, errs.New(errs.Domain, "open: only the 'in' direction is supported")
		}
		f, err := os.Open(args[0].AsString())
		if err != nil {
			return values.Value{}, errs.New(errs.IO, "open: %s", err)
		}
		return values.StreamVal(values.NewInStream(args[0].AsString(), f)), nil
	})
}
