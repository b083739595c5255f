package primitives

import (
	"time"

	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/reader"
	"github.com/klambda-lang/klambda/internal/runtime"
	"github.com/klambda-lang/klambda/internal/values"
)

// processStart anchors `(get-time run)`: elapsed runtime since the
// process (not the Context) came up.
var processStart = time.Now()

var (
	kwRun  = reader.SanitizeKeyword("run")
	kwReal = reader.SanitizeKeyword("real")
)

// registerTime wires `get-time` (§4.5): "run" reports elapsed process
// time, "real" reports wall-clock seconds since the Unix epoch, both
// as floats.
func registerTime(_ *runtime.Context, fns map[string]values.Value) {
	fns[reader.SanitizeKeyword("get-time")] = curried("get-time", 1, func(args []values.Value) (values.Value, error) {
		if !args[0].IsSymbol() {
			return values.Value{}, errs.New(errs.Type, "get-time: argument must be a symbol")
		}
		switch args[0].AsSymbol() {
		case kwRun:
			return values.Float(time.Since(processStart).Seconds()), nil
		case kwReal:
			return values.Float(float64(time.Now().UnixNano()) / 1e9), nil
		default:
			return values.Value{}, errs.New(errs.Domain, "get-time: expected 'run or 'real, got %s", args[0].AsSymbol())
		}
	})
}
