package values

import "github.com/klambda-lang/klambda/internal/errs"

// ClosureKind distinguishes the three user-addressable closure
// variants of §3. The fourth variant named in the spec, the
// trampoline marker, is never represented here: it lives entirely
// inside internal/codegen as a loop wrapped around a Partial's Step
// function, so it can never leak to user code (§9).
type ClosureKind int

const (
	KindPartial ClosureKind = iota
	KindThunk
	KindDone
)

// Closure is the curried function value described in §3/§4.4.
//
//   - Partial awaits exactly one more argument: Step consumes it and
//     returns the next Value (itself possibly another Partial, or a
//     Done once saturated).
//   - Thunk awaits zero arguments: Force runs the deferred
//     computation exactly once it is invoked (it is not memoised;
//     KLambda's `freeze` has no caching requirement).
//   - Done holds a completed result.
type Closure struct {
	Kind ClosureKind
	Step func(arg Value) (Value, error)
	Thnk func() (Value, error)
	Done Value
	Name string // for arity/type error messages
}

func NewPartial(name string, step func(Value) (Value, error)) Value {
	return ClosureVal(&Closure{Kind: KindPartial, Step: step, Name: name})
}

func NewThunk(force func() (Value, error)) Value {
	return ClosureVal(&Closure{Kind: KindThunk, Thnk: force})
}

func NewDone(result Value) Value {
	return ClosureVal(&Closure{Kind: KindDone, Done: result})
}

// Apply implements §4.4's application protocol: applying n arguments
// to a closure repeatedly invokes its one-argument continuation.
// Thunks and Dones encountered along the way are transparently
// unwrapped. If the chain saturates (becomes a non-closure value)
// before all arguments are consumed, any remaining argument is
// applied to that value as though it were itself a closure, which is
// an error unless there is nothing left to apply (n=0 is identity).
func Apply(fn Value, args []Value) (Value, error) {
	cur := fn
	idx := 0
	for {
		if cur.IsClosure() {
			c := cur.AsClosure()
			switch c.Kind {
			case KindThunk:
				forced, err := c.Thnk()
				if err != nil {
					return Value{}, err
				}
				cur = forced
				continue
			case KindDone:
				cur = c.Done
				continue
			case KindPartial:
				if idx >= len(args) {
					return cur, nil
				}
				next, err := c.Step(args[idx])
				if err != nil {
					return Value{}, err
				}
				cur = next
				idx++
				continue
			}
		}
		if idx >= len(args) {
			return cur, nil
		}
		return Value{}, errs.New(errs.Arity,
			"cannot apply %d extra argument(s) to a value of type %s", len(args)-idx, cur.Tag())
	}
}

// Force fully unwinds thunks and dones, returning the first value
// that isn't one of them (an atom, cons, vector, stream, or a still
// partially-applied closure awaiting more arguments).
func Force(v Value) (Value, error) {
	return Apply(v, nil)
}
