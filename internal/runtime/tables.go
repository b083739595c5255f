package runtime

import (
	"sort"
	"sync"

	"github.com/klambda-lang/klambda/internal/errs"
	"github.com/klambda-lang/klambda/internal/values"
)

// SymbolTable is the process-wide `set`/`value` binding store (§4.5).
// Guarded by its own RWMutex, following the teacher's per-registry
// locking (pkgs/decorators/registry.go) even though §5 notes that a
// single-threaded evaluator never actually contends on it — the lock
// is what lets tests run a fresh runtime concurrently with others.
type SymbolTable struct {
	mu     sync.RWMutex
	values map[string]values.Value
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{values: make(map[string]values.Value)}
}

func (t *SymbolTable) Set(name string, v values.Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.values[name] = v
}

func (t *SymbolTable) Get(name string) (values.Value, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := t.values[name]; ok {
		return v, nil
	}
	return values.Value{}, errs.Unbound("variable", name, t.keysLocked())
}

func (t *SymbolTable) keysLocked() []string {
	out := make([]string, 0, len(t.values))
	for k := range t.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FunctionTable is the process-wide table `defun` installs into and
// applications look names up in (§4.3/§4.6).
type FunctionTable struct {
	mu    sync.RWMutex
	funcs map[string]values.Value
}

func newFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: make(map[string]values.Value)}
}

func (t *FunctionTable) Install(name string, closure values.Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.funcs[name] = closure
}

func (t *FunctionTable) Lookup(name string) (values.Value, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if v, ok := t.funcs[name]; ok {
		return v, nil
	}
	return values.Value{}, errs.Unbound("function", name, t.keysLocked())
}

func (t *FunctionTable) keysLocked() []string {
	out := make([]string, 0, len(t.funcs))
	for k := range t.funcs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// BackIndexTable maps each vector's identity to the positions within
// it that currently hold cons or vector children (§3), supporting
// efficient traversal and structural-sharing audits without walking
// every slot.
type BackIndexTable struct {
	mu      sync.RWMutex
	entries map[uint64][]int
}

func newBackIndexTable() *BackIndexTable {
	return &BackIndexTable{entries: make(map[uint64][]int)}
}

// Record adds index i to vector id's back-index list if it isn't
// already present, and removes it when the stored value is no longer
// composite.
func (t *BackIndexTable) Record(id uint64, index int, isComposite bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := t.entries[id]
	pos := -1
	for j, v := range list {
		if v == index {
			pos = j
			break
		}
	}
	switch {
	case isComposite && pos < 0:
		t.entries[id] = append(list, index)
	case !isComposite && pos >= 0:
		t.entries[id] = append(list[:pos], list[pos+1:]...)
	}
}

func (t *BackIndexTable) Positions(id uint64) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]int, len(t.entries[id]))
	copy(out, t.entries[id])
	return out
}
