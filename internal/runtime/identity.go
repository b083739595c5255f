package runtime

import (
	"encoding/binary"
	"sync/atomic"

	"golang.org/x/crypto/blake2b"
)

// IdentityFactory hands out the fresh, opaque-looking 64-bit
// identities absvector uses for vector equality (§3: "two distinct
// absvector calls are never equal even if contents match"). It is
// grounded on the teacher's core/sdk/secret keyed-hash DisplayID
// scheme: a monotonic counter guarantees uniqueness, and hashing it
// through BLAKE2b keeps identities from leaking allocation order.
type IdentityFactory struct {
	counter uint64
	seed    [16]byte
}

func NewIdentityFactory(seed [16]byte) *IdentityFactory {
	return &IdentityFactory{seed: seed}
}

func (f *IdentityFactory) Next() uint64 {
	n := atomic.AddUint64(&f.counter, 1)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], n)

	h, _ := blake2b.New(8, f.seed[:])
	h.Write(buf[:])
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum)
}
