package runtime

import "testing"

func TestIdentityFactoryNeverRepeats(t *testing.T) {
	var seed [16]byte
	f := NewIdentityFactory(seed)
	seen := make(map[uint64]bool)
	for i := 0; i < 1000; i++ {
		id := f.Next()
		if seen[id] {
			t.Fatalf("identity %d repeated after %d allocations", id, i)
		}
		seen[id] = true
	}
}

func TestIdentityFactoryDiffersBySeed(t *testing.T) {
	var seedA, seedB [16]byte
	seedB[0] = 1
	a := NewIdentityFactory(seedA)
	b := NewIdentityFactory(seedB)
	if a.Next() == b.Next() {
		t.Errorf("identity factories seeded differently should not produce the same first identity")
	}
}
