package values

import "testing"

func TestVectorRecordGrowsByOne(t *testing.T) {
	v := NewVectorRecord(1)
	if _, ok := v.Set(1, Int(10)); !ok {
		t.Fatalf("expected index 1 to be a valid append on an empty vector")
	}
	if _, ok := v.Set(2, Int(20)); !ok {
		t.Fatalf("expected index 2 to be a valid append after one element")
	}
	if _, ok := v.Set(4, Int(40)); ok {
		t.Errorf("expected index 4 to be rejected: only length+1 may grow the vector")
	}
	if got, ok := v.Get(1); !ok || got.AsInt() != 10 {
		t.Errorf("Get(1) = %v, %v, want 10, true", got, ok)
	}
	if _, ok := v.Get(3); ok {
		t.Errorf("Get(3) should be out of range")
	}
}

func TestVectorRecordSetReportsComposite(t *testing.T) {
	v := NewVectorRecord(1)
	isComposite, ok := v.Set(1, Int(1))
	if !ok || isComposite {
		t.Errorf("storing an int should not be reported as composite")
	}
	isComposite, ok = v.Set(2, ConsSeq(Int(1)))
	if !ok || !isComposite {
		t.Errorf("storing a cons should be reported as composite")
	}
}
