package env

import (
	"testing"
)

// TestHashOrderIndependence tests that hashing is insensitive to
// construction and iteration order.
func TestHashOrderIndependence(t *testing.T) {
	first, err := FromPairs("A", "1", "B", "2", "C", "3")
	if err != nil {
		t.Fatal("unable to construct snapshot:", err)
	}
	second, err := FromPairs("C", "3", "A", "1", "B", "2")
	if err != nil {
		t.Fatal("unable to construct snapshot:", err)
	}
	if first.Hash() != second.Hash() {
		t.Error("equal snapshots hash differently")
	}
}

// TestHashEntryBoundary tests that the key/value boundary participates in
// the hash.
func TestHashEntryBoundary(t *testing.T) {
	if Of("AB", "C").Hash() == Of("A", "BC").Hash() {
		t.Error("entries with shifted key/value boundaries hash identically")
	}
}

// TestHashEmpty tests that empty and nil snapshots hash to zero.
func TestHashEmpty(t *testing.T) {
	if Empty().Hash() != 0 {
		t.Error("empty snapshot hash is not zero")
	}
	var snapshot *Env
	if snapshot.Hash() != 0 {
		t.Error("nil snapshot hash is not zero")
	}
}
