package env

import (
	"hash/fnv"
)

// Hash returns an order-independent hash of the snapshot's variables,
// consistent with Equal: snapshots that compare equal hash identically
// regardless of construction order. An empty snapshot hashes to zero.
func (e *Env) Hash() uint64 {
	var result uint64
	for key, value := range e.raw() {
		// Hash each entry independently and fold with XOR so that
		// iteration order doesn't matter. The separator byte keeps
		// ("AB","C") and ("A","BC") from colliding.
		entry := fnv.New64a()
		entry.Write([]byte(key))
		entry.Write([]byte{0})
		entry.Write([]byte(value))
		result ^= entry.Sum64()
	}
	return result
}
