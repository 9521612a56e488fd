package keyhash

import "math/rand/v2"

const (
	tableSize = 2048
	tableMask = tableSize - 1

	// tableStride decorrelates equal values at different key positions.
	tableStride = 449
)

// unhTable is filled once from a fixed-seed PCG so that Table is
// deterministic across processes, unlike the historical implementations
// that reseed per run.
var unhTable = func() [tableSize]uint64 {
	var t [tableSize]uint64
	rng := rand.New(rand.NewPCG(0x5b4c, 0x9e3779b97f4a7c15))
	for i := range t {
		t[i] = rng.Uint64()
	}
	return t
}()

// Table hashes key with the UNH tile-coding hash: each element, offset by
// position*tableStride and masked into the table, selects a pseudo-random
// word, and the selected words are summed with wraparound.
func Table(key []int64) uint64 {
	var sum uint64
	for i, v := range key {
		idx := (v + int64(i*tableStride)) & tableMask
		sum += unhTable[idx]
	}
	return sum
}
