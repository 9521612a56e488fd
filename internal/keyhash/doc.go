// Package keyhash hashes tiling keys (small ordered int64 sequences) to
// well-distributed uint64 values.
//
// # Key packing
//
// A tiling key is an ordered []int64. Go maps cannot key on slices, so the
// canonical form of a key is its fixed-width little-endian packing (Pack).
// The packed form doubles as the hash input, which keeps key equality and
// hash equality in agreement: two keys collide under Pack exactly when they
// are structurally equal.
//
// # Hash functions
//
// Two hashers are provided, both deterministic across processes:
//
//   - Sum: SipHash-2-4 over the packed key with fixed keys. The default.
//     Not used for any security purpose here; SipHash is simply a fast
//     64-bit hash with excellent distribution on short inputs.
//   - Table: the classic UNH tile-coding hash. Each key element, offset by
//     its position times a fixed stride, selects a word from a 2048-entry
//     pseudo-random table; the selected words are summed with wraparound.
//     Kept for parity with historical tile-coding implementations.
//
// Neither hasher is cryptographic and neither needs to be: the output is
// reduced modulo a table size to pick a slot, so only distribution quality
// matters.
package keyhash
