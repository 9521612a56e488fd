package keyhash

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Fixed SipHash keys. Changing these changes every hashed slot assignment,
// so they are part of the on-disk compatibility surface for hosts that
// persist stateless encodings.
const (
	sipK0 = 0x74696c65636f6465 // "tilecode"
	sipK1 = 0x6b657968617368ff
)

// Pack encodes key as fixed-width little-endian bytes, 8 bytes per element.
// The result is the canonical map-key form of a tiling key.
func Pack(key []int64) []byte {
	buf := make([]byte, 8*len(key))
	for i, v := range key {
		binary.LittleEndian.PutUint64(buf[8*i:], uint64(v))
	}
	return buf
}

// Unpack is the inverse of Pack. The input length must be a multiple of 8;
// trailing partial words are ignored.
func Unpack(buf []byte) []int64 {
	key := make([]int64, len(buf)/8)
	for i := range key {
		key[i] = int64(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return key
}

// Sum hashes key with SipHash-2-4 under fixed keys.
// Deterministic across processes and platforms.
func Sum(key []int64) uint64 {
	return siphash.Hash(sipK0, sipK1, Pack(key))
}
