package iht

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/tilecode/internal/keyhash"
)

// Hasher maps a tiling key to a well-distributed uint64. Implementations
// must be pure: equal keys always produce equal sums.
type Hasher func(key []int64) uint64

// Built-in hashers. SipHash is the default; TableHash is the classic UNH
// tile-coding hash, kept for parity with historical implementations.
var (
	SipHash   Hasher = keyhash.Sum
	TableHash Hasher = keyhash.Table
)

// ErrInvalidCapacity indicates a non-positive table capacity.
type ErrInvalidCapacity struct {
	Size int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Size)
}

// IHT is a bounded table assigning dense indices to tiling keys.
//
// Not safe for concurrent mutation; see the package documentation for the
// read-only concurrency contract.
type IHT struct {
	size     int
	indices  map[string]int
	overflow int
	hasher   Hasher
	logger   *slog.Logger
	onFull   func(size int)
}

// New creates an empty table with the given capacity.
// Capacity is fixed for the table's lifetime.
func New(size int, optFns ...func(*Options)) (*IHT, error) {
	if size <= 0 {
		return nil, &ErrInvalidCapacity{Size: size}
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &IHT{
		size:    size,
		indices: make(map[string]int),
		hasher:  opts.Hasher,
		logger:  opts.Logger,
		onFull:  opts.OnFull,
	}, nil
}

// Resolve returns the index for key, assigning the next free slot if key is
// unseen and capacity remains. When the table is full, unseen keys resolve
// to hash(key) mod size and OverflowCount increments.
func (t *IHT) Resolve(key []int64) int {
	k := string(keyhash.Pack(key))
	if idx, ok := t.indices[k]; ok {
		return idx
	}

	if len(t.indices) < t.size {
		idx := len(t.indices)
		t.indices[k] = idx

		return idx
	}

	t.overflow++
	if t.overflow == 1 {
		t.notifyFull()
	}

	return int(t.hasher(key) % uint64(t.size))
}

// Lookup returns the index key would resolve to, without mutating the
// table: seen keys return their assigned index, unseen keys return
// hash(key) mod size.
func (t *IHT) Lookup(key []int64) int {
	if idx, ok := t.indices[string(keyhash.Pack(key))]; ok {
		return idx
	}

	return int(t.hasher(key) % uint64(t.size))
}

// Size returns the table capacity.
func (t *IHT) Size() int {
	return t.size
}

// Count returns the number of assigned slots.
func (t *IHT) Count() int {
	return len(t.indices)
}

// OverflowCount returns the number of collision events since the table
// filled up.
func (t *IHT) OverflowCount() int {
	return t.overflow
}

// Full reports whether every slot has been assigned.
func (t *IHT) Full() bool {
	return len(t.indices) == t.size
}

// notifyFull reports the NOT_FULL -> FULL transition. Called exactly once,
// on the first overflow event.
func (t *IHT) notifyFull() {
	t.logger.Warn("index hash table full, new keys will collide",
		"size", t.size,
	)
	if t.onFull != nil {
		t.onFull(t.size)
	}
}
