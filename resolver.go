package tilecode

import "github.com/hupe1980/tilecode/iht"

// Hasher maps a tiling key to a well-distributed uint64.
// Alias of iht.Hasher so both packages speak the same type.
type Hasher = iht.Hasher

// Resolver maps tiling keys to indices. It is a capability, not a type
// hierarchy: anything that can resolve a key to an index fits. The two
// implementations shipped here are *iht.IHT (bounded table, dense indices)
// and *Stateless (pure hash, no state).
type Resolver interface {
	// Resolve returns the index for key and may assign a new one.
	Resolve(key []int64) int

	// Lookup returns the index for key and never mutates.
	Lookup(key []int64) int
}

var (
	_ Resolver = (*iht.IHT)(nil)
	_ Resolver = (*Stateless)(nil)
)

// Stateless resolves every key to hash(key) mod size. It holds no state,
// so Resolve and Lookup coincide and concurrent use is always safe.
type Stateless struct {
	size   int
	hasher Hasher
}

// NewStateless creates a stateless resolver over [0, size).
// A nil hasher selects the default (iht.SipHash).
func NewStateless(size int, hasher Hasher) (*Stateless, error) {
	if size <= 0 {
		return nil, &iht.ErrInvalidCapacity{Size: size}
	}
	if hasher == nil {
		hasher = iht.SipHash
	}

	return &Stateless{size: size, hasher: hasher}, nil
}

// Resolve implements Resolver.
func (s *Stateless) Resolve(key []int64) int {
	return s.Lookup(key)
}

// Lookup implements Resolver.
func (s *Stateless) Lookup(key []int64) int {
	return int(s.hasher(key) % uint64(s.size))
}

// Size returns the index range upper bound.
func (s *Stateless) Size() int {
	return s.size
}
