package iht

import (
	"fmt"

	"github.com/hupe1980/tilecode/internal/keyhash"
)

// Entry is one key-to-index assignment.
type Entry struct {
	Key   []int64
	Index int
}

// Snapshot is the complete persistable state of a table: the assignments
// plus the overflow counter. How (and whether) a snapshot is serialized is
// the host's business; the types here are plain Go values.
type Snapshot struct {
	Size          int
	Entries       []Entry
	OverflowCount int
}

// Snapshot exports the table state. Entry order is unspecified; only the
// mapping and counters matter for restore.
func (t *IHT) Snapshot() Snapshot {
	entries := make([]Entry, 0, len(t.indices))
	for k, idx := range t.indices {
		entries = append(entries, Entry{Key: keyhash.Unpack([]byte(k)), Index: idx})
	}

	return Snapshot{
		Size:          t.size,
		Entries:       entries,
		OverflowCount: t.overflow,
	}
}

// Restore replaces the table state with s. The snapshot must have the same
// capacity as the table and its indices must be a dense bijection over
// [0, len(entries)).
func (t *IHT) Restore(s Snapshot) error {
	if s.Size != t.size {
		return fmt.Errorf("snapshot capacity %d does not match table capacity %d", s.Size, t.size)
	}
	if len(s.Entries) > s.Size {
		return fmt.Errorf("snapshot has %d entries, capacity is %d", len(s.Entries), s.Size)
	}
	if s.OverflowCount < 0 {
		return fmt.Errorf("negative overflow count %d", s.OverflowCount)
	}

	indices := make(map[string]int, len(s.Entries))
	seen := make([]bool, len(s.Entries))
	for _, e := range s.Entries {
		if e.Index < 0 || e.Index >= len(s.Entries) {
			return fmt.Errorf("snapshot index %d outside dense range [0, %d)", e.Index, len(s.Entries))
		}
		if seen[e.Index] {
			return fmt.Errorf("snapshot index %d assigned twice", e.Index)
		}
		seen[e.Index] = true

		k := string(keyhash.Pack(e.Key))
		if _, ok := indices[k]; ok {
			return fmt.Errorf("snapshot key %v assigned twice", e.Key)
		}
		indices[k] = e.Index
	}

	t.indices = indices
	t.overflow = s.OverflowCount

	return nil
}
