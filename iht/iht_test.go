package iht

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, size := range []int{0, -1, -1024} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			table, err := New(size)
			require.Nil(t, table)

			var ec *ErrInvalidCapacity
			require.ErrorAs(t, err, &ec)
			assert.Equal(t, size, ec.Size)
		})
	}
}

func TestResolveAssignsDenseIndices(t *testing.T) {
	table, err := New(16, WithLogger(discardLogger()))
	require.NoError(t, err)

	for i := int64(0); i < 16; i++ {
		assert.Equal(t, i, int64(table.Resolve([]int64{i, i * 7})))
		assert.Equal(t, int(i)+1, table.Count())
	}

	assert.True(t, table.Full())
	assert.Equal(t, 0, table.OverflowCount())
}

func TestResolveIsStable(t *testing.T) {
	table, err := New(8, WithLogger(discardLogger()))
	require.NoError(t, err)

	key := []int64{3, -1, 42}
	idx := table.Resolve(key)

	// The same key must resolve to the same index on every later call,
	// through either entry point, regardless of what else gets inserted.
	for i := int64(0); i < 20; i++ {
		table.Resolve([]int64{100 + i})
	}

	assert.Equal(t, idx, table.Resolve(key))
	assert.Equal(t, idx, table.Lookup(key))
}

func TestLookupNeverMutates(t *testing.T) {
	table, err := New(4, WithLogger(discardLogger()))
	require.NoError(t, err)

	table.Resolve([]int64{1})

	for i := int64(0); i < 10; i++ {
		idx := table.Lookup([]int64{1000 + i})
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}

	assert.Equal(t, 1, table.Count())
	assert.Equal(t, 0, table.OverflowCount())

	// Lookup on unseen keys must not disturb the assignment order of
	// subsequent Resolve calls.
	assert.Equal(t, 1, table.Resolve([]int64{2}))
}

func TestOverflow(t *testing.T) {
	const size = 8

	table, err := New(size, WithLogger(discardLogger()))
	require.NoError(t, err)

	for i := int64(0); i < size; i++ {
		table.Resolve([]int64{i})
	}
	require.True(t, table.Full())
	require.Equal(t, 0, table.OverflowCount())

	// One more distinct key: no new slot, a genuine collision with an
	// existing occupant, counted once.
	idx := table.Resolve([]int64{999})
	assert.Equal(t, 1, table.OverflowCount())
	assert.Equal(t, size, table.Count())
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, size)

	// The colliding key is not remembered: every later resolve of it is a
	// fresh overflow event with the same hashed slot.
	assert.Equal(t, idx, table.Resolve([]int64{999}))
	assert.Equal(t, 2, table.OverflowCount())
}

func TestOnFullFiresOnce(t *testing.T) {
	var calls []int

	table, err := New(2,
		WithLogger(discardLogger()),
		WithOnFull(func(size int) { calls = append(calls, size) }),
	)
	require.NoError(t, err)

	table.Resolve([]int64{1})
	table.Resolve([]int64{2})
	assert.Empty(t, calls, "filling the last slot is not yet an overflow")

	table.Resolve([]int64{3})
	table.Resolve([]int64{4})
	table.Resolve([]int64{5})

	assert.Equal(t, []int{2}, calls)
	assert.Equal(t, 3, table.OverflowCount())
}

func TestWithHasher(t *testing.T) {
	table, err := New(4,
		WithLogger(discardLogger()),
		WithHasher(TableHash),
	)
	require.NoError(t, err)

	key := []int64{77, 88}
	want := int(TableHash(key) % 4)

	assert.Equal(t, want, table.Lookup(key))
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	table, err := New(4, WithLogger(discardLogger()))
	require.NoError(t, err)

	keys := [][]int64{{1}, {2}, {3}, {4}, {5}, {6}}
	for _, k := range keys {
		table.Resolve(k)
	}
	require.Equal(t, 2, table.OverflowCount())

	restored, err := New(4, WithLogger(discardLogger()))
	require.NoError(t, err)
	require.NoError(t, restored.Restore(table.Snapshot()))

	assert.Equal(t, table.Count(), restored.Count())
	assert.Equal(t, table.OverflowCount(), restored.OverflowCount())
	for _, k := range keys {
		assert.Equal(t, table.Lookup(k), restored.Lookup(k))
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	tests := []struct {
		name string
		s    Snapshot
	}{
		{
			name: "capacity mismatch",
			s:    Snapshot{Size: 8},
		},
		{
			name: "too many entries",
			s: Snapshot{Size: 4, Entries: []Entry{
				{Key: []int64{1}, Index: 0}, {Key: []int64{2}, Index: 1},
				{Key: []int64{3}, Index: 2}, {Key: []int64{4}, Index: 3},
				{Key: []int64{5}, Index: 4},
			}},
		},
		{
			name: "sparse indices",
			s: Snapshot{Size: 4, Entries: []Entry{
				{Key: []int64{1}, Index: 0}, {Key: []int64{2}, Index: 2},
			}},
		},
		{
			name: "duplicate index",
			s: Snapshot{Size: 4, Entries: []Entry{
				{Key: []int64{1}, Index: 0}, {Key: []int64{2}, Index: 0},
			}},
		},
		{
			name: "duplicate key",
			s: Snapshot{Size: 4, Entries: []Entry{
				{Key: []int64{1}, Index: 0}, {Key: []int64{1}, Index: 1},
			}},
		},
		{
			name: "negative overflow",
			s:    Snapshot{Size: 4, OverflowCount: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := New(4, WithLogger(discardLogger()))
			require.NoError(t, err)
			assert.Error(t, table.Restore(tt.s))
		})
	}
}
