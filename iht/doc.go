// Package iht implements the Index Hash Table: a bounded dictionary that
// assigns dense, stable indices to tiling keys.
//
// # Behavior
//
// A table of capacity size hands out indices 0, 1, 2, ... to distinct keys
// in first-seen order. Once all size slots are assigned the table is full,
// permanently: further unseen keys resolve to hash(key) mod size — a real
// collision with an existing occupant — and OverflowCount records each such
// event. Resolution degrades gracefully rather than failing; an undersized
// table costs representation fidelity, never an error.
//
// # Resolve vs Lookup
//
//	idx := table.Resolve(key) // may assign a new slot (mutating upsert)
//	idx := table.Lookup(key)  // pure query; unseen keys hash, nothing changes
//
// The two entry points make mutation explicit at the call site. A trained
// table that is no longer written to can serve Lookup from any number of
// goroutines without locking; concurrent Resolve calls require an external
// mutex.
//
// # Sizing
//
// The first overflow fires the optional OnFull hook and one warning log,
// signalling that the table is undersized for the state space it is seeing.
// Pick size comfortably above the number of distinct tiles the host expects
// to visit; tile-coding folklore says a power of two in the thousands.
package iht
