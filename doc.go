// Package tilecode implements tile coding: encoding a point in a
// continuous feature space into a small set of integer tile indices, the
// sparse binary representation used by online linear learners.
//
// # Quick Start
//
//	table, _ := iht.New(4096)
//
//	// Learning path: assigns fresh indices to newly visited tiles.
//	indices, _ := tilecode.Encode(table, 8, []float64{3.6, 7.21})
//
//	// Serving path: never mutates the table (safe for concurrent readers
//	// once training has stopped).
//	indices, _ = tilecode.EncodeReadOnly(table, 8, []float64{3.6, 7.21})
//
//	// No table at all: pure hash-based indices.
//	indices, _ = tilecode.EncodeStateless(4096, 8, []float64{3.6, 7.21})
//
// Each call returns exactly numTilings indices. Appending discrete values
// (an action id, a mode switch) partitions the tile space per value:
//
//	indices, _ := tilecode.Encode(table, 8, state, action)
//
// # How it works
//
// The space is covered by numTilings overlapping grids, each displaced
// against the others by an asymmetric per-dimension offset so that nearby
// points share most (but not all) of their tiles. Every grid contributes
// one integer key; keys are mapped to dense indices by an iht.IHT, or
// hashed directly on the stateless path.
//
// Tile width is 1/numTilings per dimension in input units: two points
// closer than one tile width in a single dimension share at least
// numTilings-1 indices, while points further than a full tile apart in
// every dimension land on disjoint tiles (capacity permitting). Scale
// inputs accordingly; the encoder does no normalization.
//
// # Consuming the encoding
//
// The index list is a sparse binary vector over [0, size). SparseDot
// computes the inner product against a dense weight vector, and ActiveSet
// materializes the one-hot bitset when a learner wants set operations:
//
//	q := tilecode.SparseDot(indices, weights)
//	active := tilecode.ActiveSet(indices, 4096)
//
// # Configured encoders
//
// The package-level functions are zero-config sugar. For logging, metrics
// or a custom hash, build an Encoder:
//
//	enc := tilecode.New(
//	    tilecode.WithLogger(tilecode.NewTextLogger(slog.LevelDebug)),
//	    tilecode.WithMetrics(collector),
//	)
//	indices, err := enc.Encode(table, 8, floats)
package tilecode
