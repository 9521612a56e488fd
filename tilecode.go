package tilecode

import (
	"math"
	"time"

	"github.com/hupe1980/tilecode/iht"
)

// Encoder turns float vectors into tile indices. The zero-config encoder
// behind the package-level functions logs nothing and collects nothing;
// build one with New to wire in a logger, metrics or a custom stateless
// hash.
//
// An Encoder holds no per-call state and is safe for concurrent use; the
// concurrency contract of each call is that of the resolver it is given.
type Encoder struct {
	logger  *Logger
	metrics MetricsCollector
	hasher  Hasher
}

// New creates an Encoder.
func New(optFns ...Option) *Encoder {
	opts := options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
		hasher:  iht.SipHash,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Encoder{
		logger:  opts.logger,
		metrics: opts.metrics,
		hasher:  opts.hasher,
	}
}

// Encode returns the numTilings tile indices for floats (plus optional
// discrete ints), assigning fresh table slots to newly visited tiles.
func (e *Encoder) Encode(table *iht.IHT, numTilings int, floats []float64, ints ...int64) ([]int, error) {
	return e.EncodeWith(table, false, numTilings, floats, ints...)
}

// EncodeReadOnly is Encode without the side effects: unseen tiles resolve
// to hashed slots and the table is left untouched. Safe to call
// concurrently against a table that is no longer being trained.
func (e *Encoder) EncodeReadOnly(table *iht.IHT, numTilings int, floats []float64, ints ...int64) ([]int, error) {
	return e.EncodeWith(table, true, numTilings, floats, ints...)
}

// EncodeStateless encodes without any table: every tile resolves to
// hash(key) mod size. Pure; two processes with the same hasher agree on
// every index.
func (e *Encoder) EncodeStateless(size, numTilings int, floats []float64, ints ...int64) ([]int, error) {
	r, err := NewStateless(size, e.hasher)
	if err != nil {
		return nil, translateError(err)
	}

	return e.EncodeWith(r, true, numTilings, floats, ints...)
}

// EncodeWith is the general form: encode against any Resolver. readonly
// selects the pure entry point (Lookup) over the mutating one (Resolve).
func (e *Encoder) EncodeWith(r Resolver, readonly bool, numTilings int, floats []float64, ints ...int64) ([]int, error) {
	start := time.Now()

	indices, err := e.encode(r, readonly, numTilings, floats, ints)

	e.metrics.RecordEncode(numTilings, time.Since(start), err)
	e.logger.LogEncode(numTilings, len(floats), err)

	return indices, err
}

func (e *Encoder) encode(r Resolver, readonly bool, numTilings int, floats []float64, ints []int64) ([]int, error) {
	if numTilings <= 0 {
		return nil, &ErrInvalidTilingCount{NumTilings: numTilings}
	}

	// Track overflow events caused by this call when the resolver exposes
	// its counter (the IHT does; Stateless has nothing to overflow).
	var overflowBefore int
	counter, counted := r.(interface{ OverflowCount() int })
	counted = counted && !readonly
	if counted {
		overflowBefore = counter.OverflowCount()
	}

	// Quantize to the finest sub-cell grid; from here on one tile is
	// numTilings quanta wide.
	qfloats := make([]int64, len(floats))
	for i, f := range floats {
		qfloats[i] = int64(math.Floor(f * float64(numTilings)))
	}

	indices := make([]int, 0, numTilings)
	key := make([]int64, 0, 1+len(floats)+len(ints))

	for t := 0; t < numTilings; t++ {
		key = append(key[:0], int64(t))

		// Displace tiling t by t*(1+2i) quanta in dimension i. The odd
		// strides keep the tilings staggered asymmetrically, so they
		// generalize in different directions without aliasing each other.
		b := int64(t)
		for _, q := range qfloats {
			key = append(key, floorDiv(q+b, int64(numTilings)))
			b += int64(2 * t)
		}
		key = append(key, ints...)

		if readonly {
			indices = append(indices, r.Lookup(key))
		} else {
			indices = append(indices, r.Resolve(key))
		}
	}

	if counted {
		if events := counter.OverflowCount() - overflowBefore; events > 0 {
			e.metrics.RecordOverflow(events)
		}
	}

	return indices, nil
}

// floorDiv divides toward negative infinity, so negative coordinates tile
// consistently with positive ones.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

var defaultEncoder = New()

// Encode encodes with the zero-config encoder. See Encoder.Encode.
func Encode(table *iht.IHT, numTilings int, floats []float64, ints ...int64) ([]int, error) {
	return defaultEncoder.Encode(table, numTilings, floats, ints...)
}

// EncodeReadOnly encodes with the zero-config encoder. See
// Encoder.EncodeReadOnly.
func EncodeReadOnly(table *iht.IHT, numTilings int, floats []float64, ints ...int64) ([]int, error) {
	return defaultEncoder.EncodeReadOnly(table, numTilings, floats, ints...)
}

// EncodeStateless encodes with the zero-config encoder. See
// Encoder.EncodeStateless.
func EncodeStateless(size, numTilings int, floats []float64, ints ...int64) ([]int, error) {
	return defaultEncoder.EncodeStateless(size, numTilings, floats, ints...)
}
