// Package bloom implements the peptide k-mer membership index: a classic
// partitioned Bloom filter with N independent bit arrays of M bits each,
// addressed by a versioned double-hashing family.
//
// Guarantees: Contains never returns false for an inserted item (no false
// negatives); false positives occur with probability close to
// (1-e^(-n/M))^N for n inserted items. Insertion is monotonic and
// idempotent; there is no deletion and no resizing.
//
// Concurrency: a Table moves through two phases. During the build phase
// Insert calls must come from a single goroutine (or be externally
// serialized); once building is done, Contains is read-only and safe for
// any number of concurrent callers. The transition is a caller contract,
// not enforced here.
package bloom

import (
	"errors"

	"pepfilter-core/alphabet"
)

const wordBits = 64

var (
	ErrBadKSize      = errors.New("bloom: k-mer size must be >= 1")
	ErrBadTableCount = errors.New("bloom: table count must be >= 1")
	ErrBadTableSize  = errors.New("bloom: table size must be >= 1 bit")

	ErrBadMagic      = errors.New("bloom: not a saved peptide filter (bad magic)")
	ErrBadVersion    = errors.New("bloom: unsupported filter format version")
	ErrTruncated     = errors.New("bloom: saved filter is truncated")
	ErrKSizeMismatch = errors.New("bloom: saved filter k-mer size does not match expected k-mer size")
)

// Params are the construction parameters of a Table. They are part of the
// filter's identity: they are persisted alongside the bit arrays and fixed
// for the life of the table.
type Params struct {
	KSize    int               // k-mer window the filter was built for
	Alphabet alphabet.Alphabet // encoding the inserted k-mers came from
	Tables   int               // N, number of independent bit arrays
	Bits     uint64            // M, bits per array
}

// Table is the Bloom index. The zero value is not usable; construct with
// New or Load.
type Table struct {
	params   Params
	words    [][]uint64 // one bitset per table, ceil(Bits/64) words each
	inserted uint64     // distinct items inserted (best-effort metadata)
	scratch  []uint64   // position buffer reused across Insert calls
}

// New allocates an empty Table with all bits zero.
func New(p Params) (*Table, error) {
	if p.KSize < 1 {
		return nil, ErrBadKSize
	}
	if p.Tables < 1 {
		return nil, ErrBadTableCount
	}
	if p.Bits < 1 {
		return nil, ErrBadTableSize
	}
	wordsPer := (p.Bits + wordBits - 1) / wordBits
	w := make([][]uint64, p.Tables)
	for i := range w {
		w[i] = make([]uint64, wordsPer)
	}
	return &Table{
		params:  p,
		words:   w,
		scratch: make([]uint64, 0, p.Tables),
	}, nil
}

// Params returns the construction parameters.
func (t *Table) Params() Params { return t.params }

// Inserted returns the number of distinct items inserted so far.
func (t *Table) Inserted() uint64 { return t.inserted }

// Insert sets one bit per table for item. Re-inserting an item leaves the
// table unchanged. Build-phase only: not safe for concurrent callers.
func (t *Table) Insert(item string) {
	t.scratch = positions(item, t.params.Tables, t.params.Bits, t.scratch)
	changed := false
	for i, pos := range t.scratch {
		w := pos / wordBits
		mask := uint64(1) << (pos % wordBits)
		if t.words[i][w]&mask == 0 {
			t.words[i][w] |= mask
			changed = true
		}
	}
	if changed {
		t.inserted++
	}
}

// Contains reports whether item may have been inserted: true iff the bit
// for item is set in every table. Read-only; safe for concurrent callers
// once inserts have stopped.
func (t *Table) Contains(item string) bool {
	pos := positions(item, t.params.Tables, t.params.Bits, make([]uint64, 0, t.params.Tables))
	for i, p := range pos {
		if t.words[i][p/wordBits]&(uint64(1)<<(p%wordBits)) == 0 {
			return false
		}
	}
	return true
}
