// Package score computes the Jaccard-like containment of a query peptide's
// k-mers against a built Bloom table.
package score

import (
	"pepfilter-core/bloom"
	"pepfilter-core/kmer"
)

// Score is the containment of one query: Found of Total distinct k-mers
// tested positive. It is computed fresh per query and never persisted.
type Score struct {
	Found int
	Total int
}

// Value returns the containment fraction in [0,1]. A query with no k-mers
// (shorter than k) scores exactly 0: no evidence cannot affirm coding.
func (s Score) Value() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Found) / float64(s.Total)
}

// Containment extracts the query's distinct k-mers using the table's own
// k-mer size and counts how many test positive. The query must already be
// encoded with the alphabet the table was built with; passing a different
// encoding is a caller error the table cannot detect. Read-only over the
// table, safe for concurrent callers after the build phase.
func Containment(t *bloom.Table, encoded string) Score {
	kmers := kmer.Extract(encoded, t.Params().KSize)
	s := Score{Total: len(kmers)}
	for _, km := range kmers {
		if t.Contains(km) {
			s.Found++
		}
	}
	return s
}
