// Package filter builds the peptide Bloom index from reference peptide
// records.
package filter

import (
	"context"

	"pepfilter-core/alphabet"
	"pepfilter-core/bloom"
	"pepfilter-core/fasta"
	"pepfilter-core/kmer"
)

// Config carries the construction parameters for a build. KSize of 0 picks
// the per-alphabet default from KSizes (an explicit configuration table, so
// builders with different defaults can coexist).
type Config struct {
	KSize    int
	Alphabet alphabet.Alphabet
	Tables   int
	Bits     uint64
	KSizes   alphabet.KSizes
}

// ResolveKSize returns the effective k-mer size for the config.
func (c Config) ResolveKSize() int {
	if c.KSize > 0 {
		return c.KSize
	}
	return c.KSizes.For(c.Alphabet)
}

// Stats summarizes a build.
type Stats struct {
	Records  int    // records consumed
	Skipped  int    // records excluded for containing the stop symbol
	Inserted uint64 // distinct k-mers inserted into the table
}

// Build folds peptide records into a fresh Bloom table: records whose raw
// sequence contains the stop symbol are skipped entirely (premature-stop
// peptides are translation artifacts, not evidence); every other record is
// encoded to the target alphabet, k-merized, and inserted. Insertion is
// commutative and idempotent, so record order never changes the result.
// The fold is sequential: the table's build phase is single-writer.
func Build(ctx context.Context, records <-chan fasta.Record, cfg Config) (*bloom.Table, Stats, error) {
	k := cfg.ResolveKSize()
	table, err := bloom.New(bloom.Params{
		KSize:    k,
		Alphabet: cfg.Alphabet,
		Tables:   cfg.Tables,
		Bits:     cfg.Bits,
	})
	if err != nil {
		return nil, Stats{}, err
	}

	var st Stats
	for rec := range records {
		select {
		case <-ctx.Done():
			return nil, st, ctx.Err()
		default:
		}
		st.Records++
		raw := string(rec.Seq)
		if alphabet.HasStop(raw) {
			st.Skipped++
			continue
		}
		encoded := alphabet.Encode(raw, cfg.Alphabet)
		for _, km := range kmer.Extract(encoded, k) {
			table.Insert(km)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	st.Inserted = table.Inserted()
	return table, st, nil
}

// BuildFile streams path (FASTA, gzip and "-" supported) through Build.
func BuildFile(ctx context.Context, path string, cfg Config) (*bloom.Table, Stats, error) {
	records, err := fasta.StreamRecordsCtx(ctx, path)
	if err != nil {
		return nil, Stats{}, err
	}
	return Build(ctx, records, cfg)
}
