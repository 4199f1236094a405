// internal/output/fasta_test.go
package output

import (
	"bytes"
	"testing"

	"pepfilter/internal/classify"

	"pepfilter-core/score"
)

func TestWriteCodingPeptide(t *testing.T) {
	var buf bytes.Buffer
	r := classify.Result{
		ReadID:   "read1",
		Frame:    -2,
		Score:    score.Score{Found: 3, Total: 4},
		Category: classify.Coding,
		Peptide:  "MKLVRT",
	}
	if err := WriteCodingPeptide(&buf, r); err != nil {
		t.Fatalf("WriteCodingPeptide: %v", err)
	}
	want := ">read1 frame=-2 jaccard=0.75\nMKLVRT\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteCodingPeptideEmptySkipped(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCodingPeptide(&buf, classify.Result{ReadID: "r"}); err != nil {
		t.Fatalf("WriteCodingPeptide: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty peptide, got %q", buf.String())
	}
}

func TestWriteNucleotide(t *testing.T) {
	var buf bytes.Buffer
	r := classify.Result{
		ReadID:   "read2",
		Category: classify.NonCoding,
		Seq:      "ATGAAA",
	}
	if err := WriteNucleotide(&buf, r); err != nil {
		t.Fatalf("WriteNucleotide: %v", err)
	}
	want := ">read2 category=non_coding\nATGAAA\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
