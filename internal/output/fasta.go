// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"pepfilter/internal/classify"
)

// WriteCodingPeptide appends the winning translated peptide of a coding
// read as one FASTA record.
func WriteCodingPeptide(w io.Writer, r classify.Result) error {
	if r.Peptide == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, ">%s frame=%+d jaccard=%s\n%s\n",
		r.ReadID, r.Frame, FormatScore(r.Score.Value()), r.Peptide)
	return err
}

// WriteNucleotide appends the original read as one FASTA record, tagged
// with its category.
func WriteNucleotide(w io.Writer, r classify.Result) error {
	if r.Seq == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, ">%s category=%s\n%s\n", r.ReadID, r.Category, r.Seq)
	return err
}
