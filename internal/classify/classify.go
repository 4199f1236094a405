// Package classify turns one nucleotide read into a coding/non-coding
// decision by scoring its translated frames against the peptide Bloom
// table.
package classify

import (
	"strings"

	"pepfilter-core/alphabet"
	"pepfilter-core/bloom"
	"pepfilter-core/fasta"
	"pepfilter-core/score"
	"pepfilter-core/translate"
)

// Category is the classification outcome for a read.
type Category string

const (
	Coding           Category = "coding"
	NonCoding        Category = "non_coding"
	TooShort         Category = "too_short"
	AllFramesStop    Category = "all_frames_have_stop_codons"
	LowComplexityNuc Category = "low_complexity_nucleotide"
	LowComplexityPep Category = "low_complexity_peptide"
)

// Result is the scored classification of one read.
type Result struct {
	ReadID     string
	SourceFile string
	Frame      int // winning frame; 0 when no frame was scorable
	Score      score.Score
	Category   Category
	Peptide    string // winning translated peptide (raw, pre-encoding)
	Seq        string // original nucleotide sequence
}

// Classifier scores reads against a built table. It is read-only after
// construction and safe for concurrent Classify calls.
type Classifier struct {
	Table     *bloom.Table
	Alphabet  alphabet.Alphabet
	KSize     int
	Threshold float64
}

// Classify translates rec in six frames and scores each frame that
// survives the screens. Frames containing a stop are skipped on the query
// side; frames shorter than k contribute no k-mers; low-complexity frames
// are excluded from scoring. The read's score is the best frame's
// containment, and the read is coding when that score reaches the
// threshold.
func (c *Classifier) Classify(rec fasta.Record) Result {
	res := Result{ReadID: rec.ID, Seq: string(rec.Seq)}

	if translate.LowComplexityNucleotide(rec.Seq) {
		res.Category = LowComplexityNuc
		return res
	}

	var (
		scored    bool
		sawClean  bool // at least one frame without a stop
		sawLowPep bool
	)
	for _, fr := range translate.SixFrames(rec.Seq) {
		if strings.ContainsRune(fr.Peptide, alphabet.StopSymbol) {
			continue
		}
		sawClean = true
		if len(fr.Peptide) < c.KSize {
			continue
		}
		encoded := alphabet.Encode(fr.Peptide, c.Alphabet)
		if translate.LowComplexityPeptide(encoded, c.KSize) {
			sawLowPep = true
			continue
		}
		s := score.Containment(c.Table, encoded)
		if !scored || s.Value() > res.Score.Value() {
			res.Score = s
			res.Frame = fr.Frame
			res.Peptide = fr.Peptide
		}
		scored = true
	}

	switch {
	case scored && res.Score.Value() >= c.Threshold:
		res.Category = Coding
	case scored:
		res.Category = NonCoding
	case !sawClean:
		res.Category = AllFramesStop
	case sawLowPep:
		res.Category = LowComplexityPep
	default:
		res.Category = TooShort
	}
	return res
}
