// core/translate/complexity.go
package translate

import "pepfilter-core/kmer"

// DefaultComplexityRatio is the fastp threshold: a read passes when at
// least 30% of its bases differ from the next base.
const DefaultComplexityRatio = 0.3

// LowComplexityNucleotide implements the fastp sliding complexity test.
// Reads shorter than two bases carry no signal and are treated as low
// complexity.
func LowComplexityNucleotide(seq []byte) bool {
	if len(seq) < 2 {
		return true
	}
	diff := 0
	for i := 0; i+1 < len(seq); i++ {
		if normalize(seq[i]) != normalize(seq[i+1]) {
			diff++
		}
	}
	ratio := float64(diff) / float64(len(seq)-1)
	return ratio < DefaultComplexityRatio
}

// LowComplexityPeptide reports whether a translated (and encoded) frame is
// too repetitive to score: true when the distinct k-mer count, doubled, does
// not exceed the number of k-length windows. A frame shorter than k has no
// windows and is not judged here (the caller categorizes it as too short).
func LowComplexityPeptide(encoded string, k int) bool {
	w := kmer.Windows(encoded, k)
	if w == 0 {
		return false
	}
	return 2*len(kmer.Extract(encoded, k)) <= w
}
