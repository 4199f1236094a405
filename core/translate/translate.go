// Package translate produces peptide sequences from nucleotide reads:
// standard-code translation of all six reading frames, plus the
// low-complexity screens applied before any frame is scored.
package translate

// Frame is one translated reading frame of a read. Frame is +1..+3 for the
// forward strand and -1..-3 for the reverse complement, matching the usual
// six-frame convention.
type Frame struct {
	Frame   int
	Peptide string
}

// codon maps a normalized (uppercase, T not U) codon to its amino acid.
// '*' is the stop symbol.
var codon = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// normalize uppercases a nucleotide and folds U to T.
func normalize(b byte) byte {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if b == 'U' {
		b = 'T'
	}
	return b
}

// Translate translates seq in frame 0. Trailing partial codons are dropped;
// codons containing ambiguous bases become 'X'.
func Translate(seq []byte) string {
	n := len(seq) / 3
	out := make([]byte, 0, n)
	var c [3]byte
	for i := 0; i+3 <= len(seq); i += 3 {
		c[0] = normalize(seq[i])
		c[1] = normalize(seq[i+1])
		c[2] = normalize(seq[i+2])
		aa, ok := codon[string(c[:])]
		if !ok {
			aa = 'X'
		}
		out = append(out, aa)
	}
	return string(out)
}

// RevComp returns the reverse complement of seq. Ambiguous bases become 'N'.
func RevComp(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, j := 0, len(seq)-1; j >= 0; i, j = i+1, j-1 {
		switch normalize(seq[j]) {
		case 'A':
			out[i] = 'T'
		case 'C':
			out[i] = 'G'
		case 'G':
			out[i] = 'C'
		case 'T':
			out[i] = 'A'
		default:
			out[i] = 'N'
		}
	}
	return out
}

// SixFrames translates seq in all six reading frames.
func SixFrames(seq []byte) []Frame {
	frames := make([]Frame, 0, 6)
	rc := RevComp(seq)
	for off := 0; off < 3; off++ {
		if off < len(seq) {
			frames = append(frames, Frame{Frame: off + 1, Peptide: Translate(seq[off:])})
		}
		if off < len(rc) {
			frames = append(frames, Frame{Frame: -(off + 1), Peptide: Translate(rc[off:])})
		}
	}
	return frames
}
