// core/alphabet/alphabet.go
package alphabet

import (
	"fmt"
	"strings"
)

// Alphabet selects the symbol set a peptide sequence is re-encoded into
// before k-mer extraction. Reduced alphabets trade per-symbol information
// for robustness to conservative substitutions, and therefore use longer
// k-mer windows (see DefaultKSizes).
type Alphabet uint8

const (
	// Protein is the full 20-letter amino acid alphabet (identity encoding).
	Protein Alphabet = iota
	// Dayhoff groups amino acids into six classes by evolutionary
	// substitutability (a-f).
	Dayhoff
	// HydrophobicPolar is the binary hydrophobic (h) / polar (p) alphabet.
	HydrophobicPolar
)

// StopSymbol marks a premature translation stop in a peptide sequence.
const StopSymbol = '*'

// Parse maps a user-facing alphabet name to an Alphabet.
// "hp" is accepted as shorthand for "hydrophobic-polar".
func Parse(name string) (Alphabet, error) {
	switch name {
	case "protein":
		return Protein, nil
	case "dayhoff":
		return Dayhoff, nil
	case "hydrophobic-polar", "hp":
		return HydrophobicPolar, nil
	}
	return 0, fmt.Errorf("invalid alphabet %q: want protein, dayhoff, or hydrophobic-polar", name)
}

// FromCode restores an Alphabet from its persisted one-byte code.
func FromCode(c uint8) (Alphabet, error) {
	a := Alphabet(c)
	switch a {
	case Protein, Dayhoff, HydrophobicPolar:
		return a, nil
	}
	return 0, fmt.Errorf("invalid alphabet code %d", c)
}

// Code returns the one-byte code persisted in saved filters.
func (a Alphabet) Code() uint8 { return uint8(a) }

func (a Alphabet) String() string {
	switch a {
	case Protein:
		return "protein"
	case Dayhoff:
		return "dayhoff"
	case HydrophobicPolar:
		return "hydrophobic-polar"
	}
	return fmt.Sprintf("alphabet(%d)", uint8(a))
}

// dayhoffClass maps each amino acid to its Dayhoff class letter.
var dayhoffClass = map[byte]byte{
	'C': 'a',
	'A': 'b', 'G': 'b', 'P': 'b', 'S': 'b', 'T': 'b',
	'D': 'c', 'E': 'c', 'N': 'c', 'Q': 'c',
	'H': 'd', 'K': 'd', 'R': 'd',
	'F': 'e', 'W': 'e', 'Y': 'e',
	'I': 'f', 'L': 'f', 'M': 'f', 'V': 'f',
}

// hpClass maps each amino acid to 'h' (hydrophobic) or 'p' (polar).
var hpClass = map[byte]byte{
	'A': 'h', 'F': 'h', 'I': 'h', 'L': 'h', 'M': 'h', 'P': 'h', 'V': 'h', 'W': 'h',
	'C': 'p', 'D': 'p', 'E': 'p', 'G': 'p', 'H': 'p', 'K': 'p', 'N': 'p',
	'Q': 'p', 'R': 'p', 'S': 'p', 'T': 'p', 'Y': 'p',
}

// Encode re-encodes a peptide sequence into the target alphabet.
// Protein is the identity transform. Symbols without a class mapping
// (ambiguity codes, the stop symbol) are passed through unchanged, so
// k-mers spanning them simply never match anything inserted from clean
// reference peptides.
func Encode(seq string, a Alphabet) string {
	var class map[byte]byte
	switch a {
	case Protein:
		return seq
	case Dayhoff:
		class = dayhoffClass
	case HydrophobicPolar:
		class = hpClass
	default:
		return seq
	}
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		if c, ok := class[seq[i]]; ok {
			out[i] = c
		} else {
			out[i] = seq[i]
		}
	}
	return string(out)
}

// HasStop reports whether seq contains the stop symbol. The check is on the
// raw (pre-encoding) sequence and is used on the build side only.
func HasStop(seq string) bool {
	return strings.IndexByte(seq, StopSymbol) >= 0
}

// KSizes is the per-alphabet k-mer window configuration handed to the
// filter builder. Smaller alphabets need longer windows to keep
// discriminative power at comparable false-positive rates.
type KSizes struct {
	Protein          int
	Dayhoff          int
	HydrophobicPolar int
}

// DefaultKSizes returns the documented per-alphabet defaults.
func DefaultKSizes() KSizes {
	return KSizes{Protein: 7, Dayhoff: 11, HydrophobicPolar: 21}
}

// For returns the configured window size for alphabet a.
func (k KSizes) For(a Alphabet) int {
	switch a {
	case Dayhoff:
		return k.Dayhoff
	case HydrophobicPolar:
		return k.HydrophobicPolar
	default:
		return k.Protein
	}
}
