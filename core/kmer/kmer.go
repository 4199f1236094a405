// core/kmer/kmer.go
package kmer

// Extract returns the distinct k-length substrings of seq, in first-seen
// order. Sliding is by one position from index 0 to len(seq)-k. A sequence
// shorter than k yields nil: it simply contributes no k-mers, which is not
// an error. No case or whitespace normalization happens here; callers must
// pre-clean.
func Extract(seq string, k int) []string {
	if k <= 0 || len(seq) < k {
		return nil
	}
	n := len(seq) - k + 1
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		s := seq[i : i+k]
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Windows returns the number of k-length windows in seq (0 when shorter
// than k). This counts positions, not distinct substrings.
func Windows(seq string, k int) int {
	if k <= 0 || len(seq) < k {
		return 0
	}
	return len(seq) - k + 1
}
