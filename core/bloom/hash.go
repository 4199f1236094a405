// core/bloom/hash.go
package bloom

import "github.com/cespare/xxhash/v2"

// HashVersion identifies the position-derivation scheme. It is persisted in
// saved filters so their hash behavior is pinned independently of the code
// that reloads them; an incompatible scheme would ship as version 2
// side-by-side rather than silently changing existing filters.
const HashVersion uint8 = 1

// positions derives one bit position per table for item, appending to out
// (reused to avoid per-item allocation on hot paths).
//
// Scheme v1: h1 = xxHash64(item), h2 = SplitMix64(h1), and the position in
// table i is (h1 + i*h2) mod m. The double-hash expansion keeps inter-table
// correlation low enough that the observed false-positive rate tracks the
// theoretical (1-e^(-n/m))^k bound, while costing a single string hash per
// item. xxHash is seedless and stable across processes, which saved filters
// depend on.
func positions(item string, n int, m uint64, out []uint64) []uint64 {
	h1 := xxhash.Sum64String(item)
	h2 := mix(h1)
	if h2 == 0 {
		h2 = 1
	}
	out = out[:0]
	for i := uint64(0); i < uint64(n); i++ {
		out = append(out, (h1+i*h2)%m)
	}
	return out
}

// mix scrambles a 64-bit value with SplitMix64 (public domain) to derive a
// second hash that is statistically independent of the first.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
