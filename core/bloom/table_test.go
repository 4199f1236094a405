package bloom

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"pepfilter-core/alphabet"
)

func testParams() Params {
	return Params{KSize: 7, Alphabet: alphabet.Protein, Tables: 4, Bits: 1 << 16}
}

func TestNewRejectsBadParams(t *testing.T) {
	_, err := New(Params{KSize: 0, Alphabet: alphabet.Protein, Tables: 4, Bits: 64})
	require.ErrorIs(t, err, ErrBadKSize)

	_, err = New(Params{KSize: 7, Alphabet: alphabet.Protein, Tables: 0, Bits: 64})
	require.ErrorIs(t, err, ErrBadTableCount)

	_, err = New(Params{KSize: 7, Alphabet: alphabet.Protein, Tables: 4, Bits: 0})
	require.ErrorIs(t, err, ErrBadTableSize)
}

func TestEmptyTableContainsNothing(t *testing.T) {
	tab, err := New(testParams())
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.False(t, tab.Contains(fmt.Sprintf("MKLVRTS%03d", i)))
	}
}

func TestNoFalseNegatives(t *testing.T) {
	tab, err := New(testParams())
	require.NoError(t, err)

	items := make([]string, 500)
	for i := range items {
		items[i] = fmt.Sprintf("ins%07d", i)
	}
	for _, it := range items {
		tab.Insert(it)
		require.True(t, tab.Contains(it))
	}
	// Still present after every unrelated later insertion.
	for _, it := range items {
		require.True(t, tab.Contains(it))
	}
}

func TestInsertIdempotent(t *testing.T) {
	once, err := New(testParams())
	require.NoError(t, err)
	twice, err := New(testParams())
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		item := fmt.Sprintf("kmer%04d", i)
		once.Insert(item)
		twice.Insert(item)
		twice.Insert(item)
	}
	require.Equal(t, once.Inserted(), twice.Inserted())

	var a, b bytes.Buffer
	_, err = once.WriteTo(&a)
	require.NoError(t, err)
	_, err = twice.WriteTo(&b)
	require.NoError(t, err)
	require.Equal(t, a.Bytes(), b.Bytes())
}

func TestHashDeterminism(t *testing.T) {
	// Same inputs must land on the same positions across independent runs
	// of the derivation, which saved filters rely on.
	var scratch1, scratch2 []uint64
	for i := 0; i < 100; i++ {
		item := fmt.Sprintf("det%05d", i)
		scratch1 = positions(item, 4, 1<<16, scratch1)
		scratch2 = positions(item, 4, 1<<16, scratch2)
		require.Equal(t, scratch1, scratch2)
		for _, p := range scratch1 {
			require.Less(t, p, uint64(1<<16))
		}
	}
}

func TestRoundTripBitExact(t *testing.T) {
	tab, err := New(testParams())
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		tab.Insert(fmt.Sprintf("rt%06d", i))
	}

	var buf bytes.Buffer
	_, err = tab.WriteTo(&buf)
	require.NoError(t, err)
	saved := append([]byte(nil), buf.Bytes()...)

	got, err := ReadFrom(&buf, 7)
	require.NoError(t, err)
	require.Equal(t, tab.Params(), got.Params())
	require.Equal(t, tab.Inserted(), got.Inserted())

	var buf2 bytes.Buffer
	_, err = got.WriteTo(&buf2)
	require.NoError(t, err)
	require.Equal(t, saved, buf2.Bytes())

	for i := 0; i < 1000; i++ {
		require.True(t, got.Contains(fmt.Sprintf("rt%06d", i)))
	}
}

func TestSaveLoadFile(t *testing.T) {
	tab, err := New(testParams())
	require.NoError(t, err)
	tab.Insert("MKLVRTS")

	path := t.TempDir() + "/peptides.bloomfilter"
	require.NoError(t, tab.Save(path))

	got, err := Load(path, 7)
	require.NoError(t, err)
	require.True(t, got.Contains("MKLVRTS"))
}

func TestLoadRejectsKSizeMismatch(t *testing.T) {
	tab, err := New(testParams()) // built with k=7
	require.NoError(t, err)
	tab.Insert("MKLVRTS")

	var buf bytes.Buffer
	_, err = tab.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadFrom(&buf, 11)
	require.ErrorIs(t, err, ErrKSizeMismatch)
	require.Nil(t, got)
}

func TestReadFromRejectsGarbage(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte("not a filter at all, nope")), 7)
	require.Error(t, err)

	_, err = ReadFrom(bytes.NewReader(nil), 7)
	require.ErrorIs(t, err, ErrTruncated)
}

// TestFalsePositiveRateTracksTheory loads the filter to half its design
// capacity and checks that the observed false-positive rate on held-out
// items stays within 2x of (1-e^(-n/M))^N.
func TestFalsePositiveRateTracksTheory(t *testing.T) {
	p := testParams()
	tab, err := New(p)
	require.NoError(t, err)

	// Design capacity for N hash tables of M bits: n = N*M*ln2/N = M*ln2.
	capacity := int(float64(p.Bits) * math.Ln2)
	n := capacity / 2
	for i := 0; i < n; i++ {
		tab.Insert(fmt.Sprintf("in%08d", i))
	}

	held := 20000
	fp := 0
	for i := 0; i < held; i++ {
		if tab.Contains(fmt.Sprintf("out%08d", i)) {
			fp++
		}
	}
	observed := float64(fp) / float64(held)
	fill := 1 - math.Exp(-float64(n)/float64(p.Bits))
	theory := math.Pow(fill, float64(p.Tables))

	if observed > 2*theory {
		t.Fatalf("observed FPR %.5f exceeds 2x theoretical %.5f (n=%d)", observed, theory, n)
	}
}
