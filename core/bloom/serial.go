// core/bloom/serial.go
//
// Saved filter format v1 (all header integers big-endian):
//
//	+--------+---------+----------+--------+-------+----------+--------+----------+
//	| magic  | version | alphabet | tables | ksize | reserved | m bits | inserted |
//	| "PKF1" | 1B      | 1B       | 2B     | 4B    | 4B       | 8B     | 8B       |
//	+--------+---------+----------+--------+-------+----------+--------+----------+
//
// followed by N bitsets of ceil(M/8) bytes each. Bit j of a bitset lives in
// byte j>>3 at position j&7 (LSB0). Round-trips are bit-exact.
package bloom

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"pepfilter-core/alphabet"
)

const (
	magicV1     = "PKF1"
	headerBytes = 32
)

// WriteTo serializes the table in format v1.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var hdr [headerBytes]byte
	copy(hdr[0:4], magicV1)
	hdr[4] = HashVersion
	hdr[5] = t.params.Alphabet.Code()
	binary.BigEndian.PutUint16(hdr[6:8], uint16(t.params.Tables))
	binary.BigEndian.PutUint32(hdr[8:12], uint32(t.params.KSize))
	// hdr[12:16] reserved, zero
	binary.BigEndian.PutUint64(hdr[16:24], t.params.Bits)
	binary.BigEndian.PutUint64(hdr[24:32], t.inserted)

	n, err := w.Write(hdr[:])
	written := int64(n)
	if err != nil {
		return written, err
	}

	bs := bitsetBytes(t.params.Bits)
	buf := make([]byte, len(t.words[0])*8)
	for _, words := range t.words {
		for i, word := range words {
			binary.LittleEndian.PutUint64(buf[i*8:], word)
		}
		n, err := w.Write(buf[:bs])
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadFrom reconstructs a table from format v1. expectKSize is the k-mer
// size the caller intends to query with; a mismatch with the persisted
// value is fatal, because scores computed against a semantically different
// index would be silently wrong.
func ReadFrom(r io.Reader, expectKSize int) (*Table, error) {
	if expectKSize < 1 {
		return nil, ErrBadKSize
	}
	var hdr [headerBytes]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if string(hdr[0:4]) != magicV1 {
		return nil, ErrBadMagic
	}
	if hdr[4] != HashVersion {
		return nil, ErrBadVersion
	}
	alpha, err := alphabet.FromCode(hdr[5])
	if err != nil {
		return nil, fmt.Errorf("bloom: %w", err)
	}
	p := Params{
		KSize:    int(binary.BigEndian.Uint32(hdr[8:12])),
		Alphabet: alpha,
		Tables:   int(binary.BigEndian.Uint16(hdr[6:8])),
		Bits:     binary.BigEndian.Uint64(hdr[16:24]),
	}
	if p.KSize != expectKSize {
		return nil, fmt.Errorf("%w: saved k=%d, expected k=%d", ErrKSizeMismatch, p.KSize, expectKSize)
	}
	t, err := New(p)
	if err != nil {
		return nil, err
	}
	t.inserted = binary.BigEndian.Uint64(hdr[24:32])

	bs := bitsetBytes(p.Bits)
	buf := make([]byte, len(t.words[0])*8)
	for _, words := range t.words {
		for i := range buf {
			buf[i] = 0
		}
		if _, err := io.ReadFull(r, buf[:bs]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		for i := range words {
			words[i] = binary.LittleEndian.Uint64(buf[i*8:])
		}
	}
	return t, nil
}

// Save writes the table to path.
func (t *Table) Save(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fh)
	if _, err := t.WriteTo(bw); err != nil {
		_ = fh.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// Load reads a saved table from path, verifying expectKSize (see ReadFrom).
func Load(path string, expectKSize int) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ReadFrom(bufio.NewReader(fh), expectKSize)
}

// bitsetBytes returns ceil(bits/8).
func bitsetBytes(bits uint64) uint64 {
	return (bits + 7) / 8
}
