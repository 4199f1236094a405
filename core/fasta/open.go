// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
)

// gzipReadCloser closes the gzip stream and then the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gerr := g.Reader.Close()
	ferr := g.file.Close()
	if gerr != nil {
		return gerr
	}
	return ferr
}

// openReader opens path for reading; "-" means stdin. Gzip input is
// detected by its magic bytes (1F 8B) and decompressed transparently, so
// the same code path handles plain and .gz sequence files. Stdin is never
// sniffed for gzip: it cannot be rewound.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	if sig, err := br.Peek(2); err == nil && sig[0] == 0x1f && sig[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzipReadCloser{Reader: gr, file: fh}, nil
	}
	return &bufferedReadCloser{Reader: br, file: fh}, nil
}

// bufferedReadCloser keeps the peek buffer attached to the file handle.
type bufferedReadCloser struct {
	*bufio.Reader
	file *os.File
}

func (b *bufferedReadCloser) Close() error { return b.file.Close() }
