// core/fasta/reader.go
package fasta

import (
	"context"
)

// StreamRecordsCtx is the channel wrapper around StreamPathCtx.
// Semantics preserved from StreamPathCtx:
//   - gzip and "-" for stdin are handled the same way (early open error for non-stdin)
//   - scan-time errors are not propagated through the channel
func StreamRecordsCtx(ctx context.Context, path string) (<-chan Record, error) {
	// Preserve immediate error reporting for non-stdin paths.
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamPathCtx(ctx, path, func(r Record) error {
			select {
			case out <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, nil
}

// StreamRecords is the legacy helper that uses a background context.
func StreamRecords(path string) (<-chan Record, error) {
	return StreamRecordsCtx(context.Background(), path)
}
