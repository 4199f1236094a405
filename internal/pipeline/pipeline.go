// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"pepfilter/internal/classify"

	"pepfilter-core/fasta"
)

// Config controls the read-scoring pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEachResult streams classified reads to the caller via visit. It reads
// records from readFiles, classifies them on a worker pool (the Bloom table
// is read-only by this point, so workers share it freely), and calls visit
// from a single collector goroutine. It returns the first error encountered
// (including context cancellation).
func ForEachResult(
	ctx context.Context,
	cfg Config,
	readFiles []string,
	cl *classify.Classifier,
	visit func(classify.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		rec        fasta.Record
		sourceFile string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan classify.Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res := cl.Classify(j.rec)
					res.SourceFile = j.sourceFile
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for res := range results {
			if cerr != nil {
				continue
			}
			if err := visit(res); err != nil && cerr == nil {
				cerr = err
			}
		}
	}()

	// Feed work. Feed errors are latched separately from cerr: the
	// collector goroutine owns cerr until cwg.Wait() returns.
	var feedErr error
feed:
	for _, rf := range readFiles {
		rch, err := fasta.StreamRecordsCtx(ctx, rf)
		if err != nil {
			// Keep scanning other files; first error will be returned.
			if feedErr == nil {
				feedErr = err
			}
			continue
		}
		for rec := range rch {
			select {
			case <-ctx.Done():
				break feed
			case jobs <- job{rec: rec, sourceFile: rf}:
			}
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if feedErr != nil {
		return feedErr
	}
	return cerr
}
