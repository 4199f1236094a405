// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"pepfilter/internal/classify"
	"pepfilter/internal/cli"
	"pepfilter/internal/cmdutil"
	"pepfilter/internal/output"
	"pepfilter/internal/pipeline"
	"pepfilter/internal/version"
	"pepfilter/internal/writers"
	"pepfilter/pkg/api"

	"pepfilter-core/alphabet"
	"pepfilter-core/bloom"
	"pepfilter-core/filter"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("pepfilter")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pepfilter version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	ksize := opts.KSize
	if ksize == 0 {
		ksize = alphabet.DefaultKSizes().For(opts.Alphabet)
	}

	var table *bloom.Table
	if opts.IsFilter {
		if opts.SaveFilter != "" {
			cmdutil.Warnf(stderr, opts.Quiet,
				"--save-filter ignored: --peptides already names a saved filter")
		}
		cmdutil.Infof(stderr, opts.Quiet,
			"Loading bloom filter from %s and verifying ksize=%d", opts.Peptides, ksize)
		table, err = bloom.Load(opts.Peptides, ksize)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if table.Params().Alphabet != opts.Alphabet {
			_, _ = fmt.Fprintf(stderr,
				"error: saved filter alphabet %s does not match --alphabet %s\n",
				table.Params().Alphabet, opts.Alphabet)
			return 2
		}
	} else {
		cmdutil.Infof(stderr, opts.Quiet,
			"Building peptide bloom filter from %s (alphabet=%s ksize=%d)",
			opts.Peptides, opts.Alphabet, ksize)
		var st filter.Stats
		table, st, err = filter.BuildFile(ctx, opts.Peptides, filter.Config{
			KSize:    ksize,
			Alphabet: opts.Alphabet,
			Tables:   opts.Tables,
			Bits:     opts.TableBits,
			KSizes:   alphabet.DefaultKSizes(),
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		cmdutil.Infof(stderr, opts.Quiet,
			"Indexed %d distinct k-mers from %d records (%d skipped for stop symbols)",
			st.Inserted, st.Records, st.Skipped)
		if opts.SaveFilter != "" {
			if err := table.Save(opts.SaveFilter); err != nil {
				_, _ = fmt.Fprintln(stderr, err)
				return 3
			}
			cmdutil.Infof(stderr, opts.Quiet, "Wrote bloom filter to %s", opts.SaveFilter)
		}
	}

	// Build phase over: the table is read-only from here on.
	cl := &classify.Classifier{
		Table:     table,
		Alphabet:  opts.Alphabet,
		KSize:     ksize,
		Threshold: opts.Threshold,
	}

	tees, err := openTees(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := writers.StartScoreWriter(outw, opts.Output, opts.Sort, opts.Header, thr*4)

	summary := api.SummaryV1{
		ReadFiles:        opts.ReadFiles,
		Alphabet:         opts.Alphabet.String(),
		PeptideKSize:     ksize,
		JaccardThreshold: opts.Threshold,
		Categories:       map[string]int{},
	}

	// visit runs on the single collector goroutine, so the summary counts
	// and aux files need no locking.
	perr := pipeline.ForEachResult(ctx, pipeline.Config{Threads: thr}, opts.ReadFiles, cl,
		func(r classify.Result) error {
			summary.TotalReads++
			summary.Categories[string(r.Category)]++
			if err := tees.write(r); err != nil {
				return err
			}
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		_ = tees.closeAll()
		return 0
	} else if werr != nil {
		_ = tees.closeAll()
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		_ = tees.closeAll()
		return 0
	} else if e != nil {
		_ = tees.closeAll()
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if err := tees.closeAll(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	if opts.JSONSummaryPath != "" {
		if err := writeSummary(opts.JSONSummaryPath, summary); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		cmdutil.Infof(stderr, opts.Quiet, "Wrote summary to %s", opts.JSONSummaryPath)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// auxFile pairs a buffered writer with its file handle.
type auxFile struct {
	fh *os.File
	bw *bufio.Writer
}

func openAux(path string) (*auxFile, error) {
	if path == "" {
		return nil, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &auxFile{fh: fh, bw: bufio.NewWriter(fh)}, nil
}

func closeAux(a *auxFile) error {
	if a == nil {
		return nil
	}
	if err := a.bw.Flush(); err != nil {
		_ = a.fh.Close()
		return err
	}
	return a.fh.Close()
}

// teeFiles are the optional per-category FASTA side outputs. The peptide
// tee carries the winning translation of coding reads; the nucleotide tees
// carry the original read for their category.
type teeFiles struct {
	codingPep *auxFile
	nuc       map[classify.Category]*auxFile
	open      []*auxFile
}

func openTees(opts cli.Options) (*teeFiles, error) {
	t := &teeFiles{nuc: map[classify.Category]*auxFile{}}
	add := func(path string) (*auxFile, error) {
		a, err := openAux(path)
		if err != nil {
			_ = t.closeAll()
			return nil, err
		}
		if a != nil {
			t.open = append(t.open, a)
		}
		return a, nil
	}
	var err error
	if t.codingPep, err = add(opts.CodingPepFASTA); err != nil {
		return nil, err
	}
	for _, tee := range []struct {
		cat  classify.Category
		path string
	}{
		{classify.Coding, opts.CodingNucFASTA},
		{classify.NonCoding, opts.NoncodingFASTA},
		{classify.LowComplexityNuc, opts.LowComplexityNucFASTA},
		{classify.LowComplexityPep, opts.LowComplexityPepFASTA},
	} {
		a, err := add(tee.path)
		if err != nil {
			return nil, err
		}
		if a != nil {
			t.nuc[tee.cat] = a
		}
	}
	return t, nil
}

func (t *teeFiles) write(r classify.Result) error {
	if t.codingPep != nil && r.Category == classify.Coding {
		if err := output.WriteCodingPeptide(t.codingPep.bw, r); err != nil {
			return err
		}
	}
	if a := t.nuc[r.Category]; a != nil {
		if err := output.WriteNucleotide(a.bw, r); err != nil {
			return err
		}
	}
	return nil
}

func (t *teeFiles) closeAll() error {
	var first error
	for _, a := range t.open {
		if err := closeAux(a); err != nil && first == nil {
			first = err
		}
	}
	t.open = nil
	return first
}

func writeSummary(path string, s api.SummaryV1) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := output.EncodeJSONPretty(fh, s); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
