// internal/indexapp/app.go
package indexapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pepfilter/internal/cmdutil"
	"pepfilter/internal/indexcli"
	"pepfilter/internal/version"
	"pepfilter/internal/writers"

	"pepfilter-core/alphabet"
	"pepfilter-core/filter"
)

// RunContext builds a bloom filter from reference peptides and saves it.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := indexcli.NewFlagSet("pepfilter-index")
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

	opts, err := indexcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "pepfilter-index version %s\n", version.Version)
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
	out := opts.Out
	if out == "" {
		out = indexcli.DefaultOut(opts.Peptides, opts.Alphabet, ksize)
	}

	cmdutil.Infof(stderr, opts.Quiet,
		"Building peptide bloom filter from %s (alphabet=%s ksize=%d tables=%d bits=%d)",
		opts.Peptides, opts.Alphabet, ksize, opts.Tables, opts.TableBits)

	table, st, err := filter.BuildFile(ctx, opts.Peptides, filter.Config{
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

	if err := table.Save(out); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	_, _ = fmt.Fprintln(outw, out)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
