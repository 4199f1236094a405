// internal/indexcli/options.go
package indexcli

import (
	"errors"
	"flag"
	"fmt"

	"pepfilter/internal/cli"
	"pepfilter/internal/version"

	"pepfilter-core/alphabet"
)

// Options holds all flags for the standalone index builder.
type Options struct {
	Peptides     string
	Out          string // "" = derive from Peptides
	AlphabetName string
	Alphabet     alphabet.Alphabet
	KSize        int // 0 = per-alphabet default
	Tables       int
	TableBits    uint64

	Quiet   bool
	Version bool
}

// DefaultOut returns the save path derived from the peptide file name, the
// alphabet, and the effective k-mer size.
func DefaultOut(peptides string, a alphabet.Alphabet, ksize int) string {
	return fmt.Sprintf("%s.alphabet-%s_ksize-%d.bloomfilter", peptides, a, ksize)
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%[1]s %[2]s - build and save a peptide k-mer bloom filter

Usage:
  %[1]s --peptides FILE [options]

Input:
  --peptides FILE        reference peptide FASTA (gzip ok, "-" for stdin) (required)

Index parameters:
  --alphabet NAME        peptide alphabet: protein, dayhoff, or hydrophobic-polar (default protein)
  --peptide-ksize N      k-mer size in the encoded alphabet (default: 7 protein, 11 dayhoff, 21 hydrophobic-polar)
  --tables N             number of independent hash tables (default %[3]d)
  --table-size N         bits per table (default %[4]d)

Output:
  --out FILE             where to save the filter
                         (default: <peptides>.alphabet-<alphabet>_ksize-<k>.bloomfilter)

Other:
  --quiet                suppress progress messages on stderr
  --version              print version and exit
  --help                 show this help
`, name, version.Version, cli.DefaultTables, cli.DefaultTableBits)
	}
	return fs
}

// ParseArgs parses and validates argv into Options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opts Options
	fs.StringVar(&opts.Peptides, "peptides", "", "")
	fs.StringVar(&opts.Out, "out", "", "")
	fs.StringVar(&opts.AlphabetName, "alphabet", "protein", "")
	fs.IntVar(&opts.KSize, "peptide-ksize", 0, "")
	fs.IntVar(&opts.Tables, "tables", cli.DefaultTables, "")
	fs.Uint64Var(&opts.TableBits, "table-size", cli.DefaultTableBits, "")
	fs.BoolVar(&opts.Quiet, "quiet", false, "")
	fs.BoolVar(&opts.Version, "version", false, "")

	if err := fs.Parse(argv); err != nil {
		return Options{}, err
	}
	if opts.Version {
		return opts, nil
	}

	if opts.Peptides == "" {
		return Options{}, errors.New("error: --peptides is required")
	}
	a, err := alphabet.Parse(opts.AlphabetName)
	if err != nil {
		return Options{}, fmt.Errorf("error: %w", err)
	}
	opts.Alphabet = a
	if opts.KSize < 0 {
		return Options{}, fmt.Errorf("error: --peptide-ksize must be positive, got %d", opts.KSize)
	}
	if opts.Tables < 1 {
		return Options{}, fmt.Errorf("error: --tables must be at least 1, got %d", opts.Tables)
	}
	if opts.TableBits < 1 {
		return Options{}, errors.New("error: --table-size must be at least 1")
	}
	if args := fs.Args(); len(args) > 0 {
		return Options{}, fmt.Errorf("error: unexpected positional arguments: %v", args)
	}
	return opts, nil
}
