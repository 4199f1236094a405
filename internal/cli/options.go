// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pepfilter/internal/cliutil"
	"pepfilter/internal/version"
	"pepfilter/internal/writers"

	"pepfilter-core/alphabet"
)

// Defaults for filter construction.
const (
	DefaultTables    = 4
	DefaultTableBits = 100_000_000 // 1e8 bits per table
	DefaultThreshold = 0.5
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Peptides  string
	ReadFiles []string
	IsFilter  bool // --peptides is a saved bloom filter, not FASTA

	// Index parameters
	AlphabetName string
	Alphabet     alphabet.Alphabet
	KSize        int // 0 = per-alphabet default
	Tables       int
	TableBits    uint64

	// Decision
	Threshold float64

	// Outputs
	Output                string
	SaveFilter            string
	CodingNucFASTA        string // coding reads, original nucleotides
	CodingPepFASTA        string // coding reads, winning translation
	NoncodingFASTA        string
	LowComplexityNucFASTA string
	LowComplexityPepFASTA string
	JSONSummaryPath       string
	Sort                  bool
	Header                bool // true unless --no-header

	// Performance
	Threads int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: classify nucleotide reads as protein-coding by peptide k-mer containment

Version: %s

Usage:
  %s --peptides FILE [--reads FILE]... [flags] [reads.fasta ...]

Flags:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Peptides, "peptides", "", "peptide FASTA file, or saved filter with --peptides-are-bloom-filter [*]")
	var reads stringSlice
	fs.Var(&reads, "reads", "nucleotide FASTA file(s) to classify (repeatable or '-') [*]")
	fs.BoolVar(&opt.IsFilter, "peptides-are-bloom-filter", false, "treat --peptides as a saved bloom filter [false]")

	// Index parameters
	fs.StringVar(&opt.AlphabetName, "alphabet", "protein", "peptide alphabet: protein | dayhoff | hydrophobic-polar (hp) [protein]")
	fs.IntVar(&opt.KSize, "peptide-ksize", 0, "peptide k-mer size (0 = per-alphabet default: protein 7, dayhoff 11, hp 21) [0]")
	fs.IntVar(&opt.Tables, "tables", DefaultTables, "number of bloom filter hash tables [4]")
	var tableBits int64
	fs.Int64Var(&tableBits, "table-size", DefaultTableBits, "bits per bloom filter table [1e8]")

	// Decision
	fs.Float64Var(&opt.Threshold, "jaccard-threshold", DefaultThreshold, "minimum containment for a read to be called coding [0.5]")

	// Outputs
	fs.StringVar(&opt.Output, "output", "text", "score output format: text | csv | json | jsonl [text]")
	fs.StringVar(&opt.SaveFilter, "save-filter", "", "save the built bloom filter to this path")
	fs.StringVar(&opt.CodingNucFASTA, "coding-nucleotide-fasta", "", "write coding nucleotide reads to this FASTA file")
	fs.StringVar(&opt.CodingPepFASTA, "coding-peptide-fasta", "", "write coding peptide translations to this FASTA file")
	fs.StringVar(&opt.NoncodingFASTA, "noncoding-fasta", "", "write non-coding nucleotide reads to this FASTA file")
	fs.StringVar(&opt.LowComplexityNucFASTA, "low-complexity-nucleotide-fasta", "", "write low-complexity nucleotide reads to this FASTA file")
	fs.StringVar(&opt.LowComplexityPepFASTA, "low-complexity-peptide-fasta", "", "write reads whose translations were all low complexity to this FASTA file")
	fs.StringVar(&opt.JSONSummaryPath, "json-summary", "", "write an aggregate JSON summary to this file")
	fs.BoolVar(&opt.Sort, "sort", false, "sort score rows for determinism (SourceFile,ReadID,Frame) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/CSV [false]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress messages on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	// Bare positionals are read files too, so `--peptides ref.fa reads/*.fa`
	// works without repeating --reads.
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.ReadFiles = append([]string(reads), posArgs...)
	opt.Header = !noHeader

	// Validation
	if opt.Peptides == "" {
		return opt, errors.New("--peptides is required")
	}
	if len(opt.ReadFiles) == 0 {
		return opt, errors.New("at least one --reads file is required")
	}
	a, err := alphabet.Parse(opt.AlphabetName)
	if err != nil {
		return opt, err
	}
	opt.Alphabet = a
	if opt.KSize < 0 {
		return opt, errors.New("--peptide-ksize must be >= 0")
	}
	if opt.Threshold < 0 || opt.Threshold > 1 {
		return opt, fmt.Errorf("--jaccard-threshold needs to be a number between 0 and 1, but %v was provided", opt.Threshold)
	}
	if opt.Tables < 1 {
		return opt, errors.New("--tables must be >= 1")
	}
	if tableBits < 1 {
		return opt, errors.New("--table-size must be >= 1")
	}
	opt.TableBits = uint64(tableBits)
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be >= 0")
	}
	if !writers.ValidFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
