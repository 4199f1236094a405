// internal/output/rows.go
package output

import (
	"fmt"
	"sort"
	"strconv"

	"pepfilter/internal/classify"
)

// TSVHeader is the canonical header row for text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "read_id\tframe\tjaccard_in_peptide_space\tn_kmers\tcategory\tsource_file"

// CSVColumns are the column names for CSV output, matching the TSV header.
var CSVColumns = []string{
	"read_id", "frame", "jaccard_in_peptide_space", "n_kmers", "category", "source_file",
}

// FormatRowTSV returns the six base columns (no trailing newline).
func FormatRowTSV(r classify.Result) string {
	return fmt.Sprintf("%s\t%d\t%s\t%d\t%s\t%s",
		r.ReadID, r.Frame, FormatScore(r.Score.Value()), r.Score.Total,
		r.Category, r.SourceFile,
	)
}

// CSVRow returns the row fields in CSVColumns order.
func CSVRow(r classify.Result) []string {
	return []string{
		r.ReadID,
		strconv.Itoa(r.Frame),
		FormatScore(r.Score.Value()),
		strconv.Itoa(r.Score.Total),
		string(r.Category),
		r.SourceFile,
	}
}

// FormatScore renders a containment value compactly (no trailing zeros).
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// LessResult defines a stable order for score rows (for -sort).
func LessResult(a, b classify.Result) bool {
	if a.SourceFile != b.SourceFile {
		return a.SourceFile < b.SourceFile
	}
	if a.ReadID != b.ReadID {
		return a.ReadID < b.ReadID
	}
	return a.Frame < b.Frame
}

// SortResults sorts rows with LessResult.
func SortResults(rs []classify.Result) {
	sort.Slice(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
