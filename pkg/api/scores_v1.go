// pkg/api/scores_v1.go
package api

// ScoreV1 is the stable JSON/JSONL/CSV schema for per-read coding scores.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ScoreV1 struct {
	ReadID      string  `json:"read_id"`
	Frame       int     `json:"frame"` // winning frame (+1..+3, -1..-3); 0 if no frame scored
	Containment float64 `json:"jaccard_in_peptide_space"`
	NKmers      int     `json:"n_kmers"`
	Category    string  `json:"category"`
	SourceFile  string  `json:"source_file,omitempty"`
}

// SummaryV1 is the stable schema for the aggregate run summary.
type SummaryV1 struct {
	ReadFiles        []string       `json:"input_files"`
	Alphabet         string         `json:"alphabet"`
	PeptideKSize     int            `json:"peptide_ksize"`
	JaccardThreshold float64        `json:"jaccard_threshold"`
	TotalReads       int            `json:"total_reads"`
	Categories       map[string]int `json:"categorization_counts"`
}
