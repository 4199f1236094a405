// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"pepfilter/internal/classify"
	"pepfilter/pkg/api"
)

// EncodeJSONPretty writes v as indented JSON to w.
func EncodeJSONPretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ToAPIScore converts a classification result to the stable wire schema (v1).
func ToAPIScore(r classify.Result) api.ScoreV1 {
	return api.ScoreV1{
		ReadID:      r.ReadID,
		Frame:       r.Frame,
		Containment: r.Score.Value(),
		NKmers:      r.Score.Total,
		Category:    string(r.Category),
		SourceFile:  r.SourceFile,
	}
}

func toAPIScores(list []classify.Result) []api.ScoreV1 {
	out := make([]api.ScoreV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIScore(r))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 score rows (pretty-indented).
func WriteJSON(w io.Writer, list []classify.Result) error {
	return EncodeJSONPretty(w, toAPIScores(list))
}
