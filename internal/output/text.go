// internal/output/text.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"pepfilter/internal/classify"
)

// StreamText streams score rows as TSV.
func StreamText(w io.Writer, in <-chan classify.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes a slice of score rows as TSV.
func WriteText(w io.Writer, list []classify.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}

// StreamCSV streams score rows as RFC-4180 CSV.
func StreamCSV(w io.Writer, in <-chan classify.Result, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVColumns); err != nil {
			return err
		}
	}
	for r := range in {
		if err := cw.Write(CSVRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes a slice of score rows as CSV.
func WriteCSV(w io.Writer, list []classify.Result, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVColumns); err != nil {
			return err
		}
	}
	for _, r := range list {
		if err := cw.Write(CSVRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
