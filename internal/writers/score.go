// internal/writers/score.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"pepfilter/internal/classify"
	"pepfilter/internal/output"
)

// Formats supported by StartScoreWriter.
const (
	FormatText  = "text"
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// ValidFormat reports whether format names a registered score writer.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatCSV, FormatJSON, FormatJSONL:
		return true
	}
	return false
}

// StartScoreWriter spins up a writer goroutine for classification results.
// text/csv stream row by row (or buffer when sort is requested); json
// buffers everything into one array; jsonl streams one object per line.
// The returned error channel yields exactly one value after the input
// channel is closed and drained.
func StartScoreWriter(out io.Writer, format string, sort, header bool, bufSize int) (chan<- classify.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan classify.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case FormatJSON:
			var buf []classify.Result
			for r := range in {
				buf = append(buf, r)
			}
			if sort {
				output.SortResults(buf)
			}
			err = output.WriteJSON(out, buf)

		case FormatJSONL:
			bw := bufio.NewWriter(out)
			enc := json.NewEncoder(bw)
			for r := range in {
				if err == nil {
					err = enc.Encode(output.ToAPIScore(r))
				}
			}
			if err == nil {
				if e := bw.Flush(); e != nil && !IsBrokenPipe(e) {
					err = e
				}
			}

		case FormatCSV:
			if sort {
				var buf []classify.Result
				for r := range in {
					buf = append(buf, r)
				}
				output.SortResults(buf)
				err = output.WriteCSV(out, buf, header)
			} else {
				err = output.StreamCSV(out, in, header)
			}

		case FormatText:
			if sort {
				var buf []classify.Result
				for r := range in {
					buf = append(buf, r)
				}
				output.SortResults(buf)
				err = output.WriteText(out, buf, header)
			} else {
				err = output.StreamText(out, in, header)
			}

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Drain so senders never block after a writer error.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
