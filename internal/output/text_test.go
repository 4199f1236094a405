// internal/output/text_test.go
package output

import (
	"bytes"
	"strings"
	"testing"

	"pepfilter/internal/classify"

	"pepfilter-core/score"
)

func sampleResults() []classify.Result {
	return []classify.Result{
		{
			ReadID:     "read1",
			SourceFile: "reads.fasta",
			Frame:      2,
			Score:      score.Score{Found: 3, Total: 4},
			Category:   classify.Coding,
		},
		{
			ReadID:     "read2",
			SourceFile: "reads.fasta",
			Frame:      -1,
			Score:      score.Score{Found: 0, Total: 5},
			Category:   classify.NonCoding,
		},
	}
}

func TestWriteTextHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleResults(), true); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != TSVHeader {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "read1\t2\t0.75\t4\tcoding\treads.fasta" {
		t.Errorf("row1 = %q", lines[1])
	}
	if lines[2] != "read2\t-1\t0\t5\tnon_coding\treads.fasta" {
		t.Errorf("row2 = %q", lines[2])
	}
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleResults(), false); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if strings.Contains(buf.String(), "read_id") {
		t.Errorf("unexpected header in output:\n%s", buf.String())
	}
}

func TestStreamTextMatchesWriteText(t *testing.T) {
	list := sampleResults()

	var want bytes.Buffer
	if err := WriteText(&want, list, true); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	in := make(chan classify.Result, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	var got bytes.Buffer
	if err := StreamText(&got, in, true); err != nil {
		t.Fatalf("StreamText: %v", err)
	}
	if got.String() != want.String() {
		t.Errorf("stream/slice mismatch:\n%s\nvs\n%s", got.String(), want.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults(), true); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != strings.Join(CSVColumns, ",") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "read1,2,0.75,4,coding,reads.fasta" {
		t.Errorf("row1 = %q", lines[1])
	}
}

func TestFormatScore(t *testing.T) {
	cases := map[float64]string{0: "0", 0.5: "0.5", 0.75: "0.75", 1: "1"}
	for v, want := range cases {
		if got := FormatScore(v); got != want {
			t.Errorf("FormatScore(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestSortResults(t *testing.T) {
	rs := []classify.Result{
		{SourceFile: "b.fa", ReadID: "r1"},
		{SourceFile: "a.fa", ReadID: "r2"},
		{SourceFile: "a.fa", ReadID: "r1", Frame: 3},
		{SourceFile: "a.fa", ReadID: "r1", Frame: -2},
	}
	SortResults(rs)
	if rs[0].Frame != -2 || rs[1].Frame != 3 {
		t.Errorf("frame tie-break wrong: %+v", rs[:2])
	}
	if rs[2].ReadID != "r2" || rs[3].SourceFile != "b.fa" {
		t.Errorf("order wrong: %+v", rs)
	}
}
