package translate

import "testing"

func TestTranslateFrameZero(t *testing.T) {
	cases := []struct {
		seq  string
		want string
	}{
		{"ATGAAATAG", "MK*"},
		{"atgaaatag", "MK*"}, // case-insensitive
		{"AUGAAAUAG", "MK*"}, // RNA input folds U to T
		{"ATGAA", "M"},       // trailing partial codon dropped
		{"ATGNNN", "MX"},     // ambiguous codon
		{"", ""},
	}
	for _, c := range cases {
		if got := Translate([]byte(c.seq)); got != c.want {
			t.Errorf("Translate(%q) = %q, want %q", c.seq, got, c.want)
		}
	}
}

func TestRevComp(t *testing.T) {
	if got := string(RevComp([]byte("ATGC"))); got != "GCAT" {
		t.Fatalf("RevComp = %q", got)
	}
	if got := string(RevComp([]byte("ANT"))); got != "ANT" {
		t.Fatalf("RevComp with N = %q", got)
	}
}

func TestSixFrames(t *testing.T) {
	frames := SixFrames([]byte("ATGAAA"))
	if len(frames) != 6 {
		t.Fatalf("expected 6 frames, got %d", len(frames))
	}
	got := map[int]string{}
	for _, f := range frames {
		got[f.Frame] = f.Peptide
	}
	want := map[int]string{
		1: "MK", 2: "*", 3: "E",
		-1: "FH", -2: "F", -3: "S",
	}
	for fr, pep := range want {
		if got[fr] != pep {
			t.Errorf("frame %+d = %q, want %q", fr, got[fr], pep)
		}
	}
}

func TestLowComplexityNucleotide(t *testing.T) {
	low := "CCCCCCCCCACCACCACCCCCCCCACCCCCCCCCCCCCCCCCCCCCCCCCCACCCCCCCA" +
		"CACACCCCCAACACCC"
	if !LowComplexityNucleotide([]byte(low)) {
		t.Error("homopolymer-rich read should be low complexity")
	}
	if LowComplexityNucleotide([]byte("GATTACAGATTACACATGACGTA")) {
		t.Error("mixed read should not be low complexity")
	}
	if !LowComplexityNucleotide([]byte("A")) {
		t.Error("single-base read should be low complexity")
	}
}

func TestLowComplexityPeptide(t *testing.T) {
	// 10 windows of k=2, one distinct k-mer.
	if !LowComplexityPeptide("hhhhhhhhhhh", 2) {
		t.Error("repeat peptide should be low complexity")
	}
	// All windows distinct.
	if LowComplexityPeptide("ABCDEFGHIJK", 2) {
		t.Error("diverse peptide should not be low complexity")
	}
	// Shorter than k: not judged here.
	if LowComplexityPeptide("A", 2) {
		t.Error("sub-k peptide must not be flagged low complexity")
	}
}
