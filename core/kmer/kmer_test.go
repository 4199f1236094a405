package kmer

import (
	"reflect"
	"testing"
)

func TestExtractBasic(t *testing.T) {
	got := Extract("ABCDE", 3)
	want := []string{"ABC", "BCD", "CDE"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtractCollapsesDuplicates(t *testing.T) {
	got := Extract("AAAA", 2)
	if !reflect.DeepEqual(got, []string{"AA"}) {
		t.Fatalf("duplicates not collapsed: %v", got)
	}
}

func TestExtractShortSequence(t *testing.T) {
	if got := Extract("AB", 3); got != nil {
		t.Fatalf("expected nil for short sequence, got %v", got)
	}
	if got := Extract("", 3); got != nil {
		t.Fatalf("expected nil for empty sequence, got %v", got)
	}
}

func TestExtractExactLength(t *testing.T) {
	got := Extract("ABC", 3)
	if !reflect.DeepEqual(got, []string{"ABC"}) {
		t.Fatalf("Extract = %v", got)
	}
}

func TestWindows(t *testing.T) {
	cases := []struct {
		seq  string
		k    int
		want int
	}{
		{"ABCDE", 3, 3},
		{"ABC", 3, 1},
		{"AB", 3, 0},
		{"ABCDE", 0, 0},
	}
	for _, c := range cases {
		if got := Windows(c.seq, c.k); got != c.want {
			t.Errorf("Windows(%q,%d) = %d, want %d", c.seq, c.k, got, c.want)
		}
	}
}
