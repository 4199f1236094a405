package integration

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"pepfilter/internal/app"
)

func TestCancel_MidScan_Exit130(t *testing.T) {
	dir := t.TempDir()
	peptides := write(t, dir, "cancel_ref.fasta", ">pep1\n"+codingPeptide+"\n")

	// Biggish read file so classification is underway when we cancel.
	var sb strings.Builder
	for i := 0; i < 200_000; i++ {
		fmt.Fprintf(&sb, ">r%d\n%s\n", i, codingRead)
	}
	reads := write(t, dir, "cancel_reads.fasta", sb.String())

	argv := []string{
		"--peptides", peptides,
		"--reads", reads,
		"--table-size", "65536",
		"--quiet",
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	code := app.RunContext(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
