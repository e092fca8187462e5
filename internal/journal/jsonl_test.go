package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestTickLogger_WriteAndReadBack(t *testing.T) {
	dir := t.TempDir()
	l := NewTickLogger(dir)

	recs := []TickRecord{
		{
			Tick:   1,
			TS:     "2026-08-26T12:00:00Z",
			Winner: "aggressive",
			Kind:   "attack",
			Score:  80,
			Reason: "zombie in range",
			Votes: []VoteRecord{
				{Brain: "aggressive", Score: 80, Kind: "attack"},
				{Brain: "health", Score: 20, Kind: "idle"},
			},
		},
		{Tick: 2, TS: "2026-08-26T12:00:03Z", Winner: "health", Kind: "eat", Score: 95},
	}
	for _, rec := range recs {
		if err := l.WriteTick(rec); err != nil {
			t.Fatalf("write tick %d: %v", rec.Tick, err)
		}
	}
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "ticks", "ticks-*.jsonl.zst"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one rotated file, got %v (%v)", matches, err)
	}

	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer zr.Close()

	var got []TickRecord
	sc := bufio.NewScanner(zr)
	for sc.Scan() {
		var rec TickRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("parse line: %v", err)
		}
		got = append(got, rec)
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("lines: got %d want 2", len(got))
	}
	if got[0].Winner != "aggressive" || len(got[0].Votes) != 2 {
		t.Fatalf("first record: %+v", got[0])
	}
	if got[1].Tick != 2 || got[1].Kind != "eat" {
		t.Fatalf("second record: %+v", got[1])
	}
}

func TestJSONLZstdWriter_AppendAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	w := NewJSONLZstdWriter(dir, "events")
	if err := w.Write(map[string]int{"n": 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// A second writer in the same hour appends a new zstd frame to the
	// same file; the reader must see both.
	w = NewJSONLZstdWriter(dir, "events")
	if err := w.Write(map[string]int{"n": 2}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "events-*.jsonl.zst"))
	if len(matches) != 1 {
		t.Fatalf("expected one file, got %v", matches)
	}
	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		t.Fatalf("zstd reader: %v", err)
	}
	defer zr.Close()

	lines := 0
	sc := bufio.NewScanner(zr)
	for sc.Scan() {
		lines++
	}
	if lines != 2 {
		t.Fatalf("lines after reopen: got %d want 2", lines)
	}
}
