package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"

	"craftmind.ai/internal/journal"
)

func main() {
	var (
		dbPath   = flag.String("db", "", "path to decisions.db")
		ticksDir = flag.String("ticks", "", "dir containing ticks-*.jsonl.zst")
		limit    = flag.Int("limit", 50, "max decisions to print from -db")
		fromTick = flag.Uint64("from_tick", 0, "start at tick (inclusive, optional)")
		toTick   = flag.Uint64("to_tick", 0, "stop at tick (inclusive, optional)")
	)
	flag.Parse()

	switch {
	case *dbPath != "":
		replayDB(*dbPath, *limit)
	case *ticksDir != "":
		replayJSONL(*ticksDir, *fromTick, *toTick)
	default:
		fmt.Fprintln(os.Stderr, "missing -db or -ticks")
		os.Exit(2)
	}
}

func replayDB(path string, limit int) {
	idx, err := journal.OpenSQLite(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open db:", err)
		os.Exit(1)
	}
	defer idx.Close()

	recs, err := idx.RecentDecisions(limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "query:", err)
		os.Exit(1)
	}
	// Rows come newest-first; print in tick order.
	sort.Slice(recs, func(i, j int) bool { return recs[i].Tick < recs[j].Tick })
	for _, r := range recs {
		printTick(r)
	}
}

func replayJSONL(dir string, from, to uint64) {
	files, err := listTickFiles(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "list ticks:", err)
		os.Exit(1)
	}
	for _, f := range files {
		if err := replayFile(f, from, to); err != nil {
			fmt.Fprintln(os.Stderr, f, ":", err)
			os.Exit(1)
		}
	}
}

func replayFile(path string, from, to uint64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		var rec journal.TickRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			continue
		}
		if rec.Tick < from || (to > 0 && rec.Tick > to) {
			continue
		}
		printTick(rec)
	}
	return sc.Err()
}

func printTick(r journal.TickRecord) {
	fmt.Printf("tick %d: %s -> %s score=%d %s\n", r.Tick, r.Winner, r.Kind, r.Score, r.Reason)
	for _, v := range r.Votes {
		fmt.Printf("    %-12s %3d  %-8s %s\n", v.Brain, v.Score, v.Kind, v.Rationale)
	}
}

func listTickFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "ticks-") && strings.HasSuffix(name, ".jsonl.zst") {
			out = append(out, filepath.Join(dir, name))
		}
	}
	sort.Strings(out)
	return out, nil
}
