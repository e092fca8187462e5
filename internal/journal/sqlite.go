package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	_ "modernc.org/sqlite"
)

// SQLiteIndex is a queryable secondary index of decisions and command
// outcomes. Writes go through a single writer goroutine so the decision
// loop never blocks on the database.
type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

type reqKind int

const (
	reqTick reqKind = iota + 1
	reqResult
	reqSync
)

type req struct {
	kind   reqKind
	tick   TickRecord
	result ResultRecord
	done   chan struct{}
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan req, 4096),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	// WAL is much faster for append-style workloads.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decisions (
			tick INTEGER PRIMARY KEY,
			ts TEXT NOT NULL,
			winner TEXT NOT NULL,
			kind TEXT NOT NULL,
			score INTEGER NOT NULL,
			reason TEXT,
			command_id TEXT,
			votes_json TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_decisions_winner ON decisions(winner, tick);`,
		`CREATE TABLE IF NOT EXISTS results (
			command_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			ts TEXT NOT NULL,
			status TEXT NOT NULL,
			code TEXT,
			message TEXT,
			PRIMARY KEY (command_id, status)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_tick ON results(tick);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// WriteTick enqueues a decision row. Drops when the indexer falls behind;
// the JSONL journal remains the source of truth.
func (s *SQLiteIndex) WriteTick(rec TickRecord) error {
	if s == nil || s.closed.Load() {
		return nil
	}
	select {
	case s.ch <- req{kind: reqTick, tick: rec}:
	default:
	}
	return nil
}

func (s *SQLiteIndex) WriteResult(rec ResultRecord) error {
	if s == nil || s.closed.Load() {
		return nil
	}
	select {
	case s.ch <- req{kind: reqResult, result: rec}:
	default:
	}
	return nil
}

func (s *SQLiteIndex) loop() {
	for r := range s.ch {
		switch r.kind {
		case reqTick:
			s.insertTick(r.tick)
		case reqResult:
			s.insertResult(r.result)
		case reqSync:
			close(r.done)
		}
	}
}

func (s *SQLiteIndex) insertTick(rec TickRecord) {
	votes, err := json.Marshal(rec.Votes)
	if err != nil {
		votes = []byte("[]")
	}
	_, _ = s.db.Exec(
		`INSERT OR REPLACE INTO decisions (tick, ts, winner, kind, score, reason, command_id, votes_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Tick, rec.TS, rec.Winner, rec.Kind, rec.Score, rec.Reason, rec.CommandID, string(votes),
	)
}

func (s *SQLiteIndex) insertResult(rec ResultRecord) {
	_, _ = s.db.Exec(
		`INSERT OR REPLACE INTO results (command_id, tick, ts, status, code, message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.CommandID, rec.Tick, rec.TS, rec.Status, rec.Code, rec.Message,
	)
}

// RecentDecisions returns up to limit decision rows, newest first. Used by
// the replay tool, never by the arbitration core.
func (s *SQLiteIndex) RecentDecisions(limit int) ([]TickRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT tick, ts, winner, kind, score, reason, command_id, votes_json
		 FROM decisions ORDER BY tick DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TickRecord
	for rows.Next() {
		var rec TickRecord
		var reason, cmdID sql.NullString
		var votes string
		if err := rows.Scan(&rec.Tick, &rec.TS, &rec.Winner, &rec.Kind, &rec.Score, &reason, &cmdID, &votes); err != nil {
			return nil, err
		}
		rec.Reason = reason.String
		rec.CommandID = cmdID.String
		if err := json.Unmarshal([]byte(votes), &rec.Votes); err != nil {
			rec.Votes = nil
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Flush blocks until every queued write has been applied. Used by tests
// and the replay tool; the hot path never calls it.
func (s *SQLiteIndex) Flush() {
	if s == nil || s.closed.Load() {
		return
	}
	done := make(chan struct{})
	s.ch <- req{kind: reqSync, done: done}
	<-done
}
