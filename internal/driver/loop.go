// Package driver runs the periodic decision loop: pull a snapshot, hold
// one voting round, hand the winner to the action manager, journal the
// votes. Exactly one arbitration runs at a time.
package driver

import (
	"context"
	"errors"
	"log"
	"time"

	"craftmind.ai/internal/action"
	"craftmind.ai/internal/brain"
	"craftmind.ai/internal/journal"
	"craftmind.ai/internal/memory"
	"craftmind.ai/internal/perception"
	"craftmind.ai/internal/protocol"
)

// SnapshotSource yields the latest world observation. The gateway client
// implements it.
type SnapshotSource interface {
	Latest() (perception.Snapshot, bool)
	Updates() <-chan struct{}
}

// Submitter is the action manager surface the loop needs.
type Submitter interface {
	Submit(ctx context.Context, d brain.Decision) error
	PollStatus() action.ExecutionState
}

// Recorder receives the per-tick vote log. Both the JSONL tick logger and
// the sqlite index satisfy it.
type Recorder interface {
	WriteTick(rec journal.TickRecord) error
}

type Loop struct {
	Log      *log.Logger
	Interval time.Duration
	Source   SnapshotSource
	Brains   *brain.Manager
	Actions  Submitter
	Memory   *memory.Tracker
	Records  []Recorder

	// Fatal delivers the collaborator's connection-level stop signal.
	// A nil channel never fires.
	Fatal <-chan error
}

// Run ticks until the context is cancelled or the collaborator reports a
// fatal error. Ticks are serialized: one that fires while a cancellation
// wait is in progress stays queued in the ticker rather than running
// concurrently or being dropped.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-l.Fatal:
			if err == nil {
				err = errors.New("gateway closed")
			}
			return err
		case <-ticker.C:
			l.Tick(ctx)
		case <-l.Source.Updates():
			// Out-of-band snapshot: arbitrate immediately on fresh damage
			// instead of waiting out the interval.
			if s, ok := l.Source.Latest(); ok && l.Memory != nil {
				if damaged, amount := l.Memory.Observe(s); damaged {
					l.Log.Printf("took %d damage, arbitrating now", amount)
					l.Tick(ctx)
				}
			}
		}
	}
}

// Tick runs one arbitration round against the latest snapshot. With no
// snapshot yet there is nothing to decide on, so the tick is skipped.
func (l *Loop) Tick(ctx context.Context) {
	s, ok := l.Source.Latest()
	if !ok {
		return
	}
	if l.Memory != nil {
		l.Memory.Observe(s)
	}

	winner, votes := l.Brains.RunVotingRound(s)

	for _, v := range votes {
		mark := ""
		if v.Brain == winner.Brain {
			mark = " <- winner"
		}
		l.Log.Printf("  %s: %d (%s)%s", v.Brain, v.Score, v.Decision.Kind, mark)
	}

	errCode := ""
	if err := l.Actions.Submit(ctx, winner.Decision); err != nil {
		var unknown *action.UnknownKindError
		if errors.As(err, &unknown) {
			l.Log.Printf("tick %d: %v, idling", s.Tick, err)
			errCode = protocol.ErrUnknownAction
		} else {
			l.Log.Printf("tick %d: submit: %v", s.Tick, err)
			errCode = protocol.ErrDispatchFailed
		}
	}

	st := l.Actions.PollStatus()
	rec := journal.TickRecord{
		Tick:      s.Tick,
		TS:        time.Now().UTC().Format(time.RFC3339Nano),
		Winner:    winner.Brain,
		Kind:      string(winner.Decision.Kind),
		Score:     winner.Score,
		Reason:    winner.Decision.Reason,
		Status:    string(st.Status),
		ErrorCode: errCode,
	}
	if st.Command != nil {
		rec.CommandID = st.Command.ID
	}
	for _, v := range votes {
		rec.Votes = append(rec.Votes, journal.VoteRecord{
			Brain:     v.Brain,
			Score:     v.Score,
			Kind:      string(v.Decision.Kind),
			Rationale: v.Rationale,
		})
	}
	for _, r := range l.Records {
		if err := r.WriteTick(rec); err != nil {
			l.Log.Printf("journal: %v", err)
		}
	}
}
