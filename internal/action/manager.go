// Package action maps winning decisions onto the external execution
// collaborator and owns the in-flight command's lifecycle, including
// mid-action cancellation when the winning category flips.
package action

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"craftmind.ai/internal/brain"
	"craftmind.ai/internal/protocol"
)

// Executor is the boundary to the external game-automation collaborator.
// All three calls only send the request; completion, failure, and
// cancellation acknowledgment come back asynchronously through
// HandleResult.
type Executor interface {
	Dispatch(cmd protocol.CommandReq) error
	// Retarget re-aims an in-flight command of the same category. It
	// returns false when the collaborator does not support retargeting,
	// in which case the manager falls back to cancel-then-restart.
	Retarget(cmd protocol.CommandReq) (bool, error)
	Cancel(commandID string) error
}

const DefaultCancelTimeout = 500 * time.Millisecond

// Manager exclusively owns the ExecutionState. The decision loop submits
// and polls; the gateway's read pump feeds results.
type Manager struct {
	log  *log.Logger
	exec Executor

	cancelTimeout time.Duration

	mu      sync.Mutex
	state   ExecutionState
	acks    map[string]chan struct{}
	lastErr string
}

func NewManager(exec Executor, logger *log.Logger, cancelTimeout time.Duration) *Manager {
	if cancelTimeout <= 0 {
		cancelTimeout = DefaultCancelTimeout
	}
	return &Manager{
		log:           logger,
		exec:          exec,
		cancelTimeout: cancelTimeout,
		state:         ExecutionState{Status: StatusIdle},
		acks:          map[string]chan struct{}{},
	}
}

// Submit maps the winning decision to a command and dispatches it. An idle
// decision is a no-op: it neither dispatches nor disturbs the active
// command. Resubmitting the in-flight command no-ops; a same-category
// change retargets when the collaborator allows it; a category change
// cancels the active command first and only then dispatches.
func (m *Manager) Submit(ctx context.Context, d brain.Decision) error {
	if d.Kind == brain.KindIdle {
		return nil
	}
	cmd, err := buildCommand(d)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.state.active() {
		cur := *m.state.Command
		if cur.Kind == cmd.Kind && cur.Params == cmd.Params {
			m.mu.Unlock()
			return nil
		}
		if cur.Category == cmd.Category {
			retarget := cmd
			retarget.ID = cur.ID
			ok, rerr := m.exec.Retarget(retarget.wire())
			if rerr == nil && ok {
				m.state.Command = &retarget
				m.mu.Unlock()
				return nil
			}
			// Collaborator can't retarget: cancel-then-restart.
		}
		ack := m.armAckLocked(cur.ID)
		m.mu.Unlock()
		m.cancelAndWait(ctx, cur.ID, ack)
		m.mu.Lock()
	}

	m.state = ExecutionState{Command: &cmd, StartedAt: time.Now(), Status: StatusRunning}
	m.mu.Unlock()

	if err := m.exec.Dispatch(cmd.wire()); err != nil {
		m.mu.Lock()
		if m.state.Command != nil && m.state.Command.ID == cmd.ID {
			m.state.Status = StatusFailed
		}
		m.mu.Unlock()
		return fmt.Errorf("%s: dispatch %s: %w", protocol.ErrDispatchFailed, cmd.Kind, err)
	}
	return nil
}

// PollStatus returns a copy of the execution state.
func (m *Manager) PollStatus() ExecutionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := m.state
	if st.Command != nil {
		c := *st.Command
		st.Command = &c
	}
	return st
}

// CancelActive cancels the in-flight command, if any. Safe to call in any
// state and idempotent: cancelling when idle, already cancelled, or
// completing does nothing.
func (m *Manager) CancelActive(ctx context.Context) {
	m.mu.Lock()
	if !m.state.active() {
		m.mu.Unlock()
		return
	}
	id := m.state.Command.ID
	ack := m.armAckLocked(id)
	m.mu.Unlock()
	m.cancelAndWait(ctx, id, ack)
}

// HandleResult applies asynchronous collaborator feedback. Called from the
// gateway read pump; never blocks the decision loop.
func (m *Manager) HandleResult(res protocol.ResultMsg) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ch, ok := m.acks[res.CommandID]; ok && res.Status == protocol.ResultCancelled {
		delete(m.acks, res.CommandID)
		close(ch)
	}
	if m.state.Command == nil || m.state.Command.ID != res.CommandID {
		return // stale result for a superseded command
	}
	switch res.Status {
	case protocol.ResultCompleted:
		m.state.Status = StatusCompleting
	case protocol.ResultFailed:
		m.state.Status = StatusFailed
		m.lastErr = res.Code
		if m.log != nil {
			m.log.Printf("command %s (%s) failed: %s %s", res.CommandID, m.state.Command.Kind, res.Code, res.Message)
		}
	case protocol.ResultCancelled:
		m.state.Status = StatusCancelled
	}
}

// LastError returns the most recent failure code reported by the
// collaborator, for the journal.
func (m *Manager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

func (m *Manager) armAckLocked(id string) chan struct{} {
	ch, ok := m.acks[id]
	if !ok {
		ch = make(chan struct{})
		m.acks[id] = ch
	}
	return ch
}

// cancelAndWait sends the cancel request and blocks until the collaborator
// acknowledges or the bounded timeout expires. On timeout the state is
// forced to cancelled locally and a warning is surfaced; the loop carries
// on either way.
func (m *Manager) cancelAndWait(ctx context.Context, id string, ack chan struct{}) {
	if err := m.exec.Cancel(id); err != nil && m.log != nil {
		m.log.Printf("cancel %s: send failed: %v", id, err)
	}

	timer := time.NewTimer(m.cancelTimeout)
	defer timer.Stop()
	select {
	case <-ack:
	case <-timer.C:
		if m.log != nil {
			m.log.Printf("%s: cancel of %s not acknowledged within %s, forcing local transition", protocol.ErrCancelTimeout, id, m.cancelTimeout)
		}
	case <-ctx.Done():
	}

	m.mu.Lock()
	delete(m.acks, id)
	if m.state.Command != nil && m.state.Command.ID == id && m.state.Status == StatusRunning {
		m.state.Status = StatusCancelled
	}
	m.mu.Unlock()
}
