package action

import (
	"time"

	"craftmind.ai/internal/brain"
	"craftmind.ai/internal/protocol"
)

// Status of the in-flight command.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusRunning    Status = "running"
	StatusCompleting Status = "completing"
	StatusCancelled  Status = "cancelled"
	StatusFailed     Status = "failed"
)

// Command is the resolved, executable form of a decision. The ID doubles
// as the cancellation handle on the wire.
type Command struct {
	ID       string
	Kind     brain.Kind
	Category brain.Category
	Params   protocol.CommandParams
	Reason   string
}

// ExecutionState is the manager's exclusively-owned record of the active
// command. Other components only see copies via PollStatus.
type ExecutionState struct {
	Command   *Command
	StartedAt time.Time
	Status    Status
}

func (s ExecutionState) active() bool {
	return s.Command != nil && s.Status == StatusRunning
}
