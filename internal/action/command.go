package action

import (
	"fmt"

	"github.com/google/uuid"

	"craftmind.ai/internal/brain"
	"craftmind.ai/internal/protocol"
)

// UnknownKindError marks a decision the closed mapping table cannot
// resolve. The caller logs it and falls back to idle for the tick.
type UnknownKindError struct {
	Kind brain.Kind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: unmapped action kind %q", protocol.ErrUnknownAction, e.Kind)
}

// buildCommand resolves a decision into its executable form. The table is
// closed: anything unlisted is an error, never a crash.
func buildCommand(d brain.Decision) (Command, error) {
	switch d.Kind {
	case brain.KindAttack, brain.KindFlee, brain.KindEat, brain.KindHeal,
		brain.KindMine, brain.KindGoto, brain.KindGather, brain.KindBuild, brain.KindCraft:
		return Command{
			ID:       newCommandID(),
			Kind:     d.Kind,
			Category: brain.CategoryOf(d.Kind),
			Params:   wireParams(d.Params),
			Reason:   d.Reason,
		}, nil
	default:
		return Command{}, &UnknownKindError{Kind: d.Kind}
	}
}

func wireParams(p brain.Params) protocol.CommandParams {
	return protocol.CommandParams{
		TargetID:  p.TargetID,
		Pos:       p.Pos,
		HasPos:    p.HasPos,
		Item:      p.Item,
		BlockKind: p.BlockKind,
		Recipe:    p.Recipe,
		Speed:     p.Speed,
	}
}

func (c Command) wire() protocol.CommandReq {
	return protocol.CommandReq{
		ID:     c.ID,
		Kind:   string(c.Kind),
		Params: c.Params,
		Reason: c.Reason,
	}
}

func newCommandID() string {
	return "C_" + uuid.NewString()[:8]
}
