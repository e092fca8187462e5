package brain

import (
	"fmt"

	"craftmind.ai/internal/knowledge"
	"craftmind.ai/internal/memory"
	"craftmind.ai/internal/perception"
)

// Health guards the vitals: any HP deficit, hunger, or fresh damage drives
// the score toward the maximum with an eat or heal proposal.
type Health struct {
	mem *memory.Tracker
}

func NewHealth(mem *memory.Tracker) *Health { return &Health{mem: mem} }

func (*Health) Name() string { return BrainHealth }

func (h *Health) Evaluate(s perception.Snapshot) Vote {
	score := 20 // base vigilance

	if s.Health < perception.MaxHealth {
		score += (perception.MaxHealth - s.Health) * 5
	}
	if s.Food < 15 {
		score += 30
	}
	if s.Food < 10 {
		score += 20
	}
	if s.HasFood() && (s.Health < perception.MaxHealth || s.Food < 15) {
		score += 25
	}
	recent := 0
	if h.mem != nil {
		recent = h.mem.RecentDamage(s.Tick)
	}
	if recent > 0 {
		score += 15
	}

	return Vote{
		Score:     ClampScore(score),
		Decision:  h.decide(s),
		Rationale: fmt.Sprintf("hp=%d food=%d recent_dmg=%d", s.Health, s.Food, recent),
	}
}

func (h *Health) decide(s perception.Snapshot) Decision {
	if food := knowledge.BestFood(s.Inventory); food != "" && (s.Food < 15 || s.Health < perception.MaxHealth) {
		return Decision{
			Kind:   KindEat,
			Params: Params{Item: food},
			Reason: fmt.Sprintf("eat %s, food at %d/%d", food, s.Food, perception.MaxFood),
		}
	}
	if s.Health < perception.MaxHealth {
		p := Params{Speed: "walk"}
		if h.mem != nil {
			if pos, ok := h.mem.SafePos(); ok {
				p.Pos = pos
				p.HasPos = true
			}
		}
		return Decision{
			Kind:   KindHeal,
			Params: p,
			Reason: fmt.Sprintf("hold still and regenerate, hp %d/%d", s.Health, perception.MaxHealth),
		}
	}
	return Idle("vitals full")
}
