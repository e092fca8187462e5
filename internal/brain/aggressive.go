package brain

import (
	"fmt"
	"strings"

	"craftmind.ai/internal/perception"
)

// Aggressive seeks fights: strong and armed means attack the nearest
// hostile, and the score collapses once health drops too low to brawl.
type Aggressive struct{}

func NewAggressive() *Aggressive { return &Aggressive{} }

func (*Aggressive) Name() string { return BrainAggressive }

func (a *Aggressive) Evaluate(s perception.Snapshot) Vote {
	score := 40 // base aggression

	threats := s.Hostiles()
	switch {
	case s.Health > 15:
		score += 30
	case s.Health < 8:
		score -= 20 // too weak to pick fights
	}
	if s.Food > 15 {
		score += 10
	}
	hasSword := false
	for item := range s.Inventory {
		if strings.Contains(item, "sword") {
			hasSword = true
		}
	}
	if hasSword {
		score += 30
	}
	for item := range s.Inventory {
		if strings.Contains(item, "diamond") {
			score += 20
			break
		}
	}
	score += len(threats) * 15
	if s.TimeOfDay == perception.TimeNight {
		score += 10
	}

	return Vote{
		Score:     ClampScore(score),
		Decision:  a.decide(s),
		Rationale: fmt.Sprintf("hp=%d threats=%d armed=%v", s.Health, len(threats), hasSword),
	}
}

func (a *Aggressive) decide(s perception.Snapshot) Decision {
	if e, ok := s.NearestHostile(); ok {
		return Decision{
			Kind:   KindAttack,
			Params: Params{TargetID: e.ID},
			Reason: fmt.Sprintf("attack %s at %.1f", e.Kind, e.Distance),
		}
	}
	return Idle("no hostiles in range")
}
