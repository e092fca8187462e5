package brain

import (
	"fmt"

	"craftmind.ai/internal/memory"
	"craftmind.ai/internal/perception"
)

// Cautious wants out: threat proximity, low health, and nightfall all push
// toward a retreat to the last known safe position.
type Cautious struct {
	mem *memory.Tracker
}

func NewCautious(mem *memory.Tracker) *Cautious { return &Cautious{mem: mem} }

func (*Cautious) Name() string { return BrainCautious }

func (c *Cautious) Evaluate(s perception.Snapshot) Vote {
	score := 30 // base caution

	threats := s.Hostiles()
	switch {
	case s.Health < 8:
		score += 60
	case s.Health < 15:
		score += 30
	}
	for _, t := range threats {
		switch {
		case t.Distance < 5:
			score += 40
		case t.Distance < 10:
			score += 20
		default:
			score += 5
		}
	}
	if s.TimeOfDay == perception.TimeNight {
		score += 25
	}
	if len(threats) > 2 {
		score += 20
	}

	return Vote{
		Score:     ClampScore(score),
		Decision:  c.decide(s),
		Rationale: fmt.Sprintf("hp=%d threats=%d time=%s", s.Health, len(threats), s.TimeOfDay),
	}
}

func (c *Cautious) decide(s perception.Snapshot) Decision {
	p := Params{Speed: "walk"}
	if s.Health < 10 || len(s.Hostiles()) > 0 {
		p.Speed = "sprint"
	}
	if c.mem != nil {
		if pos, ok := c.mem.SafePos(); ok {
			p.Pos = pos
			p.HasPos = true
		}
	}
	reason := "retreating to safe ground"
	if !p.HasPos {
		reason = "no safe point known, breaking contact"
	}
	return Decision{Kind: KindFlee, Params: p, Reason: reason}
}
