package brain

import (
	"fmt"
	"strings"

	"craftmind.ai/internal/knowledge"
	"craftmind.ai/internal/perception"
)

// Strategic plans progression: when nothing is trying to kill us, spend
// the tick on the next rung of the tool ladder or the best ore in view.
type Strategic struct{}

func NewStrategic() *Strategic { return &Strategic{} }

func (*Strategic) Name() string { return BrainStrategic }

func (st *Strategic) Evaluate(s perception.Snapshot) Vote {
	score := 50 // base strategic value

	if s.Health > 15 {
		score += 20
	}
	if len(s.Inventory) > 5 {
		score += 15
	}
	if _, ok := s.BestOre(); ok {
		score += 20
	}
	if !s.Milestones[knowledge.MilestonePickaxe] {
		score += 25
	}
	hasObsidian := false
	for item := range s.Inventory {
		if strings.Contains(item, "obsidian") {
			hasObsidian = true
		}
	}
	if s.Dimension == perception.DimOverworld && !hasObsidian {
		score += 15
	}
	// Immediate threats make long-term planning worthless this tick.
	if len(s.Hostiles()) > 0 {
		score -= 30
	}

	next, _ := s.NextMilestone()
	return Vote{
		Score:     ClampScore(score),
		Decision:  st.decide(s),
		Rationale: fmt.Sprintf("items=%d next=%s", len(s.Inventory), next),
	}
}

func (st *Strategic) decide(s perception.Snapshot) Decision {
	next, ok := s.NextMilestone()
	if ok {
		switch next {
		case knowledge.MilestoneWood:
			return Decision{
				Kind:   KindGather,
				Params: Params{BlockKind: "log"},
				Reason: "need wood for tools",
			}
		case knowledge.MilestoneWorkbench:
			return Decision{
				Kind:   KindCraft,
				Params: Params{Recipe: "crafting_table"},
				Reason: "need a workbench",
			}
		case knowledge.MilestonePickaxe:
			return Decision{
				Kind:   KindCraft,
				Params: Params{Recipe: "wooden_pickaxe"},
				Reason: "need a mining tool",
			}
		}
	}
	if ore, found := s.BestOre(); found {
		return Decision{
			Kind:   KindMine,
			Params: Params{BlockKind: ore.Kind, Pos: [3]float64{float64(ore.Pos[0]), float64(ore.Pos[1]), float64(ore.Pos[2])}, HasPos: true},
			Reason: fmt.Sprintf("mine %s", ore.Kind),
		}
	}
	return Idle("scouting for resources")
}
