package perception

import "craftmind.ai/internal/knowledge"

// Hostiles returns all hostile entities, nearest first order preserved
// from the producer.
func (s Snapshot) Hostiles() []Entity {
	var out []Entity
	for _, e := range s.Entities {
		if e.Hostile {
			out = append(out, e)
		}
	}
	return out
}

// NearestHostile returns the closest hostile entity, if any.
func (s Snapshot) NearestHostile() (Entity, bool) {
	var best Entity
	found := false
	for _, e := range s.Entities {
		if !e.Hostile {
			continue
		}
		if !found || e.Distance < best.Distance {
			best = e
			found = true
		}
	}
	return best, found
}

// HealthRatio is health as a fraction of maximum.
func (s Snapshot) HealthRatio() float64 {
	return float64(s.Health) / float64(MaxHealth)
}

// HasWeapon reports whether anything in the inventory can be swung.
func (s Snapshot) HasWeapon() bool {
	for item := range s.Inventory {
		if knowledge.IsWeapon(item) {
			return true
		}
	}
	return false
}

// HasFood reports whether anything in the inventory is edible.
func (s Snapshot) HasFood() bool {
	return knowledge.BestFood(s.Inventory) != ""
}

// BestOre returns the most valuable ore block in view, if any.
func (s Snapshot) BestOre() (Block, bool) {
	var best Block
	bestVal := 0
	for _, b := range s.Blocks {
		if !knowledge.IsOre(b.Kind) {
			continue
		}
		if v := knowledge.OreValue(b.Kind); v > bestVal {
			best, bestVal = b, v
		}
	}
	return best, bestVal > 0
}

// NextMilestone returns the first unmet rung of the progression ladder.
func (s Snapshot) NextMilestone() (string, bool) {
	for _, m := range knowledge.ProgressionLadder {
		if !s.Milestones[m] {
			return m, true
		}
	}
	return "", false
}
