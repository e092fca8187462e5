// Package perception defines the immutable per-tick world observation the
// brains score against, and the decoding from its wire form.
package perception

import (
	"strings"

	"craftmind.ai/internal/knowledge"
	"craftmind.ai/internal/protocol"
)

const (
	MaxHealth = 20
	MaxFood   = 20
)

// Dimensions.
const (
	DimOverworld = "overworld"
	DimNether    = "nether"
	DimEnd       = "end"
)

// Time of day.
const (
	TimeDay   = "day"
	TimeNight = "night"
)

// Weather.
const (
	WeatherClear   = "clear"
	WeatherRain    = "rain"
	WeatherThunder = "thunder"
)

type Entity struct {
	ID       string
	Kind     string
	Distance float64
	Hostile  bool
}

type Block struct {
	Kind     string
	Distance float64
	Pos      [3]int
}

type Player struct {
	Name     string
	Distance float64
}

// Snapshot is one tick's complete observation. It is never mutated after
// construction; every brain in a voting round reads the same value.
type Snapshot struct {
	Tick      uint64
	Health    int
	Food      int
	Pos       [3]float64
	Dimension string
	TimeOfDay string
	Weather   string

	Entities []Entity
	Blocks   []Block
	Players  []Player

	Inventory  map[string]int
	Armor      map[string]bool
	Milestones map[string]bool
}

// Minimal returns the safe-default snapshot used when no observation is
// available yet: full vitals, empty surroundings.
func Minimal() Snapshot {
	return Snapshot{
		Health:     MaxHealth,
		Food:       MaxFood,
		Dimension:  DimOverworld,
		TimeOfDay:  TimeDay,
		Weather:    WeatherClear,
		Inventory:  map[string]int{},
		Armor:      map[string]bool{},
		Milestones: map[string]bool{},
	}
}

// FromWire decodes a snapshot message, substituting safe defaults for
// missing or out-of-range fields. Malformed pieces never produce an error;
// unknown health is treated as full.
func FromWire(m *protocol.SnapshotMsg) Snapshot {
	s := Minimal()
	if m == nil {
		return s
	}
	s.Tick = m.Tick
	if m.Self.Health != nil {
		s.Health = clampVital(*m.Self.Health)
	}
	if m.Self.Food != nil {
		s.Food = clampVital(*m.Self.Food)
	}
	s.Pos = m.Self.Pos
	if d := strings.ToLower(m.Self.Dimension); d == DimNether || d == DimEnd {
		s.Dimension = d
	}
	if strings.EqualFold(m.World.TimeOfDay, TimeNight) {
		s.TimeOfDay = TimeNight
	}
	switch w := strings.ToLower(m.World.Weather); w {
	case WeatherRain, WeatherThunder:
		s.Weather = w
	}

	for _, e := range m.Entities {
		if e.Kind == "" {
			continue
		}
		hostile := e.Hostile || knowledge.IsHostileMob(e.Kind)
		s.Entities = append(s.Entities, Entity{ID: e.ID, Kind: e.Kind, Distance: e.Distance, Hostile: hostile})
	}
	for _, b := range m.Blocks {
		if b.Kind == "" {
			continue
		}
		s.Blocks = append(s.Blocks, Block{Kind: b.Kind, Distance: b.Distance, Pos: b.Pos})
	}
	for _, p := range m.Players {
		if p.Name == "" {
			continue
		}
		s.Players = append(s.Players, Player{Name: p.Name, Distance: p.Distance})
	}
	for _, it := range m.Inventory {
		if it.Item == "" || it.Count <= 0 {
			continue
		}
		s.Inventory[it.Item] += it.Count
	}
	for _, a := range m.Self.Armor {
		if a != "" && !strings.EqualFold(a, "none") {
			s.Armor[strings.ToLower(a)] = true
		}
	}
	for _, t := range m.Milestones {
		if t != "" {
			s.Milestones[t] = true
		}
	}
	deriveMilestones(&s)
	return s
}

func clampVital(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxHealth {
		return MaxHealth
	}
	return v
}

// deriveMilestones fills in progression tags the producer did not set but
// the inventory proves.
func deriveMilestones(s *Snapshot) {
	for item := range s.Inventory {
		switch {
		case strings.Contains(item, "log") || strings.Contains(item, "plank"):
			s.Milestones[knowledge.MilestoneWood] = true
		case strings.Contains(item, "crafting_table"):
			s.Milestones[knowledge.MilestoneWorkbench] = true
		case knowledge.IsPickaxe(item):
			s.Milestones[knowledge.MilestonePickaxe] = true
		case strings.Contains(item, "iron_ingot"):
			s.Milestones[knowledge.MilestoneIron] = true
		case strings.Contains(item, "diamond"):
			s.Milestones[knowledge.MilestoneDiamond] = true
		}
	}
}
