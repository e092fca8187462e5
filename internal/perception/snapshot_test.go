package perception

import (
	"testing"

	"craftmind.ai/internal/knowledge"
	"craftmind.ai/internal/protocol"
)

func intPtr(v int) *int { return &v }

func TestFromWire_MissingFieldsDefault(t *testing.T) {
	s := FromWire(&protocol.SnapshotMsg{Tick: 9})
	if s.Health != MaxHealth {
		t.Fatalf("health: got %d want %d", s.Health, MaxHealth)
	}
	if s.Food != MaxFood {
		t.Fatalf("food: got %d want %d", s.Food, MaxFood)
	}
	if s.Dimension != DimOverworld {
		t.Fatalf("dimension: got %q want %q", s.Dimension, DimOverworld)
	}
	if s.TimeOfDay != TimeDay {
		t.Fatalf("time: got %q want %q", s.TimeOfDay, TimeDay)
	}
	if s.Weather != WeatherClear {
		t.Fatalf("weather: got %q want %q", s.Weather, WeatherClear)
	}
	if s.Tick != 9 {
		t.Fatalf("tick: got %d want 9", s.Tick)
	}
}

func TestFromWire_NilMessage(t *testing.T) {
	s := FromWire(nil)
	if s.Health != MaxHealth || s.Food != MaxFood {
		t.Fatalf("nil message should yield full vitals, got hp=%d food=%d", s.Health, s.Food)
	}
}

func TestFromWire_ClampsVitals(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{12, 12},
		{20, 20},
		{999, 20},
	}
	for _, c := range cases {
		s := FromWire(&protocol.SnapshotMsg{Self: protocol.SelfObs{Health: intPtr(c.in), Food: intPtr(c.in)}})
		if s.Health != c.want {
			t.Fatalf("health %d: got %d want %d", c.in, s.Health, c.want)
		}
		if s.Food != c.want {
			t.Fatalf("food %d: got %d want %d", c.in, s.Food, c.want)
		}
	}
}

func TestFromWire_HostileFallbackFromCatalog(t *testing.T) {
	s := FromWire(&protocol.SnapshotMsg{
		Entities: []protocol.EntityObs{
			{ID: "E1", Kind: "zombie", Distance: 5}, // hostile flag unset
			{ID: "E2", Kind: "cow", Distance: 2},
			{ID: "E3", Kind: "custom_boss", Distance: 8, Hostile: true},
		},
	})
	hostiles := s.Hostiles()
	if len(hostiles) != 2 {
		t.Fatalf("hostiles: got %d want 2", len(hostiles))
	}
	e, ok := s.NearestHostile()
	if !ok || e.ID != "E1" {
		t.Fatalf("nearest hostile: got %+v ok=%v want E1", e, ok)
	}
}

func TestFromWire_DerivesMilestones(t *testing.T) {
	s := FromWire(&protocol.SnapshotMsg{
		Inventory: []protocol.ItemStack{
			{Item: "oak_log", Count: 4},
			{Item: "stone_pickaxe", Count: 1},
		},
	})
	if !s.Milestones[knowledge.MilestoneWood] {
		t.Fatalf("expected %s derived from oak_log", knowledge.MilestoneWood)
	}
	if !s.Milestones[knowledge.MilestonePickaxe] {
		t.Fatalf("expected %s derived from stone_pickaxe", knowledge.MilestonePickaxe)
	}
	next, ok := s.NextMilestone()
	if !ok || next != knowledge.MilestoneWorkbench {
		t.Fatalf("next milestone: got %q ok=%v want %q", next, ok, knowledge.MilestoneWorkbench)
	}
}

func TestBestOre(t *testing.T) {
	s := FromWire(&protocol.SnapshotMsg{
		Blocks: []protocol.BlockObs{
			{Kind: "coal_ore", Distance: 2},
			{Kind: "diamond_ore", Distance: 9},
			{Kind: "dirt", Distance: 1},
		},
	})
	b, ok := s.BestOre()
	if !ok || b.Kind != "diamond_ore" {
		t.Fatalf("best ore: got %+v ok=%v want diamond_ore", b, ok)
	}
}

func TestQueries_WeaponAndFood(t *testing.T) {
	s := FromWire(&protocol.SnapshotMsg{
		Inventory: []protocol.ItemStack{
			{Item: "iron_sword", Count: 1},
			{Item: "bread", Count: 2},
		},
	})
	if !s.HasWeapon() {
		t.Fatalf("expected weapon detected")
	}
	if !s.HasFood() {
		t.Fatalf("expected food detected")
	}
	if got := s.HealthRatio(); got != 1.0 {
		t.Fatalf("health ratio: got %v want 1.0", got)
	}
}
