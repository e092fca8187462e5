package memory

import (
	"testing"

	"craftmind.ai/internal/perception"
)

func snap(tick uint64, health int) perception.Snapshot {
	s := perception.Minimal()
	s.Tick = tick
	s.Health = health
	return s
}

func TestObserve_DetectsDamage(t *testing.T) {
	tr := NewTracker(10)

	if damaged, _ := tr.Observe(snap(1, 20)); damaged {
		t.Fatalf("first observation must not count as damage")
	}
	damaged, amount := tr.Observe(snap(2, 14))
	if !damaged || amount != 6 {
		t.Fatalf("got damaged=%v amount=%d want true 6", damaged, amount)
	}
	if got := tr.RecentDamage(2); got != 6 {
		t.Fatalf("recent damage: got %d want 6", got)
	}
	// Healing is not damage.
	if damaged, _ := tr.Observe(snap(3, 18)); damaged {
		t.Fatalf("healing counted as damage")
	}
}

func TestRecentDamage_WindowExpires(t *testing.T) {
	tr := NewTracker(5)
	tr.Observe(snap(1, 20))
	tr.Observe(snap(2, 15))
	if got := tr.RecentDamage(4); got != 5 {
		t.Fatalf("inside window: got %d want 5", got)
	}
	if got := tr.RecentDamage(20); got != 0 {
		t.Fatalf("outside window: got %d want 0", got)
	}
}

func TestSafePos_RecordedWhenCalmAndHealthy(t *testing.T) {
	tr := NewTracker(10)

	s := snap(1, 20)
	s.Pos = [3]float64{10, 64, -3}
	tr.Observe(s)
	pos, ok := tr.SafePos()
	if !ok || pos != [3]float64{10, 64, -3} {
		t.Fatalf("safe pos: got %v ok=%v", pos, ok)
	}

	// Hostiles nearby must not update the retreat point.
	danger := snap(2, 20)
	danger.Pos = [3]float64{50, 64, 50}
	danger.Entities = []perception.Entity{{ID: "E1", Kind: "zombie", Distance: 4, Hostile: true}}
	tr.Observe(danger)
	pos, _ = tr.SafePos()
	if pos != [3]float64{10, 64, -3} {
		t.Fatalf("safe pos moved under threat: got %v", pos)
	}
}

func TestLocations(t *testing.T) {
	tr := NewTracker(10)
	tr.RememberLocation("base", [3]float64{1, 2, 3})
	pos, ok := tr.RecallLocation("base")
	if !ok || pos != [3]float64{1, 2, 3} {
		t.Fatalf("recall: got %v ok=%v", pos, ok)
	}
	if _, ok := tr.RecallLocation("nowhere"); ok {
		t.Fatalf("expected miss for unknown location")
	}
}
