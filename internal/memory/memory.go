// Package memory is the bot's short-term state: a rolling window of recent
// damage, the last position known to be safe, and named location
// bookmarks. The driver owns and updates it; brains only read.
package memory

import "craftmind.ai/internal/perception"

type damageEvent struct {
	tick   uint64
	amount int
}

type Tracker struct {
	windowTicks uint64

	damage     []damageEvent
	lastHealth int
	seeded     bool

	safePos   [3]float64
	hasSafe   bool
	locations map[string][3]float64
}

// NewTracker keeps damage events for windowTicks ticks.
func NewTracker(windowTicks uint64) *Tracker {
	if windowTicks == 0 {
		windowTicks = 10
	}
	return &Tracker{
		windowTicks: windowTicks,
		locations:   map[string][3]float64{},
	}
}

// Observe folds a new snapshot into memory and reports whether the agent
// took damage since the previous one.
func (t *Tracker) Observe(s perception.Snapshot) (damaged bool, amount int) {
	if t.seeded && s.Health < t.lastHealth {
		amount = t.lastHealth - s.Health
		damaged = true
		t.damage = append(t.damage, damageEvent{tick: s.Tick, amount: amount})
	}
	t.lastHealth = s.Health
	t.seeded = true
	t.prune(s.Tick)

	// A calm, healthy moment marks the current position as a retreat point.
	if len(s.Hostiles()) == 0 && s.Health >= perception.MaxHealth-4 {
		t.safePos = s.Pos
		t.hasSafe = true
	}
	return damaged, amount
}

func (t *Tracker) prune(now uint64) {
	cut := 0
	for cut < len(t.damage) && t.damage[cut].tick+t.windowTicks < now {
		cut++
	}
	if cut > 0 {
		t.damage = t.damage[cut:]
	}
}

// RecentDamage sums damage taken within the window ending at now.
func (t *Tracker) RecentDamage(now uint64) int {
	total := 0
	for _, d := range t.damage {
		if d.tick+t.windowTicks >= now {
			total += d.amount
		}
	}
	return total
}

// SafePos returns the last recorded safe position.
func (t *Tracker) SafePos() ([3]float64, bool) {
	return t.safePos, t.hasSafe
}

func (t *Tracker) RememberLocation(name string, pos [3]float64) {
	t.locations[name] = pos
}

func (t *Tracker) RecallLocation(name string) ([3]float64, bool) {
	pos, ok := t.locations[name]
	return pos, ok
}
