package brain

import (
	"log"

	"craftmind.ai/internal/perception"
)

// Registered brain names. The tie-break priority is fixed by this order,
// independent of registration order: health beats cautious beats
// aggressive beats strategic; anything unlisted ranks last.
const (
	BrainHealth     = "health"
	BrainCautious   = "cautious"
	BrainAggressive = "aggressive"
	BrainStrategic  = "strategic"
)

var tieBreakRank = map[string]int{
	BrainHealth:     0,
	BrainCautious:   1,
	BrainAggressive: 2,
	BrainStrategic:  3,
}

func rankOf(name string) int {
	if r, ok := tieBreakRank[name]; ok {
		return r
	}
	return len(tieBreakRank)
}

// Manager runs one voting round per tick and selects the winner. It never
// executes anything itself.
type Manager struct {
	log    *log.Logger
	brains []Brain
}

func NewManager(logger *log.Logger) *Manager {
	return &Manager{log: logger}
}

// Register appends a brain. The open set means adding or removing a brain
// touches nothing else.
func (m *Manager) Register(b Brain) {
	m.brains = append(m.brains, b)
	if m.log != nil {
		m.log.Printf("registered brain %s", b.Name())
	}
}

func (m *Manager) Brains() []Brain { return m.brains }

// RunVotingRound evaluates every brain against the same snapshot, clamps
// scores, and returns the winning vote plus the full vote set for the
// journal. An empty registry yields an idle decision with score 0; that is
// a valid degenerate state, not an error.
func (m *Manager) RunVotingRound(s perception.Snapshot) (Vote, []Vote) {
	if len(m.brains) == 0 {
		return Vote{Score: 0, Decision: Idle("no brains registered")}, nil
	}

	votes := make([]Vote, 0, len(m.brains))
	for _, b := range m.brains {
		votes = append(votes, m.safeEvaluate(b, s))
	}

	best := 0
	for i := 1; i < len(votes); i++ {
		if betterVote(votes[i], votes[best]) {
			best = i
		}
	}
	return votes[best], votes
}

// betterVote prefers the higher score; equal scores fall to the fixed
// priority order so arbitration cannot oscillate between tied brains.
func betterVote(a, b Vote) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return rankOf(a.Brain) < rankOf(b.Brain)
}

// safeEvaluate shields the round from a misbehaving brain: a panic scores
// zero with an idle proposal instead of killing the tick.
func (m *Manager) safeEvaluate(b Brain, s perception.Snapshot) (v Vote) {
	defer func() {
		if r := recover(); r != nil {
			if m.log != nil {
				m.log.Printf("brain %s evaluate panicked: %v", b.Name(), r)
			}
			v = Vote{Brain: b.Name(), Score: 0, Decision: Idle("evaluate failed"), Rationale: "evaluate failed"}
		}
	}()
	v = b.Evaluate(s)
	v.Brain = b.Name()
	v.Score = ClampScore(v.Score)
	return v
}
