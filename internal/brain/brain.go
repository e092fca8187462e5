// Package brain implements the competing-personality arbitration core:
// each brain scores a snapshot and proposes a decision, and the manager
// picks a single winner per tick.
package brain

import "craftmind.ai/internal/perception"

// Kind is a decision's action kind.
type Kind string

const (
	KindAttack Kind = "attack"
	KindFlee   Kind = "flee"
	KindEat    Kind = "eat"
	KindHeal   Kind = "heal"
	KindMine   Kind = "mine"
	KindGoto   Kind = "goto"
	KindGather Kind = "gather"
	KindBuild  Kind = "build"
	KindCraft  Kind = "craft"
	KindIdle   Kind = "idle"
)

// Category groups kinds for preemption: switching category cancels the
// in-flight command, staying within one may retarget it.
type Category string

const (
	CategoryCombat      Category = "combat"
	CategoryFlight      Category = "flight"
	CategoryConsumption Category = "consumption"
	CategoryProgression Category = "progression"
	CategoryIdle        Category = "idle"
)

// CategoryOf maps a kind to its behavioral category. Unknown kinds land in
// progression so a bogus kind still preempts cleanly.
func CategoryOf(k Kind) Category {
	switch k {
	case KindAttack:
		return CategoryCombat
	case KindFlee:
		return CategoryFlight
	case KindEat, KindHeal:
		return CategoryConsumption
	case KindIdle:
		return CategoryIdle
	default:
		return CategoryProgression
	}
}

// Params carries a decision's targeting details. Zero values mean unset.
type Params struct {
	TargetID  string
	Pos       [3]float64
	HasPos    bool
	Item      string
	BlockKind string
	Recipe    string
	Speed     string
}

// Decision is one brain's proposed action. It belongs to the vote that
// produced it until the manager selects it.
type Decision struct {
	Kind   Kind
	Params Params
	Reason string
}

func Idle(reason string) Decision {
	return Decision{Kind: KindIdle, Reason: reason}
}

// Vote is a brain's scored proposal for one tick. Scores are clamped to
// [0,100], never rejected.
type Vote struct {
	Brain     string
	Score     int
	Decision  Decision
	Rationale string
}

// Brain scores snapshots. Evaluate must be free of side effects, must not
// fail for a well-formed snapshot, and treats missing data as defaults.
// Limited internal read-only state (recent damage history) is allowed.
type Brain interface {
	Name() string
	Evaluate(s perception.Snapshot) Vote
}

// ClampScore forces a raw score into [0,100].
func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
