// Package knowledge holds the static game catalogs the brains consult:
// which mobs are hostile, what counts as food or a weapon, ore values,
// and the tool progression ladder.
package knowledge

import "strings"

var hostileMobs = map[string]struct{}{
	"zombie":   {},
	"skeleton": {},
	"creeper":  {},
	"spider":   {},
	"enderman": {},
	"witch":    {},
	"phantom":  {},
	"drowned":  {},
	"pillager": {},
}

// IsHostileMob reports whether the mob kind is known-hostile. Snapshots
// usually carry an explicit hostile flag; this is the fallback when the
// producer left it unset.
func IsHostileMob(kind string) bool {
	_, ok := hostileMobs[strings.ToLower(kind)]
	return ok
}

// Food items ordered by saturation tier. Eating picks the best available.
var foodBySaturation = []string{
	"golden_apple",
	"golden_carrot",
	"cooked_beef",
	"steak",
	"cooked_porkchop",
	"cooked_chicken",
	"bread",
	"baked_potato",
	"carrot",
	"potato",
	"sweet_berries",
}

func IsFood(item string) bool {
	for _, f := range foodBySaturation {
		if f == item {
			return true
		}
	}
	return false
}

// BestFood returns the highest-saturation food present in the inventory,
// or "" when there is nothing edible.
func BestFood(inventory map[string]int) string {
	for _, f := range foodBySaturation {
		if inventory[f] > 0 {
			return f
		}
	}
	return ""
}

func IsWeapon(item string) bool {
	return strings.Contains(item, "sword") || strings.Contains(item, "axe") || strings.Contains(item, "trident")
}

func IsPickaxe(item string) bool {
	return strings.Contains(item, "pickaxe")
}

// OreValue rates a block kind for strategic mining.
func OreValue(kind string) int {
	switch {
	case strings.Contains(kind, "diamond"):
		return 100
	case strings.Contains(kind, "gold"), strings.Contains(kind, "iron"):
		return 50
	case strings.Contains(kind, "coal"):
		return 20
	case strings.Contains(kind, "ore"):
		return 10
	default:
		return 0
	}
}

func IsOre(kind string) bool {
	return strings.Contains(kind, "ore")
}

// Progression milestones in ladder order. A brain proposing the next
// progression step walks this list and picks the first unmet rung.
const (
	MilestoneWood      = "has_wood"
	MilestoneWorkbench = "has_crafting_table"
	MilestonePickaxe   = "has_pickaxe"
	MilestoneIron      = "has_iron"
	MilestoneDiamond   = "has_diamond"
)

var ProgressionLadder = []string{
	MilestoneWood,
	MilestoneWorkbench,
	MilestonePickaxe,
	MilestoneIron,
	MilestoneDiamond,
}
