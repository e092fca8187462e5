package knowledge

import "testing"

func TestIsHostileMob(t *testing.T) {
	cases := []struct {
		kind string
		want bool
	}{
		{"zombie", true},
		{"Creeper", true},
		{"cow", false},
		{"villager", false},
	}
	for _, tc := range cases {
		if got := IsHostileMob(tc.kind); got != tc.want {
			t.Fatalf("IsHostileMob(%q): got %v want %v", tc.kind, got, tc.want)
		}
	}
}

func TestBestFood_PicksHighestSaturation(t *testing.T) {
	inv := map[string]int{"bread": 3, "cooked_beef": 1, "potato": 12}
	if got := BestFood(inv); got != "cooked_beef" {
		t.Fatalf("BestFood: got %q want cooked_beef", got)
	}
	if got := BestFood(map[string]int{"cobblestone": 64}); got != "" {
		t.Fatalf("BestFood with no food: got %q want empty", got)
	}
	// Zero counts do not qualify.
	if got := BestFood(map[string]int{"golden_apple": 0, "bread": 1}); got != "bread" {
		t.Fatalf("BestFood with depleted stack: got %q want bread", got)
	}
}

func TestOreValue(t *testing.T) {
	cases := []struct {
		kind string
		want int
	}{
		{"diamond_ore", 100},
		{"deepslate_gold_ore", 50},
		{"iron_ore", 50},
		{"coal_ore", 20},
		{"copper_ore", 10},
		{"dirt", 0},
	}
	for _, tc := range cases {
		if got := OreValue(tc.kind); got != tc.want {
			t.Fatalf("OreValue(%q): got %d want %d", tc.kind, got, tc.want)
		}
	}
}

func TestToolPredicates(t *testing.T) {
	if !IsWeapon("iron_sword") || !IsWeapon("stone_axe") || IsWeapon("bread") {
		t.Fatal("IsWeapon misclassifies")
	}
	if !IsPickaxe("wooden_pickaxe") || IsPickaxe("iron_sword") {
		t.Fatal("IsPickaxe misclassifies")
	}
}
