package engine

import "testing"

var (
	anchor = Item{Category: CategoryFrequency, Key: "174"}
	second = Item{Category: CategoryFrequency, Key: "528"}
	third  = Item{Category: CategoryFrequency, Key: "963"}
)

func TestRuleTableUnlistedItemAccepted(t *testing.T) {
	table := RuleTable{}
	v := table.Check(anchor, NewInventory())
	if !v.Accepted {
		t.Error("item without a rule should always be accepted")
	}
}

func TestRuleTableRequires(t *testing.T) {
	table := RuleTable{
		second: Requires(anchor, "find the anchor first"),
	}

	v := table.Check(second, NewInventory())
	if v.Accepted {
		t.Error("gated item accepted with empty inventory")
	}
	if v.Reason != "find the anchor first" {
		t.Errorf("Reason = %q, want blocked message", v.Reason)
	}

	inv := NewInventory().with(anchor)
	v = table.Check(second, inv)
	if !v.Accepted {
		t.Error("gated item rejected with prerequisite present")
	}
}

func TestRuleTableRequiresAny(t *testing.T) {
	table := RuleTable{
		third: RequiresAny("need one of the pair", anchor, second),
	}

	if v := table.Check(third, NewInventory()); v.Accepted {
		t.Error("disjunctive rule accepted with empty inventory")
	}
	if v := table.Check(third, NewInventory().with(second)); !v.Accepted {
		t.Error("disjunctive rule should accept with either prerequisite")
	}
	if v := table.Check(third, NewInventory().with(anchor)); !v.Accepted {
		t.Error("disjunctive rule should accept with either prerequisite")
	}
}

func TestRuleTableRequiresAll(t *testing.T) {
	table := RuleTable{
		third: RequiresAll("need both", anchor, second),
	}

	if v := table.Check(third, NewInventory().with(anchor)); v.Accepted {
		t.Error("conjunctive rule accepted with only one prerequisite")
	}
	inv := NewInventory().with(anchor).with(second)
	if v := table.Check(third, inv); !v.Accepted {
		t.Error("conjunctive rule rejected with all prerequisites present")
	}
}

func TestInventorySetSemantics(t *testing.T) {
	inv := NewInventory()
	if inv.Count() != 0 {
		t.Errorf("fresh inventory Count() = %d, want 0", inv.Count())
	}

	inv2 := inv.with(anchor)
	if inv.Has(anchor) {
		t.Error("with() mutated the original inventory")
	}
	if !inv2.Has(anchor) {
		t.Error("with() did not add the item")
	}

	inv3 := inv2.with(anchor)
	if inv3.Count() != 1 {
		t.Errorf("duplicate add changed count: %d", inv3.Count())
	}
}

func TestInventoryCountCategory(t *testing.T) {
	drink := Item{Category: CategoryDrink, Key: "prana"}
	inv := NewInventory().with(anchor).with(second).with(drink)

	if n := inv.CountCategory(CategoryFrequency); n != 2 {
		t.Errorf("CountCategory(frequency) = %d, want 2", n)
	}
	if n := inv.CountCategory(CategoryDrink); n != 1 {
		t.Errorf("CountCategory(drink) = %d, want 1", n)
	}
	if n := inv.CountCategory(CategoryElixir); n != 0 {
		t.Errorf("CountCategory(elixir) = %d, want 0", n)
	}
}

func TestInventoryItemsStableOrder(t *testing.T) {
	drink := Item{Category: CategoryDrink, Key: "prana"}
	inv := NewInventory().with(drink).with(second).with(anchor)

	items := inv.Items()
	want := []Item{anchor, second, drink}
	if len(items) != len(want) {
		t.Fatalf("Items() returned %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("Items()[%d] = %v, want %v", i, items[i], want[i])
		}
	}
}

func TestItemString(t *testing.T) {
	if got := anchor.String(); got != "freq_174" {
		t.Errorf("Item.String() = %q, want %q", got, "freq_174")
	}
	drink := Item{Category: CategoryDrink, Key: "kombucha"}
	if got := drink.String(); got != "drink_kombucha" {
		t.Errorf("Item.String() = %q, want %q", got, "drink_kombucha")
	}
}
