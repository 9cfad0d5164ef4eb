package engine

// Verdict is the outcome of submitting a candidate item to the rule
// table. A rejection is not an error: the reason is surfaced to the
// player as an advisory and play continues.
type Verdict struct {
	Accepted bool
	Reason   string
}

// Prereq gates an item behind already-collected inventory.
type Prereq struct {
	// Need reports whether the inventory satisfies the prerequisite.
	Need func(inv Inventory) bool

	// Blocked is the advisory shown when Need fails.
	Blocked string
}

// RuleTable maps items to their prerequisites. Items without an entry
// have no prerequisite and are always acceptable, so adding or
// removing a gated item only touches the table.
type RuleTable map[Item]Prereq

// Check submits a candidate item against the current inventory.
func (t RuleTable) Check(item Item, inv Inventory) Verdict {
	rule, ok := t[item]
	if !ok || rule.Need == nil {
		return Verdict{Accepted: true}
	}
	if rule.Need(inv) {
		return Verdict{Accepted: true}
	}
	return Verdict{Accepted: false, Reason: rule.Blocked}
}

// Requires builds a prerequisite on a single item.
func Requires(item Item, blocked string) Prereq {
	return Prereq{
		Need:    func(inv Inventory) bool { return inv.Has(item) },
		Blocked: blocked,
	}
}

// RequiresAny builds a disjunctive prerequisite: any one of the items
// satisfies it.
func RequiresAny(blocked string, items ...Item) Prereq {
	return Prereq{
		Need:    func(inv Inventory) bool { return inv.HasAny(items...) },
		Blocked: blocked,
	}
}

// RequiresAll builds a conjunctive prerequisite: every item must be
// present.
func RequiresAll(blocked string, items ...Item) Prereq {
	return Prereq{
		Need:    func(inv Inventory) bool { return inv.HasAll(items...) },
		Blocked: blocked,
	}
}
