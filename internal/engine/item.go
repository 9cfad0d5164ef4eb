package engine

import (
	"fmt"
	"sort"
)

// Category classifies an item. Category membership is a type-level
// fact: the engine never inspects key strings to decide behavior.
type Category uint8

const (
	CategoryFrequency Category = iota // solfeggio frequencies
	CategoryDrink                     // wellness beverages
	CategoryExperience                // party experiences (ice plunge, breathwork)
	CategoryIngredient                // recipe ingredients (matcha story)
	CategoryElixir                    // finished creations
)

// String returns the legacy prefix used in storage and display keys.
func (c Category) String() string {
	switch c {
	case CategoryFrequency:
		return "freq"
	case CategoryDrink:
		return "drink"
	case CategoryExperience:
		return "exp"
	case CategoryIngredient:
		return "ingredient"
	case CategoryElixir:
		return "elixir"
	default:
		return "item"
	}
}

// Item is a unit of collected progress. Items are boolean
// present/absent; there are no quantities.
type Item struct {
	Category Category
	Key      string
}

// String renders the item in its wire form, e.g. "freq_174".
func (i Item) String() string {
	return fmt.Sprintf("%s_%s", i.Category, i.Key)
}

// Inventory is the set of items collected during one session.
// It only ever grows; transitions that add items clone the map so
// earlier states stay valid.
type Inventory map[Item]struct{}

// NewInventory returns an empty inventory.
func NewInventory() Inventory {
	return make(Inventory)
}

// Has reports whether the item has been collected.
func (inv Inventory) Has(item Item) bool {
	_, ok := inv[item]
	return ok
}

// HasAny reports whether at least one of the items has been collected.
func (inv Inventory) HasAny(items ...Item) bool {
	for _, it := range items {
		if inv.Has(it) {
			return true
		}
	}
	return false
}

// HasAll reports whether every one of the items has been collected.
func (inv Inventory) HasAll(items ...Item) bool {
	for _, it := range items {
		if !inv.Has(it) {
			return false
		}
	}
	return true
}

// Count returns the total number of collected items.
func (inv Inventory) Count() int {
	return len(inv)
}

// CountCategory returns the number of collected items in a category.
func (inv Inventory) CountCategory(c Category) int {
	n := 0
	for it := range inv {
		if it.Category == c {
			n++
		}
	}
	return n
}

// Items returns the collected items in a stable order: by category,
// then by key. Display code relies on the ordering.
func (inv Inventory) Items() []Item {
	items := make([]Item, 0, len(inv))
	for it := range inv {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Key < items[j].Key
	})
	return items
}

// with returns a copy of the inventory with the item added.
func (inv Inventory) with(item Item) Inventory {
	next := make(Inventory, len(inv)+1)
	for it := range inv {
		next[it] = struct{}{}
	}
	next[item] = struct{}{}
	return next
}
