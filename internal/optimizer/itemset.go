package optimizer

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
)

// ItemSet is one scored assignment of an item to every slot instance of
// gear.Sequence. It is a value type; copies are independent.
type ItemSet struct {
	value int32
	items [gear.SlotCount]*gear.Item
}

// NewItemSet assigns tuple[i] to the i-th slot instance and sums the item
// values. A short tuple, or a nil entry, fails with MissingItem naming the
// first unfilled slot.
func NewItemSet(tuple []*gear.Item) (ItemSet, error) {
	var set ItemSet
	for i, slot := range gear.Sequence() {
		if i >= len(tuple) || tuple[i] == nil {
			return ItemSet{}, MissingItem(slot)
		}
		set.items[i] = tuple[i]
		set.value += tuple[i].Value()
	}
	if len(tuple) > gear.SlotCount {
		return ItemSet{}, ValidationError(fmt.Sprintf("got %d items for %d slots", len(tuple), gear.SlotCount))
	}

	// TODO: reject a two-handed Wielded item combined with an Offhand item
	// once the catalog records handedness.

	return set, nil
}

// Value is the sum of the chosen items' values
func (s ItemSet) Value() int32 {
	return s.value
}

// Items returns the chosen items in slot sequence order
func (s ItemSet) Items() [gear.SlotCount]*gear.Item {
	return s.items
}

// Item returns the item chosen for slot, nil if slot is not in the sequence
func (s ItemSet) Item(slot gear.SlotInstance) *gear.Item {
	for i, candidate := range gear.Sequence() {
		if candidate == slot {
			return s.items[i]
		}
	}
	return nil
}

// String renders the total value followed by one line per slot instance
func (s ItemSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "The set has a total value of %d\n", s.value)
	for i, slot := range gear.Sequence() {
		name := gear.NoneName
		if item := s.items[i]; item != nil {
			name = item.Name
		}
		fmt.Fprintf(&b, "    %-10s%s\n", slot.String()+":", name)
	}
	return b.String()
}
