// Package character builds a character's eligible equipment pools from an
// item catalog.
package character

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
)

// EntityType is the core.Entity type of a Character
const EntityType = "character"

// Character is a level/class/alignment plus the items it may use in each
// location. Pools are filtered once in New and never change afterwards.
type Character struct {
	level uint8
	class gear.Class
	align gear.Align
	pools [gear.NumLocations][]*gear.Item
}

var _ core.Entity = (*Character)(nil)

// New filters items into per-location pools. Pool order follows catalog
// order. A location no usable item fits gets the gear.None placeholder, so
// every pool is non-empty. Pools point into items; the slice must not be
// modified afterwards.
func New(level uint8, class gear.Class, align gear.Align, items []gear.Item) *Character {
	ch := &Character{
		level: level,
		class: class,
		align: align,
	}

	for i := range items {
		item := &items[i]
		if !ch.CanUse(item) {
			continue
		}

		var seen [gear.NumLocations]bool
		for _, loc := range item.Locations {
			if !loc.IsValid() || seen[loc] {
				continue
			}
			seen[loc] = true
			ch.pools[loc] = append(ch.pools[loc], item)
		}
	}

	for loc := range ch.pools {
		if len(ch.pools[loc]) == 0 {
			ch.pools[loc] = []*gear.Item{gear.None()}
		}
	}

	return ch
}

// CanUse checks the level, alignment and class restrictions of an item
func (c *Character) CanUse(item *gear.Item) bool {
	return c.level >= item.Level &&
		!item.ForbidsAlign(c.align) &&
		!item.ForbidsClass(c.class)
}

// Level returns the character level
func (c *Character) Level() uint8 { return c.level }

// Class returns the character class
func (c *Character) Class() gear.Class { return c.class }

// Align returns the character alignment
func (c *Character) Align() gear.Align { return c.align }

// Pool returns a copy of the eligible items for a location
func (c *Character) Pool(loc gear.Location) []*gear.Item {
	if !loc.IsValid() {
		return nil
	}
	return slices.Clone(c.pools[loc])
}

// SlotPools returns one pool per slot instance of gear.Sequence. Repeated
// locations share the same backing pool. The pools are read-only.
func (c *Character) SlotPools() [][]*gear.Item {
	seq := gear.Sequence()
	pools := make([][]*gear.Item, len(seq))
	for i, slot := range seq {
		pools[i] = slices.Clip(c.pools[slot.Location])
	}
	return pools
}

// GetID implements core.Entity
func (c *Character) GetID() string {
	return fmt.Sprintf("%s:%d:%s:%s", EntityType, c.level,
		strings.ToLower(c.class.String()), strings.ToLower(c.align.String()))
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityType
}

// String describes the character the way the pool summary prints it
func (c *Character) String() string {
	return fmt.Sprintf("level %d %s %s", c.level, c.align, c.class)
}
