// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
)

// ItemBuilder provides a fluent interface for building test items
type ItemBuilder struct {
	item gear.Item
}

// NewItemBuilder creates a builder for an item with no stats or restrictions
func NewItemBuilder(name string) *ItemBuilder {
	return &ItemBuilder{
		item: gear.Item{Name: name},
	}
}

// In adds the locations the item fits in
func (b *ItemBuilder) In(locs ...gear.Location) *ItemBuilder {
	b.item.Locations = append(b.item.Locations, locs...)
	return b
}

// WithLevel sets the minimum level
func (b *ItemBuilder) WithLevel(level uint8) *ItemBuilder {
	b.item.Level = level
	return b
}

// WithHP sets the hit point delta
func (b *ItemBuilder) WithHP(hp int8) *ItemBuilder {
	b.item.HP = hp
	return b
}

// WithMana sets the mana delta
func (b *ItemBuilder) WithMana(mana int8) *ItemBuilder {
	b.item.Mana = mana
	return b
}

// WithHitRoll sets the hit roll delta
func (b *ItemBuilder) WithHitRoll(hr int8) *ItemBuilder {
	b.item.HitRoll = hr
	return b
}

// WithDamageRoll sets the damage roll delta
func (b *ItemBuilder) WithDamageRoll(dr int8) *ItemBuilder {
	b.item.DamageRoll = dr
	return b
}

// WithSpellSave sets the spell save delta
func (b *ItemBuilder) WithSpellSave(ss int8) *ItemBuilder {
	b.item.SpellSave = ss
	return b
}

// ForbidAlign adds alignments that may not use the item
func (b *ItemBuilder) ForbidAlign(aligns ...gear.Align) *ItemBuilder {
	b.item.AlignRestrictions = append(b.item.AlignRestrictions, aligns...)
	return b
}

// ForbidClass adds classes that may not use the item
func (b *ItemBuilder) ForbidClass(classes ...gear.Class) *ItemBuilder {
	b.item.ClassRestrictions = append(b.item.ClassRestrictions, classes...)
	return b
}

// Build returns the item
func (b *ItemBuilder) Build() gear.Item {
	return b.item
}
