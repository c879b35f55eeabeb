package gear

import (
	"slices"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

// NoneName is the display name of the empty-slot placeholder
const NoneName = "None"

// Item is one catalog record. Items are treated as immutable once loaded;
// pools and item sets share pointers to them.
type Item struct {
	Name      string     `json:"name" yaml:"name"`
	Locations []Location `json:"locations" yaml:"locations"`
	Level     uint8      `json:"level,omitempty" yaml:"level,omitempty"`

	HP           int8 `json:"hp,omitempty" yaml:"hp,omitempty"`
	Mana         int8 `json:"mana,omitempty" yaml:"mana,omitempty"`
	HitRoll      int8 `json:"hr,omitempty" yaml:"hr,omitempty"`
	DamageRoll   int8 `json:"dr,omitempty" yaml:"dr,omitempty"`
	SpellSave    int8 `json:"ss,omitempty" yaml:"ss,omitempty"`
	SaveVsBreath int8 `json:"sbr,omitempty" yaml:"sbr,omitempty"`
	SpellEffect  int8 `json:"spet,omitempty" yaml:"spet,omitempty"`
	ACApply      int8 `json:"ac_apply,omitempty" yaml:"ac_apply,omitempty"`

	AlignRestrictions []Align `json:"align_restrictions,omitempty" yaml:"align_restrictions,omitempty"`
	ClassRestrictions []Class `json:"class_restrictions,omitempty" yaml:"class_restrictions,omitempty"`
}

// Value scores the item. Every stat is widened to int32 before scaling.
// SaveVsBreath, SpellEffect and ACApply do not contribute.
func (i *Item) Value() int32 {
	value := int32(i.HP)
	if i.Mana > 0 {
		value += int32(i.Mana) / 2
	}
	value += int32(i.HitRoll) * 5
	value += int32(i.DamageRoll) * 10
	value -= int32(i.SpellSave) * 4
	return value
}

// FitsIn checks if the item lists loc among its locations
func (i *Item) FitsIn(loc Location) bool {
	return slices.Contains(i.Locations, loc)
}

// ForbidsAlign checks if the item cannot be used by the alignment
func (i *Item) ForbidsAlign(a Align) bool {
	return slices.Contains(i.AlignRestrictions, a)
}

// ForbidsClass checks if the item cannot be used by the class
func (i *Item) ForbidsClass(c Class) bool {
	return slices.Contains(i.ClassRestrictions, c)
}

// IsNone reports whether the item is the empty-slot placeholder
func (i *Item) IsNone() bool {
	return i == none
}

// String returns the item name
func (i *Item) String() string {
	return i.Name
}

// Validate checks the structural rules a catalog record must satisfy
func (i *Item) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", i.Name, vb)
	for _, loc := range i.Locations {
		if !loc.IsValid() {
			vb.InvalidField("locations", loc.String())
		}
	}
	for _, a := range i.AlignRestrictions {
		if !a.IsValid() {
			vb.InvalidField("align_restrictions", a.String())
		}
	}
	for _, c := range i.ClassRestrictions {
		if !c.IsValid() {
			vb.InvalidField("class_restrictions", c.String())
		}
	}

	return vb.Build()
}

var none = &Item{
	Name:      NoneName,
	Locations: AllLocations(),
}

// None returns the shared empty-slot placeholder. It fits every location
// and has a value of zero. Callers must not modify it.
func None() *Item {
	return none
}
