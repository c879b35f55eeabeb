package testutils

import (
	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/testutils/builders"
)

// Fixture names shared across storage and orchestrator tests
const (
	SampleCatalogName = "sample"

	// SampleBestValue is the optimum of SampleCatalog for a level 31
	// Neutral Warrior
	SampleBestValue = 168

	// SampleCombinations is the number of item sets that character can wear
	SampleCombinations = 4
)

// SampleCatalog returns a small catalog covering level limits, restrictions
// and repeated locations. A fresh slice is returned on every call.
func SampleCatalog() []gear.Item {
	return []gear.Item{
		builders.NewItemBuilder("a glowing orb").In(gear.Light).WithHP(5).Build(),
		builders.NewItemBuilder("a signet ring").In(gear.Finger).WithHitRoll(2).WithDamageRoll(1).Build(),
		builders.NewItemBuilder("a copper band").In(gear.Finger).WithHP(8).Build(),
		builders.NewItemBuilder("a holy symbol").In(gear.Neck).WithMana(20).ForbidAlign(gear.Evil).Build(),
		builders.NewItemBuilder("a plate mail").In(gear.Body).WithLevel(30).WithHP(25).WithSpellSave(-2).Build(),
		builders.NewItemBuilder("a dragon helm").In(gear.Head).WithLevel(45).WithHP(40).Build(),
		builders.NewItemBuilder("an iron helm").In(gear.Head).WithHP(10).Build(),
		builders.NewItemBuilder("a thieves' cowl").In(gear.Head).WithHitRoll(4).ForbidClass(gear.Warrior).Build(),
		builders.NewItemBuilder("a pair of sandals").In(gear.Feet).WithHP(2).Build(),
		builders.NewItemBuilder("a steel bracer").In(gear.Wrist, gear.Arms).WithDamageRoll(1).WithHP(1).Build(),
		builders.NewItemBuilder("a longsword").In(gear.Wielded).WithHitRoll(1).WithDamageRoll(2).Build(),
	}
}
