package loadout

import (
	"math/big"
	"time"

	"github.com/KirkDiggler/rpg-gearset/internal/character"
	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/optimizer"
)

// CharacterInput identifies the catalog and the character to equip
type CharacterInput struct {
	CatalogName string
	Level       uint8
	Class       gear.Class
	Align       gear.Align
}

// FindBestSetInput defines the input for an optimizer run
type FindBestSetInput struct {
	CharacterInput
}

// FindBestSetOutput defines the result of an optimizer run
type FindBestSetOutput struct {
	RunID     string
	Character *character.Character
	ItemSet   *optimizer.ItemSet
	// ItemCount is the number of records in the catalog
	ItemCount    int
	Combinations *big.Int
	Duration     time.Duration
}

// DescribePoolsInput defines the input for listing usable items
type DescribePoolsInput struct {
	CharacterInput
}

// LocationPool lists the usable items for one location
type LocationPool struct {
	Location gear.Location
	Items    []*gear.Item
}

// DescribePoolsOutput lists the usable items for every location
type DescribePoolsOutput struct {
	Character    *character.Character
	Pools        []LocationPool
	Combinations *big.Int
}
