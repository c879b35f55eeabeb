// Package gear holds the equipment domain types: item records, the
// equipment locations they occupy and the slot sequence a full set fills.
package gear

import (
	"strings"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

// Location is an equipment position an item may occupy. The zero value is
// Light; values are dense ordinals so they can index fixed-size arrays.
type Location uint8

// Equipment locations, in ordinal order
const (
	Light Location = iota
	Finger
	Neck
	Body
	Head
	Legs
	Feet
	Hands
	Arms
	Offhand
	About
	Waist
	Wrist
	Wielded
	Held
	Aura
	Spirit
)

// NumLocations is the number of distinct locations
const NumLocations = int(Spirit) + 1

var locationNames = [NumLocations]string{
	Light:   "Light",
	Finger:  "Finger",
	Neck:    "Neck",
	Body:    "Body",
	Head:    "Head",
	Legs:    "Legs",
	Feet:    "Feet",
	Hands:   "Hands",
	Arms:    "Arms",
	Offhand: "Offhand",
	About:   "About",
	Waist:   "Waist",
	Wrist:   "Wrist",
	Wielded: "Wielded",
	Held:    "Held",
	Aura:    "Aura",
	Spirit:  "Spirit",
}

// String returns the display name of the location
func (l Location) String() string {
	if !l.IsValid() {
		return "Location(" + itoa(int(l)) + ")"
	}
	return locationNames[l]
}

// IsValid checks if the location is one of the known locations
func (l Location) IsValid() bool {
	return int(l) < NumLocations
}

// Multiplicity is how many instances of the location a full set fills
func (l Location) Multiplicity() int {
	switch l {
	case Finger, Neck, Wrist:
		return 2
	default:
		return 1
	}
}

// AllLocations returns every location in ordinal order
func AllLocations() []Location {
	all := make([]Location, NumLocations)
	for i := range all {
		all[i] = Location(i)
	}
	return all
}

// LocationFromString converts a name to a Location, ignoring case.
// "shield" is accepted as an alias of Offhand.
func LocationFromString(s string) (Location, bool) {
	name := strings.TrimSpace(s)
	if strings.EqualFold(name, "shield") {
		return Offhand, true
	}
	for i, n := range locationNames {
		if strings.EqualFold(n, name) {
			return Location(i), true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler
func (l Location) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, errors.InvalidArgumentf("invalid location %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Location) UnmarshalText(text []byte) error {
	loc, ok := LocationFromString(string(text))
	if !ok {
		return errors.InvalidArgumentf("unknown location %q", string(text))
	}
	*l = loc
	return nil
}
