package gear

import "fmt"

// SlotCount is the number of slot instances in a full set
const SlotCount = 20

// SlotInstance is one concrete position to fill. Index counts from zero
// among the instances of the same location.
type SlotInstance struct {
	Location Location
	Index    uint8
}

// String returns the display label, numbering locations that appear
// more than once: "Light", "Finger 1", "Finger 2".
func (s SlotInstance) String() string {
	if s.Location.Multiplicity() > 1 {
		return fmt.Sprintf("%s %d", s.Location, s.Index+1)
	}
	return s.Location.String()
}

var sequence = [SlotCount]SlotInstance{
	{Light, 0},
	{Finger, 0},
	{Finger, 1},
	{Neck, 0},
	{Neck, 1},
	{Body, 0},
	{Head, 0},
	{Legs, 0},
	{Feet, 0},
	{Hands, 0},
	{Arms, 0},
	{Offhand, 0},
	{About, 0},
	{Waist, 0},
	{Wrist, 0},
	{Wrist, 1},
	{Wielded, 0},
	{Held, 0},
	{Aura, 0},
	{Spirit, 0},
}

// Sequence returns the ordered slot instances a full set fills
func Sequence() [SlotCount]SlotInstance {
	return sequence
}
