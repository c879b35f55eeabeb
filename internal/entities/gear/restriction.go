package gear

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

// Align is a character alignment
type Align uint8

// Alignments
const (
	Evil Align = iota
	Good
	Neutral
)

var alignNames = []string{"Evil", "Good", "Neutral"}

// String returns the display name of the alignment
func (a Align) String() string {
	if int(a) >= len(alignNames) {
		return "Align(" + itoa(int(a)) + ")"
	}
	return alignNames[a]
}

// IsValid reports whether a is a known alignment
func (a Align) IsValid() bool {
	return int(a) < len(alignNames)
}

// AlignFromString converts a name to an Align, ignoring case
func AlignFromString(s string) (Align, bool) {
	i, ok := lookupName(alignNames, s)
	return Align(i), ok
}

// MarshalText implements encoding.TextMarshaler
func (a Align) MarshalText() ([]byte, error) {
	if int(a) >= len(alignNames) {
		return nil, errors.InvalidArgumentf("invalid alignment %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Align) UnmarshalText(text []byte) error {
	align, ok := AlignFromString(string(text))
	if !ok {
		return errors.InvalidArgumentf("unknown alignment %q", string(text))
	}
	*a = align
	return nil
}

// Class is a character class
type Class uint8

// Classes
const (
	Cleric Class = iota
	Mage
	Thief
	Warrior
)

var classNames = []string{"Cleric", "Mage", "Thief", "Warrior"}

// String returns the display name of the class
func (c Class) String() string {
	if int(c) >= len(classNames) {
		return "Class(" + itoa(int(c)) + ")"
	}
	return classNames[c]
}

// IsValid reports whether c is a known class
func (c Class) IsValid() bool {
	return int(c) < len(classNames)
}

// ClassFromString converts a name to a Class, ignoring case
func ClassFromString(s string) (Class, bool) {
	i, ok := lookupName(classNames, s)
	return Class(i), ok
}

// MarshalText implements encoding.TextMarshaler
func (c Class) MarshalText() ([]byte, error) {
	if int(c) >= len(classNames) {
		return nil, errors.InvalidArgumentf("invalid class %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Class) UnmarshalText(text []byte) error {
	class, ok := ClassFromString(string(text))
	if !ok {
		return errors.InvalidArgumentf("unknown class %q", string(text))
	}
	*c = class
	return nil
}

// AlignNames lists the accepted alignment names
func AlignNames() []string {
	return append([]string(nil), alignNames...)
}

// ClassNames lists the accepted class names
func ClassNames() []string {
	return append([]string(nil), classNames...)
}

func lookupName(names []string, s string) (int, bool) {
	name := strings.TrimSpace(s)
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i, true
		}
	}
	return 0, false
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
