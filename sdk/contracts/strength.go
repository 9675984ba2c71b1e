package contracts

import (
	"fmt"
	"strings"
)

// Strength is the intensity class of a single feedback pulse.
// Values are ordered: Generic < Alignment < LevelChange.
type Strength int

const (
	// Generic is the lightest, general-purpose pulse.
	Generic Strength = iota
	// Alignment is the snapping feedback used for precise actions.
	Alignment
	// LevelChange is the strongest pulse.
	LevelChange
)

var strengthNames = [...]string{
	Generic:     "generic",
	Alignment:   "alignment",
	LevelChange: "level_change",
}

// String returns the lower-case name of the strength.
func (s Strength) String() string {
	if !s.Valid() {
		return fmt.Sprintf("strength(%d)", int(s))
	}
	return strengthNames[s]
}

// Valid reports whether s is one of the three built-in strengths.
func (s Strength) Valid() bool {
	return s >= Generic && s <= LevelChange
}

// ParseStrength converts a name such as "alignment" into a Strength.
func ParseStrength(name string) (Strength, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strengthNames {
		if n == name {
			return Strength(i), nil
		}
	}
	return Generic, fmt.Errorf("unknown strength %q", name)
}
