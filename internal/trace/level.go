package trace

import (
	"fmt"
	"strings"
)

// Level is the tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // только дамп кольца при панике
	LevelPhase        // driver + pass
	LevelDetail       // + design units
	LevelDebug        // + declarations
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

func (l Level) String() string { return lookupName(levelNames[:], int(l)) }

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// deepest maps a level to the finest scope it lets through; 0 lets nothing.
var deepest = [...]Scope{
	LevelPhase:  ScopePass,
	LevelDetail: ScopeUnit,
	LevelDebug:  ScopeNode,
}

// ShouldEmit reports whether events of scope pass the level filter.
// LevelError records nothing up front.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(deepest) {
		return false
	}
	return deepest[l] != 0 && scope <= deepest[l]
}
