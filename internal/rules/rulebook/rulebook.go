// Package rulebook handles the dice notation side of the rules: parsing
// health-roll tokens such as "1d6+1", evaluating their maximum value, and
// rolling them.
package rulebook

import (
	"regexp"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/abbacode/ainneve/internal/errors"
)

// Regex for dice notation with an optional flat modifier, e.g. "2d6", "1d6-1"
var notationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Notation is a parsed dice expression
type Notation struct {
	Count    int
	Size     int
	Modifier int
}

// Parse parses dice notation of the form XdY, XdY+Z, or XdY-Z
func Parse(notation string) (Notation, error) {
	matches := notationRegex.FindStringSubmatch(notation)
	if matches == nil {
		return Notation{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return Notation{}, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}
	size, err := strconv.Atoi(matches[2])
	if err != nil {
		return Notation{}, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	modifier := 0
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return Notation{}, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	if count <= 0 || size <= 0 {
		return Notation{}, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return Notation{Count: count, Size: size, Modifier: modifier}, nil
}

// RollMax evaluates the maximum possible value of a dice expression: every
// die at its highest face plus the flat modifier. This is the comparator the
// dual-archetype merge uses to pick the weaker health roll.
func RollMax(notation string) (int, error) {
	n, err := Parse(notation)
	if err != nil {
		return 0, err
	}
	return n.Count*n.Size + n.Modifier, nil
}

// Roll rolls a dice expression and returns the total
func Roll(notation string) (int, error) {
	n, err := Parse(notation)
	if err != nil {
		return 0, err
	}

	roll, err := dice.NewRoll(n.Count, n.Size)
	if err != nil {
		return 0, errors.Wrapf(err, "rolling %s", notation)
	}
	return roll.GetValue() + n.Modifier, nil
}
