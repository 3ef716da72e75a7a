package archetypes

import (
	"strings"

	"github.com/abbacode/ainneve/internal/errors"
	"github.com/abbacode/ainneve/internal/rules/rulebook"
)

var errInvalidArchetype = errors.InvalidArgument("invalid archetype specified")

// Load resolves a name to a fresh Archetype instance. Names are
// case-insensitive; a hyphenated pair such as "warrior-scout" loads both
// sides and merges them into the dual archetype. Pure function of its input.
func Load(name string) (*Archetype, error) {
	name = titleCase(name)
	if idx := strings.Index(name, "-"); idx >= 0 {
		a, err := Load(name[:idx])
		if err != nil {
			return nil, err
		}
		b, err := Load(name[idx+1:])
		if err != nil {
			return nil, err
		}
		return Merge(a, b, rulebook.RollMax)
	}
	return newNamed(name)
}

// titleCase normalizes each hyphen-separated part to Title case
func titleCase(name string) string {
	parts := strings.Split(name, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}
	return strings.Join(parts, "-")
}
