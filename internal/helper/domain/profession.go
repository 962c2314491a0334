package domain

import (
	"strings"

	dErrors "helperhub/pkg/domain-errors"
)

// Profession is a declared caregiving profession. Construction normalizes
// whitespace; membership in the canonical catalog is checked separately so
// the catalog can be loaded from configuration.
type Profession struct {
	value string
}

func (p Profession) String() string { return p.value }

// NewProfessions normalizes a raw list: entries are trimmed, empties are
// dropped, and duplicates collapse to their first occurrence. An empty
// outcome is legal; professions can be declared later in the review flow.
func NewProfessions(raw []string) []Profession {
	seen := make(map[string]struct{}, len(raw))
	professions := make([]Profession, 0, len(raw))
	for _, entry := range raw {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		professions = append(professions, Profession{value: trimmed})
	}
	return professions
}

// ValidateProfessions rejects the list when any entry is missing from the
// canonical catalog.
func ValidateProfessions(professions []Profession, canonical []string) error {
	allowed := make(map[string]struct{}, len(canonical))
	for _, name := range canonical {
		allowed[name] = struct{}{}
	}
	for _, p := range professions {
		if _, ok := allowed[p.value]; !ok {
			return dErrors.Newf(dErrors.CodeProfessionUnknown, "profession %q is not recognized", p.value).
				WithDetail("field", "professions").
				WithDetail("profession", p.value)
		}
	}
	return nil
}
