// Package domain holds the typed identifiers shared across modules. Wrapping
// uuid.UUID in distinct types keeps a helper ID from ever being passed where
// another kind of ID is expected.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// HelperID identifies a helper aggregate.
type HelperID uuid.UUID

// NewHelperID generates a fresh random HelperID.
func NewHelperID() HelperID {
	return HelperID(uuid.New())
}

// ParseHelperID parses a string into a HelperID. Empty strings and the nil
// UUID are rejected.
func ParseHelperID(s string) (HelperID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return HelperID{}, fmt.Errorf("parse helper id %q: %w", s, err)
	}
	if parsed == uuid.Nil {
		return HelperID{}, fmt.Errorf("helper id must not be the nil uuid")
	}
	return HelperID(parsed), nil
}

func (id HelperID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero value.
func (id HelperID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}
