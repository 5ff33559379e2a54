package kernel

import (
	"strings"

	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEntityIDIsNotConstructed indicates that an EntityID was not initialized through
// NewEntityID or EntityIDFromString. It is returned when validating a zero value.
var ErrEntityIDIsNotConstructed = errs.NewValueIsRequiredError(
	"entity ID must be created via NewEntityID or EntityIDFromString")

// EntityID is a value object identifying an aggregate or a referenced entity.
//
// Identifiers are opaque: callers may supply any non-blank string (other services
// issue their own ids, e.g. "order-1"), and identifiers minted here are random
// UUIDs rendered as strings. Two EntityIDs are equal when their text is equal.
//
// Example usage:
//
//	id := kernel.NewEntityID()
//
//	customerID, err := kernel.EntityIDFromString("customer-1")
//	if err != nil {
//	    // handle error
//	}
type EntityID struct {
	value string
}

// NewEntityID generates a new random identifier (UUID version 4).
func NewEntityID() EntityID {
	return EntityID{value: uuid.NewString()}
}

// EntityIDFromString wraps an externally supplied identifier.
// Surrounding whitespace is trimmed; a blank string is rejected.
func EntityIDFromString(s string) (EntityID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EntityID{}, errs.NewValueIsRequiredError("id")
	}
	return EntityID{value: s}, nil
}

// MustEntityIDFromString is EntityIDFromString for identifiers known to be valid,
// such as constants in tests. It panics on a blank string.
func MustEntityIDFromString(s string) EntityID {
	id, err := EntityIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier text. The zero value renders as "".
func (id EntityID) String() string {
	return id.value
}

// IsEqual reports whether both identifiers carry the same text.
func (id EntityID) IsEqual(other EntityID) bool {
	return id.value == other.value
}

// Validate returns ErrEntityIDIsNotConstructed for the zero value.
func (id EntityID) Validate() error {
	if id.value == "" {
		return ErrEntityIDIsNotConstructed
	}
	return nil
}
