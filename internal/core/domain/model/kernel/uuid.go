package kernel

import (
	"fmt"

	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies users, parcels and history entries. It wraps
// github.com/google/uuid so that the nil identifier never leaks into the
// domain: the zero value fails Validate and every constructor rejects it.
//
//	id := kernel.NewUUID()
//	same, err := kernel.UUIDFromString(id.String())
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical, braced, urn or hyphen-less forms.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

// UUIDFromBytes builds a UUID from exactly 16 bytes.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

// ParseID parses a client-supplied identifier and reports a failure as an
// invalid value of the named parameter.
func ParseID(paramName, s string) (UUID, error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

func fromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// String returns the lower-case hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns a copy of the underlying uuid.UUID for persistence and transport.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil identifier.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
