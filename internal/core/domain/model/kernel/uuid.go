package kernel

import (
	"fmt"
	"strings"

	"shippix/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies orders and handoff tokens. It wraps github.com/google/uuid so the
// domain never handles the nil UUID: the zero value is invalid and must be built
// with NewUUID or UUIDFromString.
//
// Example usage:
//
//	token := kernel.NewUUID()
//	redirect := "/review-order?h=" + token.String()
//
//	parsed, err := kernel.UUIDFromString(c.QueryParam("h"))
//	if err != nil {
//	    // render the fallback page
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced, urn-prefixed or hyphen-less forms.
// The nil UUID is rejected with ErrUUIDIsNotConstructed.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// ShortCode returns the first eight hex digits in upper case. It is the order
// number shown to customers, e.g. "ORD-550E8400".
func (u UUID) ShortCode() string {
	return strings.ToUpper(u.id.String()[:8])
}

// Bytes returns the underlying uuid.UUID, for adapters that persist it natively.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
