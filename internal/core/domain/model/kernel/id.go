package kernel

import (
	"strconv"

	"ordering/internal/pkg/errs"
)

// ID is a database-generated identifier for users, orders and products.
// Valid identifiers are strictly positive.
type ID int64

// NewID validates a raw identifier coming from a request or a row.
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier, as found in path parameters.
func ParseID(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Validate reports whether the identifier can reference a stored row.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("id", int64(id), 1, "max int64")
	}
	return nil
}
