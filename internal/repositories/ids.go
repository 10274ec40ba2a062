package repositories

import "github.com/google/uuid"

// IDFunc mints identifiers for new records.
type IDFunc func() string

// PrefixedID mints time-ordered UUIDv7 ids, e.g. "L-0190f6c2-...".
func PrefixedID(prefix string) IDFunc {
	return func() string {
		id, err := uuid.NewV7()
		if err != nil {
			return prefix + uuid.NewString()
		}
		return prefix + id.String()
	}
}
