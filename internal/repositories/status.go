package repositories

import (
	"fmt"

	"tourcrm/internal/apperrors"
)

// Status is an enumerated status value.
type Status interface {
	~string
	Valid() bool
}

type StatusEntity[T any, S Status] interface {
	Entity[T]
	EntityStatus() S
	WithStatus(S) T
}

// ChangeStatus moves a record to another status. Statuses form a flat graph:
// any valid status can be reached from any other, so only membership is checked.
func ChangeStatus[T StatusEntity[T, S], S Status](c Collection[T], id string, to S) (Collection[T], T, error) {
	if !to.Valid() {
		var zero T
		return c, zero, apperrors.FieldError("status", fmt.Sprintf("%q is not a valid status", string(to)))
	}
	return c.Update(id, func(rec T) T { return rec.WithStatus(to) })
}
