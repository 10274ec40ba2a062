package repositories

import (
	"fmt"

	"tourcrm/internal/apperrors"
)

// Entity is a record that can be kept in a Collection.
type Entity[T any] interface {
	EntityID() string
	WithID(id string) T
	Clone() T
}

// maxIDAttempts bounds retries when a minted id collides with an existing one.
const maxIDAttempts = 8

// Collection is an ordered in-memory set of records of one type. It is a value:
// Create and Update never touch the receiver, they return the next collection.
type Collection[T Entity[T]] struct {
	name  string
	items []T
}

// NewCollection copies initial, so the caller's slice is never shared.
func NewCollection[T Entity[T]](name string, initial []T) Collection[T] {
	items := make([]T, len(initial))
	for i, it := range initial {
		items[i] = it.Clone()
	}
	return Collection[T]{name: name, items: items}
}

func (c Collection[T]) Name() string { return c.name }

func (c Collection[T]) Len() int { return len(c.items) }

// Items returns detached copies in collection order.
func (c Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

func (c Collection[T]) Get(id string) (T, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

func (c Collection[T]) Contains(id string) bool {
	return c.indexOf(id) >= 0
}

func (c Collection[T]) indexOf(id string) int {
	for i, it := range c.items {
		if it.EntityID() == id {
			return i
		}
	}
	return -1
}

// Create stamps draft with a fresh id from newID and appends it.
func (c Collection[T]) Create(draft T, newID IDFunc) (Collection[T], T, error) {
	var zero T
	if newID == nil {
		return c, zero, apperrors.Internal("no id generator configured", nil)
	}
	id := ""
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate := newID()
		if candidate != "" && !c.Contains(candidate) {
			id = candidate
			break
		}
	}
	if id == "" {
		return c, zero, apperrors.Internal(fmt.Sprintf("could not mint a unique %s id", c.name), nil)
	}

	created := draft.Clone().WithID(id)
	items := make([]T, len(c.items), len(c.items)+1)
	copy(items, c.items)
	items = append(items, created)
	return Collection[T]{name: c.name, items: items}, created.Clone(), nil
}

// Update replaces the record with the given id by apply(record) in place.
// The id cannot be changed by apply.
func (c Collection[T]) Update(id string, apply func(T) T) (Collection[T], T, error) {
	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return c, zero, apperrors.NotFound(c.name, id)
	}
	updated := apply(c.items[i].Clone()).WithID(id)

	items := make([]T, len(c.items))
	copy(items, c.items)
	items[i] = updated
	return Collection[T]{name: c.name, items: items}, updated.Clone(), nil
}

// Replace is Update with a whole record.
func (c Collection[T]) Replace(id string, rec T) (Collection[T], T, error) {
	return c.Update(id, func(T) T { return rec.Clone() })
}
