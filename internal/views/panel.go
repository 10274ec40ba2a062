// Package views holds the transient UI state shared by list screens.
package views

import (
	"tourcrm/internal/apperrors"
	"tourcrm/internal/repositories"
)

// Panel is the selection state of one list view: either nothing is
// selected, or one record is open together with an editable draft.
// The draft is a detached copy; the collection only changes on Save.
type Panel[T repositories.Entity[T]] struct {
	open       bool
	selectedID string
	draft      T
}

// PanelState is the serializable view of a Panel.
type PanelState[T any] struct {
	Open       bool   `json:"open"`
	SelectedID string `json:"selected_id,omitempty"`
	Draft      *T     `json:"draft,omitempty"`
}

func errPanelClosed() error {
	return apperrors.BadRequest("no record is open")
}

// Open selects id and hydrates the draft from c. Opening another record
// replaces the current selection and drops its unsaved draft.
func (p *Panel[T]) Open(c repositories.Collection[T], id string) (T, error) {
	rec, ok := c.Get(id)
	if !ok {
		var zero T
		return zero, apperrors.NotFound(c.Name(), id)
	}
	p.open = true
	p.selectedID = id
	p.draft = rec
	return p.draft.Clone(), nil
}

func (p *Panel[T]) Selected() (string, bool) {
	return p.selectedID, p.open
}

func (p *Panel[T]) Draft() (T, bool) {
	if !p.open {
		var zero T
		return zero, false
	}
	return p.draft.Clone(), true
}

// Edit changes the draft only.
func (p *Panel[T]) Edit(apply func(T) T) (T, error) {
	if !p.open {
		var zero T
		return zero, errPanelClosed()
	}
	p.draft = apply(p.draft.Clone()).WithID(p.selectedID)
	return p.draft.Clone(), nil
}

// Save validates the draft and commits it into c. On validation failure the
// panel stays open and c is returned unchanged. On success the panel closes.
func (p *Panel[T]) Save(c repositories.Collection[T], validate func(T) error) (repositories.Collection[T], T, error) {
	if !p.open {
		var zero T
		return c, zero, errPanelClosed()
	}
	if validate != nil {
		if err := validate(p.draft.Clone()); err != nil {
			return c, p.draft.Clone(), err
		}
	}
	next, saved, err := c.Replace(p.selectedID, p.draft)
	if err != nil {
		// the record went away while the panel was open
		p.Close()
		return c, saved, err
	}
	p.Close()
	return next, saved, nil
}

// Close discards the draft and clears the selection.
func (p *Panel[T]) Close() {
	var zero T
	p.open = false
	p.selectedID = ""
	p.draft = zero
}

// Reconcile clears the selection when the selected record is no longer in c.
// It reports whether the selection was cleared.
func (p *Panel[T]) Reconcile(c repositories.Collection[T]) bool {
	if p.open && !c.Contains(p.selectedID) {
		p.Close()
		return true
	}
	return false
}

func (p *Panel[T]) State() PanelState[T] {
	if !p.open {
		return PanelState[T]{}
	}
	draft := p.draft.Clone()
	return PanelState[T]{Open: true, SelectedID: p.selectedID, Draft: &draft}
}
