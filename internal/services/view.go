package services

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/metrics"
	"tourcrm/internal/repositories"
	"tourcrm/internal/views"
)

// entityView is the state of one list screen: its collection (single source
// of truth) and its detail panel. Every write goes through mutate.
type entityView[T repositories.Entity[T]] struct {
	mu       sync.Mutex
	entity   string
	items    repositories.Collection[T]
	panel    views.Panel[T]
	newID    repositories.IDFunc
	validate func(T) error
}

func newEntityView[T repositories.Entity[T]](entity, idPrefix string, initial []T, validate func(T) error) *entityView[T] {
	return &entityView[T]{
		entity:   entity,
		items:    repositories.NewCollection(entity, initial),
		newID:    repositories.PrefixedID(idPrefix),
		validate: validate,
	}
}

func (v *entityView[T]) snapshot() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.items.Items()
}

func (v *entityView[T]) page(noun string, q repositories.Query[T]) repositories.Page[T] {
	return repositories.NewPage(noun, v.snapshot(), q)
}

func (v *entityView[T]) get(id string) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	rec, ok := v.items.Get(id)
	if !ok {
		err := apperrors.NotFound(v.entity, id)
		log.Warnf("[%s][get][404] id=%s", v.entity, id)
		return rec, err
	}
	return rec, nil
}

func (v *entityView[T]) create(draft T) (T, error) {
	if err := v.check(draft); err != nil {
		metrics.ObserveMutation(v.entity, "create", err)
		log.Infof("[%s][create][invalid] %v", v.entity, err)
		var zero T
		return zero, err
	}
	return v.mutate("create", func(c repositories.Collection[T]) (repositories.Collection[T], T, error) {
		return c.Create(draft, v.newID)
	})
}

// update applies a field change set and validates the result before commit.
func (v *entityView[T]) update(id string, apply func(T) T) (T, error) {
	return v.mutate("update", func(c repositories.Collection[T]) (repositories.Collection[T], T, error) {
		current, ok := c.Get(id)
		if !ok {
			var zero T
			return c, zero, apperrors.NotFound(v.entity, id)
		}
		candidate := apply(current)
		if err := v.check(candidate); err != nil {
			var zero T
			return c, zero, err
		}
		return c.Replace(id, candidate)
	})
}

func (v *entityView[T]) mutate(op string, fn func(repositories.Collection[T]) (repositories.Collection[T], T, error)) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	next, rec, err := fn(v.items)
	metrics.ObserveMutation(v.entity, op, err)
	if err != nil {
		v.logFailure(op, err)
		var zero T
		return zero, err
	}
	v.items = next
	v.panel.Reconcile(next)
	log.Infof("[%s][%s][ok] id=%s", v.entity, op, rec.EntityID())
	return rec, nil
}

func (v *entityView[T]) check(rec T) error {
	if v.validate == nil {
		return nil
	}
	return v.validate(rec)
}

func (v *entityView[T]) logFailure(op string, err error) {
	switch {
	case apperrors.IsNotFound(err):
		log.Warnf("[%s][%s][404] %v", v.entity, op, err)
	case apperrors.IsValidation(err):
		log.Infof("[%s][%s][invalid] %v", v.entity, op, err)
	case apperrors.HasCode(err, apperrors.CodeConflict):
		log.Infof("[%s][%s][conflict] %v", v.entity, op, err)
	default:
		log.Errorf("[%s][%s][err] %v", v.entity, op, err)
	}
}

func (v *entityView[T]) openPanel(id string) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	draft, err := v.panel.Open(v.items, id)
	if err != nil {
		log.Warnf("[%s][panel][open][404] id=%s", v.entity, id)
	}
	return draft, err
}

func (v *entityView[T]) editDraft(apply func(T) T) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panel.Edit(apply)
}

// savePanel commits the draft; a validation failure leaves the panel open.
// prepare, when set, stamps the draft just before it is validated.
func (v *entityView[T]) savePanel(prepare func(T) T) (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if prepare != nil {
		if _, ok := v.panel.Selected(); ok {
			_, _ = v.panel.Edit(prepare)
		}
	}
	next, saved, err := v.panel.Save(v.items, v.check)
	metrics.ObserveMutation(v.entity, "panel_save", err)
	if err != nil {
		v.logFailure("panel_save", err)
		return saved, err
	}
	v.items = next
	log.Infof("[%s][panel_save][ok] id=%s", v.entity, saved.EntityID())
	return saved, nil
}

func (v *entityView[T]) closePanel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.panel.Close()
}

func (v *entityView[T]) panelState() views.PanelState[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.panel.State()
}
