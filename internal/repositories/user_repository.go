package repositories

import (
	"strings"
	"sync"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
)

// AccountRepository keeps workspace logins in memory, keyed by id with a
// case-insensitive email lookup.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts Collection[models.Account]
	newID    IDFunc
}

func NewAccountRepository(initial []models.Account) *AccountRepository {
	return &AccountRepository{
		accounts: NewCollection("account", initial),
		newID:    PrefixedID("A-"),
	}
}

// Register creates the account with the role chosen by roleFor, which learns
// whether this is the first account of the workspace. The check and the
// insert happen under one lock.
func (r *AccountRepository) Register(a models.Account, roleFor func(first bool) (models.Role, error)) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.findByEmail(a.Email); ok {
		return models.Account{}, apperrors.FieldError("email", "is already registered")
	}
	role, err := roleFor(r.accounts.Len() == 0)
	if err != nil {
		return models.Account{}, err
	}
	a.Role = role
	next, created, err := r.accounts.Create(a, r.newID)
	if err != nil {
		return models.Account{}, err
	}
	r.accounts = next
	return created, nil
}

func (r *AccountRepository) GetByEmail(email string) (models.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByEmail(email)
}

func (r *AccountRepository) GetByID(id string) (models.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.accounts.Get(id)
}

func (r *AccountRepository) UpdatePasswordHash(id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, _, err := r.accounts.Update(id, func(a models.Account) models.Account {
		a.PasswordHash = hash
		return a
	})
	if err != nil {
		return err
	}
	r.accounts = next
	return nil
}

func (r *AccountRepository) findByEmail(email string) (models.Account, bool) {
	email = strings.TrimSpace(email)
	for _, a := range r.accounts.Items() {
		if strings.EqualFold(a.Email, email) {
			return a, true
		}
	}
	return models.Account{}, false
}
