package repositories

import (
	"errors"
	"sync"
	"time"

	"tourcrm/internal/models"
)

var (
	ErrResetNotFound = errors.New("reset token not found")
	ErrResetExpired  = errors.New("reset token expired")
	ErrResetUsed     = errors.New("reset token already used")
)

type PasswordResetRepository struct {
	mu     sync.Mutex
	resets map[string]models.PasswordReset
}

func NewPasswordResetRepository() *PasswordResetRepository {
	return &PasswordResetRepository{resets: make(map[string]models.PasswordReset)}
}

func (r *PasswordResetRepository) Create(reset models.PasswordReset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets[reset.Token] = reset
}

// Consume marks the token used and returns its reset record.
func (r *PasswordResetRepository) Consume(token string, now time.Time) (models.PasswordReset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reset, ok := r.resets[token]
	if !ok {
		return models.PasswordReset{}, ErrResetNotFound
	}
	if reset.UsedAt != nil {
		return models.PasswordReset{}, ErrResetUsed
	}
	if now.After(reset.ExpiresAt) {
		return models.PasswordReset{}, ErrResetExpired
	}
	used := now
	reset.UsedAt = &used
	r.resets[token] = reset
	return reset, nil
}
