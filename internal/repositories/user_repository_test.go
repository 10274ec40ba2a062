package repositories

import (
	"errors"
	"testing"
	"time"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
)

func asAgent(bool) (models.Role, error) { return models.RoleAgent, nil }

func TestAccountEmailUnique(t *testing.T) {
	r := NewAccountRepository(nil)
	if _, err := r.Register(models.Account{Name: "A", Email: "ops@tours.kz"}, asAgent); err != nil {
		t.Fatal(err)
	}
	_, err := r.Register(models.Account{Name: "B", Email: " OPS@tours.kz"}, asAgent)
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
	if _, ok := r.GetByEmail("Ops@Tours.kz"); !ok {
		t.Error("lookup is not case-insensitive")
	}
}

func TestAccountRegisterFirstFlag(t *testing.T) {
	r := NewAccountRepository(nil)
	var seen []bool
	roleFor := func(first bool) (models.Role, error) {
		seen = append(seen, first)
		if first {
			return models.RoleOwner, nil
		}
		return "", apperrors.Forbidden("invite only")
	}

	a, err := r.Register(models.Account{Name: "A", Email: "a@tours.kz"}, roleFor)
	if err != nil || a.Role != models.RoleOwner {
		t.Fatalf("first register = %+v, %v", a, err)
	}
	if _, err := r.Register(models.Account{Name: "B", Email: "b@tours.kz"}, roleFor); !apperrors.HasCode(err, apperrors.CodeForbidden) {
		t.Fatalf("second register err = %v", err)
	}
	if _, ok := r.GetByEmail("b@tours.kz"); ok {
		t.Error("rejected account was stored")
	}
	if _, err := r.Register(models.Account{Name: "A2", Email: "A@tours.kz"}, roleFor); !apperrors.IsValidation(err) {
		t.Fatalf("duplicate err = %v, want validation", err)
	}
	if len(seen) != 2 || !seen[0] || seen[1] {
		t.Errorf("roleFor calls = %v", seen)
	}
}

func TestPasswordResetConsume(t *testing.T) {
	r := NewPasswordResetRepository()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	r.Create(models.PasswordReset{Token: "tok", AccountID: "A-1", ExpiresAt: now.Add(time.Hour)})

	if _, err := r.Consume("tok", now.Add(2*time.Hour)); !errors.Is(err, ErrResetExpired) {
		t.Fatalf("err = %v, want expired", err)
	}
	reset, err := r.Consume("tok", now)
	if err != nil || reset.AccountID != "A-1" {
		t.Fatalf("consume: %v %+v", err, reset)
	}
	if _, err := r.Consume("tok", now); !errors.Is(err, ErrResetUsed) {
		t.Errorf("err = %v, want used", err)
	}
	if _, err := r.Consume("missing", now); !errors.Is(err, ErrResetNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}
