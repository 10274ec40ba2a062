package models

import "time"

// Account is a login of the CRM workspace.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company,omitempty"`
	PasswordHash string    `json:"-"` // не отдаём наружу
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a Account) EntityID() string { return a.ID }

func (a Account) WithID(id string) Account {
	a.ID = id
	return a
}

func (a Account) Clone() Account { return a }

type SignupRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Company  string `json:"company"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type PasswordReset struct {
	Token     string     `json:"-"`
	AccountID string     `json:"account_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Session is returned after signup or login.
type Session struct {
	Account     Account `json:"account"`
	AccessToken string  `json:"access_token"`
}
