package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/utils"
)

// TokenIssuer signs access tokens for an account.
type TokenIssuer interface {
	Issue(account models.Account) (string, error)
}

type AuthOptions struct {
	ResetTTL   time.Duration
	LoginDelay time.Duration
}

type AuthService struct {
	accounts  *repositories.AccountRepository
	resets    *repositories.PasswordResetRepository
	tokens    TokenIssuer
	emails    EmailService
	team      *TeamService
	navigator Navigator
	opts      AuthOptions
	now       func() time.Time
}

func NewAuthService(
	accounts *repositories.AccountRepository,
	resets *repositories.PasswordResetRepository,
	tokens TokenIssuer,
	emails EmailService,
	team *TeamService,
	navigator Navigator,
	opts AuthOptions,
) *AuthService {
	if opts.ResetTTL <= 0 {
		opts.ResetTTL = time.Hour
	}
	return &AuthService{
		accounts:  accounts,
		resets:    resets,
		tokens:    tokens,
		emails:    emails,
		team:      team,
		navigator: navigator,
		opts:      opts,
		now:       time.Now,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func checkEmail(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return apperrors.FieldError("email", "must be a valid email")
	}
	return nil
}

// Signup creates the account and routes to onboarding. The first account of
// the workspace becomes its owner. After that, signup needs a pending team
// invitation: the account takes the invited role and the member becomes
// active once the account exists.
func (s *AuthService) Signup(req models.SignupRequest) (models.Session, models.Destination, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return models.Session{}, "", err
	}
	if err := checkEmail(req.Email); err != nil {
		return models.Session{}, "", err
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return models.Session{}, "", apperrors.Internal("could not create account", err)
	}
	var (
		invite  models.TeamMember
		invited bool
	)
	if s.team != nil {
		invite, invited = s.team.Invitation(req.Email)
	}
	account, err := s.accounts.Register(models.Account{
		Name:         req.Name,
		Email:        req.Email,
		Company:      strings.TrimSpace(req.Company),
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}, func(first bool) (models.Role, error) {
		switch {
		case invited:
			return invite.Role, nil
		case first:
			return models.RoleOwner, nil
		default:
			return "", apperrors.Forbidden("signup needs an invitation from a workspace admin")
		}
	})
	if err != nil {
		log.Infof("[auth][signup][denied] email=%s: %v", req.Email, err)
		return models.Session{}, "", err
	}
	if invited {
		if _, ok := s.team.Activate(account.Email); !ok {
			log.Warnf("[auth][signup] invitation for %s was gone before activation", account.Email)
		}
	}

	session, err := s.session(account)
	if err != nil {
		return models.Session{}, "", err
	}
	if s.emails != nil {
		if err := s.emails.SendWelcomeEmail(account.Email, account.Company); err != nil {
			log.Warnf("[auth][signup] welcome mail to %s failed: %v", account.Email, err)
		}
	}
	log.Infof("[auth][signup][ok] id=%s", account.ID)
	return session, navigate(s.navigator, models.DestOnboarding), nil
}

// Login waits out the login latency before checking credentials; a cancelled
// ctx returns its error and nothing else happens.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, models.Destination, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := utils.ValidateStruct(req); err != nil {
		return models.Session{}, "", err
	}
	if err := Delay(ctx, s.opts.LoginDelay); err != nil {
		return models.Session{}, "", err
	}

	account, ok := s.accounts.GetByEmail(req.Email)
	if !ok || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		log.Infof("[auth][login][denied] email=%s", req.Email)
		return models.Session{}, "", apperrors.Unauthorized("invalid email or password")
	}
	session, err := s.session(account)
	if err != nil {
		return models.Session{}, "", err
	}
	log.Infof("[auth][login][ok] id=%s", account.ID)
	return session, navigate(s.navigator, models.DestDashboard), nil
}

// ForgotPassword mails a reset token when the email is known. The answer is
// the same either way so account existence does not leak.
func (s *AuthService) ForgotPassword(req models.ForgotPasswordRequest) (models.Destination, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if err := utils.ValidateStruct(req); err != nil {
		return "", err
	}
	account, ok := s.accounts.GetByEmail(req.Email)
	if !ok {
		log.Infof("[auth][forgot] unknown email=%s", req.Email)
		return navigate(s.navigator, models.DestLogin), nil
	}

	token, err := utils.NewToken(32)
	if err != nil {
		return "", apperrors.Internal("could not start password reset", err)
	}
	now := s.now()
	s.resets.Create(models.PasswordReset{
		Token:     token,
		AccountID: account.ID,
		ExpiresAt: now.Add(s.opts.ResetTTL),
		CreatedAt: now,
	})
	if s.emails != nil {
		if err := s.emails.SendPasswordResetEmail(account.Email, token); err != nil {
			log.Errorf("[auth][forgot] mail to %s failed: %v", account.Email, err)
			return "", apperrors.External("email", err)
		}
	}
	return navigate(s.navigator, models.DestLogin), nil
}

func (s *AuthService) ResetPassword(req models.ResetPasswordRequest) (models.Destination, error) {
	req.Token = strings.TrimSpace(req.Token)
	if err := utils.ValidateStruct(req); err != nil {
		return "", err
	}
	reset, err := s.resets.Consume(req.Token, s.now())
	switch {
	case errors.Is(err, repositories.ErrResetExpired):
		return "", apperrors.FieldError("token", "has expired")
	case errors.Is(err, repositories.ErrResetUsed):
		return "", apperrors.FieldError("token", "has already been used")
	case err != nil:
		return "", apperrors.FieldError("token", "is invalid")
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return "", apperrors.Internal("could not reset password", err)
	}
	if err := s.accounts.UpdatePasswordHash(reset.AccountID, hash); err != nil {
		return "", err
	}
	log.Infof("[auth][reset][ok] id=%s", reset.AccountID)
	return navigate(s.navigator, models.DestLogin), nil
}

func (s *AuthService) session(a models.Account) (models.Session, error) {
	if s.tokens == nil {
		return models.Session{}, apperrors.External("auth", errors.New("token issuer is not configured"))
	}
	token, err := s.tokens.Issue(a)
	if err != nil {
		return models.Session{}, apperrors.External("auth", err)
	}
	return models.Session{Account: a, AccessToken: token}, nil
}
