package services

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"tourcrm/internal/config"
)

type EmailService interface {
	SendWelcomeEmail(email, companyName string) error
	SendPasswordResetEmail(email, token string) error
	SendTeamInvite(email, name, companyName, role string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
	dryRun bool
}

// NewEmailService builds the SMTP mailer. With DryRun set, or no SMTP host,
// messages are logged instead of sent.
func NewEmailService(cfg config.EmailConfig) EmailService {
	return &emailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.FromEmail,
		dryRun: cfg.DryRun || cfg.SMTPHost == "",
	}
}

func (s *emailService) send(to, subject, body string) error {
	if s.dryRun {
		log.Infof("[mail][dry-run] to=%s subject=%q", to, subject)
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendWelcomeEmail(email, companyName string) error {
	if companyName == "" {
		companyName = "your workspace"
	}
	body := fmt.Sprintf(`
		<h2>Welcome aboard, %s!</h2>
		<p>Your tour CRM account is ready. Finish onboarding to set your timezone and currency.</p>
	`, companyName)
	if err := s.send(email, "Welcome to your tour CRM", body); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendPasswordResetEmail(email, token string) error {
	body := fmt.Sprintf(`
		<h3>Password reset requested</h3>
		<p>Use the following token to reset your password: <strong>%s</strong></p>
		<p>If you did not request this change, you can ignore this email.</p>
	`, token)
	if err := s.send(email, "Password reset request", body); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func (s *emailService) SendTeamInvite(email, name, companyName, role string) error {
	body := fmt.Sprintf(`
		<h3>Hi %s,</h3>
		<p>You have been invited to join <strong>%s</strong> as %s.</p>
		<p>Sign up with this email address to accept the invitation.</p>
	`, name, companyName, role)
	if err := s.send(email, "You're invited to "+companyName, body); err != nil {
		return fmt.Errorf("failed to send team invite: %w", err)
	}
	return nil
}
