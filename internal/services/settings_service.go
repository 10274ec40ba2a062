package services

import (
	"context"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/metrics"
	"tourcrm/internal/models"
	"tourcrm/internal/utils"
)

// SettingsService backs both the workspace settings page and onboarding;
// they render the same closed-choice form.
type SettingsService struct {
	mu        sync.Mutex
	current   models.WorkspaceSettings
	saveDelay time.Duration
	notifier  Notifier
	navigator Navigator
}

func NewSettingsService(initial models.WorkspaceSettings, saveDelay time.Duration, notifier Notifier, navigator Navigator) *SettingsService {
	return &SettingsService{
		current:   initial,
		saveDelay: saveDelay,
		notifier:  notifier,
		navigator: navigator,
	}
}

func (s *SettingsService) Get() models.WorkspaceSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *SettingsService) Options() models.SettingsOptions {
	return models.SettingsOptions{
		Timezones:    append([]string(nil), models.Timezones...),
		Currencies:   append([]string(nil), models.Currencies...),
		Capabilities: append([]models.Capability(nil), models.Capabilities...),
	}
}

func (s *SettingsService) validate(form models.WorkspaceSettings) error {
	fields := map[string]string{}
	if err := utils.ValidateStruct(form); err != nil {
		ae, ok := apperrors.As(err)
		if !ok {
			return err
		}
		for k, v := range ae.Fields {
			fields[k] = v
		}
	}
	if form.WhatsAppAlerts && !models.CapabilityAvailable(models.CapabilityWhatsAppAlerts) {
		fields["whatsapp_alerts"] = "is not available yet"
	}
	if form.EmailAlerts && !models.CapabilityAvailable(models.CapabilityEmailAlerts) {
		fields["email_alerts"] = "is not available yet"
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}

// Save validates the form, waits out the save latency and commits. If ctx is
// done before the wait ends nothing is committed.
func (s *SettingsService) Save(ctx context.Context, form models.WorkspaceSettings) (models.WorkspaceSettings, error) {
	form.CompanyName = strings.TrimSpace(form.CompanyName)
	if err := s.validate(form); err != nil {
		metrics.ObserveMutation("workspace", "save", err)
		log.Infof("[workspace][save][invalid] %v", err)
		return models.WorkspaceSettings{}, err
	}
	if err := Delay(ctx, s.saveDelay); err != nil {
		log.Infof("[workspace][save][cancelled] %v", err)
		return models.WorkspaceSettings{}, err
	}

	s.mu.Lock()
	form.Onboarded = form.Onboarded || s.current.Onboarded
	s.current = form
	s.mu.Unlock()

	metrics.ObserveMutation("workspace", "save", nil)
	log.Infof("[workspace][save][ok] company=%q tz=%s currency=%s", form.CompanyName, form.Timezone, form.Currency)
	notify(s.notifier, "Workspace settings saved")
	return form, nil
}

// CompleteOnboarding saves the onboarding form and routes to the dashboard.
func (s *SettingsService) CompleteOnboarding(ctx context.Context, form models.WorkspaceSettings) (models.WorkspaceSettings, models.Destination, error) {
	form.Onboarded = true
	saved, err := s.Save(ctx, form)
	if err != nil {
		return saved, "", err
	}
	return saved, navigate(s.navigator, models.DestDashboard), nil
}
