package models

// Timezones and Currencies are the closed choices of the workspace form.
var Timezones = []string{
	"UTC",
	"Europe/London",
	"Europe/Berlin",
	"Europe/Istanbul",
	"Asia/Dubai",
	"Asia/Almaty",
	"Asia/Bangkok",
	"America/New_York",
	"America/Los_Angeles",
	"Australia/Sydney",
}

var Currencies = []string{"USD", "EUR", "GBP", "TRY", "AED", "KZT", "THB", "AUD"}

func IsTimezone(s string) bool { return contains(Timezones, s) }

func IsCurrency(s string) bool { return contains(Currencies, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

const (
	CapabilityEmailAlerts    = "email_alerts"
	CapabilityWhatsAppAlerts = "whatsapp_alerts"
)

// Capability is a workspace toggle; unavailable ones are shown but locked.
type Capability struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

var Capabilities = []Capability{
	{Key: CapabilityEmailAlerts, Label: "Email alerts", Available: true},
	{Key: CapabilityWhatsAppAlerts, Label: "WhatsApp alerts", Available: false},
}

func CapabilityAvailable(key string) bool {
	for _, c := range Capabilities {
		if c.Key == key {
			return c.Available
		}
	}
	return false
}

type WorkspaceSettings struct {
	CompanyName    string `json:"company_name" validate:"required,notblank"`
	Timezone       string `json:"timezone" validate:"required,timezone"`
	Currency       string `json:"currency" validate:"required,currency"`
	EmailAlerts    bool   `json:"email_alerts"`
	WhatsAppAlerts bool   `json:"whatsapp_alerts"`
	Onboarded      bool   `json:"onboarded"`
}

// SettingsOptions is what the settings and onboarding forms render.
type SettingsOptions struct {
	Timezones    []string     `json:"timezones"`
	Currencies   []string     `json:"currencies"`
	Capabilities []Capability `json:"capabilities"`
}
