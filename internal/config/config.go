package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultPath = "config/config.yaml"

type FilesConfig struct {
	RootDir  string `yaml:"root_dir"`
	FontPath string `yaml:"font_path"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	AccessTTL  time.Duration `yaml:"access_ttl"`
	ResetTTL   time.Duration `yaml:"reset_ttl"`
	LoginDelay time.Duration `yaml:"login_delay"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	DryRun       bool   `yaml:"dry_run"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type BillingConfig struct {
	StripeSecretKey string            `yaml:"stripe_secret_key"`
	SuccessURL      string            `yaml:"success_url"`
	CancelURL       string            `yaml:"cancel_url"`
	Prices          map[string]string `yaml:"prices"` // plan id -> stripe price id
	CheckoutDelay   time.Duration     `yaml:"checkout_delay"`
}

type WorkspaceConfig struct {
	CompanyName string        `yaml:"company_name"`
	Timezone    string        `yaml:"timezone"`
	Currency    string        `yaml:"currency"`
	SaveDelay   time.Duration `yaml:"save_delay"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Server struct {
		Port int    `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Email     EmailConfig     `yaml:"email"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Billing   BillingConfig   `yaml:"billing"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Files     FilesConfig     `yaml:"files"`
	Log       LogConfig       `yaml:"log"`
	Sentry    struct {
		DSN         string `yaml:"dsn"`
		Environment string `yaml:"environment"`
	} `yaml:"sentry"`
}

// LoadConfig reads the yaml file named by TOURCRM_CONFIG (config/config.yaml
// by default), applies TOURCRM_* overrides and panics when the file is broken.
func LoadConfig() *Config {
	_ = godotenv.Load()

	path := os.Getenv("TOURCRM_CONFIG")
	if path == "" {
		path = defaultPath
	}
	cfg, err := Load(path)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// Load reads path; a missing file yields defaults plus env overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Server.Mode, "TOURCRM_MODE")
	setString(&cfg.Auth.JWTSecret, "TOURCRM_JWT_SECRET")
	setString(&cfg.Email.SMTPHost, "TOURCRM_SMTP_HOST")
	setString(&cfg.Email.SMTPUser, "TOURCRM_SMTP_USER")
	setString(&cfg.Email.SMTPPassword, "TOURCRM_SMTP_PASSWORD")
	setString(&cfg.Telegram.BotToken, "TOURCRM_TELEGRAM_TOKEN")
	setString(&cfg.Billing.StripeSecretKey, "TOURCRM_STRIPE_SECRET_KEY")
	setString(&cfg.Sentry.DSN, "TOURCRM_SENTRY_DSN")
	setString(&cfg.Log.Level, "TOURCRM_LOG_LEVEL")

	if v := os.Getenv("TOURCRM_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TOURCRM_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("TOURCRM_TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TOURCRM_TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = id
	}
	if v := os.Getenv("TOURCRM_EMAIL_DRY_RUN"); v != "" {
		dry, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TOURCRM_EMAIL_DRY_RUN: %w", err)
		}
		cfg.Email.DryRun = dry
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Auth.AccessTTL == 0 {
		cfg.Auth.AccessTTL = 15 * time.Minute
	}
	if cfg.Auth.ResetTTL == 0 {
		cfg.Auth.ResetTTL = time.Hour
	}
	if cfg.Files.RootDir == "" {
		cfg.Files.RootDir = "./files"
	}
	if cfg.Workspace.Timezone == "" {
		cfg.Workspace.Timezone = "UTC"
	}
	if cfg.Workspace.Currency == "" {
		cfg.Workspace.Currency = "USD"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
