package app

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	_ "tourcrm/docs"
	"tourcrm/internal/config"
	"tourcrm/internal/handlers"
	"tourcrm/internal/logger"
	"tourcrm/internal/middleware"
	"tourcrm/internal/mockdata"
	"tourcrm/internal/models"
	"tourcrm/internal/pdf"
	"tourcrm/internal/repositories"
	"tourcrm/internal/routes"
	"tourcrm/internal/services"
)

func Run() {
	cfg := config.LoadConfig()
	logger.Setup(cfg.Log)

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Sentry.Environment}); err != nil {
			log.Warnf("[sentry] init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS())
	Build(router, cfg, time.Now())

	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infof("[app] listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("[app] server stopped: %v", err)
	}
}

// Build is the composition root: it seeds every view from the default
// datasets and registers the routes on router.
func Build(router *gin.Engine, cfg *config.Config, now time.Time) *gin.Engine {
	// === Notifications ===
	feed := services.NewToastFeed(50)
	var notifier services.Notifier = feed
	tg, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Workspace.CompanyName)
	if err != nil {
		log.Warnf("[app] telegram disabled: %v", err)
	} else if tg != nil {
		notifier = services.MultiNotifier{feed, tg}
	}
	navigator := services.LogNavigator()

	// === Outside services ===
	emailService := services.NewEmailService(cfg.Email)
	vouchers := pdf.NewVoucherGenerator(cfg.Files.RootDir, cfg.Files.FontPath)
	tokens := middleware.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTTL)
	var checkout services.CheckoutProvider
	if cfg.Billing.StripeSecretKey != "" {
		checkout = services.NewStripeCheckout(cfg.Billing.StripeSecretKey, cfg.Billing.Prices, cfg.Billing.SuccessURL, cfg.Billing.CancelURL)
	}

	// === Views ===
	company := cfg.Workspace.CompanyName
	bookingService := services.NewBookingService(mockdata.Bookings(), notifier, vouchers, company)
	leadService := services.NewLeadService(mockdata.Leads(now), bookingService, notifier)
	tourService := services.NewTourService(mockdata.Tours(), notifier)
	inboxService := services.NewInboxService(mockdata.Conversations(now), notifier)
	teamService := services.NewTeamService(mockdata.Team(now), emailService, notifier, company)
	settingsService := services.NewSettingsService(
		mockdata.Workspace(company, cfg.Workspace.Timezone, cfg.Workspace.Currency),
		cfg.Workspace.SaveDelay, notifier, navigator,
	)
	authService := services.NewAuthService(
		repositories.NewAccountRepository(nil),
		repositories.NewPasswordResetRepository(),
		tokens, emailService, teamService, navigator,
		services.AuthOptions{ResetTTL: cfg.Auth.ResetTTL, LoginDelay: cfg.Auth.LoginDelay},
	)
	billingService := services.NewBillingService(checkout, cfg.Billing.CheckoutDelay)
	reportService := services.NewReportService(leadService, bookingService, tourService, inboxService)

	// === Handlers ===
	h := routes.Handlers{
		Auth:          handlers.NewAuthHandler(authService),
		Leads:         handlers.NewLeadHandler(leadService),
		LeadPanel:     handlers.NewPanelHandler[models.Lead, models.LeadPatch](leadService),
		Bookings:      handlers.NewBookingHandler(bookingService),
		BookingPanel:  handlers.NewPanelHandler[models.Booking, models.BookingPatch](bookingService),
		Tours:         handlers.NewTourHandler(tourService),
		TourPanel:     handlers.NewPanelHandler[models.Tour, models.TourPatch](tourService),
		Inbox:         handlers.NewInboxHandler(inboxService),
		Team:          handlers.NewTeamHandler(teamService),
		Settings:      handlers.NewSettingsHandler(settingsService),
		Billing:       handlers.NewBillingHandler(billingService),
		Reports:       handlers.NewReportHandler(reportService),
		Notifications: handlers.NewNotificationHandler(feed),
	}
	return routes.SetupRoutes(router, h, tokens)
}
