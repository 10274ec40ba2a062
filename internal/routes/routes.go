package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourcrm/internal/handlers"
	"tourcrm/internal/metrics"
	"tourcrm/internal/middleware"
	"tourcrm/internal/models"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Leads         *handlers.LeadHandler
	LeadPanel     *handlers.PanelHandler[models.Lead, models.LeadPatch]
	Bookings      *handlers.BookingHandler
	BookingPanel  *handlers.PanelHandler[models.Booking, models.BookingPatch]
	Tours         *handlers.TourHandler
	TourPanel     *handlers.PanelHandler[models.Tour, models.TourPatch]
	Inbox         *handlers.InboxHandler
	Team          *handlers.TeamHandler
	Settings      *handlers.SettingsHandler
	Billing       *handlers.BillingHandler
	Reports       *handlers.ReportHandler
	Notifications *handlers.NotificationHandler
}

func SetupRoutes(r *gin.Engine, h Handlers, tokens *middleware.TokenManager) *gin.Engine {
	// ---- public
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/plans", h.Billing.Plans)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot", h.Auth.ForgotPassword)
		auth.POST("/reset", h.Auth.ResetPassword)
	}

	// ---- protected
	api := r.Group("/", middleware.AuthMiddleware(tokens), middleware.ReadOnlyGuard())
	elevated := middleware.RequireElevated()

	leads := api.Group("/leads")
	{
		leads.GET("", h.Leads.List)
		leads.POST("", h.Leads.Create)
		leads.GET("/board", h.Leads.Board)
		registerPanel(leads, h.LeadPanel)
		leads.GET("/:id", h.Leads.GetByID)
		leads.PATCH("/:id", h.Leads.Update)
		leads.PUT("/:id/status", h.Leads.ChangeStatus)
		leads.POST("/:id/convert", h.Leads.Convert)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("", h.Bookings.List)
		bookings.POST("", h.Bookings.Create)
		registerPanel(bookings, h.BookingPanel)
		bookings.GET("/:id", h.Bookings.GetByID)
		bookings.PATCH("/:id", h.Bookings.Update)
		bookings.PUT("/:id/status", h.Bookings.ChangeStatus)
		bookings.GET("/:id/voucher", h.Bookings.Voucher)
	}

	tours := api.Group("/tours")
	{
		tours.GET("", h.Tours.List)
		tours.POST("", h.Tours.Create)
		registerPanel(tours, h.TourPanel)
		tours.GET("/:id", h.Tours.GetByID)
		tours.PATCH("/:id", h.Tours.Update)
		tours.PUT("/:id/active", h.Tours.SetActive)
	}

	inbox := api.Group("/inbox")
	{
		inbox.GET("", h.Inbox.List)
		inbox.GET("/selected", h.Inbox.Selected)
		inbox.DELETE("/selected", h.Inbox.Close)
		inbox.POST("/:id/open", h.Inbox.Open)
		inbox.POST("/:id/read", h.Inbox.MarkRead)
		inbox.POST("/:id/reply", h.Inbox.Reply)
		inbox.POST("/:id/attachments", h.Inbox.Attach)
	}

	team := api.Group("/team")
	{
		team.GET("", h.Team.List)
		team.POST("/invite", elevated, h.Team.Invite)
		team.PUT("/:id/role", elevated, h.Team.ChangeRole)
	}

	api.GET("/settings", h.Settings.Get)
	api.PUT("/settings", elevated, h.Settings.Save)
	api.POST("/onboarding", elevated, h.Settings.CompleteOnboarding)
	api.POST("/billing/checkout", elevated, h.Billing.Checkout)
	api.GET("/reports/summary", h.Reports.GetSummary)
	api.GET("/notifications", h.Notifications.Recent)

	return r
}

type panelRoutes interface {
	State(*gin.Context)
	Open(*gin.Context)
	Edit(*gin.Context)
	Save(*gin.Context)
	Close(*gin.Context)
}

func registerPanel(g *gin.RouterGroup, p panelRoutes) {
	g.GET("/panel", p.State)
	g.POST("/panel/open/:id", p.Open)
	g.PATCH("/panel/draft", p.Edit)
	g.POST("/panel/save", p.Save)
	g.DELETE("/panel", p.Close)
}
