package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/audit"
	"github.com/soloflowhq/soloflow-api/internal/cache"
	"github.com/soloflowhq/soloflow-api/internal/config"
	"github.com/soloflowhq/soloflow-api/internal/handlers"
	"github.com/soloflowhq/soloflow-api/internal/infra/repository"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/storage"
	arusecase "github.com/soloflowhq/soloflow-api/internal/usecase/autoresponse"
	bkusecase "github.com/soloflowhq/soloflow-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log zerolog.Logger,
	c *cache.Cache,
	uploader *storage.Uploader,
) {
	// ======================================================
	// INFRA
	// ======================================================

	bookingRepo := repository.NewBookingGormRepository(db)
	autoRespRepo := repository.NewAutoResponseGormRepository(db)

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	// ======================================================
	// USE CASES
	// ======================================================

	getAvailability := bkusecase.NewGetAvailability(bookingRepo, c)
	createPublicBooking := bkusecase.NewCreatePublicBooking(bookingRepo, dispatcher, c)
	listByDate := bkusecase.NewListBookingsByDate(bookingRepo)
	listByMonth := bkusecase.NewListBookingsByMonth(bookingRepo)
	confirmBooking := bkusecase.NewConfirmBooking(bookingRepo, dispatcher, c)
	declineBooking := bkusecase.NewDeclineBooking(bookingRepo, dispatcher, c)
	cancelBooking := bkusecase.NewCancelBooking(bookingRepo, dispatcher, c)
	rescheduleBooking := bkusecase.NewRescheduleBooking(bookingRepo, dispatcher, c)

	createTemplate := arusecase.NewCreateTemplate(autoRespRepo, dispatcher, c)
	updateTemplate := arusecase.NewUpdateTemplate(autoRespRepo, dispatcher, c)
	deleteTemplate := arusecase.NewDeleteTemplate(autoRespRepo, dispatcher, c)
	setDefaultTemplate := arusecase.NewSetDefaultTemplate(autoRespRepo, dispatcher, c)
	getDefaultTemplate := arusecase.NewGetDefaultTemplate(autoRespRepo)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	avatarHandler := handlers.NewAvatarHandler(db, uploader)
	clientHandler := handlers.NewClientHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	taskHandler := handlers.NewTaskHandler(db)
	timeEntryHandler := handlers.NewTimeEntryHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	eventHandler := handlers.NewEventHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(db, c)
	calendarHandler := handlers.NewCalendarHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	messageHandler := handlers.NewMessageHandler(db, getDefaultTemplate)

	bookingHandler := handlers.NewBookingHandler(
		listByDate,
		listByMonth,
		confirmBooking,
		declineBooking,
		cancelBooking,
		rescheduleBooking,
	)

	autoRespHandler := handlers.NewAutoResponseHandler(
		autoRespRepo,
		c,
		createTemplate,
		updateTemplate,
		deleteTemplate,
		setDefaultTemplate,
		getDefaultTemplate,
	)

	publicHandler := handlers.NewPublicHandler(
		db,
		bookingRepo,
		getAvailability,
		createPublicBooking,
	)

	// ======================================================
	// ROUTES
	// ======================================================

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	pub := api.Group("/public/:slug")
	{
		pub.GET("/profile", publicHandler.Profile)
		pub.GET("/services", publicHandler.Services)
		pub.GET("/availability", publicHandler.Availability)
		pub.POST("/bookings", publicHandler.CreateBooking)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	me := api.Group("/me")
	me.Use(middleware.AuthMiddleware(cfg))
	{
		me.GET("", meHandler.GetMe)
		me.PUT("", meHandler.UpdateProfile)
		me.POST("/avatar", avatarHandler.Upload)

		me.GET("/clients", clientHandler.List)
		me.POST("/clients", clientHandler.Create)
		me.PUT("/clients/:id", clientHandler.Update)
		me.DELETE("/clients/:id", clientHandler.Delete)

		me.GET("/projects", projectHandler.List)
		me.POST("/projects", projectHandler.Create)
		me.PUT("/projects/:id", projectHandler.Update)
		me.DELETE("/projects/:id", projectHandler.Delete)

		me.GET("/tasks", taskHandler.List)
		me.POST("/tasks", taskHandler.Create)
		me.PUT("/tasks/:id", taskHandler.Update)
		me.DELETE("/tasks/:id", taskHandler.Delete)

		me.GET("/time-entries", timeEntryHandler.List)
		me.POST("/time-entries", timeEntryHandler.Create)
		me.PUT("/time-entries/:id", timeEntryHandler.Update)
		me.DELETE("/time-entries/:id", timeEntryHandler.Delete)

		me.GET("/invoices", invoiceHandler.List)
		me.POST("/invoices", invoiceHandler.Create)
		me.PUT("/invoices/:id", invoiceHandler.Update)
		me.DELETE("/invoices/:id", invoiceHandler.Delete)

		me.GET("/services", serviceHandler.List)
		me.POST("/services", serviceHandler.Create)
		me.PUT("/services/:id", serviceHandler.Update)
		me.DELETE("/services/:id", serviceHandler.Delete)

		me.GET("/events", eventHandler.List)
		me.POST("/events", eventHandler.Create)
		me.PUT("/events/:id", eventHandler.Update)
		me.DELETE("/events/:id", eventHandler.Delete)

		me.GET("/availability", availabilityHandler.Get)
		me.PUT("/availability", availabilityHandler.Update)

		me.GET("/bookings", bookingHandler.ListByDate)
		me.GET("/bookings/month", bookingHandler.ListByMonth)
		me.POST("/bookings/:id/confirm", bookingHandler.Confirm)
		me.POST("/bookings/:id/decline", bookingHandler.Decline)
		me.POST("/bookings/:id/cancel", bookingHandler.Cancel)
		me.PUT("/bookings/:id/reschedule", bookingHandler.Reschedule)

		me.GET("/calendar", calendarHandler.Month)

		me.GET("/auto-responses", autoRespHandler.List)
		me.POST("/auto-responses", autoRespHandler.Create)
		me.PUT("/auto-responses/:id", autoRespHandler.Update)
		me.DELETE("/auto-responses/:id", autoRespHandler.Delete)
		me.POST("/auto-responses/:id/default", autoRespHandler.SetDefault)
		me.GET("/auto-responses/default", autoRespHandler.GetDefault)

		me.GET("/messages", messageHandler.List)
		me.POST("/messages", messageHandler.CreateInbound)

		me.GET("/audit-logs", auditLogsHandler.List)
	}
}
