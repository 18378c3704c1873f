package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-scheduler/internal/config"
	"github.com/BruksfildServices01/garage-scheduler/internal/handlers"
	"github.com/BruksfildServices01/garage-scheduler/internal/middleware"
	"github.com/BruksfildServices01/garage-scheduler/internal/notify"
	ucAppointment "github.com/BruksfildServices01/garage-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/garage-scheduler/internal/usecase/catalog"
	"github.com/BruksfildServices01/garage-scheduler/internal/usecase/report"
)

// Deps are the long-lived singletons the handlers share.
type Deps struct {
	DB        *gorm.DB
	Catalog   *ucCatalog.Store
	Scheduler *ucAppointment.Scheduler
	Reporter  *report.Reporter
	Toast     *notify.Toast
	Location  *time.Location
}

func RegisterRoutes(r *gin.Engine, deps Deps, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// HANDLERS
	// ======================================================
	sessionHandler := handlers.NewSessionHandler(cfg)
	serviceHandler := handlers.NewServiceHandler(deps.Catalog)
	clientHandler := handlers.NewClientHandler(deps.Catalog)
	appointmentHandler := handlers.NewAppointmentHandler(deps.Scheduler, deps.Catalog, cfg.ShopName)
	dashboardHandler := handlers.NewDashboardHandler(deps.Reporter, deps.Toast)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/session", sessionHandler.Start)

		// ------------------------------
		// SESSION SCOPED
		// ------------------------------
		scoped := api.Group("/")
		scoped.Use(middleware.SessionMiddleware(cfg, deps.Location))
		{
			scoped.GET("/services", serviceHandler.List)
			scoped.POST("/services", serviceHandler.Create)
			scoped.PUT("/services/:id", serviceHandler.Update)
			scoped.DELETE("/services/:id", serviceHandler.Delete)
			scoped.GET("/categories", serviceHandler.Categories)
			scoped.GET("/clients", clientHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			scoped.GET("/appointments", appointmentHandler.ListByDate)
			scoped.GET("/appointments/week", appointmentHandler.ListByWeek)
			scoped.GET("/appointments/month", appointmentHandler.ListByMonth)
			scoped.POST("/appointments", appointmentHandler.Create)
			scoped.PUT("/appointments/:id", appointmentHandler.Update)
			scoped.DELETE("/appointments/:id", appointmentHandler.Delete)
			scoped.GET("/appointments/:id/receipt", appointmentHandler.Receipt)

			scoped.GET("/dashboard", dashboardHandler.Dashboard)
			scoped.GET("/toast", dashboardHandler.Toast)

			if deps.DB != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)
				scoped.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
