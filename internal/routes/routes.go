package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/receipt"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAnalytics "github.com/BruksfildServices01/salon-scheduler/internal/usecase/analytics"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// Deps are the long-lived singletons built in main.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Store    *db.Store
	TZ       *timezone.Resolver
	Cache    cache.Cache
	Uploader storage.Uploader

	Appointments *infraRepo.AppointmentGormRepository
	Sedes        *infraRepo.SedeGormRepository
	Analytics    *infraRepo.AnalyticsGormRepository

	Audit    *audit.Dispatcher
	Receipts *receipt.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	limiter := middleware.NewRateLimiter(d.Config.RateLimitRPS, d.Config.RateLimitBurst)

	r.Use(
		middleware.Recovery(d.Log),
		middleware.RequestLogger(d.Log),
		middleware.CORSMiddleware(d.Config),
		limiter.Middleware(),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	appointmentDeps := ucAppointment.Deps{
		Repo:  d.Appointments,
		Audit: d.Audit,
		TZ:    d.TZ,
		Now:   time.Now,
	}

	dashboard := ucAnalytics.NewDashboard(
		d.Analytics,
		d.Sedes,
		d.Cache,
		d.Config.KPICacheTTL,
		d.Config.ChurnDays,
		d.TZ,
		d.Log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	env := handlers.Env{
		Store: d.Store,
		Sedes: d.Sedes,
		Audit: d.Audit,
		Log:   d.Log,
	}

	appointmentHandler := handlers.NewAppointmentHandler(appointmentDeps, d.Receipts, d.Appointments, d.Log)
	analyticsHandler := handlers.NewAnalyticsHandler(dashboard, d.Log)

	sedeHandler := handlers.NewSedeHandler(env)
	estilistaHandler := handlers.NewEstilistaHandler(env)
	servicioHandler := handlers.NewServicioHandler(env)
	clienteHandler := handlers.NewClienteHandler(env)
	horarioHandler := handlers.NewHorarioHandler(env)
	bloqueoHandler := handlers.NewBloqueoHandler(env)
	productoHandler := handlers.NewProductoHandler(env, d.Uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(env)

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		if err := d.Store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API PRIVADA
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Config))

	scheduling := secured.Group("/scheduling")
	{
		scheduling.GET("/quotes/available", appointmentHandler.Available)
		scheduling.GET("/quotes", appointmentHandler.ListByDate)
		scheduling.GET("/quotes/month", appointmentHandler.ListByMonth)
		scheduling.POST("/quotes", appointmentHandler.Create)
		scheduling.GET("/quotes/:id", appointmentHandler.Get)
		scheduling.PATCH("/quotes/:id/confirm", appointmentHandler.Confirm)
		scheduling.PATCH("/quotes/:id/cancel", appointmentHandler.Cancel)
		scheduling.PATCH("/quotes/:id/complete", appointmentHandler.Complete)
		scheduling.POST("/quotes/:id/payments", appointmentHandler.RegisterPayment)
		scheduling.GET("/quotes/:id/receipt", appointmentHandler.Receipt)
	}

	analytics := secured.Group("/analytics")
	{
		analytics.GET("/dashboard", analyticsHandler.Dashboard)
		analytics.GET("/dashboard/export", analyticsHandler.Export)
	}

	catalog := secured.Group("/catalog")
	{
		catalog.GET("/sedes", sedeHandler.List)
		catalog.GET("/sedes/:id", sedeHandler.Get)
		catalog.PATCH("/sedes/:id", sedeHandler.Update)

		catalog.GET("/estilistas", estilistaHandler.List)
		catalog.POST("/estilistas", estilistaHandler.Create)
		catalog.GET("/estilistas/:id", estilistaHandler.Get)
		catalog.PATCH("/estilistas/:id", estilistaHandler.Update)

		catalog.GET("/estilistas/:id/horarios", horarioHandler.Get)
		catalog.PUT("/estilistas/:id/horarios", horarioHandler.Replace)

		catalog.GET("/estilistas/:id/bloqueos", bloqueoHandler.List)
		catalog.POST("/estilistas/:id/bloqueos", bloqueoHandler.Create)
		catalog.DELETE("/bloqueos/:id", bloqueoHandler.Delete)

		catalog.GET("/servicios", servicioHandler.List)
		catalog.POST("/servicios", servicioHandler.Create)
		catalog.PATCH("/servicios/:id", servicioHandler.Update)

		catalog.GET("/clientes", clienteHandler.List)
		catalog.POST("/clientes", clienteHandler.Create)
		catalog.GET("/clientes/:id", clienteHandler.Get)
		catalog.PATCH("/clientes/:id", clienteHandler.Update)

		catalog.GET("/productos", productoHandler.List)
		catalog.POST("/productos", productoHandler.Create)
		catalog.PATCH("/productos/:id", productoHandler.Update)
		catalog.POST("/productos/:id/imagen", productoHandler.UploadImage)

		catalog.GET("/audit-logs", auditLogsHandler.List)
	}
}
