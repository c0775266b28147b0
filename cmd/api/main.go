package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Charly219017/ProyectoDeGraduacion/docs" // Swagger docs
	"github.com/Charly219017/ProyectoDeGraduacion/internal/config"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/database"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/handlers"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/jobs"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/middleware"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/models"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/repository"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/services"
	"github.com/Charly219017/ProyectoDeGraduacion/internal/storage"
	"github.com/Charly219017/ProyectoDeGraduacion/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Sistema Jireh API
// @version 1.0
// @description REST API for the Jireh human resources and payroll system

// @contact.name API Support

// @host localhost:3000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.ResendAPIKey == "" {
		logger.Warn("Resend email disabled: RESEND_API_KEY not set; account emails will only be logged")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Initialize storage for generated receipts
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, worker, store, cfg, db)

	// Schedule recurring jobs
	jobs.RegisterScheduled(worker, repos)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Check)

		// Authentication (public)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdministrador())
			{
				// User management
				admin.GET("/usuarios", h.User.Index)
				admin.GET("/usuarios/:id", h.User.Show)
				admin.POST("/usuarios", h.User.Create)
				admin.PUT("/usuarios/:id", h.User.Update)
				admin.DELETE("/usuarios/:id", h.User.Destroy)

				// Audit log
				admin.GET("/bitacora", h.Audit.Index)
				admin.GET("/bitacora/exportar", h.Audit.Export)

				// Vacation decisions
				admin.POST("/vacaciones/:id/aprobar", h.Vacation.Approve)
				admin.POST("/vacaciones/:id/rechazar", h.Vacation.Reject)
			}

			// Staff routes for day-to-day record keeping (Administrador always passes)
			staff := protected.Group("")
			staff.Use(middleware.RequireRole(models.RoleSupervisor, models.RoleDigitador))
			{
				// Employees
				staff.POST("/empleados", h.Employee.Create)
				staff.PUT("/empleados/:id", h.Employee.Update)
				staff.DELETE("/empleados/:id", h.Employee.Destroy)

				// Positions and careers
				staff.POST("/puestos", h.Position.Create)
				staff.PUT("/puestos/:id", h.Position.Update)
				staff.DELETE("/puestos/:id", h.Position.Destroy)
				staff.POST("/carreras", h.Position.CreateCareer)
				staff.PUT("/carreras/:id", h.Position.UpdateCareer)
				staff.DELETE("/carreras/:id", h.Position.DestroyCareer)

				// Contracts
				staff.POST("/contratos", h.Contract.Create)
				staff.PUT("/contratos/:id", h.Contract.Update)
				staff.DELETE("/contratos/:id", h.Contract.Destroy)

				// Payrolls
				staff.POST("/nominas", h.Payroll.Create)
				staff.PUT("/nominas/:id", h.Payroll.Update)
				staff.DELETE("/nominas/:id", h.Payroll.Destroy)
				staff.GET("/nominas/exportar", h.Payroll.Export)
				staff.GET("/nominas/recibos", h.Payroll.BatchReceipts)

				// Recruitment
				staff.POST("/vacantes", h.Recruitment.CreateVacancy)
				staff.PUT("/vacantes/:id", h.Recruitment.UpdateVacancy)
				staff.DELETE("/vacantes/:id", h.Recruitment.DestroyVacancy)
				staff.POST("/candidatos", h.Recruitment.CreateCandidate)
				staff.PUT("/candidatos/:id", h.Recruitment.UpdateCandidate)
				staff.DELETE("/candidatos/:id", h.Recruitment.DestroyCandidate)
				staff.POST("/aplicaciones", h.Recruitment.CreateApplication)
				staff.PUT("/aplicaciones/:id", h.Recruitment.UpdateApplication)
				staff.DELETE("/aplicaciones/:id", h.Recruitment.DestroyApplication)

				// Evaluations
				staff.POST("/evaluaciones", h.Evaluation.Create)
				staff.PUT("/evaluaciones/:id/puntuaciones", h.Evaluation.Rescore)
				staff.DELETE("/evaluaciones/:id", h.Evaluation.Destroy)
				staff.POST("/criterios", h.Evaluation.CreateCriterion)
				staff.PUT("/criterios/:id", h.Evaluation.UpdateCriterion)
				staff.DELETE("/criterios/:id", h.Evaluation.DestroyCriterion)

				// Inventory
				staff.POST("/categorias", h.Inventory.CreateCategory)
				staff.PUT("/categorias/:id", h.Inventory.UpdateCategory)
				staff.DELETE("/categorias/:id", h.Inventory.DestroyCategory)
				staff.POST("/productos", h.Inventory.CreateProduct)
				staff.PUT("/productos/:id", h.Inventory.UpdateProduct)
				staff.DELETE("/productos/:id", h.Inventory.DestroyProduct)
				staff.POST("/movimientos", h.Inventory.CreateMovement)
				staff.DELETE("/movimientos/:id", h.Inventory.DestroyMovement)

				// Wellness
				staff.POST("/bienestar", h.Wellness.Create)
				staff.PUT("/bienestar/:id", h.Wellness.Update)
				staff.DELETE("/bienestar/:id", h.Wellness.Destroy)

				// Vacation registration and cleanup
				staff.POST("/vacaciones", h.Vacation.Create)
				staff.POST("/vacaciones/:id/cancelar", h.Vacation.Cancel)
				staff.DELETE("/vacaciones/:id", h.Vacation.Destroy)
			}

			// Read access for every authenticated user
			protected.GET("/dashboard", h.Dashboard.Summary)
			protected.GET("/empleados", h.Employee.Index)
			protected.GET("/empleados/:id", h.Employee.Show)
			protected.GET("/puestos", h.Position.Index)
			protected.GET("/puestos/:id", h.Position.Show)
			protected.GET("/carreras", h.Position.IndexCareers)
			protected.GET("/carreras/:id", h.Position.ShowCareer)
			protected.GET("/contratos", h.Contract.Index)
			protected.GET("/contratos/:id", h.Contract.Show)
			protected.GET("/nominas", h.Payroll.Index)
			protected.GET("/nominas/:id", h.Payroll.Show)
			protected.GET("/nominas/:id/recibo", h.Payroll.Receipt)
			protected.GET("/vacaciones", h.Vacation.Index)
			protected.GET("/vacaciones/:id", h.Vacation.Show)
			protected.GET("/vacantes", h.Recruitment.IndexVacancies)
			protected.GET("/vacantes/:id", h.Recruitment.ShowVacancy)
			protected.GET("/candidatos", h.Recruitment.IndexCandidates)
			protected.GET("/candidatos/:id", h.Recruitment.ShowCandidate)
			protected.GET("/aplicaciones", h.Recruitment.IndexApplications)
			protected.GET("/aplicaciones/:id", h.Recruitment.ShowApplication)
			protected.GET("/evaluaciones", h.Evaluation.Index)
			protected.GET("/evaluaciones/:id", h.Evaluation.Show)
			protected.GET("/criterios", h.Evaluation.IndexCriteria)
			protected.GET("/criterios/:id", h.Evaluation.ShowCriterion)
			protected.GET("/categorias", h.Inventory.IndexCategories)
			protected.GET("/categorias/:id", h.Inventory.ShowCategory)
			protected.GET("/productos/stock-bajo", h.Inventory.LowStock)
			protected.GET("/productos", h.Inventory.IndexProducts)
			protected.GET("/productos/:id", h.Inventory.ShowProduct)
			protected.GET("/movimientos", h.Inventory.IndexMovements)
			protected.GET("/movimientos/:id", h.Inventory.ShowMovement)
			protected.GET("/bienestar", h.Wellness.Index)
			protected.GET("/bienestar/:id", h.Wellness.Show)
		}
	}

	return router
}
