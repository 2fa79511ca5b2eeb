package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/barangaylink/records-system/docs"
	"github.com/barangaylink/records-system/internal/api/handler"
	"github.com/barangaylink/records-system/internal/api/middleware"
	"github.com/barangaylink/records-system/internal/core/ports"
	"github.com/barangaylink/records-system/internal/core/service"
	"github.com/barangaylink/records-system/internal/infrastructure/config"
	mongodb "github.com/barangaylink/records-system/internal/infrastructure/db/mongo"
	redisdb "github.com/barangaylink/records-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, audit ports.AuditDispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("barangay"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	residentRepo := mongodb.NewResidentRepository(db)
	householdRepo := mongodb.NewHouseholdRepository(db)
	certificateRepo := mongodb.NewCertificateRepository(db)
	blotterRepo := mongodb.NewBlotterRepository(db)
	officialRepo := mongodb.NewOfficialRepository(db)
	reportRepo := mongodb.NewReportRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	userService := service.NewUserService(userRepo, audit, log)
	residentService := service.NewResidentService(residentRepo, audit, log)
	householdService := service.NewHouseholdService(householdRepo, audit, log)
	certificateService := service.NewCertificateService(certificateRepo, audit, log)
	blotterService := service.NewBlotterService(blotterRepo, audit, log)
	officialService := service.NewOfficialService(officialRepo, audit, log)
	reportService := service.NewReportService(reportRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	residentHandler := handler.NewResidentHandler(residentService)
	householdHandler := handler.NewHouseholdHandler(householdService)
	certificateHandler := handler.NewCertificateHandler(certificateService)
	blotterHandler := handler.NewBlotterHandler(blotterService)
	officialHandler := handler.NewOfficialHandler(officialService)
	reportHandler := handler.NewReportHandler(reportService)

	authn := middleware.Auth(tokens)
	adminOnly := middleware.RequireAdmin()
	staffOrAdmin := middleware.RequireStaff()

	// --- Public auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/users/register", authHandler.Register)
	apiGroup.POST("/users/login", authHandler.Login)

	// --- User administration (admin only) ---
	users := apiGroup.Group("/users", authn, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Resident registry ---
	residents := apiGroup.Group("/residents", authn, staffOrAdmin)
	residents.GET("", residentHandler.List)
	residents.GET("/export", residentHandler.Export)
	residents.GET("/:id", residentHandler.Get)
	residents.POST("", residentHandler.Create)
	residents.PUT("/:id", residentHandler.Update)
	residents.DELETE("/:id", residentHandler.Delete, adminOnly)

	// --- Household registry ---
	households := apiGroup.Group("/households", authn, staffOrAdmin)
	households.GET("", householdHandler.List)
	households.POST("", householdHandler.Create)
	households.DELETE("/:id", householdHandler.Delete, adminOnly)

	// --- Certificate issuance ---
	certificates := apiGroup.Group("/certificates", authn, staffOrAdmin)
	certificates.GET("", certificateHandler.List)
	certificates.POST("", certificateHandler.Create)
	certificates.DELETE("/:id", certificateHandler.Delete, adminOnly)

	// --- Blotter / incident log ---
	blotter := apiGroup.Group("/blotter", authn, staffOrAdmin)
	blotter.GET("", blotterHandler.List)
	blotter.POST("", blotterHandler.Create)
	blotter.DELETE("/:id", blotterHandler.Delete, adminOnly)

	// --- Officials roster ---
	officials := apiGroup.Group("/officials", authn, staffOrAdmin)
	officials.GET("", officialHandler.List)
	officials.POST("", officialHandler.Create)
	officials.DELETE("/:id", officialHandler.Delete, adminOnly)

	// --- Reports ---
	reports := apiGroup.Group("/reports", authn, staffOrAdmin)
	reports.GET("/summary", reportHandler.Summary)
	reports.GET("/resident-demographics", reportHandler.ResidentDemographics)
	reports.GET("/monthly-incidents", reportHandler.MonthlyIncidents)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
