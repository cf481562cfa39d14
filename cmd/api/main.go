package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/realestate-backend/docs"
	"github.com/rafabene/realestate-backend/internal/domain/entities"
	httphandlers "github.com/rafabene/realestate-backend/internal/handlers/http"
	"github.com/rafabene/realestate-backend/internal/handlers/middleware"
	"github.com/rafabene/realestate-backend/internal/infrastructure/config"
	"github.com/rafabene/realestate-backend/internal/infrastructure/i18n"
	"github.com/rafabene/realestate-backend/internal/infrastructure/logging"
	"github.com/rafabene/realestate-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/realestate-backend/internal/infrastructure/security"
	"github.com/rafabene/realestate-backend/internal/infrastructure/storage"
	"github.com/rafabene/realestate-backend/internal/services"
)

//	@title			Real Estate Backend API
//	@version		1.0
//	@description	API de anúncios imobiliários: autenticação e CRUD de imóveis com imagens.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar .env para o ambiente antes do viper
	_ = godotenv.Load()

	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting realestate backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Migrar schema
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Colaboradores de infraestrutura
	fileStorage := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.PublicURL)
	hasher := security.NewBcryptHasher()

	accessExpiry, err := time.ParseDuration(cfg.JWT.AccessExpiry)
	if err != nil {
		logger.Warn("invalid JWT_ACCESS_EXPIRY, falling back to 24h", "value", cfg.JWT.AccessExpiry)
		accessExpiry = 24 * time.Hour
	}
	issuer := security.NewJWTIssuer(cfg.JWT.Secret, accessExpiry)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db, fileStorage)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenRepo, hasher, issuer, uow, logger)
	propertyService := services.NewPropertyService(propertyRepo, logger)
	imageService := services.NewImageService(propertyRepo, fileStorage, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	propertyHandler := httphandlers.NewPropertyHandler(propertyService)
	imageHandler := httphandlers.NewImageHandler(imageService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware de métricas
	router.Use(middleware.Metrics())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "" || cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = splitOrigins(cfg.CORS.AllowedOrigins)
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Métricas Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Arquivos de upload
	router.Static(cfg.Storage.PublicURL, cfg.Storage.BasePath)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Públicas
		v1.POST("/login", authHandler.Login)
		v1.POST("/register", authHandler.Register)
		v1.GET("/properties", propertyHandler.ListProperties)
		v1.GET("/properties/:id", propertyHandler.GetProperty)

		// Protegidas
		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/me", authHandler.Me)

			// Users
			protected.GET("/users",
				authMiddleware.RequirePermission(entities.PermissionUserRead), authHandler.ListUsers)
			protected.GET("/users/:id",
				authMiddleware.RequirePermission(entities.PermissionUserRead), authHandler.GetUser)
			protected.PUT("/users/:id",
				authMiddleware.RequirePermission(entities.PermissionUserWrite), authHandler.UpdateUser)
			protected.DELETE("/users/:id",
				authMiddleware.RequirePermission(entities.PermissionUserDelete), authHandler.DeleteUser)

			// Properties
			protected.POST("/properties",
				authMiddleware.RequirePermission(entities.PermissionPropertyWrite), propertyHandler.CreateProperty)
			protected.PUT("/properties/:id",
				authMiddleware.RequirePermission(entities.PermissionPropertyWrite), propertyHandler.UpdateProperty)
			protected.DELETE("/properties/:id",
				authMiddleware.RequirePermission(entities.PermissionPropertyDelete), propertyHandler.DeleteProperty)

			// Images
			images := protected.Group("")
			images.Use(authMiddleware.RequirePermission(entities.PermissionImageWrite))
			{
				images.POST("/properties/:id/images", imageHandler.UploadImages)
				images.PUT("/images/:id/primary", imageHandler.SetPrimary)
				images.DELETE("/images/:id/primary", imageHandler.RemovePrimary)
				images.PUT("/images/:id/move-up", imageHandler.MoveUp)
				images.PUT("/images/:id/move-down", imageHandler.MoveDown)
				images.DELETE("/images/:id", imageHandler.DeleteImage)
			}
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			result = append(result, s)
		}
	}
	return result
}
