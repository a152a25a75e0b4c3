package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/miraclesolutionsdev/miracle-back/internal/config"
	"github.com/miraclesolutionsdev/miracle-back/internal/handler"
	"github.com/miraclesolutionsdev/miracle-back/internal/handler/middleware"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository/postgres"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/email"
	"github.com/miraclesolutionsdev/miracle-back/pkg/jwt"
	"github.com/miraclesolutionsdev/miracle-back/pkg/keycache"
	"github.com/miraclesolutionsdev/miracle-back/pkg/storage"
	"github.com/miraclesolutionsdev/miracle-back/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.JWT.Secret == config.InsecureDevSecret && cfg.Server.Environment != "development" {
		log.Println("⚠ JWT_SECRET is using the insecure development default")
	}

	// Initialize database connection
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()
	log.Println("✓ Database connection established")

	// Redis backs the API-key cache and is optional
	var redisClient *redis.Client
	var keyCache *keycache.KeyCache
	if cfg.Redis.Enabled {
		redisClient, err = initRedis(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
		keyCache = keycache.New(redisClient, 5*time.Minute)
		log.Println("✓ Redis connection established")
	} else {
		log.Println("ℹ Redis disabled (set REDIS_ENABLED=true to enable the API-key cache)")
	}

	// Object storage is optional; file uploads fail cleanly without it
	var objectStorage storage.ObjectStorage
	if cfg.S3.Bucket != "" {
		s3Storage, err := storage.NewS3Storage(context.Background(), cfg.S3.Bucket, cfg.S3.Region, cfg.S3.PublicURL)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		objectStorage = s3Storage
		log.Printf("✓ Object storage initialized (bucket %s)", cfg.S3.Bucket)
	} else {
		log.Println("ℹ Object storage disabled (set S3_BUCKET to enable uploads)")
	}

	// Initialize email service
	var emailService email.EmailService
	if cfg.Email.Enabled {
		emailService, err = email.NewResendService(cfg.Email.APIKey, cfg.Email.From)
		if err != nil {
			log.Printf("Warning: Failed to initialize email service: %v", err)
			log.Println("Email functionality will be disabled")
			emailService = nil
		} else {
			log.Println("✓ Email service initialized (Resend)")
		}
	} else {
		log.Println("ℹ Email service disabled (set EMAIL_ENABLED=true to enable)")
	}

	// Initialize validator
	validate := validator.NewValidator()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepository(db)
	userRepo := postgres.NewUserRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	productRepo := postgres.NewProductRepository(db)
	campaignRepo := postgres.NewCampaignRepository(db)
	assetRepo := postgres.NewAssetRepository(db)
	leadRepo := postgres.NewLeadRepository(db)

	// Initialize JWT token service
	tokenService := jwt.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize services
	authService := service.NewAuthService(userRepo, tenantRepo, tokenService, emailService)
	userService := service.NewUserService(userRepo)
	tenantService := service.NewTenantService(tenantRepo, clientRepo, productRepo, campaignRepo, assetRepo, keyCache)
	clientService := service.NewClientService(clientRepo)
	productService := service.NewProductService(productRepo, objectStorage)
	campaignService := service.NewCampaignService(campaignRepo)
	assetService := service.NewAssetService(assetRepo, objectStorage)
	leadService := service.NewLeadService(leadRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService, validate)
	tenantHandler := handler.NewTenantHandler(tenantService, validate)
	userHandler := handler.NewUserHandler(userService, validate)
	clientHandler := handler.NewClientHandler(clientService, validate)
	productHandler := handler.NewProductHandler(productService, validate)
	campaignHandler := handler.NewCampaignHandler(campaignService, validate)
	assetHandler := handler.NewAssetHandler(assetService, validate)
	leadHandler := handler.NewLeadHandler(leadService, validate)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Miracle Back v1.0",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    50 * 1024 * 1024,
	})

	// Setup global middlewares
	app.Use(middleware.Recovery())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS(cfg.Server.CORSAllowOrigins))

	// Setup routes
	tenantResolver := middleware.TenantResolver(tokenService, tenantRepo, keyCache)
	handler.SetupRoutes(
		app,
		authHandler,
		tenantHandler,
		userHandler,
		clientHandler,
		productHandler,
		campaignHandler,
		assetHandler,
		leadHandler,
		healthHandler,
		tenantResolver,
	)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("🚀 Server starting on http://localhost%s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		if err := app.Listen(addr); err != nil {
			log.Printf("❌ Server failed to start: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("⏳ Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✓ Server stopped")
}

// initDB initializes PostgreSQL database connection with retry logic
func initDB(cfg *config.Config) (*sqlx.DB, error) {
	dsn := cfg.Database.DSN()

	var db *sqlx.DB
	var err error

	maxRetries := 5
	retryInterval := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			break
		}

		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("Error closing database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// initRedis initializes Redis client and verifies connection
func initRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
