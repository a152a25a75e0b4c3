package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/jmoiron/sqlx"

	"github.com/miraclesolutionsdev/miracle-back/internal/config"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository/postgres"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
	"github.com/miraclesolutionsdev/miracle-back/pkg/hash"
)

// Seeds the default store and its founding admin user. Safe to run more
// than once.
func main() {
	var (
		storeName = flag.String("tienda", "Miracle", "store name to seed")
		email     = flag.String("email", "admin@miracle.com", "admin email")
		password  = flag.String("password", "admin123", "admin password")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tenantRepo := postgres.NewTenantRepository(db)
	userRepo := postgres.NewUserRepository(db)

	slug := service.Slugify(*storeName)

	tenant, err := tenantRepo.GetBySlug(ctx, slug)
	switch {
	case err == nil:
		log.Printf("Tenant %q already exists (%s)", slug, tenant.ID)
	case errors.Is(err, repository.ErrNotFound):
		now := time.Now()
		tenant = &domain.Tenant{
			ID:        uuid.New(),
			Nombre:    *storeName,
			Slug:      &slug,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := tenantRepo.Create(ctx, tenant); err != nil {
			log.Fatalf("Failed to create tenant: %v", err)
		}
		log.Printf("Created tenant %q (%s)", slug, tenant.ID)
	default:
		log.Fatalf("Failed to look up tenant: %v", err)
	}

	emailNorm := service.NormalizeEmail(*email)
	if _, err := userRepo.GetByEmailAndTenant(ctx, emailNorm, tenant.ID); err == nil {
		log.Printf("User %s already exists, nothing to do", emailNorm)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("Failed to look up user: %v", err)
	}

	passwordHash, err := hash.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:              uuid.New(),
		TenantID:        tenant.ID,
		Email:           emailNorm,
		PasswordHash:    passwordHash,
		Nombre:          "Administrador",
		Activo:          true,
		IsOriginalAdmin: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Created admin user %s for tenant %q", emailNorm, slug)
}
