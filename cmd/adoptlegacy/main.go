package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/miraclesolutionsdev/miracle-back/internal/config"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository/postgres"
	"github.com/miraclesolutionsdev/miracle-back/internal/service"
)

// Assigns every record without a tenant to the named store. Meant as a
// one-time migration for data created before tenant partitioning existed.
func main() {
	slug := flag.String("tienda", "miracle", "slug of the store that adopts the legacy records")
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

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	tenantRepo := postgres.NewTenantRepository(db)
	tenant, err := tenantRepo.GetBySlug(ctx, *slug)
	if err != nil {
		log.Fatalf("Failed to find tenant %q: %v", *slug, err)
	}

	tenantService := service.NewTenantService(
		tenantRepo,
		postgres.NewClientRepository(db),
		postgres.NewProductRepository(db),
		postgres.NewCampaignRepository(db),
		postgres.NewAssetRepository(db),
		nil,
	)

	counts, err := tenantService.AdoptLegacyRecords(ctx, tenant.ID)
	if err != nil {
		log.Fatalf("Failed to adopt legacy records: %v", err)
	}

	log.Printf("Tenant %q adopted %d clientes, %d productos, %d campanas, %d audiovisuales",
		*slug, counts["clientes"], counts["productos"], counts["campanas"], counts["audiovisuales"])
}
