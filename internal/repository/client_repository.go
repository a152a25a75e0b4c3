package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
)

// ClientFilter narrows client listings. Zero values mean "no filter".
type ClientFilter struct {
	Estado string
}

// ClientRepository persists clientes. Reads are tenant-scoped but include
// legacy rows (tenant_id NULL); writes always stamp the acting tenant.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, tenantID uuid.UUID, filter ClientFilter) ([]*domain.Client, error)
	// Update rewrites the record inside the acting tenant's scope without
	// touching tenant attribution.
	Update(ctx context.Context, client *domain.Client, tenantID uuid.UUID) error
	// ExistsByNit checks NIT uniqueness against the acting tenant only, so an
	// unrelated tenant's legacy row never blocks creation.
	ExistsByNit(ctx context.Context, tenantID uuid.UUID, cedulaNit string) (bool, error)
	// AssignLegacyToTenant stamps every unowned row with tenantID and returns
	// the number of rows migrated.
	AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
