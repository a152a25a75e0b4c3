package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
)

type ProductFilter struct {
	Estado string
	Tipo   string
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, tenantID uuid.UUID, filter ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product, tenantID uuid.UUID) error
	// ExistsByName checks product-name uniqueness against the acting tenant
	// only; legacy rows of other tenants do not count.
	ExistsByName(ctx context.Context, tenantID uuid.UUID, nombre string) (bool, error)
	AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
