package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
)

type AssetFilter struct {
	Estado string
	Tipo   string
}

type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	List(ctx context.Context, tenantID uuid.UUID, filter AssetFilter) ([]*domain.Asset, error)
	// UpdateEstado transitions an asset inside the tenant's scope (own rows
	// plus legacy rows).
	UpdateEstado(ctx context.Context, id, tenantID uuid.UUID, estado domain.AssetStatus) (*domain.Asset, error)
	AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
