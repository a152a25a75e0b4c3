package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
)

type CampaignFilter struct {
	Estado string
}

// CampaignRepository persists campañas. Campaigns postdate partitioning, so
// every operation is strictly tenant-scoped with no legacy fallback.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, tenantID uuid.UUID, filter CampaignFilter) ([]*domain.Campaign, error)
	Update(ctx context.Context, campaign *domain.Campaign) error
	AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
