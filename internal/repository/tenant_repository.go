package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	// Delete removes a tenant outright. Only the store-creation rollback path
	// uses it; tenants are never deleted through the API.
	Delete(ctx context.Context, id uuid.UUID) error
}
