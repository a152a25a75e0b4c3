package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetByIDAndTenant scopes the lookup to one tenant; ids of other tenants
	// behave as not found.
	GetByIDAndTenant(ctx context.Context, id, tenantID uuid.UUID) (*domain.User, error)
	GetByEmailAndTenant(ctx context.Context, email string, tenantID uuid.UUID) (*domain.User, error)
	// GetByEmail looks the email up across all tenants, for the global
	// email-uniqueness policy at store creation.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListByTenant returns the tenant's users ordered by creation time
	// ascending. The original-admin fallback rule depends on this order.
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*domain.User, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}
