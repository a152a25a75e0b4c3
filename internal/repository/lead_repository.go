package repository

import (
	"context"

	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) error
}
