package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

type LeadService struct {
	leadRepo repository.LeadRepository
}

func NewLeadService(leadRepo repository.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

type CreateLeadRequest struct {
	Nombre          string `json:"nombre" validate:"required"`
	Telefono        string `json:"telefono" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	ProductoInteres string `json:"productoInteres" validate:"required"`
	Origen          string `json:"origen"`
	Notas           string `json:"notas"`
}

func (s *LeadService) Create(ctx context.Context, tenantID uuid.UUID, req CreateLeadRequest) (*domain.Lead, error) {
	origen := strings.TrimSpace(req.Origen)
	if origen == "" {
		origen = "whatsapp"
	}

	lead := &domain.Lead{
		ID:              uuid.New(),
		TenantID:        &tenantID,
		Nombre:          strings.TrimSpace(req.Nombre),
		Telefono:        strings.TrimSpace(req.Telefono),
		Email:           NormalizeEmail(req.Email),
		ProductoInteres: strings.TrimSpace(req.ProductoInteres),
		Origen:          origen,
		Notas:           req.Notas,
		Estado:          "nuevo",
		CreatedAt:       time.Now(),
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, apperr.Internal(err)
	}

	return lead, nil
}
