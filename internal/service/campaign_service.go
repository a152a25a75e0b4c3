package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

type CampaignService struct {
	campaignRepo repository.CampaignRepository
}

func NewCampaignService(campaignRepo repository.CampaignRepository) *CampaignService {
	return &CampaignService{campaignRepo: campaignRepo}
}

type CreateCampaignRequest struct {
	Producto      string `json:"producto"`
	PiezaCreativo string `json:"piezaCreativo"`
	Plataforma    string `json:"plataforma"`
	MiracleCoins  string `json:"miracleCoins"`
	Estado        string `json:"estado" validate:"omitempty,oneof=borrador activa pausada finalizada"`
}

type UpdateCampaignRequest struct {
	Producto      *string `json:"producto"`
	PiezaCreativo *string `json:"piezaCreativo"`
	Plataforma    *string `json:"plataforma"`
	MiracleCoins  *string `json:"miracleCoins"`
	Estado        *string `json:"estado" validate:"omitempty,oneof=borrador activa pausada finalizada"`
}

func (s *CampaignService) List(ctx context.Context, tenantID uuid.UUID, filter repository.CampaignFilter) ([]*domain.Campaign, error) {
	campaigns, err := s.campaignRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return campaigns, nil
}

func (s *CampaignService) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Campaña no encontrada")
		}
		return nil, apperr.Internal(err)
	}
	return campaign, nil
}

func (s *CampaignService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCampaignRequest) (*domain.Campaign, error) {
	estado := domain.CampaignStatusBorrador
	if domain.ValidCampaignStatus(req.Estado) {
		estado = domain.CampaignStatus(req.Estado)
	}

	now := time.Now()
	campaign := &domain.Campaign{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Producto:      strings.TrimSpace(req.Producto),
		PiezaCreativo: strings.TrimSpace(req.PiezaCreativo),
		Plataforma:    strings.TrimSpace(req.Plataforma),
		MiracleCoins:  strings.TrimSpace(req.MiracleCoins),
		Estado:        estado,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, apperr.Internal(err)
	}

	return campaign, nil
}

func (s *CampaignService) Update(ctx context.Context, id, tenantID uuid.UUID, req UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Producto != nil {
		campaign.Producto = strings.TrimSpace(*req.Producto)
	}
	if req.PiezaCreativo != nil {
		campaign.PiezaCreativo = strings.TrimSpace(*req.PiezaCreativo)
	}
	if req.Plataforma != nil {
		campaign.Plataforma = strings.TrimSpace(*req.Plataforma)
	}
	if req.MiracleCoins != nil {
		campaign.MiracleCoins = strings.TrimSpace(*req.MiracleCoins)
	}
	if req.Estado != nil && domain.ValidCampaignStatus(*req.Estado) {
		campaign.Estado = domain.CampaignStatus(*req.Estado)
	}

	campaign.UpdatedAt = time.Now()

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Campaña no encontrada")
		}
		return nil, apperr.Internal(err)
	}

	return campaign, nil
}

func (s *CampaignService) UpdateEstado(ctx context.Context, id, tenantID uuid.UUID, estado string) (*domain.Campaign, error) {
	if !domain.ValidCampaignStatus(estado) {
		return nil, apperr.Validation("Estado no válido")
	}
	return s.Update(ctx, id, tenantID, UpdateCampaignRequest{Estado: &estado})
}
