package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/pkg/keycache"
)

type TenantService struct {
	tenantRepo   repository.TenantRepository
	clientRepo   repository.ClientRepository
	productRepo  repository.ProductRepository
	campaignRepo repository.CampaignRepository
	assetRepo    repository.AssetRepository
	keyCache     *keycache.KeyCache
}

func NewTenantService(
	tenantRepo repository.TenantRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	campaignRepo repository.CampaignRepository,
	assetRepo repository.AssetRepository,
	keyCache *keycache.KeyCache,
) *TenantService {
	return &TenantService{
		tenantRepo:   tenantRepo,
		clientRepo:   clientRepo,
		productRepo:  productRepo,
		campaignRepo: campaignRepo,
		assetRepo:    assetRepo,
		keyCache:     keyCache,
	}
}

type UpdateTenantRequest struct {
	Nombre               *string   `json:"nombre"`
	LogoURL              *string   `json:"logoUrl"`
	Descripcion          *string   `json:"descripcion"`
	Eslogan              *string   `json:"eslogan"`
	ProductosPrincipales *[]string `json:"productosPrincipales"`
}

func (s *TenantService) GetByID(ctx context.Context, tenantID uuid.UUID) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Tienda no encontrada")
		}
		return nil, apperr.Internal(err)
	}
	return tenant, nil
}

func (s *TenantService) UpdateProfile(ctx context.Context, tenantID uuid.UUID, req UpdateTenantRequest) (*domain.Tenant, error) {
	tenant, err := s.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, apperr.Validation("El nombre de la tienda no puede estar vacío")
		}
		tenant.Nombre = nombre
	}
	if req.LogoURL != nil {
		tenant.LogoURL = strings.TrimSpace(*req.LogoURL)
	}
	if req.Descripcion != nil {
		tenant.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.Eslogan != nil {
		tenant.Eslogan = strings.TrimSpace(*req.Eslogan)
	}
	if req.ProductosPrincipales != nil {
		tenant.ProductosPrincipales = *req.ProductosPrincipales
	}

	tenant.UpdatedAt = time.Now()

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, apperr.Internal(err)
	}

	return tenant, nil
}

// RotateAPIKey issues a fresh tenant API key, replacing any previous one and
// evicting it from the lookup cache so the old key stops working promptly.
func (s *TenantService) RotateAPIKey(ctx context.Context, tenantID uuid.UUID) (string, error) {
	tenant, err := s.GetByID(ctx, tenantID)
	if err != nil {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", apperr.Internal(err)
	}
	newKey := "mk_" + hex.EncodeToString(raw)

	oldKey := tenant.APIKey
	tenant.APIKey = &newKey
	tenant.UpdatedAt = time.Now()

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return "", apperr.Internal(err)
	}

	if s.keyCache != nil && oldKey != nil {
		if err := s.keyCache.Invalidate(ctx, *oldKey); err != nil {
			log.Printf("[TENANT_SERVICE] Failed to invalidate cached api key for tenant %s: %v", tenantID, err)
		}
	}

	return newKey, nil
}

// AdoptLegacyRecords assigns every unowned domain record to the given
// tenant. One-off administrative migration; counts are per collection.
func (s *TenantService) AdoptLegacyRecords(ctx context.Context, tenantID uuid.UUID) (map[string]int64, error) {
	if _, err := s.GetByID(ctx, tenantID); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, 4)

	n, err := s.clientRepo.AssignLegacyToTenant(ctx, tenantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	counts["clientes"] = n

	n, err = s.productRepo.AssignLegacyToTenant(ctx, tenantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	counts["productos"] = n

	n, err = s.assetRepo.AssignLegacyToTenant(ctx, tenantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	counts["audiovisuales"] = n

	n, err = s.campaignRepo.AssignLegacyToTenant(ctx, tenantID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	counts["campanas"] = n

	return counts, nil
}
