package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
	"github.com/miraclesolutionsdev/miracle-back/pkg/storage"
)

const assetPrefix = "audiovisuales"

type AssetService struct {
	assetRepo repository.AssetRepository
	storage   storage.ObjectStorage
}

func NewAssetService(assetRepo repository.AssetRepository, objectStorage storage.ObjectStorage) *AssetService {
	return &AssetService{assetRepo: assetRepo, storage: objectStorage}
}

type CreateAssetRequest struct {
	Tipo            string `json:"tipo" validate:"required,oneof=Video Imagen"`
	Plataforma      string `json:"plataforma" validate:"required"`
	Resolucion      string `json:"resolucion"`
	Duracion        string `json:"duracion"`
	CampanaAsociada string `json:"campanaAsociada"`
	File            *UploadFile `json:"-"`
}

type PresignAssetRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

type ConfirmAssetRequest struct {
	Tipo            string `json:"tipo" validate:"required,oneof=Video Imagen"`
	Plataforma      string `json:"plataforma" validate:"required"`
	Resolucion      string `json:"resolucion"`
	Duracion        string `json:"duracion"`
	CampanaAsociada string `json:"campanaAsociada"`
	Key             string `json:"key"`
	PublicURL       string `json:"publicUrl"`
	ContentType     string `json:"contentType"`
}

func (s *AssetService) List(ctx context.Context, tenantID uuid.UUID, filter repository.AssetFilter) ([]*domain.Asset, error) {
	assets, err := s.assetRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return assets, nil
}

// Create uploads the attached file and registers the asset. Video assets
// with resolution and duration get a combined "formato" label.
func (s *AssetService) Create(ctx context.Context, tenantID uuid.UUID, req CreateAssetRequest) (*domain.Asset, error) {
	if req.File == nil || len(req.File.Data) == 0 {
		return nil, apperr.Validation("Debe adjuntar un archivo (video o imagen)")
	}
	if s.storage == nil {
		return nil, apperr.Validation("La carga de archivos no está configurada")
	}

	url, err := s.storage.Upload(ctx, assetPrefix, req.File.Name, req.File.ContentType, req.File.Data)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	contentType := req.File.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.register(ctx, tenantID, req.Tipo, req.Plataforma, req.Resolucion, req.Duracion, req.CampanaAsociada, url, contentType)
}

// PresignUpload hands the client a presigned PUT so large files bypass the
// API server entirely; ConfirmUpload registers the asset afterwards.
func (s *AssetService) PresignUpload(ctx context.Context, req PresignAssetRequest) (*storage.PresignedUpload, error) {
	if s.storage == nil {
		return nil, apperr.Validation("La carga de archivos no está configurada")
	}

	name := strings.TrimSpace(req.Filename)
	if name == "" {
		name = "archivo"
	}
	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload, err := s.storage.PresignPut(ctx, assetPrefix, name, contentType)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return upload, nil
}

func (s *AssetService) ConfirmUpload(ctx context.Context, tenantID uuid.UUID, req ConfirmAssetRequest) (*domain.Asset, error) {
	url := strings.TrimSpace(req.PublicURL)
	if url == "" {
		url = strings.TrimSpace(req.Key)
	}
	if url == "" {
		return nil, apperr.Validation("Falta publicUrl o key del archivo")
	}

	contentType := strings.TrimSpace(req.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.register(ctx, tenantID, req.Tipo, req.Plataforma, req.Resolucion, req.Duracion, req.CampanaAsociada, url, contentType)
}

func (s *AssetService) UpdateEstado(ctx context.Context, id, tenantID uuid.UUID, estado string) (*domain.Asset, error) {
	if !domain.ValidAssetStatus(estado) {
		return nil, apperr.Validation("Estado no válido")
	}

	asset, err := s.assetRepo.UpdateEstado(ctx, id, tenantID, domain.AssetStatus(estado))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Pieza no encontrada")
		}
		return nil, apperr.Internal(err)
	}

	return asset, nil
}

func (s *AssetService) register(ctx context.Context, tenantID uuid.UUID, tipo, plataforma, resolucion, duracion, campanaAsociada, url, contentType string) (*domain.Asset, error) {
	assetTipo := domain.AssetTypeVideo
	if tipo == string(domain.AssetTypeImagen) {
		assetTipo = domain.AssetTypeImagen
	}

	formato := strings.TrimSpace(resolucion)
	if assetTipo == domain.AssetTypeVideo && resolucion != "" && duracion != "" {
		formato = fmt.Sprintf("%s · %ss", resolucion, duracion)
	}

	now := time.Now()
	asset := &domain.Asset{
		ID:              uuid.New(),
		TenantID:        &tenantID,
		Tipo:            assetTipo,
		Plataforma:      strings.TrimSpace(plataforma),
		Formato:         formato,
		Estado:          domain.AssetStatusPendiente,
		CampanaAsociada: strings.TrimSpace(campanaAsociada),
		URL:             url,
		ContentType:     contentType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, apperr.Internal(err)
	}

	return asset, nil
}
