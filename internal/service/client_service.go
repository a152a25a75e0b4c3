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

type ClientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

type CreateClientRequest struct {
	NombreEmpresa string `json:"nombreEmpresa" validate:"required"`
	CedulaNit     string `json:"cedulaNit"`
	Email         string `json:"email" validate:"required,email"`
	Whatsapp      string `json:"whatsapp"`
	Direccion     string `json:"direccion"`
	CiudadBarrio  string `json:"ciudadBarrio"`
	Estado        string `json:"estado" validate:"omitempty,oneof=activo pausado inactivo"`
	MiracleCoins  int    `json:"miracleCoins" validate:"gte=0"`
}

type UpdateClientRequest struct {
	NombreEmpresa *string `json:"nombreEmpresa"`
	CedulaNit     *string `json:"cedulaNit"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Whatsapp      *string `json:"whatsapp"`
	Direccion     *string `json:"direccion"`
	CiudadBarrio  *string `json:"ciudadBarrio"`
	Estado        *string `json:"estado" validate:"omitempty,oneof=activo pausado inactivo"`
	MiracleCoins  *int    `json:"miracleCoins" validate:"omitempty,gte=0"`
}

func (s *ClientService) List(ctx context.Context, tenantID uuid.UUID, filter repository.ClientFilter) ([]*domain.Client, error) {
	clients, err := s.clientRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return clients, nil
}

func (s *ClientService) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Cliente no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return client, nil
}

func (s *ClientService) Create(ctx context.Context, tenantID uuid.UUID, req CreateClientRequest) (*domain.Client, error) {
	cedulaNit := strings.TrimSpace(req.CedulaNit)

	// Uniqueness is checked against the acting tenant only: a legacy row of
	// some other tenant must never block creation.
	if cedulaNit != "" {
		exists, err := s.clientRepo.ExistsByNit(ctx, tenantID, cedulaNit)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			return nil, apperr.Conflict("Ya existe un cliente con esa cédula o NIT")
		}
	}

	estado := domain.ClientStatusActivo
	if domain.ValidClientStatus(req.Estado) {
		estado = domain.ClientStatus(req.Estado)
	}

	coins := req.MiracleCoins
	if coins < 0 {
		coins = 0
	}

	now := time.Now()
	client := &domain.Client{
		ID:            uuid.New(),
		TenantID:      &tenantID,
		NombreEmpresa: strings.TrimSpace(req.NombreEmpresa),
		CedulaNit:     cedulaNit,
		Email:         strings.TrimSpace(req.Email),
		Whatsapp:      strings.TrimSpace(req.Whatsapp),
		Direccion:     strings.TrimSpace(req.Direccion),
		CiudadBarrio:  strings.TrimSpace(req.CiudadBarrio),
		Estado:        estado,
		MiracleCoins:  coins,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperr.Internal(err)
	}

	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id, tenantID uuid.UUID, req UpdateClientRequest) (*domain.Client, error) {
	client, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if req.NombreEmpresa != nil {
		client.NombreEmpresa = strings.TrimSpace(*req.NombreEmpresa)
	}
	if req.CedulaNit != nil {
		cedulaNit := strings.TrimSpace(*req.CedulaNit)
		if cedulaNit != "" && cedulaNit != client.CedulaNit {
			exists, err := s.clientRepo.ExistsByNit(ctx, tenantID, cedulaNit)
			if err != nil {
				return nil, apperr.Internal(err)
			}
			if exists {
				return nil, apperr.Conflict("Ya existe un cliente con esa cédula o NIT")
			}
		}
		client.CedulaNit = cedulaNit
	}
	if req.Email != nil {
		client.Email = strings.TrimSpace(*req.Email)
	}
	if req.Whatsapp != nil {
		client.Whatsapp = strings.TrimSpace(*req.Whatsapp)
	}
	if req.Direccion != nil {
		client.Direccion = strings.TrimSpace(*req.Direccion)
	}
	if req.CiudadBarrio != nil {
		client.CiudadBarrio = strings.TrimSpace(*req.CiudadBarrio)
	}
	if req.Estado != nil && domain.ValidClientStatus(*req.Estado) {
		client.Estado = domain.ClientStatus(*req.Estado)
	}
	if req.MiracleCoins != nil && *req.MiracleCoins >= 0 {
		client.MiracleCoins = *req.MiracleCoins
	}

	client.UpdatedAt = time.Now()

	if err := s.clientRepo.Update(ctx, client, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Cliente no encontrado")
		}
		return nil, apperr.Internal(err)
	}

	return client, nil
}

func (s *ClientService) Inactivar(ctx context.Context, id, tenantID uuid.UUID) (*domain.Client, error) {
	estado := string(domain.ClientStatusInactivo)
	return s.Update(ctx, id, tenantID, UpdateClientRequest{Estado: &estado})
}
