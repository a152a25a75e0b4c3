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
	"github.com/miraclesolutionsdev/miracle-back/pkg/storage"
)

// UploadFile is an in-memory file received from a multipart request.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type ProductService struct {
	productRepo repository.ProductRepository
	storage     storage.ObjectStorage
}

func NewProductService(productRepo repository.ProductRepository, objectStorage storage.ObjectStorage) *ProductService {
	return &ProductService{productRepo: productRepo, storage: objectStorage}
}

type CreateProductRequest struct {
	Nombre          string   `json:"nombre" validate:"required"`
	Descripcion     string   `json:"descripcion"`
	Precio          float64  `json:"precio" validate:"gte=0"`
	Tipo            string   `json:"tipo" validate:"omitempty,oneof=servicio producto"`
	Estado          string   `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	Stock           int      `json:"stock" validate:"gte=0"`
	Usos            []string `json:"usos"`
	Caracteristicas []string `json:"caracteristicas"`
	// Imagenes carries pre-uploaded URLs; Files carries raw multipart
	// uploads that go to object storage first.
	Imagenes []string     `json:"imagenes"`
	Files    []UploadFile `json:"-"`
}

type UpdateProductRequest struct {
	Nombre          *string   `json:"nombre"`
	Descripcion     *string   `json:"descripcion"`
	Precio          *float64  `json:"precio" validate:"omitempty,gte=0"`
	Tipo            *string   `json:"tipo" validate:"omitempty,oneof=servicio producto"`
	Estado          *string   `json:"estado" validate:"omitempty,oneof=activo inactivo"`
	Stock           *int      `json:"stock" validate:"omitempty,gte=0"`
	Usos            *[]string `json:"usos"`
	Caracteristicas *[]string `json:"caracteristicas"`
	Files           []UploadFile `json:"-"`
}

func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, filter repository.ProductFilter) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

func (s *ProductService) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Producto no encontrado")
		}
		return nil, apperr.Internal(err)
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*domain.Product, error) {
	nombre := strings.TrimSpace(req.Nombre)

	exists, err := s.productRepo.ExistsByName(ctx, tenantID, nombre)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("Ya existe un producto con ese nombre")
	}

	imagenes, err := s.uploadImages(ctx, req.Files)
	if err != nil {
		return nil, err
	}
	imagenes = append(imagenes, req.Imagenes...)

	tipo := domain.ProductTypeServicio
	if req.Tipo == string(domain.ProductTypeProducto) {
		tipo = domain.ProductTypeProducto
	}

	estado := domain.ProductStatusActivo
	if req.Estado == string(domain.ProductStatusInactivo) {
		estado = domain.ProductStatusInactivo
	}

	precio := req.Precio
	if precio < 0 {
		precio = 0
	}
	stock := req.Stock
	if stock < 0 {
		stock = 0
	}

	now := time.Now()
	product := &domain.Product{
		ID:              uuid.New(),
		TenantID:        &tenantID,
		Nombre:          nombre,
		Descripcion:     strings.TrimSpace(req.Descripcion),
		Precio:          precio,
		Tipo:            tipo,
		Estado:          estado,
		Imagenes:        imagenes,
		Stock:           stock,
		Usos:            req.Usos,
		Caracteristicas: req.Caracteristicas,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperr.Internal(err)
	}

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id, tenantID uuid.UUID, req UpdateProductRequest) (*domain.Product, error) {
	product, err := s.GetByID(ctx, id, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre != "" && nombre != product.Nombre {
			exists, err := s.productRepo.ExistsByName(ctx, tenantID, nombre)
			if err != nil {
				return nil, apperr.Internal(err)
			}
			if exists {
				return nil, apperr.Conflict("Ya existe un producto con ese nombre")
			}
		}
		product.Nombre = nombre
	}
	if req.Descripcion != nil {
		product.Descripcion = strings.TrimSpace(*req.Descripcion)
	}
	if req.Precio != nil && *req.Precio >= 0 {
		product.Precio = *req.Precio
	}
	if req.Tipo != nil && (*req.Tipo == string(domain.ProductTypeServicio) || *req.Tipo == string(domain.ProductTypeProducto)) {
		product.Tipo = domain.ProductType(*req.Tipo)
	}
	if req.Estado != nil && (*req.Estado == string(domain.ProductStatusActivo) || *req.Estado == string(domain.ProductStatusInactivo)) {
		product.Estado = domain.ProductStatus(*req.Estado)
	}
	if req.Stock != nil && *req.Stock >= 0 {
		product.Stock = *req.Stock
	}
	if req.Usos != nil {
		product.Usos = *req.Usos
	}
	if req.Caracteristicas != nil {
		product.Caracteristicas = *req.Caracteristicas
	}
	if len(req.Files) > 0 {
		imagenes, err := s.uploadImages(ctx, req.Files)
		if err != nil {
			return nil, err
		}
		product.Imagenes = imagenes
	}

	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Producto no encontrado")
		}
		return nil, apperr.Internal(err)
	}

	return product, nil
}

func (s *ProductService) Inactivar(ctx context.Context, id, tenantID uuid.UUID) (*domain.Product, error) {
	estado := string(domain.ProductStatusInactivo)
	return s.Update(ctx, id, tenantID, UpdateProductRequest{Estado: &estado})
}

func (s *ProductService) uploadImages(ctx context.Context, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if s.storage == nil {
		return nil, apperr.Validation("La carga de imágenes no está configurada")
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.storage.Upload(ctx, "productos", f.Name, f.ContentType, f.Data)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
