package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

type productRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, tenant_id, nombre, descripcion, precio, tipo, estado,
	   imagenes, stock, usos, caracteristicas, created_at, updated_at`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO productos (
			id, tenant_id, nombre, descripcion, precio, tipo, estado,
			imagenes, stock, usos, caracteristicas, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :nombre, :descripcion, :precio, :tipo, :estado,
			:imagenes, :stock, :usos, :caracteristicas, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE id = $1 AND ` + tenantScoped(2)

	var product domain.Product
	err := r.db.GetContext(ctx, &product, query, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	return &product, nil
}

func (r *productRepository) List(ctx context.Context, tenantID uuid.UUID, filter repository.ProductFilter) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE ` + tenantScoped(1)
	args := []interface{}{tenantID}

	if filter.Estado != "" {
		args = append(args, filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}
	if filter.Tipo != "" {
		args = append(args, filter.Tipo)
		query += fmt.Sprintf(" AND tipo = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	var products []*domain.Product
	err := r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product, tenantID uuid.UUID) error {
	query := `
		UPDATE productos SET
			nombre = $1,
			descripcion = $2,
			precio = $3,
			tipo = $4,
			estado = $5,
			imagenes = $6,
			stock = $7,
			usos = $8,
			caracteristicas = $9,
			updated_at = $10
		WHERE id = $11 AND ` + tenantScoped(12)

	result, err := r.db.ExecContext(ctx, query,
		product.Nombre, product.Descripcion, product.Precio, product.Tipo,
		product.Estado, product.Imagenes, product.Stock, product.Usos,
		product.Caracteristicas, product.UpdatedAt, product.ID, tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *productRepository) ExistsByName(ctx context.Context, tenantID uuid.UUID, nombre string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM productos WHERE tenant_id = $1 AND LOWER(nombre) = LOWER($2))`,
		tenantID, nombre,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check product name: %w", err)
	}

	return exists, nil
}

func (r *productRepository) AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE productos SET tenant_id = $1 WHERE tenant_id IS NULL`, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to assign legacy products: %w", err)
	}

	return result.RowsAffected()
}
