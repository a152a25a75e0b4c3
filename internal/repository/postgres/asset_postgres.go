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

type assetRepository struct {
	db *sqlx.DB
}

// NewAssetRepository creates a new PostgreSQL audiovisual asset repository
func NewAssetRepository(db *sqlx.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

const assetColumns = `id, tenant_id, tipo, plataforma, formato, estado,
	   campana_asociada, url, content_type, created_at, updated_at`

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO audiovisuales (
			id, tenant_id, tipo, plataforma, formato, estado,
			campana_asociada, url, content_type, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :tipo, :plataforma, :formato, :estado,
			:campana_asociada, :url, :content_type, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, asset)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

func (r *assetRepository) List(ctx context.Context, tenantID uuid.UUID, filter repository.AssetFilter) ([]*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM audiovisuales WHERE ` + tenantScoped(1)
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

	var assets []*domain.Asset
	err := r.db.SelectContext(ctx, &assets, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return assets, nil
}

func (r *assetRepository) UpdateEstado(ctx context.Context, id, tenantID uuid.UUID, estado domain.AssetStatus) (*domain.Asset, error) {
	query := `
		UPDATE audiovisuales
		SET estado = $1, updated_at = NOW()
		WHERE id = $2 AND ` + tenantScoped(3) + `
		RETURNING ` + assetColumns

	var asset domain.Asset
	err := r.db.GetContext(ctx, &asset, query, estado, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update asset estado: %w", err)
	}

	return &asset, nil
}

func (r *assetRepository) AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE audiovisuales SET tenant_id = $1 WHERE tenant_id IS NULL`, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to assign legacy assets: %w", err)
	}

	return result.RowsAffected()
}
