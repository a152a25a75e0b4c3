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

type campaignRepository struct {
	db *sqlx.DB
}

// NewCampaignRepository creates a new PostgreSQL campaign repository
func NewCampaignRepository(db *sqlx.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

const campaignColumns = `id, tenant_id, producto, pieza_creativo, plataforma,
	   miracle_coins, estado, created_at, updated_at`

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		INSERT INTO campanas (
			id, tenant_id, producto, pieza_creativo, plataforma,
			miracle_coins, estado, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :producto, :pieza_creativo, :plataforma,
			:miracle_coins, :estado, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, campaign)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campanas WHERE id = $1 AND tenant_id = $2`

	var campaign domain.Campaign
	err := r.db.GetContext(ctx, &campaign, query, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign by id: %w", err)
	}

	return &campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, tenantID uuid.UUID, filter repository.CampaignFilter) ([]*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campanas WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if filter.Estado != "" {
		args = append(args, filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	var campaigns []*domain.Campaign
	err := r.db.SelectContext(ctx, &campaigns, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		UPDATE campanas SET
			producto = :producto,
			pieza_creativo = :pieza_creativo,
			plataforma = :plataforma,
			miracle_coins = :miracle_coins,
			estado = :estado,
			updated_at = :updated_at
		WHERE id = :id AND tenant_id = :tenant_id`

	result, err := r.db.NamedExecContext(ctx, query, campaign)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *campaignRepository) AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE campanas SET tenant_id = $1 WHERE tenant_id IS NULL`, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to assign legacy campaigns: %w", err)
	}

	return result.RowsAffected()
}
