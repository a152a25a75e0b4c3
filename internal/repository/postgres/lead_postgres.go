package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

type leadRepository struct {
	db *sqlx.DB
}

// NewLeadRepository creates a new PostgreSQL lead repository
func NewLeadRepository(db *sqlx.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO leads (
			id, tenant_id, nombre, telefono, email, producto_interes,
			origen, notas, estado, created_at
		) VALUES (
			:id, :tenant_id, :nombre, :telefono, :email, :producto_interes,
			:origen, :notas, :estado, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, lead)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}
