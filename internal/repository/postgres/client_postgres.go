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

type clientRepository struct {
	db *sqlx.DB
}

// NewClientRepository creates a new PostgreSQL client repository
func NewClientRepository(db *sqlx.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, tenant_id, nombre_empresa, cedula_nit, email, whatsapp,
	   direccion, ciudad_barrio, estado, miracle_coins, created_at, updated_at`

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clientes (
			id, tenant_id, nombre_empresa, cedula_nit, email, whatsapp,
			direccion, ciudad_barrio, estado, miracle_coins, created_at, updated_at
		) VALUES (
			:id, :tenant_id, :nombre_empresa, :cedula_nit, :email, :whatsapp,
			:direccion, :ciudad_barrio, :estado, :miracle_coins, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, client)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id, tenantID uuid.UUID) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clientes WHERE id = $1 AND ` + tenantScoped(2)

	var client domain.Client
	err := r.db.GetContext(ctx, &client, query, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client by id: %w", err)
	}

	return &client, nil
}

func (r *clientRepository) List(ctx context.Context, tenantID uuid.UUID, filter repository.ClientFilter) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clientes WHERE ` + tenantScoped(1)
	args := []interface{}{tenantID}

	if filter.Estado != "" {
		args = append(args, filter.Estado)
		query += fmt.Sprintf(" AND estado = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	var clients []*domain.Client
	err := r.db.SelectContext(ctx, &clients, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return clients, nil
}

// Update rewrites the mutable fields inside the acting tenant's scope. It
// never touches tenant_id: a legacy row stays legacy until the bulk
// migration claims it.
func (r *clientRepository) Update(ctx context.Context, client *domain.Client, tenantID uuid.UUID) error {
	query := `
		UPDATE clientes SET
			nombre_empresa = $1,
			cedula_nit = $2,
			email = $3,
			whatsapp = $4,
			direccion = $5,
			ciudad_barrio = $6,
			estado = $7,
			miracle_coins = $8,
			updated_at = $9
		WHERE id = $10 AND ` + tenantScoped(11)

	result, err := r.db.ExecContext(ctx, query,
		client.NombreEmpresa, client.CedulaNit, client.Email, client.Whatsapp,
		client.Direccion, client.CiudadBarrio, client.Estado, client.MiracleCoins,
		client.UpdatedAt, client.ID, tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *clientRepository) ExistsByNit(ctx context.Context, tenantID uuid.UUID, cedulaNit string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM clientes WHERE tenant_id = $1 AND cedula_nit = $2)`,
		tenantID, cedulaNit,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check client nit: %w", err)
	}

	return exists, nil
}

func (r *clientRepository) AssignLegacyToTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE clientes SET tenant_id = $1 WHERE tenant_id IS NULL`, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to assign legacy clients: %w", err)
	}

	return result.RowsAffected()
}
