package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

func addClient(t *testing.T, repo *memClientRepo, tenantID *uuid.UUID, empresa, nit string) *domain.Client {
	t.Helper()
	client := &domain.Client{
		ID:            uuid.New(),
		TenantID:      tenantID,
		NombreEmpresa: empresa,
		CedulaNit:     nit,
		Estado:        domain.ClientStatusActivo,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), client))
	return client
}

func TestClientListIncludesLegacyAndExcludesForeign(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)

	tenantA := uuid.New()
	tenantB := uuid.New()

	own := addClient(t, repo, &tenantA, "Propia", "100")
	legacy := addClient(t, repo, nil, "Antigua", "200")
	addClient(t, repo, &tenantB, "Ajena", "300")

	clients, err := svc.List(context.Background(), tenantA, repository.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, clients, 2)

	ids := map[uuid.UUID]bool{}
	for _, c := range clients {
		ids[c.ID] = true
	}
	require.True(t, ids[own.ID])
	require.True(t, ids[legacy.ID])
}

func TestClientGetScopedByTenant(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)

	tenantA := uuid.New()
	tenantB := uuid.New()
	foreign := addClient(t, repo, &tenantB, "Ajena", "300")
	legacy := addClient(t, repo, nil, "Antigua", "200")

	_, err := svc.GetByID(context.Background(), foreign.ID, tenantA)
	require.Error(t, err)
	require.Equal(t, 404, apperr.Status(err))

	got, err := svc.GetByID(context.Background(), legacy.ID, tenantA)
	require.NoError(t, err)
	require.Equal(t, legacy.ID, got.ID)
}

func TestClientNitUniquenessIsTenantLocal(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)

	tenantA := uuid.New()
	tenantB := uuid.New()
	addClient(t, repo, &tenantB, "Ajena", "900")

	// Another tenant's NIT does not block creation.
	client, err := svc.Create(context.Background(), tenantA, CreateClientRequest{
		NombreEmpresa: "Nueva",
		CedulaNit:     "900",
		Email:         "nueva@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, tenantA, *client.TenantID)

	// The same NIT inside the tenant does.
	_, err = svc.Create(context.Background(), tenantA, CreateClientRequest{
		NombreEmpresa: "Repetida",
		CedulaNit:     "900",
		Email:         "repetida@example.com",
	})
	require.Error(t, err)
	require.Equal(t, 409, apperr.Status(err))
}

func TestClientUpdateKeepsLegacyUnassigned(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)

	tenantA := uuid.New()
	legacy := addClient(t, repo, nil, "Antigua", "200")

	empresa := "Antigua Renovada"
	updated, err := svc.Update(context.Background(), legacy.ID, tenantA, UpdateClientRequest{
		NombreEmpresa: &empresa,
	})
	require.NoError(t, err)
	require.Equal(t, "Antigua Renovada", updated.NombreEmpresa)

	// Editing a legacy record must not claim it for the editing tenant.
	stored := repo.clients[legacy.ID]
	require.Nil(t, stored.TenantID)
}

func TestClientInactivar(t *testing.T) {
	repo := newMemClientRepo()
	svc := NewClientService(repo)

	tenantA := uuid.New()
	client := addClient(t, repo, &tenantA, "Propia", "100")

	updated, err := svc.Inactivar(context.Background(), client.ID, tenantA)
	require.NoError(t, err)
	require.Equal(t, domain.ClientStatusInactivo, updated.Estado)
}
