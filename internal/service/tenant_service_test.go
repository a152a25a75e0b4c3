package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

func newTenantFixture(t *testing.T) (*TenantService, *memTenantRepo, *memClientRepo, *memProductRepo, *memAssetRepo) {
	t.Helper()
	tenantRepo := newMemTenantRepo()
	clientRepo := newMemClientRepo()
	productRepo := newMemProductRepo()
	campaignRepo := newMemCampaignRepo()
	assetRepo := newMemAssetRepo()
	svc := NewTenantService(tenantRepo, clientRepo, productRepo, campaignRepo, assetRepo, nil)
	return svc, tenantRepo, clientRepo, productRepo, assetRepo
}

func TestUpdateTenantProfile(t *testing.T) {
	svc, tenantRepo, _, _, _ := newTenantFixture(t)
	tenant := seedTenant(t, tenantRepo, "Miracle", "miracle")

	nombre := "Miracle Solutions"
	eslogan := "Hacemos milagros"
	productos := []string{"Campañas", "Pauta"}
	updated, err := svc.UpdateProfile(context.Background(), tenant.ID, UpdateTenantRequest{
		Nombre:               &nombre,
		Eslogan:              &eslogan,
		ProductosPrincipales: &productos,
	})
	require.NoError(t, err)
	require.Equal(t, "Miracle Solutions", updated.Nombre)
	require.Equal(t, "Hacemos milagros", updated.Eslogan)
	require.Equal(t, []string{"Campañas", "Pauta"}, []string(updated.ProductosPrincipales))

	vacio := "   "
	_, err = svc.UpdateProfile(context.Background(), tenant.ID, UpdateTenantRequest{Nombre: &vacio})
	require.Error(t, err)
	require.Equal(t, 400, apperr.Status(err))
}

func TestRotateAPIKey(t *testing.T) {
	svc, tenantRepo, _, _, _ := newTenantFixture(t)
	tenant := seedTenant(t, tenantRepo, "Miracle", "miracle")

	key1, err := svc.RotateAPIKey(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key1, "mk_"))

	key2, err := svc.RotateAPIKey(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.NotEqual(t, key1, key2)

	// Only the latest key resolves.
	_, err = tenantRepo.GetByAPIKey(context.Background(), key1)
	require.Error(t, err)

	found, err := tenantRepo.GetByAPIKey(context.Background(), key2)
	require.NoError(t, err)
	require.Equal(t, tenant.ID, found.ID)
}

func TestAdoptLegacyRecords(t *testing.T) {
	svc, tenantRepo, clientRepo, productRepo, assetRepo := newTenantFixture(t)
	tenant := seedTenant(t, tenantRepo, "Miracle", "miracle")
	other := uuid.New()

	addClient(t, clientRepo, nil, "Antigua", "1")
	addClient(t, clientRepo, nil, "Vieja", "2")
	addClient(t, clientRepo, &other, "Ajena", "3")

	now := time.Now()
	require.NoError(t, productRepo.Create(context.Background(), &domain.Product{
		ID:        uuid.New(),
		Nombre:    "Huerfano",
		Estado:    domain.ProductStatusActivo,
		CreatedAt: now,
	}))
	require.NoError(t, assetRepo.Create(context.Background(), &domain.Asset{
		ID:        uuid.New(),
		Tipo:      domain.AssetTypeVideo,
		Estado:    domain.AssetStatusPendiente,
		CreatedAt: now,
	}))

	counts, err := svc.AdoptLegacyRecords(context.Background(), tenant.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), counts["clientes"])
	require.Equal(t, int64(1), counts["productos"])
	require.Equal(t, int64(1), counts["audiovisuales"])
	require.Equal(t, int64(0), counts["campanas"])

	// Adopted records now belong to the tenant; the foreign one is untouched.
	clients, err := clientRepo.List(context.Background(), tenant.ID, repository.ClientFilter{})
	require.NoError(t, err)
	require.Len(t, clients, 2)
}
