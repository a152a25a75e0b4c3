package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/miraclesolutionsdev/miracle-back/internal/apperr"
	"github.com/miraclesolutionsdev/miracle-back/internal/domain"
	"github.com/miraclesolutionsdev/miracle-back/internal/repository"
)

func TestCampaignCreateDefaultsToBorrador(t *testing.T) {
	svc := NewCampaignService(newMemCampaignRepo())
	tenantID := uuid.New()

	campaign, err := svc.Create(context.Background(), tenantID, CreateCampaignRequest{
		Producto:   "Campaña Navidad",
		Plataforma: "Meta",
	})
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusBorrador, campaign.Estado)
	require.Equal(t, tenantID, campaign.TenantID)
}

func TestCampaignStrictTenantScope(t *testing.T) {
	repo := newMemCampaignRepo()
	svc := NewCampaignService(repo)
	tenantA := uuid.New()
	tenantB := uuid.New()

	campaign, err := svc.Create(context.Background(), tenantA, CreateCampaignRequest{
		Producto: "Propia",
	})
	require.NoError(t, err)

	// Campaigns have no legacy fallback: other tenants never see them.
	_, err = svc.GetByID(context.Background(), campaign.ID, tenantB)
	require.Error(t, err)
	require.Equal(t, 404, apperr.Status(err))

	list, err := svc.List(context.Background(), tenantB, repository.CampaignFilter{})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestCampaignUpdateEstado(t *testing.T) {
	repo := newMemCampaignRepo()
	svc := NewCampaignService(repo)
	tenantID := uuid.New()

	campaign, err := svc.Create(context.Background(), tenantID, CreateCampaignRequest{Producto: "X"})
	require.NoError(t, err)

	updated, err := svc.UpdateEstado(context.Background(), campaign.ID, tenantID, "activa")
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusActiva, updated.Estado)

	_, err = svc.UpdateEstado(context.Background(), campaign.ID, tenantID, "volando")
	require.Error(t, err)
	require.Equal(t, 400, apperr.Status(err))
	require.Equal(t, "Estado no válido", apperr.Message(err))
}
