package domain

import (
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string

const (
	CampaignStatusBorrador   CampaignStatus = "borrador"
	CampaignStatusActiva     CampaignStatus = "activa"
	CampaignStatusPausada    CampaignStatus = "pausada"
	CampaignStatusFinalizada CampaignStatus = "finalizada"
)

func ValidCampaignStatus(s string) bool {
	switch CampaignStatus(s) {
	case CampaignStatusBorrador, CampaignStatusActiva, CampaignStatusPausada, CampaignStatusFinalizada:
		return true
	}
	return false
}

// Campaign is a marketing campaign. Campaigns postdate tenant partitioning,
// so TenantID is always set.
type Campaign struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	TenantID      uuid.UUID      `json:"tenantId" db:"tenant_id"`
	Producto      string         `json:"producto" db:"producto"`
	PiezaCreativo string         `json:"piezaCreativo" db:"pieza_creativo"`
	Plataforma    string         `json:"plataforma" db:"plataforma"`
	MiracleCoins  string         `json:"miracleCoins" db:"miracle_coins"`
	Estado        CampaignStatus `json:"estado" db:"estado"`
	CreatedAt     time.Time      `json:"fechaCreacion" db:"created_at"`
	UpdatedAt     time.Time      `json:"-" db:"updated_at"`
}
