package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssetType string

const (
	AssetTypeVideo  AssetType = "Video"
	AssetTypeImagen AssetType = "Imagen"
)

type AssetStatus string

const (
	AssetStatusPendiente AssetStatus = "pendiente"
	AssetStatusAprobada  AssetStatus = "aprobada"
	AssetStatusUsada     AssetStatus = "usada"
)

func ValidAssetStatus(s string) bool {
	switch AssetStatus(s) {
	case AssetStatusPendiente, AssetStatusAprobada, AssetStatusUsada:
		return true
	}
	return false
}

// Asset is an audiovisual creative piece stored in object storage.
// TenantID nil marks a legacy record.
type Asset struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	TenantID        *uuid.UUID  `json:"tenantId,omitempty" db:"tenant_id"`
	Tipo            AssetType   `json:"tipo" db:"tipo"`
	Plataforma      string      `json:"plataforma" db:"plataforma"`
	Formato         string      `json:"formato" db:"formato"`
	Estado          AssetStatus `json:"estado" db:"estado"`
	CampanaAsociada string      `json:"campanaAsociada" db:"campana_asociada"`
	URL             string      `json:"url" db:"url"`
	ContentType     string      `json:"contentType" db:"content_type"`
	CreatedAt       time.Time   `json:"fechaCreacion" db:"created_at"`
	UpdatedAt       time.Time   `json:"-" db:"updated_at"`
}

func (a *Asset) Ownership() Ownership {
	return OwnershipOf(a.TenantID)
}
