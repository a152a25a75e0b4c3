package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductType string

const (
	ProductTypeServicio ProductType = "servicio"
	ProductTypeProducto ProductType = "producto"
)

type ProductStatus string

const (
	ProductStatusActivo   ProductStatus = "activo"
	ProductStatusInactivo ProductStatus = "inactivo"
)

// Product is a store's product or service. TenantID nil marks a legacy record.
type Product struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	TenantID    *uuid.UUID    `json:"tenantId,omitempty" db:"tenant_id"`
	Nombre      string        `json:"nombre" db:"nombre"`
	Descripcion string        `json:"descripcion" db:"descripcion"`
	Precio      float64       `json:"precio" db:"precio"`
	Tipo        ProductType   `json:"tipo" db:"tipo"`
	Estado      ProductStatus `json:"estado" db:"estado"`
	// Imagenes holds public object-storage URLs.
	Imagenes        pq.StringArray `json:"imagenes" db:"imagenes"`
	Stock           int            `json:"stock" db:"stock"`
	Usos            pq.StringArray `json:"usos" db:"usos"`
	Caracteristicas pq.StringArray `json:"caracteristicas" db:"caracteristicas"`
	CreatedAt       time.Time      `json:"fechaCreacion" db:"created_at"`
	UpdatedAt       time.Time      `json:"-" db:"updated_at"`
}

func (p *Product) Ownership() Ownership {
	return OwnershipOf(p.TenantID)
}
