package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead is an inbound contact, typically captured by a WhatsApp or AI-call
// integration authenticating with a tenant API key.
type Lead struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	TenantID        *uuid.UUID `json:"tenantId,omitempty" db:"tenant_id"`
	Nombre          string     `json:"nombre" db:"nombre"`
	Telefono        string     `json:"telefono" db:"telefono"`
	Email           string     `json:"email" db:"email"`
	ProductoInteres string     `json:"productoInteres" db:"producto_interes"`
	Origen          string     `json:"origen" db:"origen"`
	Notas           string     `json:"notas" db:"notas"`
	Estado          string     `json:"estado" db:"estado"`
	CreatedAt       time.Time  `json:"fechaCreacion" db:"created_at"`
}
