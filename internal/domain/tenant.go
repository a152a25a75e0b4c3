package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Tenant represents a store/company account. It is the partition key for all
// business data in the system.
type Tenant struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Nombre      string         `json:"nombre" db:"nombre"`
	Slug        *string        `json:"slug,omitempty" db:"slug"`
	APIKey      *string        `json:"-" db:"api_key"`
	LogoURL     string         `json:"logoUrl" db:"logo_url"`
	Descripcion string         `json:"descripcion" db:"descripcion"`
	Eslogan     string         `json:"eslogan" db:"eslogan"`
	// ProductosPrincipales are the products the store highlights on its profile.
	ProductosPrincipales pq.StringArray `json:"productosPrincipales" db:"productos_principales"`
	CreatedAt            time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time      `json:"updatedAt" db:"updated_at"`
}
