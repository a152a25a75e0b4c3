package domain

import (
	"time"

	"github.com/google/uuid"
)

// User belongs to exactly one tenant. The (email, tenant_id) pair is unique:
// the same email may exist under different tenants but never twice under one.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TenantID     uuid.UUID `json:"tenantId" db:"tenant_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Nombre       string    `json:"nombre" db:"nombre"`
	Activo       bool      `json:"activo" db:"activo"`
	// IsOriginalAdmin marks the founding administrator of a tenant. Tenants
	// created before the flag existed have no user with it set; see
	// UserService.isOriginalAdmin for the fallback rule.
	IsOriginalAdmin bool      `json:"isOriginalAdmin" db:"is_original_admin"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
