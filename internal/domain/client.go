package domain

import (
	"time"

	"github.com/google/uuid"
)

type ClientStatus string

const (
	ClientStatusActivo   ClientStatus = "activo"
	ClientStatusPausado  ClientStatus = "pausado"
	ClientStatusInactivo ClientStatus = "inactivo"
)

// ValidClientStatus reports whether s is one of the accepted client states.
func ValidClientStatus(s string) bool {
	switch ClientStatus(s) {
	case ClientStatusActivo, ClientStatusPausado, ClientStatusInactivo:
		return true
	}
	return false
}

// Client is a cliente/lead record of a store. TenantID is nullable: a nil
// value marks a legacy record created before tenant partitioning.
type Client struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	TenantID     *uuid.UUID   `json:"tenantId,omitempty" db:"tenant_id"`
	NombreEmpresa string      `json:"nombreEmpresa" db:"nombre_empresa"`
	CedulaNit    string       `json:"cedulaNit" db:"cedula_nit"`
	Email        string       `json:"email" db:"email"`
	Whatsapp     string       `json:"whatsapp" db:"whatsapp"`
	Direccion    string       `json:"direccion" db:"direccion"`
	CiudadBarrio string       `json:"ciudadBarrio" db:"ciudad_barrio"`
	Estado       ClientStatus `json:"estado" db:"estado"`
	MiracleCoins int          `json:"miracleCoins" db:"miracle_coins"`
	CreatedAt    time.Time    `json:"fechaCreacion" db:"created_at"`
	UpdatedAt    time.Time    `json:"-" db:"updated_at"`
}

func (c *Client) Ownership() Ownership {
	return OwnershipOf(c.TenantID)
}
