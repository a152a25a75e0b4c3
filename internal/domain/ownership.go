package domain

import "github.com/google/uuid"

// Ownership tags the tenant attribution of a domain record. Records created
// before tenant partitioning existed carry no tenant id at all; until a
// migration reassigns them they must stay visible to every tenant, while a
// record owned by one tenant must never surface for another.
type Ownership struct {
	tenantID uuid.UUID
	assigned bool
}

// Owned attributes a record to a specific tenant.
func Owned(tenantID uuid.UUID) Ownership {
	return Ownership{tenantID: tenantID, assigned: true}
}

// Unassigned marks a legacy record without tenant attribution.
func Unassigned() Ownership {
	return Ownership{}
}

// OwnershipOf builds an Ownership from a nullable tenant reference as read
// from the store.
func OwnershipOf(tenantID *uuid.UUID) Ownership {
	if tenantID == nil {
		return Unassigned()
	}
	return Owned(*tenantID)
}

func (o Ownership) Assigned() bool {
	return o.assigned
}

// TenantID returns the owning tenant and false for legacy records.
func (o Ownership) TenantID() (uuid.UUID, bool) {
	return o.tenantID, o.assigned
}

// VisibleTo reports whether a record with this ownership belongs in a
// tenant-scoped read: the tenant's own records plus legacy ones.
func (o Ownership) VisibleTo(tenantID uuid.UUID) bool {
	return !o.assigned || o.tenantID == tenantID
}
