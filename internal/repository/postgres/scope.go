package postgres

import "fmt"

// tenantScoped builds the legacy-inclusive read predicate for tables whose
// tenant_id column is nullable: the tenant's own rows plus rows that predate
// tenant partitioning. arg is the 1-based position of the tenant id
// parameter in the surrounding query.
//
// Write paths never use this predicate; creates stamp the acting tenant and
// uniqueness checks match on tenant_id alone.
func tenantScoped(arg int) string {
	return fmt.Sprintf("(tenant_id = $%d OR tenant_id IS NULL)", arg)
}
