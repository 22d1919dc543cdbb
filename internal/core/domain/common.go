package domain

import "time"

// AuditFields records where a catalog entry came from.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // "builtin", "catalog-file" or "api"
}

const (
	CreatedByBuiltin     = "builtin"
	CreatedByCatalogFile = "catalog-file"
	CreatedByAPI         = "api"
)
