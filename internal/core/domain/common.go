package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// MaxNameLength is the upper bound for user-facing name fields
// (Category.Name, Account.Name, Transaction.Partner).
const MaxNameLength = 200
