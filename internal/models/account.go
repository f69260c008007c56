package models

import "github.com/shopspring/decimal"

// Account is the accounts table row. The derived total is never stored.
type Account struct {
	AccountID string          `db:"account_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"` // DECIMAL(13,2)
	AuditFields
}
