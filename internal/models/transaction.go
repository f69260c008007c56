package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row. The category and account foreign
// keys are declared ON DELETE RESTRICT.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Partner       string          `db:"partner"`
	Date          time.Time       `db:"date"` // DATE column
	Value         decimal.Decimal `db:"value"`
	CategoryID    string          `db:"category_id"`
	AccountID     string          `db:"account_id"`
	Locked        bool            `db:"locked"`
	AuditFields
}
