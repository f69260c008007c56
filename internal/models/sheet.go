package models

import "github.com/shopspring/decimal"

// Sheet is the sheets table row. The (month, year) pair carries a unique
// index and year a CHECK (year >= 0) constraint.
type Sheet struct {
	SheetID string `db:"sheet_id"`
	Month   int    `db:"month"`
	Year    int    `db:"year"`
	AuditFields
}

// SheetEntry is the sheet_entries table row. The sheet and category foreign
// keys are declared ON DELETE CASCADE.
type SheetEntry struct {
	EntryID    string          `db:"entry_id"`
	SheetID    string          `db:"sheet_id"`
	CategoryID string          `db:"category_id"`
	Value      decimal.Decimal `db:"value"` // DECIMAL(13,2)
	AuditFields
}
