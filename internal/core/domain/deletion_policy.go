package domain

// DeletionPolicy states what happens to dependent rows when the row they
// reference is deleted.
type DeletionPolicy string

const (
	// Cascade removes dependents together with the referenced row.
	Cascade DeletionPolicy = "CASCADE"
	// Protect rejects the delete while dependents exist.
	Protect DeletionPolicy = "PROTECT"
)

// Relationship describes one foreign-key edge between entities and the
// deletion policy attached to it.
type Relationship struct {
	From   string // entity holding the reference
	To     string // referenced entity
	Policy DeletionPolicy
}

// Entity names used in relationships and protection errors.
const (
	EntityCategory    = "category"
	EntitySheet       = "sheet"
	EntitySheetEntry  = "sheet_entry"
	EntityAccount     = "account"
	EntityTransaction = "transaction"
)

// Relationships is the authoritative deletion-policy table. Storage adapters
// must implement exactly these semantics: sheet entries vanish with their
// sheet or category, while transactions pin their category and account in
// place.
var Relationships = []Relationship{
	{From: EntitySheetEntry, To: EntitySheet, Policy: Cascade},
	{From: EntitySheetEntry, To: EntityCategory, Policy: Cascade},
	{From: EntityTransaction, To: EntityCategory, Policy: Protect},
	{From: EntityTransaction, To: EntityAccount, Policy: Protect},
}

// PolicyFor returns the deletion policy for the edge from one entity to
// another, and whether such an edge exists.
func PolicyFor(from, to string) (DeletionPolicy, bool) {
	for _, r := range Relationships {
		if r.From == from && r.To == to {
			return r.Policy, true
		}
	}
	return "", false
}
