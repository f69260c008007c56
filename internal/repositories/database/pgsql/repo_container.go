package pgsql

import (
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates all pgx-backed repository implementations
// and returns them bundled in a RepositoryProvider.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		SheetRepo:       newPgxSheetRepository(dbPool),
		SheetEntryRepo:  newPgxSheetEntryRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
