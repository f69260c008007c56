package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	"github.com/budgeteer-app/backend/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProvider() portsrepo.RepositoryProvider {
	return memory.NewRepositoryProvider(memory.NewStore())
}

func audit() domain.AuditFields {
	now := time.Now()
	return domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
}

func seedCategory(t *testing.T, repos portsrepo.RepositoryProvider, id string) {
	t.Helper()
	require.NoError(t, repos.CategoryRepo.SaveCategory(context.Background(), domain.Category{
		CategoryID:  id,
		Name:        "Category " + id,
		AuditFields: audit(),
	}))
}

func seedAccount(t *testing.T, repos portsrepo.RepositoryProvider, id string) {
	t.Helper()
	require.NoError(t, repos.AccountRepo.SaveAccount(context.Background(), domain.Account{
		AccountID:   id,
		Name:        "Account " + id,
		Balance:     decimal.Zero,
		AuditFields: audit(),
	}))
}

func seedSheet(t *testing.T, repos portsrepo.RepositoryProvider, id string, month, year int) {
	t.Helper()
	require.NoError(t, repos.SheetRepo.SaveSheet(context.Background(), domain.Sheet{
		SheetID:     id,
		Month:       month,
		Year:        year,
		AuditFields: audit(),
	}))
}

func TestSaveSheet_NegativeYearViolatesCheck(t *testing.T) {
	repos := newProvider()

	err := repos.SheetRepo.SaveSheet(context.Background(), domain.Sheet{
		SheetID:     "s1",
		Month:       1,
		Year:        -1,
		AuditFields: audit(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)

	var ierr *apperrors.IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "sheets_year_non_negative", ierr.Constraint)
}

func TestSaveSheet_DuplicateMonthYearViolatesUnique(t *testing.T) {
	repos := newProvider()
	seedSheet(t, repos, "s1", 3, 2024)

	err := repos.SheetRepo.SaveSheet(context.Background(), domain.Sheet{
		SheetID:     "s2",
		Month:       3,
		Year:        2024,
		AuditFields: audit(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIntegrity)
}

// The unique index never fires against the row being updated itself.
func TestUpdateSheet_OwnRowExcludedFromUnique(t *testing.T) {
	repos := newProvider()
	seedSheet(t, repos, "s1", 3, 2024)

	err := repos.SheetRepo.UpdateSheet(context.Background(), domain.Sheet{
		SheetID:     "s1",
		Month:       3,
		Year:        2024,
		AuditFields: audit(),
	})
	assert.NoError(t, err)
}

func TestDeleteSheet_CascadesEntries(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()
	seedCategory(t, repos, "c1")
	seedSheet(t, repos, "s1", 1, 2024)
	seedSheet(t, repos, "s2", 2, 2024)

	require.NoError(t, repos.SheetEntryRepo.SaveSheetEntry(ctx, domain.SheetEntry{
		EntryID: "e1", SheetID: "s1", CategoryID: "c1", Value: decimal.New(10, 0), AuditFields: audit(),
	}))
	require.NoError(t, repos.SheetEntryRepo.SaveSheetEntry(ctx, domain.SheetEntry{
		EntryID: "e2", SheetID: "s2", CategoryID: "c1", Value: decimal.New(20, 0), AuditFields: audit(),
	}))

	require.NoError(t, repos.SheetRepo.DeleteSheet(ctx, "s1"))

	_, err := repos.SheetEntryRepo.FindSheetEntryByID(ctx, "e1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repos.SheetEntryRepo.FindSheetEntryByID(ctx, "e2")
	assert.NoError(t, err)
}

func TestDeleteCategory_CascadesEntriesButTransactionsProtect(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()
	seedCategory(t, repos, "c1")
	seedAccount(t, repos, "a1")
	seedSheet(t, repos, "s1", 1, 2024)

	require.NoError(t, repos.SheetEntryRepo.SaveSheetEntry(ctx, domain.SheetEntry{
		EntryID: "e1", SheetID: "s1", CategoryID: "c1", Value: decimal.New(10, 0), AuditFields: audit(),
	}))
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "t1",
		Partner:       "Shop",
		Date:          time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Value:         decimal.New(-5, 0),
		CategoryID:    "c1",
		AccountID:     "a1",
		AuditFields:   audit(),
	}))

	err := repos.CategoryRepo.DeleteCategory(ctx, "c1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProtected)

	var perr *apperrors.ProtectionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, domain.EntityTransaction, perr.ReferencedBy)

	// The protecting transaction vetoed the whole delete, entry included.
	_, err = repos.SheetEntryRepo.FindSheetEntryByID(ctx, "e1")
	assert.NoError(t, err)

	// Without the transaction the delete goes through and sweeps the entry.
	require.NoError(t, repos.TransactionRepo.DeleteTransaction(ctx, "t1"))
	require.NoError(t, repos.CategoryRepo.DeleteCategory(ctx, "c1"))

	_, err = repos.SheetEntryRepo.FindSheetEntryByID(ctx, "e1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteAccount_ProtectedByTransaction(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()
	seedCategory(t, repos, "c1")
	seedAccount(t, repos, "a1")

	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "t1",
		Partner:       "Shop",
		Date:          time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Value:         decimal.New(-5, 0),
		CategoryID:    "c1",
		AccountID:     "a1",
		AuditFields:   audit(),
	}))

	err := repos.AccountRepo.DeleteAccount(ctx, "a1")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProtected)
}

func TestSaveTransaction_MissingReference(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()
	seedCategory(t, repos, "c1")

	err := repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "t1",
		Partner:       "Shop",
		Date:          time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Value:         decimal.New(-5, 0),
		CategoryID:    "c1",
		AccountID:     "missing",
		AuditFields:   audit(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveTransaction_DateTruncatedToDay(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()
	seedCategory(t, repos, "c1")
	seedAccount(t, repos, "a1")

	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "t1",
		Partner:       "Shop",
		Date:          time.Date(2024, time.January, 5, 13, 37, 42, 0, time.UTC),
		Value:         decimal.New(-5, 0),
		CategoryID:    "c1",
		AccountID:     "a1",
		AuditFields:   audit(),
	}))

	tx, err := repos.TransactionRepo.FindTransactionByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestSumUnlockedValueByAccount(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()
	seedCategory(t, repos, "c1")
	seedAccount(t, repos, "a1")
	seedAccount(t, repos, "a2")

	save := func(id, account, value string, locked bool) {
		require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, domain.Transaction{
			TransactionID: id,
			Partner:       "Shop",
			Date:          time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			Value:         decimal.RequireFromString(value),
			CategoryID:    "c1",
			AccountID:     account,
			Locked:        locked,
			AuditFields:   audit(),
		}))
	}

	save("t1", "a1", "10.50", false)
	save("t2", "a1", "-3.25", false)
	save("t3", "a1", "100.00", true)
	save("t4", "a2", "42.00", false)

	sum, err := repos.TransactionRepo.SumUnlockedValueByAccount(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("7.25")), "got %s", sum)

	sum, err = repos.TransactionRepo.SumUnlockedValueByAccount(ctx, "missing")
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestSaveCategory_DuplicateID(t *testing.T) {
	repos := newProvider()
	seedCategory(t, repos, "c1")

	err := repos.CategoryRepo.SaveCategory(context.Background(), domain.Category{
		CategoryID:  "c1",
		Name:        "Again",
		AuditFields: audit(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestFindSheetByMonthYear(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()
	seedSheet(t, repos, "s1", 7, 2024)

	sheet, err := repos.SheetRepo.FindSheetByMonthYear(ctx, 7, 2024)
	require.NoError(t, err)
	assert.Equal(t, "s1", sheet.SheetID)

	_, err = repos.SheetRepo.FindSheetByMonthYear(ctx, 8, 2024)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
