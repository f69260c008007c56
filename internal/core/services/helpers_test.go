package services_test

import (
	"context"
	"time"

	portssvc "github.com/budgeteer-app/backend/internal/core/ports/services"
	"github.com/budgeteer-app/backend/internal/core/services"
	"github.com/budgeteer-app/backend/internal/dto"
	"github.com/budgeteer-app/backend/internal/repositories/database/memory"
	"github.com/shopspring/decimal"
)

// newTestContainer wires the full service container over a fresh in-memory
// store, so tests exercise the same storage semantics the pgsql adapter
// enforces with real constraints.
func newTestContainer() *portssvc.ServiceContainer {
	return services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// seedCategoryAndAccount creates the rows a transaction needs to reference.
func seedCategoryAndAccount(ctx context.Context, c *portssvc.ServiceContainer, balance string) (categoryID, accountID string, err error) {
	category, err := c.Category.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Groceries"})
	if err != nil {
		return "", "", err
	}
	account, err := c.Account.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Checking", Balance: dec(balance)})
	if err != nil {
		return "", "", err
	}
	return category.CategoryID, account.AccountID, nil
}
