package services

import (
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	portssvc "github.com/budgeteer-app/backend/internal/core/ports/services"
)

// NewServiceContainer wires all services from a repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Category: NewCategoryServiceImpl(repos.CategoryRepo),
		Sheet: NewSheetServiceImpl(repos.SheetRepo,
			WithTransactionReader(repos.TransactionRepo),
		),
		SheetEntry: NewSheetEntryServiceImpl(repos.SheetEntryRepo,
			WithSheetReader(repos.SheetRepo),
			WithCategoryReader(repos.CategoryRepo),
		),
		Account: NewAccountServiceImpl(repos.AccountRepo,
			WithAccountTransactionReader(repos.TransactionRepo),
		),
		Transaction: NewTransactionServiceImpl(repos.TransactionRepo,
			WithCategoryReaderForTransactions(repos.CategoryRepo),
			WithAccountReaderForTransactions(repos.AccountRepo),
		),
	}
}
