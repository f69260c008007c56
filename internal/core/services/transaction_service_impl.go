package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	portssvc "github.com/budgeteer-app/backend/internal/core/ports/services"
	"github.com/budgeteer-app/backend/internal/dto"
	"github.com/google/uuid"
)

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryReader
	accountRepo     portsrepo.AccountReader
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionServiceImpl)

// WithCategoryReaderForTransactions adds the category reader used to verify references
func WithCategoryReaderForTransactions(repo portsrepo.CategoryReader) TransactionServiceOption {
	return func(s *transactionServiceImpl) {
		s.categoryRepo = repo
	}
}

// WithAccountReaderForTransactions adds the account reader used to verify references
func WithAccountReaderForTransactions(repo portsrepo.AccountReader) TransactionServiceOption {
	return func(s *transactionServiceImpl) {
		s.accountRepo = repo
	}
}

// NewTransactionServiceImpl creates a new transaction service with the provided options
func NewTransactionServiceImpl(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionServiceImpl{transactionRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

// checkReferences verifies the referenced category and account exist, when the
// corresponding readers are configured.
func (s *transactionServiceImpl) checkReferences(ctx context.Context, categoryID, accountID string) error {
	if s.categoryRepo != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}
	}
	if s.accountRepo != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
			return fmt.Errorf("invalid account: %w", err)
		}
	}
	return nil
}

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	transaction := domain.Transaction{
		TransactionID: uuid.NewString(),
		Partner:       req.Partner,
		Date:          req.Date,
		Value:         req.Value,
		CategoryID:    req.CategoryID,
		AccountID:     req.AccountID,
		Locked:        req.Locked,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, transaction.CategoryID, transaction.AccountID); err != nil {
		s.LogError(ctx, err, "Transaction references missing rows",
			slog.String("category_id", transaction.CategoryID),
			slog.String("account_id", transaction.AccountID))
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", transaction.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	return &transaction, nil
}

func (s *transactionServiceImpl) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionServiceImpl) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactionsByAccount(ctx, accountID)
}

func (s *transactionServiceImpl) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The guarded-field check compares against the last-persisted state,
	// fetched here by primary key; in-memory dirty tracking is not trusted.
	persisted, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	candidate := *persisted
	if req.Partner != nil {
		candidate.Partner = *req.Partner
	}
	if req.Date != nil {
		candidate.Date = *req.Date
	}
	if req.Value != nil {
		candidate.Value = *req.Value
	}
	if req.CategoryID != nil {
		candidate.CategoryID = *req.CategoryID
	}
	if req.AccountID != nil {
		candidate.AccountID = *req.AccountID
	}
	if req.Locked != nil {
		candidate.Locked = *req.Locked
	}
	candidate.LastUpdatedAt = time.Now()

	if err := candidate.ValidateAgainstPersisted(persisted); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, candidate.CategoryID, candidate.AccountID); err != nil {
		s.LogError(ctx, err, "Transaction references missing rows", slog.String("transaction_id", transactionID))
		return nil, err
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, candidate); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &candidate, nil
}

func (s *transactionServiceImpl) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	return nil
}
