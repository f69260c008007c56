package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgeteer-app/backend/internal/apperrors"
	"github.com/budgeteer-app/backend/internal/core/domain"
	portsrepo "github.com/budgeteer-app/backend/internal/core/ports/repositories"
	portssvc "github.com/budgeteer-app/backend/internal/core/ports/services"
	"github.com/budgeteer-app/backend/internal/dto"
	"github.com/google/uuid"
)

// sheetServiceImpl implements the SheetSvcFacade interface
type sheetServiceImpl struct {
	BaseService
	sheetRepo       portsrepo.SheetRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// SheetServiceOption is a functional option for configuring the sheet service
type SheetServiceOption func(*sheetServiceImpl)

// WithTransactionReader adds the transaction reader used by SheetTransactions
func WithTransactionReader(repo portsrepo.TransactionReader) SheetServiceOption {
	return func(s *sheetServiceImpl) {
		s.transactionRepo = repo
	}
}

// NewSheetServiceImpl creates a new sheet service with the provided options
func NewSheetServiceImpl(repo portsrepo.SheetRepositoryFacade, options ...SheetServiceOption) portssvc.SheetSvcFacade {
	svc := &sheetServiceImpl{sheetRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure sheetServiceImpl implements the SheetSvcFacade interface
var _ portssvc.SheetSvcFacade = (*sheetServiceImpl)(nil)

// validateSheet runs field-local validation plus the (month, year) natural-key
// uniqueness check. The check excludes the candidate's own row so that
// re-validating an unchanged persisted sheet passes.
func (s *sheetServiceImpl) validateSheet(ctx context.Context, sheet domain.Sheet) error {
	verr := apperrors.NewValidationError()
	if err := sheet.Validate(); err != nil {
		var fieldErr *apperrors.ValidationError
		if !errors.As(err, &fieldErr) {
			return err
		}
		for field, msgs := range fieldErr.Fields {
			for _, msg := range msgs {
				verr.Add(field, msg)
			}
		}
	}

	existing, err := s.sheetRepo.FindSheetByMonthYear(ctx, sheet.Month, sheet.Year)
	switch {
	case err == nil:
		if existing.SheetID != sheet.SheetID {
			msg := fmt.Sprintf("sheet for %d/%d already exists", sheet.Month, sheet.Year)
			verr.Add("month", msg)
			verr.Add("year", msg)
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// pair is free
	default:
		return fmt.Errorf("failed to check sheet uniqueness: %w", err)
	}

	return verr.ErrOrNil()
}

func (s *sheetServiceImpl) CreateSheet(ctx context.Context, req dto.CreateSheetRequest) (*domain.Sheet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	sheet := domain.Sheet{
		SheetID: uuid.NewString(),
		Month:   req.Month,
		Year:    req.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.validateSheet(ctx, sheet); err != nil {
		return nil, err
	}

	// Storage still enforces the unique index and the non-negative year CHECK;
	// a passing validation does not guarantee the save succeeds.
	if err := s.sheetRepo.SaveSheet(ctx, sheet); err != nil {
		s.LogError(ctx, err, "Failed to save sheet",
			slog.Int("month", sheet.Month),
			slog.Int("year", sheet.Year))
		return nil, fmt.Errorf("failed to save sheet: %w", err)
	}

	return &sheet, nil
}

func (s *sheetServiceImpl) GetSheetByID(ctx context.Context, sheetID string) (*domain.Sheet, error) {
	return s.sheetRepo.FindSheetByID(ctx, sheetID)
}

func (s *sheetServiceImpl) ListSheets(ctx context.Context) ([]domain.Sheet, error) {
	return s.sheetRepo.ListSheets(ctx)
}

func (s *sheetServiceImpl) UpdateSheet(ctx context.Context, sheetID string, req dto.UpdateSheetRequest) (*domain.Sheet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sheet, err := s.sheetRepo.FindSheetByID(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	if req.Month != nil {
		sheet.Month = *req.Month
	}
	if req.Year != nil {
		sheet.Year = *req.Year
	}
	sheet.LastUpdatedAt = time.Now()

	if err := s.validateSheet(ctx, *sheet); err != nil {
		return nil, err
	}

	if err := s.sheetRepo.UpdateSheet(ctx, *sheet); err != nil {
		s.LogError(ctx, err, "Failed to update sheet", slog.String("sheet_id", sheetID))
		return nil, fmt.Errorf("failed to update sheet: %w", err)
	}

	return sheet, nil
}

func (s *sheetServiceImpl) DeleteSheet(ctx context.Context, sheetID string) error {
	// Entries cascade with the sheet at the storage level.
	if err := s.sheetRepo.DeleteSheet(ctx, sheetID); err != nil {
		s.LogError(ctx, err, "Failed to delete sheet", slog.String("sheet_id", sheetID))
		return err
	}
	return nil
}

func (s *sheetServiceImpl) SheetTransactions(ctx context.Context, sheetID string) ([]domain.Transaction, error) {
	if s.transactionRepo == nil {
		return nil, fmt.Errorf("sheet service has no transaction reader configured")
	}

	sheet, err := s.sheetRepo.FindSheetByID(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	first, last := sheet.MonthInterval()
	transactions, err := s.transactionRepo.FindTransactionsByDateRange(ctx, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for sheet %s: %w", sheetID, err)
	}
	return transactions, nil
}
