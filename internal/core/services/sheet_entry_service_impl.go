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

// sheetEntryServiceImpl implements the SheetEntrySvcFacade interface
type sheetEntryServiceImpl struct {
	BaseService
	entryRepo    portsrepo.SheetEntryRepositoryFacade
	sheetRepo    portsrepo.SheetReader
	categoryRepo portsrepo.CategoryReader
}

// SheetEntryServiceOption is a functional option for configuring the entry service
type SheetEntryServiceOption func(*sheetEntryServiceImpl)

// WithSheetReader adds the sheet reader used to verify the owning sheet exists
func WithSheetReader(repo portsrepo.SheetReader) SheetEntryServiceOption {
	return func(s *sheetEntryServiceImpl) {
		s.sheetRepo = repo
	}
}

// WithCategoryReader adds the category reader used to verify the referenced category exists
func WithCategoryReader(repo portsrepo.CategoryReader) SheetEntryServiceOption {
	return func(s *sheetEntryServiceImpl) {
		s.categoryRepo = repo
	}
}

// NewSheetEntryServiceImpl creates a new sheet entry service with the provided options
func NewSheetEntryServiceImpl(repo portsrepo.SheetEntryRepositoryFacade, options ...SheetEntryServiceOption) portssvc.SheetEntrySvcFacade {
	svc := &sheetEntryServiceImpl{entryRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure sheetEntryServiceImpl implements the SheetEntrySvcFacade interface
var _ portssvc.SheetEntrySvcFacade = (*sheetEntryServiceImpl)(nil)

func (s *sheetEntryServiceImpl) CreateSheetEntry(ctx context.Context, req dto.CreateSheetEntryRequest) (*domain.SheetEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.sheetRepo != nil {
		if _, err := s.sheetRepo.FindSheetByID(ctx, req.SheetID); err != nil {
			s.LogError(ctx, err, "Failed to find owning sheet", slog.String("sheet_id", req.SheetID))
			return nil, fmt.Errorf("invalid sheet: %w", err)
		}
	}
	if s.categoryRepo != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
			s.LogError(ctx, err, "Failed to find referenced category", slog.String("category_id", req.CategoryID))
			return nil, fmt.Errorf("invalid category: %w", err)
		}
	}

	now := time.Now()
	entry := domain.SheetEntry{
		EntryID:    uuid.NewString(),
		SheetID:    req.SheetID,
		CategoryID: req.CategoryID,
		Value:      req.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveSheetEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save sheet entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save sheet entry: %w", err)
	}

	return &entry, nil
}

func (s *sheetEntryServiceImpl) GetSheetEntryByID(ctx context.Context, entryID string) (*domain.SheetEntry, error) {
	return s.entryRepo.FindSheetEntryByID(ctx, entryID)
}

func (s *sheetEntryServiceImpl) ListSheetEntriesBySheet(ctx context.Context, sheetID string) ([]domain.SheetEntry, error) {
	return s.entryRepo.ListSheetEntriesBySheet(ctx, sheetID)
}

func (s *sheetEntryServiceImpl) UpdateSheetEntryValue(ctx context.Context, entryID string, req dto.UpdateSheetEntryRequest) (*domain.SheetEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindSheetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	entry.Value = req.Value
	entry.LastUpdatedAt = time.Now()

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.entryRepo.UpdateSheetEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update sheet entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update sheet entry: %w", err)
	}

	return entry, nil
}

func (s *sheetEntryServiceImpl) DeleteSheetEntry(ctx context.Context, entryID string) error {
	if err := s.entryRepo.DeleteSheetEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete sheet entry", slog.String("entry_id", entryID))
		return err
	}
	return nil
}
