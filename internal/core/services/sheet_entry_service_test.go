package services_test

import (
	"context"
	"testing"

	"github.com/budgeteer-app/backend/internal/apperrors"
	portssvc "github.com/budgeteer-app/backend/internal/core/ports/services"
	"github.com/budgeteer-app/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SheetEntryServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	container  *portssvc.ServiceContainer
	sheetID    string
	categoryID string
}

func (suite *SheetEntryServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.container = newTestContainer()

	sheet, err := suite.container.Sheet.CreateSheet(suite.ctx, dto.CreateSheetRequest{Month: 9, Year: 2024})
	suite.Require().NoError(err)
	suite.sheetID = sheet.SheetID

	category, err := suite.container.Category.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Food"})
	suite.Require().NoError(err)
	suite.categoryID = category.CategoryID
}

func (suite *SheetEntryServiceTestSuite) TestCreateSheetEntry_Success() {
	entry, err := suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
		SheetID:    suite.sheetID,
		CategoryID: suite.categoryID,
		Value:      dec("300.00"),
	})

	suite.Require().NoError(err)
	assert.NotEmpty(suite.T(), entry.EntryID)
	assert.True(suite.T(), entry.Value.Equal(dec("300.00")))
}

func (suite *SheetEntryServiceTestSuite) TestCreateSheetEntry_UnknownSheet() {
	_, err := suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
		SheetID:    "missing",
		CategoryID: suite.categoryID,
		Value:      dec("1.00"),
	})

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *SheetEntryServiceTestSuite) TestCreateSheetEntry_UnknownCategory() {
	_, err := suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
		SheetID:    suite.sheetID,
		CategoryID: "missing",
		Value:      dec("1.00"),
	})

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *SheetEntryServiceTestSuite) TestCreateSheetEntry_ValueOutOfBounds() {
	cases := []string{
		"12345678901234", // 14 digits
		"0.001",          // 3 decimal places
	}
	for _, value := range cases {
		_, err := suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
			SheetID:    suite.sheetID,
			CategoryID: suite.categoryID,
			Value:      dec(value),
		})

		suite.Require().Error(err, "value %s", value)
		assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

		var verr *apperrors.ValidationError
		suite.Require().ErrorAs(err, &verr)
		assert.Contains(suite.T(), verr.Fields, "value")
	}
}

func (suite *SheetEntryServiceTestSuite) TestUpdateSheetEntryValue() {
	entry, err := suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
		SheetID:    suite.sheetID,
		CategoryID: suite.categoryID,
		Value:      dec("300.00"),
	})
	suite.Require().NoError(err)

	updated, err := suite.container.SheetEntry.UpdateSheetEntryValue(suite.ctx, entry.EntryID, dto.UpdateSheetEntryRequest{
		Value: dec("275.50"),
	})
	suite.Require().NoError(err)
	assert.True(suite.T(), updated.Value.Equal(dec("275.50")))

	fetched, err := suite.container.SheetEntry.GetSheetEntryByID(suite.ctx, entry.EntryID)
	suite.Require().NoError(err)
	assert.True(suite.T(), fetched.Value.Equal(dec("275.50")))
}

func (suite *SheetEntryServiceTestSuite) TestListSheetEntriesBySheet() {
	other, err := suite.container.Sheet.CreateSheet(suite.ctx, dto.CreateSheetRequest{Month: 10, Year: 2024})
	suite.Require().NoError(err)

	mine, err := suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
		SheetID:    suite.sheetID,
		CategoryID: suite.categoryID,
		Value:      dec("10.00"),
	})
	suite.Require().NoError(err)
	_, err = suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
		SheetID:    other.SheetID,
		CategoryID: suite.categoryID,
		Value:      dec("20.00"),
	})
	suite.Require().NoError(err)

	entries, err := suite.container.SheetEntry.ListSheetEntriesBySheet(suite.ctx, suite.sheetID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	assert.Equal(suite.T(), mine.EntryID, entries[0].EntryID)
}

func (suite *SheetEntryServiceTestSuite) TestDeleteSheetEntry() {
	entry, err := suite.container.SheetEntry.CreateSheetEntry(suite.ctx, dto.CreateSheetEntryRequest{
		SheetID:    suite.sheetID,
		CategoryID: suite.categoryID,
		Value:      dec("10.00"),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.container.SheetEntry.DeleteSheetEntry(suite.ctx, entry.EntryID))

	_, err = suite.container.SheetEntry.GetSheetEntryByID(suite.ctx, entry.EntryID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestSheetEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SheetEntryServiceTestSuite))
}
