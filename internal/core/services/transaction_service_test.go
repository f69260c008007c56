package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgeteer-app/backend/internal/apperrors"
	portssvc "github.com/budgeteer-app/backend/internal/core/ports/services"
	"github.com/budgeteer-app/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	container  *portssvc.ServiceContainer
	categoryID string
	accountID  string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.container = newTestContainer()

	categoryID, accountID, err := seedCategoryAndAccount(suite.ctx, suite.container, "0")
	suite.Require().NoError(err)
	suite.categoryID = categoryID
	suite.accountID = accountID
}

func (suite *TransactionServiceTestSuite) createTransaction(locked bool) string {
	tx, err := suite.container.Transaction.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Partner:    "Shop",
		Date:       day(2024, time.May, 10),
		Value:      dec("-42.50"),
		CategoryID: suite.categoryID,
		AccountID:  suite.accountID,
		Locked:     locked,
	})
	suite.Require().NoError(err)
	return tx.TransactionID
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_LockedDefaultsFalse() {
	tx, err := suite.container.Transaction.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Partner:    "Shop",
		Date:       day(2024, time.May, 10),
		Value:      dec("-1.00"),
		CategoryID: suite.categoryID,
		AccountID:  suite.accountID,
	})

	suite.Require().NoError(err)
	assert.False(suite.T(), tx.Locked)

	fetched, err := suite.container.Transaction.GetTransactionByID(suite.ctx, tx.TransactionID)
	suite.Require().NoError(err)
	assert.False(suite.T(), fetched.Locked)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ValueRoundTrip() {
	tx, err := suite.container.Transaction.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Partner:    "Shop",
		Date:       day(2024, time.May, 10),
		Value:      dec("-0.01"),
		CategoryID: suite.categoryID,
		AccountID:  suite.accountID,
	})
	suite.Require().NoError(err)

	fetched, err := suite.container.Transaction.GetTransactionByID(suite.ctx, tx.TransactionID)
	suite.Require().NoError(err)
	assert.True(suite.T(), fetched.Value.Equal(dec("-0.01")))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingCategory() {
	_, err := suite.container.Transaction.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Partner:    "Shop",
		Date:       day(2024, time.May, 10),
		Value:      dec("-1.00"),
		CategoryID: "missing",
		AccountID:  suite.accountID,
	})

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_UnlockedRowIsEditable() {
	txID := suite.createTransaction(false)

	updated, err := suite.container.Transaction.UpdateTransaction(suite.ctx, txID, dto.UpdateTransactionRequest{
		Partner: ptr("New partner"),
		Value:   ptr(dec("-99.99")),
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "New partner", updated.Partner)
	assert.True(suite.T(), updated.Value.Equal(dec("-99.99")))
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_LockedRowGuardedFields() {
	cases := []struct {
		field string
		req   dto.UpdateTransactionRequest
	}{
		{"partner", dto.UpdateTransactionRequest{Partner: ptr("Changed")}},
		{"date", dto.UpdateTransactionRequest{Date: ptr(day(2024, time.May, 11))}},
		{"value", dto.UpdateTransactionRequest{Value: ptr(dec("-1.00"))}},
		{"category", dto.UpdateTransactionRequest{CategoryID: ptr("other-category")}},
		{"account", dto.UpdateTransactionRequest{AccountID: ptr("other-account")}},
	}
	for _, tc := range cases {
		txID := suite.createTransaction(true)

		_, err := suite.container.Transaction.UpdateTransaction(suite.ctx, txID, tc.req)

		suite.Require().Error(err, "field %s", tc.field)
		assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

		var verr *apperrors.ValidationError
		suite.Require().ErrorAs(err, &verr)
		assert.Contains(suite.T(), verr.Fields, tc.field)
	}
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_LockedRowNoChangePasses() {
	txID := suite.createTransaction(true)

	// No fields provided: every guarded field keeps its persisted value.
	updated, err := suite.container.Transaction.UpdateTransaction(suite.ctx, txID, dto.UpdateTransactionRequest{})
	suite.Require().NoError(err)
	assert.True(suite.T(), updated.Locked)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_LockedRowEquivalentValuePasses() {
	txID := suite.createTransaction(true)

	// -42.5 and -42.50 are the same amount; the guard compares numerically.
	_, err := suite.container.Transaction.UpdateTransaction(suite.ctx, txID, dto.UpdateTransactionRequest{
		Value: ptr(dec("-42.5")),
	})
	assert.NoError(suite.T(), err)
}

// Locked itself is not a guarded field; toggling it is always allowed.
func (suite *TransactionServiceTestSuite) TestUpdateTransaction_UnlockThenEdit() {
	txID := suite.createTransaction(true)

	unlocked, err := suite.container.Transaction.UpdateTransaction(suite.ctx, txID, dto.UpdateTransactionRequest{
		Locked: ptr(false),
	})
	suite.Require().NoError(err)
	assert.False(suite.T(), unlocked.Locked)

	updated, err := suite.container.Transaction.UpdateTransaction(suite.ctx, txID, dto.UpdateTransactionRequest{
		Partner: ptr("Editable again"),
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Editable again", updated.Partner)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_NotFound() {
	_, err := suite.container.Transaction.UpdateTransaction(suite.ctx, "missing", dto.UpdateTransactionRequest{
		Partner: ptr("Whoever"),
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	txID := suite.createTransaction(false)

	suite.Require().NoError(suite.container.Transaction.DeleteTransaction(suite.ctx, txID))

	_, err := suite.container.Transaction.GetTransactionByID(suite.ctx, txID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByAccount() {
	first := suite.createTransaction(false)
	second := suite.createTransaction(true)

	transactions, err := suite.container.Transaction.ListTransactionsByAccount(suite.ctx, suite.accountID)
	suite.Require().NoError(err)

	got := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		got = append(got, tx.TransactionID)
	}
	assert.ElementsMatch(suite.T(), []string{first, second}, got)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
