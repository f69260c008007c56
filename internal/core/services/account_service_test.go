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

type AccountServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	container *portssvc.ServiceContainer
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.container = newTestContainer()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	account, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Name:    "Savings",
		Balance: dec("1234.56"),
	})

	suite.Require().NoError(err)
	assert.NotEmpty(suite.T(), account.AccountID)
	assert.True(suite.T(), account.Balance.Equal(dec("1234.56")))

	fetched, err := suite.container.Account.GetAccountByID(suite.ctx, account.AccountID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Savings", fetched.Name)
	assert.True(suite.T(), fetched.Balance.Equal(dec("1234.56")))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_BalanceOutOfBounds() {
	// 14 significant digits exceeds the column's precision.
	_, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Name:    "Too big",
		Balance: dec("123456789012.34"),
	})

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	assert.Contains(suite.T(), verr.Fields, "balance")
}

// Total is balance plus the sum of unlocked transaction values. Locked
// transactions are already folded into the balance and must not count again.
func (suite *AccountServiceTestSuite) TestAccountTotal() {
	category, err := suite.container.Category.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Rent"})
	suite.Require().NoError(err)
	account, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Checking", Balance: dec("100.00")})
	suite.Require().NoError(err)
	other, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Other", Balance: dec("0")})
	suite.Require().NoError(err)

	mkTx := func(accountID, value string, locked bool) {
		_, err := suite.container.Transaction.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
			Partner:    "Landlord",
			Date:       day(2024, time.July, 1),
			Value:      dec(value),
			CategoryID: category.CategoryID,
			AccountID:  accountID,
			Locked:     locked,
		})
		suite.Require().NoError(err)
	}

	mkTx(account.AccountID, "25.50", false)
	mkTx(account.AccountID, "-10.00", false)
	mkTx(account.AccountID, "999.00", true) // locked, excluded
	mkTx(other.AccountID, "777.00", false)  // other account, excluded

	total, err := suite.container.Account.AccountTotal(suite.ctx, account.AccountID)
	suite.Require().NoError(err)
	assert.True(suite.T(), total.Equal(dec("115.50")), "got %s", total)
}

func (suite *AccountServiceTestSuite) TestAccountTotal_RecomputedPerRead() {
	category, err := suite.container.Category.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Fuel"})
	suite.Require().NoError(err)
	account, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Checking", Balance: dec("50.00")})
	suite.Require().NoError(err)

	total, err := suite.container.Account.AccountTotal(suite.ctx, account.AccountID)
	suite.Require().NoError(err)
	assert.True(suite.T(), total.Equal(dec("50.00")))

	_, err = suite.container.Transaction.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Partner:    "Station",
		Date:       day(2024, time.July, 2),
		Value:      dec("-20.00"),
		CategoryID: category.CategoryID,
		AccountID:  account.AccountID,
	})
	suite.Require().NoError(err)

	total, err = suite.container.Account.AccountTotal(suite.ctx, account.AccountID)
	suite.Require().NoError(err)
	assert.True(suite.T(), total.Equal(dec("30.00")))
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	account, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Checking", Balance: dec("10.00")})
	suite.Require().NoError(err)

	updated, err := suite.container.Account.UpdateAccount(suite.ctx, account.AccountID, dto.UpdateAccountRequest{
		Balance: ptr(dec("99.99")),
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Checking", updated.Name)
	assert.True(suite.T(), updated.Balance.Equal(dec("99.99")))
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_ProtectedByTransaction() {
	category, err := suite.container.Category.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Rent"})
	suite.Require().NoError(err)
	account, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Checking", Balance: dec("0")})
	suite.Require().NoError(err)

	_, err = suite.container.Transaction.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Partner:    "Landlord",
		Date:       day(2024, time.July, 1),
		Value:      dec("-500.00"),
		CategoryID: category.CategoryID,
		AccountID:  account.AccountID,
	})
	suite.Require().NoError(err)

	err = suite.container.Account.DeleteAccount(suite.ctx, account.AccountID)
	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProtected)

	// The veto leaves the account in place.
	_, err = suite.container.Account.GetAccountByID(suite.ctx, account.AccountID)
	assert.NoError(suite.T(), err)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NoReferences() {
	account, err := suite.container.Account.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Empty", Balance: dec("0")})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.container.Account.DeleteAccount(suite.ctx, account.AccountID))

	_, err = suite.container.Account.GetAccountByID(suite.ctx, account.AccountID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
