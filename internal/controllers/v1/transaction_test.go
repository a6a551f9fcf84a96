package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/ldk-ekonomi/kas-backend/internal/controllers/v1"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/ldk-ekonomi/kas-backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestTransaction(transaction models.Transaction) models.Transaction {
	err := models.DB.Create(&transaction).Error
	if err != nil {
		suite.Assert().FailNow("transaction could not be created", err)
	}

	return transaction
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	user, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", v1.TransactionEditable{
		Type:        models.TypeIncome,
		Category:    models.CategoryDonation,
		Amount:      decimal.NewFromInt(1000000),
		Date:        types.NewDate(2024, 1, 5),
		Description: "Infaq jumat",
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	// The creator is taken from the acting identity, not the body
	suite.Assert().Equal(user.Name, response.Data.CreatedBy)
	suite.Require().NotNil(response.Data.CreatedByID)
	suite.Assert().Equal(user.ID, *response.Data.CreatedByID)
}

func (suite *TestSuiteStandard) TestCreateTransactionInvalid() {
	_, token := suite.loginAs(models.RoleAnggota)

	tests := []map[string]any{
		{"type": "TRANSFER", "category": "Lainnya", "amount": "100"},
		{"type": "INCOME", "category": "Makanan", "amount": "100"},
		{"type": "INCOME", "category": "Lainnya", "amount": "-100"},
	}

	for _, body := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", body, test.BearerHeader(token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsFilters() {
	_, token := suite.loginAs(models.RoleAnggota)

	suite.createTestTransaction(models.Transaction{
		Type: models.TypeIncome, Category: models.CategoryDonation,
		Amount: decimal.NewFromInt(1000000), Date: types.NewDate(2024, 1, 5),
		Description: "Infaq jumat",
	})
	suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryPrinting,
		Amount: decimal.NewFromInt(400000), Date: types.NewDate(2024, 1, 7),
		Description: "Cetak proposal",
	})
	suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryOperational,
		Amount: decimal.NewFromInt(100000), Date: types.NewDate(2023, 12, 1),
		Description: "Konsumsi rapat",
	})

	var response v1.TransactionListResponse

	// All transactions
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)

	// By year
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?year=2024", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)

	// By year and month
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?year=2023&month=12", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)

	// By type
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=EXPENSE", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)

	// By category
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?category=Donasi%2FInfaq", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)

	// Search in the description
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?search=proposal", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)

	// Month without year is an error
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=12", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransactionsByEvent() {
	_, token := suite.loginAs(models.RoleAnggota)
	event := suite.createTestEvent(models.Event{Name: "Seminar", Date: types.NewDate(2024, 5, 1)})

	suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryEventCost,
		Amount: decimal.NewFromInt(250000), Date: types.NewDate(2024, 5, 2),
		EventID: &event.ID,
	})
	suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryOther,
		Amount: decimal.NewFromInt(50000), Date: types.NewDate(2024, 5, 2),
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?event=%s", event.ID), nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	_, token := suite.loginAs(models.RoleAnggota)
	transaction := suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryOther,
		Amount: decimal.NewFromInt(50000), Date: types.NewDate(2024, 5, 2),
		CreatedBy: "Siti Aminah",
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), map[string]any{
		"description": "Konsumsi kajian",
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Konsumsi kajian", response.Data.Description)

	// The creator fields are not editable
	suite.Assert().Equal("Siti Aminah", response.Data.CreatedBy)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	_, token := suite.loginAs(models.RoleAnggota)
	transaction := suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryOther,
		Amount: decimal.NewFromInt(50000), Date: types.NewDate(2024, 5, 2),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionInvalidUUID() {
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/not-a-uuid", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
