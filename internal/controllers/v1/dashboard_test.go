package v1_test

import (
	"net/http"

	v1 "github.com/ldk-ekonomi/kas-backend/internal/controllers/v1"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/ldk-ekonomi/kas-backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDashboard() {
	_, token := suite.loginAs(models.RoleBendahara)

	suite.createTestTransaction(models.Transaction{
		Type: models.TypeIncome, Category: models.CategoryDonation,
		Amount: decimal.NewFromInt(1000000), Date: types.NewDate(2024, 1, 5),
	})
	suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryOperational,
		Amount: decimal.NewFromInt(400000), Date: types.NewDate(2024, 1, 5),
	})
	suite.createTestTransaction(models.Transaction{
		Type: models.TypeExpense, Category: models.CategoryOperational,
		Amount: decimal.NewFromInt(100000), Date: types.NewDate(2024, 2, 1),
	})

	suite.createTestEvent(models.Event{Name: "Kajian", Status: models.EventOngoing, Date: types.NewDate(2024, 3, 1)})
	suite.createTestEvent(models.Event{Name: "Bazar Lama", Status: models.EventCompleted, Date: types.NewDate(2023, 12, 1)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	dashboard := response.Data
	suite.Assert().True(dashboard.TotalIncome.Equal(decimal.NewFromInt(1000000)))
	suite.Assert().True(dashboard.TotalExpense.Equal(decimal.NewFromInt(500000)))
	suite.Assert().True(dashboard.Balance.Equal(decimal.NewFromInt(500000)))

	// Two distinct dates with expenses, one with income
	suite.Assert().Len(dashboard.Series, 2)
	suite.Assert().Len(dashboard.Breakdown, 1)

	// Completed events are not relevant
	suite.Require().Len(dashboard.Events, 1)
	suite.Assert().Equal("Kajian", dashboard.Events[0].Name)

	// The privileged variant shows member data
	suite.Assert().True(dashboard.Privileged)
	suite.Require().NotNil(dashboard.MemberCount)
	suite.Assert().Equal(int64(1), *dashboard.MemberCount)
	suite.Assert().Nil(dashboard.EventCount)
	suite.Assert().Len(dashboard.Members, 1)
}

func (suite *TestSuiteStandard) TestDashboardUnprivileged() {
	_, token := suite.loginAs(models.RoleAnggota)

	suite.createTestEvent(models.Event{Name: "Kajian", Status: models.EventOngoing, Date: types.NewDate(2024, 3, 1)})
	suite.createTestEvent(models.Event{Name: "Seminar", Status: models.EventPlanned, Date: types.NewDate(2024, 9, 1)})
	suite.createTestEvent(models.Event{Name: "Bazar Lama", Status: models.EventCompleted, Date: types.NewDate(2023, 12, 1)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	dashboard := response.Data
	suite.Assert().False(dashboard.Privileged)
	suite.Assert().Nil(dashboard.MemberCount)
	suite.Assert().Empty(dashboard.Members)

	// Regular members see the number of active events
	suite.Require().NotNil(dashboard.EventCount)
	suite.Assert().Equal(int64(2), *dashboard.EventCount)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.TotalIncome.IsZero())
	suite.Assert().True(response.Data.TotalExpense.IsZero())
	suite.Assert().True(response.Data.Balance.IsZero())
	suite.Assert().Empty(response.Data.Series)
	suite.Assert().Empty(response.Data.Breakdown)
	suite.Assert().Empty(response.Data.Events)
}
