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

func (suite *TestSuiteStandard) createTestEvent(event models.Event) models.Event {
	err := models.DB.Create(&event).Error
	if err != nil {
		suite.Assert().FailNow("event could not be created", err)
	}

	return event
}

func (suite *TestSuiteStandard) TestCreateEvent() {
	// Any member may manage events, a privileged role is not needed
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/events", v1.EventEditable{
		Name:   "Seminar Ekonomi Syariah",
		Date:   types.NewDate(2024, 10, 20),
		Budget: decimal.NewFromInt(3000000),
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.EventResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.EventPlanned, response.Data.Status, "status defaults to Planned")
}

func (suite *TestSuiteStandard) TestCreateEventInvalidStatus() {
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/events", map[string]any{
		"name":   "Bad",
		"status": "Cancelled",
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateEventNegativeBudget() {
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/events", map[string]any{
		"name":   "Bad",
		"budget": "-100",
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetEvents() {
	_, token := suite.loginAs(models.RoleAnggota)

	suite.createTestEvent(models.Event{Name: "Kajian Rutin", Status: models.EventOngoing, Date: types.NewDate(2024, 3, 1)})
	suite.createTestEvent(models.Event{Name: "Seminar Besar", Status: models.EventPlanned, Date: types.NewDate(2024, 9, 1)})
	suite.createTestEvent(models.Event{Name: "Bazar Lama", Status: models.EventCompleted, Date: types.NewDate(2023, 12, 1)})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EventListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)

	// Filter by status
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events?status=Ongoing", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)

	// Search in name
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events?search=seminar", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)

	// Filter by month of the event date
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events?month=2024-03", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestUpdateEvent() {
	_, token := suite.loginAs(models.RoleAnggota)
	event := suite.createTestEvent(models.Event{Name: "Kajian Rutin", Date: types.NewDate(2024, 3, 1)})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/events/%s", event.ID), map[string]any{
		"status": "Completed",
	}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EventResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.EventCompleted, response.Data.Status)
	suite.Assert().Equal("Kajian Rutin", response.Data.Name, "fields not in the body stay unchanged")
}

func (suite *TestSuiteStandard) TestEventStats() {
	_, token := suite.loginAs(models.RoleAnggota)
	event := suite.createTestEvent(models.Event{Name: "Seminar", Date: types.NewDate(2024, 5, 1), Budget: decimal.NewFromInt(1000000)})

	for _, amount := range []int64{700000, 500000} {
		transaction := models.Transaction{
			Type:     models.TypeExpense,
			Category: models.CategoryEventCost,
			Amount:   decimal.NewFromInt(amount),
			Date:     types.NewDate(2024, 5, 1),
			EventID:  &event.ID,
		}
		suite.Require().NoError(models.DB.Create(&transaction).Error)
	}

	// An unlinked expense must not affect the stats
	unlinked := models.Transaction{
		Type:     models.TypeExpense,
		Category: models.CategoryOther,
		Amount:   decimal.NewFromInt(123456),
		Date:     types.NewDate(2024, 5, 1),
	}
	suite.Require().NoError(models.DB.Create(&unlinked).Error)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/events/%s/stats", event.ID), nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EventStatsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Stats.Used.Equal(decimal.NewFromInt(1200000)))
	suite.Assert().True(response.Data.Stats.Remaining.Equal(decimal.NewFromInt(-200000)), "overspend stays visible in remaining")
	suite.Assert().Equal(int64(100), response.Data.Stats.PercentUsed, "percentage is clamped")
}

func (suite *TestSuiteStandard) TestDeleteEventKeepsTransactions() {
	_, token := suite.loginAs(models.RoleAnggota)
	event := suite.createTestEvent(models.Event{Name: "Seminar", Date: types.NewDate(2024, 5, 1)})

	transaction := models.Transaction{
		Type:     models.TypeExpense,
		Category: models.CategoryEventCost,
		Amount:   decimal.NewFromInt(50000),
		Date:     types.NewDate(2024, 5, 2),
		EventID:  &event.ID,
	}
	suite.Require().NoError(models.DB.Create(&transaction).Error)

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/events/%s", event.ID), nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The transaction survives, its reference now resolves to nothing
	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, transaction.ID).Error)

	linked, err := reloaded.Event(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Nil(linked)
}

func (suite *TestSuiteStandard) TestEventNotFound() {
	_, token := suite.loginAs(models.RoleAnggota)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/events/b9c9ba5b-b72c-4f0c-9e6a-6212b5c13d61", nil, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
