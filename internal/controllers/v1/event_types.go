package v1

import (
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/report"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/shopspring/decimal"
)

// EventEditable represents all user configurable parameters of an event.
type EventEditable struct {
	Name        string             `json:"name" example:"Seminar Ekonomi Syariah" default:""`
	Date        types.Date         `json:"date" example:"2023-10-20"`
	Description string             `json:"description" example:"Seminar besar tahunan" default:""`
	Budget      decimal.Decimal    `json:"budget" example:"3000000" default:"0"`
	Status      models.EventStatus `json:"status" example:"Planned" default:"Planned"`
}

func (editable EventEditable) model() models.Event {
	return models.Event{
		Name:        editable.Name,
		Date:        editable.Date,
		Description: editable.Description,
		Budget:      editable.Budget,
		Status:      editable.Status,
	}
}

type Event struct {
	models.DefaultModel
	EventEditable
}

func newEvent(model models.Event) Event {
	return Event{
		DefaultModel: model.DefaultModel,
		EventEditable: EventEditable{
			Name:        model.Name,
			Date:        model.Date,
			Description: model.Description,
			Budget:      model.Budget,
			Status:      model.Status,
		},
	}
}

type EventResponse struct {
	Data  *Event  `json:"data"`
	Error *string `json:"error" example:"there is no event matching your query"`
}

type EventListResponse struct {
	Data  []Event `json:"data"`
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// EventStats couples an event with its computed budget statistics.
type EventStats struct {
	Event Event              `json:"event"`
	Stats report.BudgetStats `json:"stats"`
}

type EventStatsResponse struct {
	Data  *EventStats `json:"data"`
	Error *string     `json:"error" example:"there is no event matching your query"`
}

type EventQueryFilter struct {
	Status models.EventStatus `json:"status" form:"status"`                     // By lifecycle status
	Search string             `json:"search" form:"search" filterField:"false"` // By string in name and description
	Month  string             `json:"month" form:"month" filterField:"false"`   // By month of the event date, YYYY-MM
}

func (f EventQueryFilter) model() models.Event {
	return models.Event{
		Status: f.Status,
	}
}
