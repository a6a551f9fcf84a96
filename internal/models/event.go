package models

import (
	"strings"

	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventStatus is the lifecycle status of an event.
//
// The statuses form an ordered lifecycle, but transitions are set manually
// and not enforced as a state machine.
type EventStatus string

const (
	EventPlanned   EventStatus = "Planned"
	EventOngoing   EventStatus = "Ongoing"
	EventCompleted EventStatus = "Completed"
)

// EventStatuses returns all valid event statuses.
func EventStatuses() []EventStatus {
	return []EventStatus{EventPlanned, EventOngoing, EventCompleted}
}

// IsValid reports whether the status is one of the known statuses.
func (s EventStatus) IsValid() bool {
	return s == EventPlanned || s == EventOngoing || s == EventCompleted
}

// Event is a budgeted activity of the organization.
type Event struct {
	DefaultModel
	Name        string          `json:"name" example:"Seminar Ekonomi Syariah"`
	Date        types.Date      `json:"date" example:"2023-10-20"`
	Description string          `json:"description" example:"Seminar besar tahunan"`
	Budget      decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)" example:"3000000"` // Non-negative, in whole currency units
	Status      EventStatus     `json:"status" example:"Ongoing"`
}

// BeforeSave trims whitespace, defaults the status to Planned and validates
// status and budget.
func (e *Event) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Description = strings.TrimSpace(e.Description)

	if e.Status == "" {
		e.Status = EventPlanned
	}

	if !e.Status.IsValid() {
		return ErrEventStatusInvalid
	}

	if e.Budget.IsNegative() {
		return ErrEventBudgetNegative
	}

	return nil
}
