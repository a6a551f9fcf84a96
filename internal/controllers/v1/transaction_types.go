package v1

import (
	"github.com/google/uuid"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	kas_uuid "github.com/ldk-ekonomi/kas-backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters of a
// transaction. The creator fields are not editable, they are set from the
// acting identity.
type TransactionEditable struct {
	Date        types.Date                 `json:"date" example:"2024-01-05"`
	Amount      decimal.Decimal            `json:"amount" example:"1000000" default:"0"`
	Type        models.TransactionType     `json:"type" example:"INCOME"`
	Category    models.TransactionCategory `json:"category" example:"Donasi/Infaq"`
	Description string                     `json:"description" example:"Infaq jumat" default:""`
	EventID     *uuid.UUID                 `json:"eventId"`
	ProofURL    string                     `json:"proofUrl" default:""`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:        editable.Date,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Category:    editable.Category,
		Description: editable.Description,
		EventID:     editable.EventID,
		ProofURL:    editable.ProofURL,
	}
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	CreatedBy   string     `json:"createdBy" example:"Siti Aminah"`
	CreatedByID *uuid.UUID `json:"createdById"`
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Type:        model.Type,
			Category:    model.Category,
			Description: model.Description,
			EventID:     model.EventID,
			ProofURL:    model.ProofURL,
		},
		CreatedBy:   model.CreatedBy,
		CreatedByID: model.CreatedByID,
	}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`
	Error *string      `json:"error" example:"there is no transaction matching your query"`
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type TransactionQueryFilter struct {
	Type     models.TransactionType     `form:"type"`                       // By direction
	Category models.TransactionCategory `form:"category"`                   // By category
	EventID  kas_uuid.UUID              `form:"event"`                      // By linked event
	Year     int                        `form:"year" filterField:"false"`   // By year of the transaction date
	Month    int                        `form:"month" filterField:"false"`  // By month of the transaction date, requires year
	Search   string                     `form:"search" filterField:"false"` // By string in description, category and creator name
}

func (f TransactionQueryFilter) model() models.Transaction {
	var eventID *uuid.UUID
	if f.EventID != kas_uuid.Nil {
		eventID = &f.EventID.UUID
	}

	return models.Transaction{
		Type:     f.Type,
		Category: f.Category,
		EventID:  eventID,
	}
}
