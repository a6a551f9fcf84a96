package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a financial movement.
//
// There are exactly two types. The sign of a movement is derived from the
// type at aggregation time, amounts are always stored as positive
// magnitudes.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// IsValid reports whether the type is one of the known types.
func (t TransactionType) IsValid() bool {
	return t == TypeIncome || t == TypeExpense
}

// TransactionCategory is the category of a financial movement.
// The enumeration is closed, labels are those of the source system.
type TransactionCategory string

const (
	CategoryDonation    TransactionCategory = "Donasi/Infaq"
	CategorySales       TransactionCategory = "Penjualan Merchandise"
	CategorySponsorship TransactionCategory = "Sponsorship"
	CategoryEventFee    TransactionCategory = "Tiket Event"
	CategoryPromotion   TransactionCategory = "Promosi & Iklan"
	CategoryPrinting    TransactionCategory = "Cetak & Dokumen"
	CategoryOperational TransactionCategory = "Operasional"
	CategoryEventCost   TransactionCategory = "Biaya Event"
	CategoryOther       TransactionCategory = "Lainnya"
)

// TransactionCategories returns all valid transaction categories.
func TransactionCategories() []TransactionCategory {
	return []TransactionCategory{
		CategoryDonation,
		CategorySales,
		CategorySponsorship,
		CategoryEventFee,
		CategoryPromotion,
		CategoryPrinting,
		CategoryOperational,
		CategoryEventCost,
		CategoryOther,
	}
}

// IsValid reports whether the category is one of the known categories.
func (c TransactionCategory) IsValid() bool {
	for _, category := range TransactionCategories() {
		if c == category {
			return true
		}
	}

	return false
}

// Transaction represents a single financial movement.
type Transaction struct {
	DefaultModel
	Date        types.Date          `json:"date" example:"2024-01-05"`
	Amount      decimal.Decimal     `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1000000"` // Positive magnitude in whole currency units
	Type        TransactionType     `json:"type" example:"INCOME"`
	Category    TransactionCategory `json:"category" example:"Donasi/Infaq"`
	Description string              `json:"description" example:"Infaq jumat"`
	EventID     *uuid.UUID          `json:"eventId"`  // Weak reference, no cascade. A dangling ID is treated as no event.
	ProofURL    string              `json:"proofUrl"` // Attachment reference
	CreatedBy   string              `json:"createdBy" example:"Siti Aminah"` // Display name, not an enforced foreign key
	CreatedByID *uuid.UUID          `json:"createdById"`
}

// BeforeSave validates type, category and amount, defaults the date to today
// and normalizes the event reference.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.ProofURL = strings.TrimSpace(t.ProofURL)

	if !t.Type.IsValid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Category.IsValid() {
		return ErrTransactionCategoryInvalid
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	// Ensure that the event ID is nil and not a pointer to a nil UUID
	if t.EventID != nil && *t.EventID == uuid.Nil {
		t.EventID = nil
	}

	return nil
}

// Event returns the event the transaction is linked to.
//
// The reference is weak: when the transaction has no event or the event has
// been deleted since, (nil, nil) is returned.
func (t Transaction) Event(db *gorm.DB) (*Event, error) {
	if t.EventID == nil {
		return nil, nil
	}

	var event Event
	err := db.First(&event, *t.EventID).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}
