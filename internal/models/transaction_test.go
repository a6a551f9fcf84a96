package models_test

import (
	"github.com/google/uuid"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionInvalidType() {
	transaction := models.Transaction{
		Type:     "TRANSFER",
		Category: models.CategoryOther,
		Amount:   decimal.NewFromInt(1000),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionInvalidCategory() {
	transaction := models.Transaction{
		Type:     models.TypeIncome,
		Category: "Gaji",
		Amount:   decimal.NewFromInt(1000),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionCategoryInvalid)
}

func (suite *TestSuiteStandard) TestTransactionNegativeAmount() {
	transaction := models.Transaction{
		Type:     models.TypeExpense,
		Category: models.CategoryOperational,
		Amount:   decimal.NewFromInt(-400000),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionDateDefault() {
	transaction := models.Transaction{
		Type:     models.TypeIncome,
		Category: models.CategoryDonation,
		Amount:   decimal.NewFromInt(50000),
	}

	suite.Require().Nil(models.DB.Create(&transaction).Error)
	suite.Assert().True(types.Today().Equal(transaction.Date))
}

func (suite *TestSuiteStandard) TestTransactionNilEventID() {
	id := uuid.Nil
	transaction := models.Transaction{
		Type:     models.TypeIncome,
		Category: models.CategoryDonation,
		Amount:   decimal.NewFromInt(50000),
		EventID:  &id,
	}

	suite.Require().Nil(models.DB.Create(&transaction).Error)
	suite.Assert().Nil(transaction.EventID, "a nil UUID event reference is normalized to no reference")
}

func (suite *TestSuiteStandard) TestTransactionWeakEventReference() {
	event := models.Event{Name: "Bazar Ramadhan", Date: types.NewDate(2024, 3, 20)}
	suite.Require().Nil(models.DB.Create(&event).Error)

	transaction := models.Transaction{
		Type:     models.TypeExpense,
		Category: models.CategoryEventCost,
		Amount:   decimal.NewFromInt(250000),
		EventID:  &event.ID,
	}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	linked, err := transaction.Event(models.DB)
	suite.Require().Nil(err)
	suite.Require().NotNil(linked)
	suite.Assert().Equal(event.ID, linked.ID)

	// Deleting the event must not cascade and must not break the lookup
	suite.Require().Nil(models.DB.Delete(&models.Event{}, event.ID).Error)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count, "deleting an event must not cascade to transactions")

	linked, err = transaction.Event(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Nil(linked, "a dangling event reference is treated as no event")
}
