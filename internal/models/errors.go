package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUserEmailNotUnique = errors.New("this email address is already registered")
	ErrRoleInvalid        = errors.New("the specified role is invalid")
	ErrDeleteOwnUser      = errors.New("you cannot delete the account you are currently logged in with")
)

// Event errors
var (
	ErrEventStatusInvalid  = errors.New("the specified event status is invalid")
	ErrEventBudgetNegative = errors.New("event budgets must not be negative")
)

// Transaction errors
var (
	ErrTransactionTypeInvalid     = errors.New("the specified transaction type is invalid")
	ErrTransactionCategoryInvalid = errors.New("the specified transaction category is invalid")
	ErrTransactionAmountNegative  = errors.New("transaction amounts are stored as positive magnitudes and must not be negative")
)
