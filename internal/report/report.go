// Package report implements the aggregation engine.
//
// All functions are pure and deterministic over fully fetched snapshots of
// the entity collections. They never error: an empty transaction list yields
// all-zero totals and empty series. Dates are assumed to be valid calendar
// days and amounts non-negative magnitudes, both are enforced on write by
// the models package.
package report

import (
	"sort"
	"time"

	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/shopspring/decimal"
)

// relevantEventLimit is the number of events shown in the dashboard widget.
const relevantEventLimit = 3

// SumByType returns the sum of the amounts of all transactions of the given
// type.
func SumByType(transactions []models.Transaction, t models.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == t {
			sum = sum.Add(transaction.Amount)
		}
	}

	return sum
}

// Balance returns income minus expense over all transactions.
func Balance(transactions []models.Transaction) decimal.Decimal {
	return SumByType(transactions, models.TypeIncome).Sub(SumByType(transactions, models.TypeExpense))
}

// FilterByPeriod returns the transactions whose date falls into the given
// year and month. A month of zero matches the whole year.
//
// The comparison is by calendar component, not a rolling window.
func FilterByPeriod(transactions []models.Transaction, year int, month time.Month) []models.Transaction {
	matches := make([]models.Transaction, 0)
	for _, transaction := range transactions {
		if transaction.Date.Year() != year {
			continue
		}
		if month != 0 && transaction.Date.Month() != month {
			continue
		}
		matches = append(matches, transaction)
	}

	return matches
}

// FilterByMonth returns the transactions dated in the given month.
func FilterByMonth(transactions []models.Transaction, month types.Month) []models.Transaction {
	return FilterByPeriod(transactions, month.Year(), month.Month())
}

// DateBucket holds the summed income and expense for a single calendar day.
type DateBucket struct {
	Date    types.Date      `json:"date" example:"2024-01-05"`
	Income  decimal.Decimal `json:"income" example:"1000000"`
	Expense decimal.Decimal `json:"expense" example:"400000"`
}

// BucketByDate groups transactions by their exact date, summing income and
// expense separately per day. Buckets are sorted ascending by date. Days
// without transactions do not get zero-filled buckets.
func BucketByDate(transactions []models.Transaction) []DateBucket {
	byDate := make(map[string]*DateBucket)
	for _, transaction := range transactions {
		key := transaction.Date.String()

		bucket, ok := byDate[key]
		if !ok {
			bucket = &DateBucket{
				Date:    transaction.Date,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			byDate[key] = bucket
		}

		if transaction.Type == models.TypeIncome {
			bucket.Income = bucket.Income.Add(transaction.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(transaction.Amount)
		}
	}

	buckets := make([]DateBucket, 0, len(byDate))
	for _, bucket := range byDate {
		buckets = append(buckets, *bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.String() < buckets[j].Date.String()
	})

	return buckets
}

// CategoryTotal holds the summed amount for a single category.
type CategoryTotal struct {
	Category models.TransactionCategory `json:"category" example:"Operasional"`
	Total    decimal.Decimal            `json:"total" example:"250000"`
}

// BreakdownByCategory groups the transactions of the given type by category.
// Only categories that occur are present. The result is sorted by descending
// total, ties broken by category name, to keep the output deterministic.
func BreakdownByCategory(transactions []models.Transaction, t models.TransactionType) []CategoryTotal {
	byCategory := make(map[models.TransactionCategory]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Type != t {
			continue
		}
		byCategory[transaction.Category] = byCategory[transaction.Category].Add(transaction.Amount)
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	return totals
}

// BudgetStats describes the budget utilization of a single event.
type BudgetStats struct {
	Budget      decimal.Decimal `json:"budget" example:"1000000"`     // The budget of the event
	Used        decimal.Decimal `json:"used" example:"1200000"`       // Sum of linked expenses
	Income      decimal.Decimal `json:"income" example:"300000"`      // Sum of linked income
	Remaining   decimal.Decimal `json:"remaining" example:"-200000"`  // budget - used, negative when over budget
	PercentUsed int64           `json:"percentUsed" example:"100"`    // Clamped to [0, 100]
}

// EventBudgetStats computes the budget utilization of an event from the
// transactions linked to it. Unlinked transactions and transactions linked
// to other events are ignored.
//
// Remaining may be negative, being over budget is a displayed state and not
// an error. PercentUsed is clamped to [0, 100]; the true overspend is only
// visible through Remaining. A budget of zero uses a denominator of one to
// avoid division by zero.
func EventBudgetStats(event models.Event, transactions []models.Transaction) BudgetStats {
	used := decimal.Zero
	income := decimal.Zero

	for _, transaction := range transactions {
		if transaction.EventID == nil || *transaction.EventID != event.ID {
			continue
		}

		if transaction.Type == models.TypeExpense {
			used = used.Add(transaction.Amount)
		} else {
			income = income.Add(transaction.Amount)
		}
	}

	denominator := event.Budget
	if denominator.LessThan(decimal.New(1, 0)) {
		denominator = decimal.New(1, 0)
	}

	percent := used.Mul(decimal.New(100, 0)).Div(denominator).Round(0).IntPart()
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	return BudgetStats{
		Budget:      event.Budget,
		Used:        used,
		Income:      income,
		Remaining:   event.Budget.Sub(used),
		PercentUsed: percent,
	}
}

// RelevantEvents selects the events for the dashboard widget: completed
// events are excluded, ongoing events sort before planned ones, ties within
// a status are broken by ascending date, and at most three events are
// returned. This is a priority-then-recency ordering, not a pure date sort.
func RelevantEvents(events []models.Event) []models.Event {
	relevant := make([]models.Event, 0)
	for _, event := range events {
		if event.Status == models.EventCompleted {
			continue
		}
		relevant = append(relevant, event)
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		if relevant[i].Status != relevant[j].Status {
			return relevant[i].Status == models.EventOngoing
		}
		return relevant[i].Date.Before(relevant[j].Date)
	})

	if len(relevant) > relevantEventLimit {
		relevant = relevant[:relevantEventLimit]
	}

	return relevant
}

// Totals holds the income, expense and net result for a reporting period.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"1000000"`
	Expense decimal.Decimal `json:"expense" example:"500000"`
	Net     decimal.Decimal `json:"net" example:"500000"`
}

// MonthTotals computes income, expense and net for the given month.
//
// The on-screen statement and the exported file both use this function with
// FilterByMonth so that the two can never disagree for the same snapshot.
func MonthTotals(transactions []models.Transaction, month types.Month) Totals {
	filtered := FilterByMonth(transactions, month)

	income := SumByType(filtered, models.TypeIncome)
	expense := SumByType(filtered, models.TypeExpense)

	return Totals{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}
