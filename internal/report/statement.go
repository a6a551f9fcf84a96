package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats amounts with Indonesian digit grouping.
var printer = message.NewPrinter(language.Indonesian)

// FormatIDR formats a whole-unit amount as Indonesian Rupiah,
// e.g. "Rp 1.000.000".
func FormatIDR(amount decimal.Decimal) string {
	return printer.Sprintf("Rp %d", amount.IntPart())
}

// StatementRow is a single detail row of a printable statement.
type StatementRow struct {
	Date        types.Date                 `json:"date" example:"2024-01-05"`
	Category    models.TransactionCategory `json:"category" example:"Donasi/Infaq"`
	Description string                     `json:"description" example:"Infaq jumat"`
	Debit       string                     `json:"debit" example:"Rp 1.000.000"`  // Formatted income amount, "-" for expenses
	Credit      string                     `json:"credit" example:"-"`            // Formatted expense amount, "-" for income
}

// Signature is the signature block of a printable statement. It carries the
// acting identity, not the author of any single transaction.
type Signature struct {
	Name string      `json:"name" example:"Siti Aminah"`
	Role models.Role `json:"role" example:"BENDAHARA"`
}

// Statement is a fixed-layout monthly statement for the print/PDF pipeline.
// It reproduces exactly the totals and rows of the exported file.
type Statement struct {
	Organization string         `json:"organization" example:"LDK Ekonomi UBB"`
	Title        string         `json:"title" example:"Laporan Pertanggungjawaban Keuangan"`
	Period       string         `json:"period" example:"Maret 2024"`
	Month        types.Month    `json:"month" example:"2024-03"`
	Totals       Totals         `json:"totals"`
	TotalIncome  string         `json:"totalIncome" example:"Rp 1.000.000"`
	TotalExpense string         `json:"totalExpense" example:"Rp 500.000"`
	Net          string         `json:"net" example:"Rp 500.000"`
	Rows         []StatementRow `json:"rows"`
	Signature    Signature      `json:"signature"`
	DocumentID   string         `json:"documentId" example:"A1B2C3D4"`
	GeneratedAt  time.Time      `json:"generatedAt"`
}

// NewStatement builds the printable statement for a month from a transaction
// snapshot and the acting identity.
func NewStatement(transactions []models.Transaction, month types.Month, signedBy string, role models.Role, now time.Time) Statement {
	filtered := FilterByMonth(transactions, month)
	totals := MonthTotals(transactions, month)

	rows := make([]StatementRow, 0, len(filtered))
	for _, transaction := range filtered {
		row := StatementRow{
			Date:        transaction.Date,
			Category:    transaction.Category,
			Description: transaction.Description,
			Debit:       "-",
			Credit:      "-",
		}

		if transaction.Type == models.TypeIncome {
			row.Debit = FormatIDR(transaction.Amount)
		} else {
			row.Credit = FormatIDR(transaction.Amount)
		}

		rows = append(rows, row)
	}

	return Statement{
		Organization: "LDK Ekonomi UBB",
		Title:        "Laporan Pertanggungjawaban Keuangan",
		Period:       PeriodLabel(month),
		Month:        month,
		Totals:       totals,
		TotalIncome:  FormatIDR(totals.Income),
		TotalExpense: FormatIDR(totals.Expense),
		Net:          FormatIDR(totals.Net),
		Rows:         rows,
		Signature: Signature{
			Name: signedBy,
			Role: role,
		},
		DocumentID:  newDocumentID(),
		GeneratedAt: now,
	}
}

// newDocumentID generates a short document identifier for a statement.
func newDocumentID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:8])
}
