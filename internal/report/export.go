package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
)

// monthNames are the Indonesian month names used in exports and statements.
var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName returns the Indonesian name of the month.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// PeriodLabel returns the human readable label for a reporting period,
// e.g. "Maret 2024".
func PeriodLabel(month types.Month) string {
	return fmt.Sprintf("%s %d", MonthName(month.Month()), month.Year())
}

// ExportFilename returns the download filename for a monthly export.
func ExportFilename(month types.Month) string {
	return fmt.Sprintf("Laporan_LDK_Ekonomi_%s_%d.csv", MonthName(month.Month()), month.Year())
}

// ExportCSV renders the monthly report as a semicolon separated document for
// spreadsheet tools.
//
// The document starts with a byte-order mark for character-set detection and
// contains a title block, a profit/loss summary and a detail block with one
// row per transaction of the period. Income and expense amounts go into
// mutually exclusive columns, the unused column holds 0.
func ExportCSV(transactions []models.Transaction, month types.Month) []byte {
	filtered := FilterByMonth(transactions, month)
	totals := MonthTotals(transactions, month)

	var b strings.Builder

	// Byte-order mark so spreadsheet tools detect the character set
	b.WriteString("\uFEFF")
	b.WriteString("LAPORAN KEUANGAN LDK EKONOMI UBB\n")
	fmt.Fprintf(&b, "Periode:;%s\n\n", PeriodLabel(month))

	b.WriteString("RINGKASAN LABA RUGI\n")
	fmt.Fprintf(&b, "Total Pendapatan:;%s\n", totals.Income)
	fmt.Fprintf(&b, "Total Pengeluaran:;%s\n", totals.Expense)
	fmt.Fprintf(&b, "Surplus/Defisit Bersih:;%s\n\n", totals.Net)

	b.WriteString("RINCIAN TRANSAKSI\n")
	b.WriteString("Tanggal;Kategori;Keterangan;Pemasukan (Debit);Pengeluaran (Kredit)\n")

	for _, transaction := range filtered {
		income := "0"
		expense := "0"
		if transaction.Type == models.TypeIncome {
			income = transaction.Amount.String()
		} else {
			expense = transaction.Amount.String()
		}

		// The separator must not occur inside a field
		description := strings.ReplaceAll(transaction.Description, ";", ",")

		fmt.Fprintf(&b, "%s;%s;%s;%s;%s\n",
			transaction.Date,
			transaction.Category,
			description,
			income,
			expense,
		)
	}

	return []byte(b.String())
}
