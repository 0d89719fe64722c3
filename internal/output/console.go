package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/gonzalestax/taxengine/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle   = lipgloss.NewStyle().Width(28)
	refundStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	owedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// ConsoleFormatter renders the human-readable return summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render(fmt.Sprintf("FEDERAL TAX SUMMARY — TAX YEAR %d", result.TaxYear)))
	fmt.Fprintf(&buf, "Filing status: %s\n\n", result.FilingStatus)

	fmt.Fprintln(&buf, sectionStyle.Render("INCOME"))
	writeLine(&buf, "Gross income", result.GrossIncome)
	writeLine(&buf, "Adjustments", result.Adjustments)
	if result.TipsDeduction.GreaterThan(decimal.Zero) {
		writeLine(&buf, "  incl. tips deduction", result.TipsDeduction)
	}
	if result.OvertimeDeduction.GreaterThan(decimal.Zero) {
		writeLine(&buf, "  incl. overtime deduction", result.OvertimeDeduction)
	}
	writeLine(&buf, "Adjusted gross income", result.AdjustedGrossIncome)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("DEDUCTIONS"))
	writeLine(&buf, fmt.Sprintf("Deduction (%s)", result.DeductionKind), result.DeductionAmount)
	if result.QBIDeduction.GreaterThan(decimal.Zero) {
		writeLine(&buf, "QBI deduction", result.QBIDeduction)
	}
	writeLine(&buf, "Taxable income", result.TaxableIncome)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("TAX AND CREDITS"))
	writeLine(&buf, "Total tax", result.TaxLiability)
	writeLine(&buf, "Nonrefundable credits", result.TotalNonrefundableCredits)
	if result.ChildTaxCredit.GreaterThan(decimal.Zero) {
		writeLine(&buf, "  incl. child tax credit", result.ChildTaxCredit)
	}
	writeLine(&buf, "Tax after credits", result.TaxAfterCredits)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("PAYMENTS"))
	writeLine(&buf, "Federal withholding", result.FederalWithheld)
	writeLine(&buf, "Estimated payments", result.EstimatedPayments)
	if result.TotalRefundableCredits.GreaterThan(decimal.Zero) {
		writeLine(&buf, "Refundable credits", result.TotalRefundableCredits)
	}
	writeLine(&buf, "Total payments", result.TotalPayments)
	fmt.Fprintln(&buf)

	if result.RefundAmount.GreaterThan(decimal.Zero) {
		fmt.Fprintln(&buf, refundStyle.Render(fmt.Sprintf("REFUND: %s", FormatCurrency(result.RefundAmount))))
	} else if result.AmountOwed.GreaterThan(decimal.Zero) {
		fmt.Fprintln(&buf, owedStyle.Render(fmt.Sprintf("AMOUNT OWED: %s", FormatCurrency(result.AmountOwed))))
	} else {
		fmt.Fprintln(&buf, "BALANCED: no refund, nothing owed")
	}

	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	fmt.Fprintf(buf, "%s %s\n", labelStyle.Render(label+":"), FormatCurrency(amount))
}
