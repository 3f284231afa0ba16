package model

import "github.com/shopspring/decimal"

// AdjustmentType names the family an adjusting entry belongs to.
type AdjustmentType string

const (
	AdjAccruedExpense  AdjustmentType = "accrued-expense"
	AdjAccruedRevenue  AdjustmentType = "accrued-revenue"
	AdjDeferredExpense AdjustmentType = "deferred-expense"
	AdjDeferredIncome  AdjustmentType = "deferred-income"
	AdjDepreciation    AdjustmentType = "depreciation"
	AdjBadDebts        AdjustmentType = "bad-debts"
)

// Adjustment is a period-end adjusting entry generated from the
// post-transaction ledger. DebitAccount != CreditAccount and Amount > 0.
type Adjustment struct {
	ID            int
	Type          AdjustmentType
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
}
