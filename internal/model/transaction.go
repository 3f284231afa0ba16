package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Effect describes how a transaction moves one element of the
// accounting equation.
type Effect string

const (
	EffectIncrease Effect = "increase"
	EffectDecrease Effect = "decrease"
	EffectNone     Effect = "none"
)

// Cause names why a transaction changed equity. Empty when equity is
// unaffected.
type Cause string

const (
	CauseNone       Cause = ""
	CauseInvestment Cause = "investment"
	CauseWithdrawal Cause = "withdrawal"
	CauseRevenue    Cause = "revenue"
	CauseExpense    Cause = "expense"
)

// Analysis is the precomputed answer key for the accounting-equation
// effect of one transaction.
type Analysis struct {
	Assets      Effect
	Liabilities Effect
	Equity      Effect
	Cause       Cause
}

// EntryLine is one side-row of a journal entry.
type EntryLine struct {
	Account string
	Amount  decimal.Decimal
}

// Transaction is a balanced journal entry plus its analysis key.
// Created once per generated activity and immutable thereafter.
type Transaction struct {
	ID          string // entry ID, "YYYY-MM-NNN"
	Date        time.Time
	Description string
	Debits      []EntryLine
	Credits     []EntryLine
	Analysis    Analysis
}

// TotalDebits sums the debit lines.
func (t Transaction) TotalDebits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range t.Debits {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// TotalCredits sums the credit lines.
func (t Transaction) TotalCredits() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range t.Credits {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// Balanced reports whether total debits equal total credits exactly.
func (t Transaction) Balanced() bool {
	return t.TotalDebits().Equal(t.TotalCredits())
}
