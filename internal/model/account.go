package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts into the five accounting elements.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// NormalSide is the side on which an account ordinarily carries its balance.
type NormalSide string

const (
	SideDebit  NormalSide = "debit"
	SideCredit NormalSide = "credit"
)

// Balance holds accumulated debit and credit totals for one account.
type Balance struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Net reduces the pair to a single side and a non-negative amount.
// A fully offset (or empty) balance reports as a zero debit.
func (b Balance) Net() (NormalSide, decimal.Decimal) {
	diff := b.Debit.Sub(b.Credit)
	if diff.IsNegative() {
		return SideCredit, diff.Neg()
	}
	return SideDebit, diff
}

// IsZero reports whether debits fully offset credits.
func (b Balance) IsZero() bool {
	return b.Debit.Equal(b.Credit)
}

// Ledger maps account names to accumulated debit/credit totals.
type Ledger map[string]Balance

// Add accumulates a posting onto an account, lazily initializing it.
func (l Ledger) Add(account string, debit, credit decimal.Decimal) {
	b := l[account]
	b.Debit = b.Debit.Add(debit)
	b.Credit = b.Credit.Add(credit)
	l[account] = b
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for acct, b := range l {
		out[acct] = b
	}
	return out
}
