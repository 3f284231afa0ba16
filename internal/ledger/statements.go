package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// StatementTotals are the grand totals recomputed independently of the
// learner's statement layout. TotalAssets and TotalLiabilitiesAndEquity
// agree whenever the underlying ledger balances.
type StatementTotals struct {
	NetIncome                 decimal.Decimal
	EndingCapital             decimal.Decimal
	TotalAssets               decimal.Decimal
	TotalLiabilitiesAndEquity decimal.Decimal
}

// drawingTotal sums net debits across debit-normal equity accounts.
func drawingTotal(l model.Ledger) decimal.Decimal {
	total := decimal.Zero
	for acct, b := range l {
		t, side := classify.Classify(acct)
		if t != model.AccountTypeEquity || side != model.SideDebit {
			continue
		}
		netSide, amt := b.Net()
		if netSide == model.SideDebit {
			total = total.Add(amt)
		}
	}
	return total
}

// capitalBalance returns the capital account's net credit in a ledger.
func capitalBalance(l model.Ledger, capitalAccount string) decimal.Decimal {
	side, amt := l[capitalAccount].Net()
	if side == model.SideDebit {
		return amt.Neg()
	}
	return amt
}

// Statements recomputes the final statement totals from an activity.
// On first-year scenarios beginning capital is whatever the adjusted
// ledger carries for the capital account (the owner's investments);
// on subsequent years it additionally contains the beginning balance.
func Statements(a *model.Activity) StatementTotals {
	adjusted := Adjusted(a.Ledger, a.Adjustments)
	ws := BuildWorksheet(a)

	capital := capitalBalance(adjusted, a.CapitalAccount)
	drawings := drawingTotal(adjusted)
	ending := capital.Add(ws.NetIncome).Sub(drawings)

	totals := StatementTotals{
		NetIncome:     ws.NetIncome,
		EndingCapital: ending,
	}

	liabilities := decimal.Zero
	for acct, b := range adjusted {
		side, amt := b.Net()
		signed := amt
		switch classify.Type(acct) {
		case model.AccountTypeAsset:
			if side == model.SideCredit {
				signed = amt.Neg() // contra asset
			}
			totals.TotalAssets = totals.TotalAssets.Add(signed)
		case model.AccountTypeLiability:
			if side == model.SideDebit {
				signed = amt.Neg()
			}
			liabilities = liabilities.Add(signed)
		}
	}
	totals.TotalLiabilitiesAndEquity = liabilities.Add(ending)
	return totals
}

// ClosingTotals are the expected totals of the four REID closing
// entries: revenues to income summary, expenses to income summary,
// income summary to capital, and drawing to capital.
type ClosingTotals struct {
	Revenue       decimal.Decimal
	Expense       decimal.Decimal
	IncomeSummary decimal.Decimal
	Drawing       decimal.Decimal
}

// Closing recomputes the REID totals from the adjusted ledger. Contra
// accounts (sales discounts, purchase discounts) sit on the opposite
// side of their element and are excluded from the gross side total,
// matching the canonical closing entry whose two column sums are equal.
func Closing(a *model.Activity) ClosingTotals {
	adjusted := Adjusted(a.Ledger, a.Adjustments)
	ws := BuildWorksheet(a)

	ct := ClosingTotals{
		Revenue:       decimal.Zero,
		Expense:       decimal.Zero,
		IncomeSummary: ws.NetIncome.Abs(),
		Drawing:       drawingTotal(adjusted),
	}
	for acct, b := range adjusted {
		side, amt := b.Net()
		switch classify.Type(acct) {
		case model.AccountTypeRevenue:
			if side == model.SideCredit {
				ct.Revenue = ct.Revenue.Add(amt)
			}
		case model.AccountTypeExpense:
			if side == model.SideDebit {
				ct.Expense = ct.Expense.Add(amt)
			}
		}
	}
	return ct
}

// PostClosing recomputes the post-closing ledger: nominal accounts
// collapse to zero and drop out, real accounts carry their adjusted
// balance forward, and capital absorbs net income and drawings.
func PostClosing(a *model.Activity) model.Ledger {
	adjusted := Adjusted(a.Ledger, a.Adjustments)
	totals := Statements(a)

	out := make(model.Ledger)
	for acct, b := range adjusted {
		if classify.IsNominal(acct) {
			continue
		}
		if acct == a.CapitalAccount {
			out.Add(acct, decimal.Zero, totals.EndingCapital)
			continue
		}
		side, amt := b.Net()
		if amt.IsZero() {
			continue
		}
		if side == model.SideDebit {
			out.Add(acct, amt, decimal.Zero)
		} else {
			out.Add(acct, decimal.Zero, amt)
		}
	}
	return out
}
