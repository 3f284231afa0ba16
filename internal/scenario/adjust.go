package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/model"
)

// fraction returns a whole-currency share of base in [25%, 75%].
func (g *gen) fraction(base decimal.Decimal) decimal.Decimal {
	pct := decimal.NewFromInt(int64(25 + g.rng.Intn(51))).Div(decimal.NewFromInt(100))
	return base.Mul(pct).Round(0)
}

// adjustments inspects the post-transaction ledger and emits one
// adjusting entry per applicable family. A family whose precondition
// does not hold is skipped rather than forced: generation degrades the
// scenario's richness, never its validity.
func (g *gen) adjustments(base model.Ledger) []model.Adjustment {
	var adjs []model.Adjustment
	next := 1
	add := func(t model.AdjustmentType, desc, drAcc, crAcc string, amt decimal.Decimal) {
		if !amt.IsPositive() || drAcc == crAcc {
			return
		}
		adjs = append(adjs, model.Adjustment{
			ID:            next,
			Type:          t,
			Description:   desc,
			DebitAccount:  drAcc,
			CreditAccount: crAcc,
			Amount:        amt,
		})
		next++
	}

	netDr := func(acct string) decimal.Decimal {
		b := base[acct]
		return b.Debit.Sub(b.Credit)
	}
	netCr := func(acct string) decimal.Decimal {
		return netDr(acct).Neg()
	}

	// Accrued expense: salaries earned by employees but unpaid at
	// period end. Always applicable.
	add(model.AdjAccruedExpense, "Accrued salaries at period end",
		"Salaries Expense", "Salaries Payable", g.amount(500, 4000, 250))

	// Accrued revenue: interest earned but not yet received.
	add(model.AdjAccruedRevenue, "Accrued interest earned but not received",
		"Interest Receivable", "Interest Income", g.amount(100, 1000, 50))

	// A second accrual keeps every scenario at three or more
	// adjustments even when no deferrable balances exist.
	add(model.AdjAccruedExpense, "Utilities consumed but unbilled at period end",
		"Utilities Expense", "Utilities Payable", g.amount(250, 2000, 250))

	// Deferred expense, bounded by the unexpired/prepaid balance so the
	// entry is always realizable.
	if g.cfg.ExpenseMethod == model.MethodExpense {
		if paid := netDr("Insurance Expense"); paid.IsPositive() {
			add(model.AdjDeferredExpense, "Unexpired portion of insurance premium",
				"Prepaid Insurance", "Insurance Expense", g.fraction(paid))
		}
	} else {
		if prepaid := netDr("Prepaid Insurance"); prepaid.IsPositive() {
			add(model.AdjDeferredExpense, "Expired portion of prepaid insurance",
				"Insurance Expense", "Prepaid Insurance", g.fraction(prepaid))
		}
	}

	// Deferred income, bounded by the unearned balance (liability
	// method) or the advances recorded straight to revenue (income
	// method).
	if g.cfg.IncomeMethod == model.MethodIncome {
		if g.advances.IsPositive() {
			add(model.AdjDeferredIncome, "Unearned portion of advance collections",
				g.chart.revenue, g.chart.unearned, g.fraction(g.advances))
		}
	} else {
		if unearned := netCr(g.chart.unearned); unearned.IsPositive() {
			add(model.AdjDeferredIncome, "Earned portion of advance collections",
				g.chart.unearned, g.chart.revenue, g.fraction(unearned))
		}
	}

	// Depreciation: a month's straight-line share of equipment cost.
	if equip := netDr("Equipment"); equip.IsPositive() {
		add(model.AdjDepreciation, "Monthly depreciation of equipment",
			"Depreciation Expense", "Accumulated Depreciation - Equipment",
			equip.Mul(decimal.NewFromFloat(0.02)).Round(0))
	}

	// Bad debts: estimated as a percentage of open receivables.
	if ar := netDr("Accounts Receivable"); ar.IsPositive() {
		add(model.AdjBadDebts, "Estimated uncollectible accounts",
			"Bad Debts Expense", "Allowance for Bad Debts",
			ar.Mul(decimal.NewFromFloat(0.02)).Round(0))
	}

	// Supplies used: counted supplies on hand are below the recorded
	// balance.
	if supplies := netDr("Supplies"); supplies.IsPositive() {
		add(model.AdjDeferredExpense, "Supplies used during the period",
			"Supplies Expense", "Supplies", g.fraction(supplies))
	}

	return adjs
}
