package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/model"
)

// beginningBalances generates prior-year carryover balances for a
// subsequent-year scenario. Each account carries exactly one side, and
// the capital account is the balancing plug, which the chosen ranges
// keep strictly positive.
func (g *gen) beginningBalances() model.Ledger {
	bb := make(model.Ledger)

	cash := g.amount(20000, 40000, 1000)
	receivable := g.amount(5000, 15000, 500)
	supplies := g.amount(1000, 3000, 250)
	equipment := g.amount(20000, 50000, 1000)
	accumDep := equipment.Mul(decimal.NewFromFloat(0.2)).Round(0)
	payable := g.amount(3000, 10000, 500)
	note := g.amount(5000, 15000, 1000)

	bb.Add("Cash", cash, decimal.Zero)
	bb.Add("Accounts Receivable", receivable, decimal.Zero)
	bb.Add("Supplies", supplies, decimal.Zero)
	bb.Add("Equipment", equipment, decimal.Zero)
	bb.Add("Accumulated Depreciation - Equipment", decimal.Zero, accumDep)
	bb.Add("Accounts Payable", decimal.Zero, payable)
	bb.Add("Notes Payable", decimal.Zero, note)

	capital := cash.Add(receivable).Add(supplies).Add(equipment).
		Sub(accumDep).Sub(payable).Sub(note)
	bb.Add(g.chart.capital, decimal.Zero, capital)

	return bb
}
