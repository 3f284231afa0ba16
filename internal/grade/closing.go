package grade

import (
	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

type closingAnswer struct {
	// The four REID journal blocks: "revenue", "expense",
	// "incomeSummary", "drawing".
	Blocks map[string][]JournalRow `json:"blocks"`
	// Posted ending balance per account after closing.
	Balances map[string]BalanceAnswer `json:"balances"`
}

// blockTotal reduces a journal block to a single magnitude: the average
// of its debit and credit column sums, which agree in a balanced block.
func blockTotal(rows []JournalRow) decimal.Decimal {
	dr, cr := decimal.Zero, decimal.Zero
	for _, r := range rows {
		dr = dr.Add(r.Debit.Decimal)
		cr = cr.Add(r.Credit.Decimal)
	}
	return dr.Add(cr).Div(decimal.NewFromInt(2))
}

// Step8 grades closing entries: one point per REID block total, one
// point per nominal account posted to exactly zero, and two points for
// the capital account ending at beginning capital plus net income less
// drawings.
func Step8(a *model.Activity, raw []byte) Result {
	var ans closingAnswer
	decode(raw, &ans)

	want := ledger.Closing(a)
	score, max := 0, 0

	blocks := map[string]decimal.Decimal{
		"revenue":       want.Revenue,
		"expense":       want.Expense,
		"incomeSummary": want.IncomeSummary,
		"drawing":       want.Drawing,
	}
	blockDetails := make(map[string]bool, len(blocks))
	for name, wantTotal := range blocks {
		max++
		ok := amountsMatch(blockTotal(ans.Blocks[name]), wantTotal)
		blockDetails[name] = ok
		if ok {
			score++
		}
	}

	// Every nominal account must end at exactly zero.
	adjusted := ledger.Adjusted(a.Ledger, a.Adjustments)
	balanceDetails := make(map[string]bool)
	for _, acct := range ledger.AccountsOf(adjusted) {
		if !classify.IsNominal(acct) {
			continue
		}
		max++
		got, found := lookupBalance(ans.Balances, acct)
		ok := found && got.Amount.IsZero()
		balanceDetails[acct] = ok
		if ok {
			score++
		}
	}

	// Capital absorbs the period's result.
	totals := ledger.Statements(a)
	max += 2
	got, found := lookupBalance(ans.Balances, a.CapitalAccount)
	capOK := false
	if found {
		if amountsMatch(got.Amount.Decimal, totals.EndingCapital) {
			score++
		}
		if normSide(got.Side) == model.SideCredit {
			score++
			capOK = amountsMatch(got.Amount.Decimal, totals.EndingCapital)
		}
	}
	balanceDetails[a.CapitalAccount] = capOK

	return finish(score, max, map[string]any{
		"blocks":   blockDetails,
		"balances": balanceDetails,
	})
}
