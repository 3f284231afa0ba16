package grade

import (
	"strings"

	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// WorksheetRowAnswer is one learner worksheet row: the five column
// pairs for a single account.
type WorksheetRowAnswer struct {
	Account        string `json:"account"`
	UnadjDebit     Amount `json:"unadjDebit"`
	UnadjCredit    Amount `json:"unadjCredit"`
	AdjDebit       Amount `json:"adjDebit"`
	AdjCredit      Amount `json:"adjCredit"`
	AdjustedDebit  Amount `json:"adjustedDebit"`
	AdjustedCredit Amount `json:"adjustedCredit"`
	ISDebit        Amount `json:"isDebit"`
	ISCredit       Amount `json:"isCredit"`
	BSDebit        Amount `json:"bsDebit"`
	BSCredit       Amount `json:"bsCredit"`
}

type worksheetAnswer struct {
	Rows []WorksheetRowAnswer `json:"rows"`
	// The net income/loss plug row, checked for presence and magnitude
	// rather than exact placement.
	NetLabel string `json:"netLabel"`
	NetIS    Amount `json:"netIS"`
	NetBS    Amount `json:"netBS"`
}

func pairMatch(gotDr, gotCr Amount, want model.Balance) bool {
	return amountsMatch(gotDr.Decimal, want.Debit) && amountsMatch(gotCr.Decimal, want.Credit)
}

// Step5 grades the ten-column worksheet: one point per column pair per
// account (both cells must agree), plus two points for the net
// income/loss plug row (label, magnitude).
func Step5(a *model.Activity, raw []byte) Result {
	var ans worksheetAnswer
	decode(raw, &ans)

	ws := ledger.BuildWorksheet(a)

	byName := make(map[string]WorksheetRowAnswer, len(ans.Rows))
	for _, r := range ans.Rows {
		byName[strings.ToLower(strings.TrimSpace(r.Account))] = r
	}

	score, max := 0, 0
	rowDetails := make(map[string][]bool, len(ws.Rows))
	for _, er := range ws.Rows {
		max += 5
		got, ok := byName[strings.ToLower(er.Account)]
		pairs := make([]bool, 5)
		if ok {
			pairs[0] = pairMatch(got.UnadjDebit, got.UnadjCredit, er.Unadjusted)
			pairs[1] = pairMatch(got.AdjDebit, got.AdjCredit, er.Adjustments)
			pairs[2] = pairMatch(got.AdjustedDebit, got.AdjustedCredit, er.Adjusted)
			pairs[3] = pairMatch(got.ISDebit, got.ISCredit, er.IncomeStatement)
			pairs[4] = pairMatch(got.BSDebit, got.BSCredit, er.BalanceSheet)
		}
		for _, p := range pairs {
			if p {
				score++
			}
		}
		rowDetails[er.Account] = pairs
	}

	// Plug row.
	max += 2
	label := strings.ToLower(strings.TrimSpace(ans.NetLabel))
	if label != "" && strings.Contains(label, strings.ToLower(ws.NetLabel())) {
		score++
	}
	mag := ws.NetIncome.Abs()
	if amountsMatch(ans.NetIS.Decimal, mag) && amountsMatch(ans.NetBS.Decimal, mag) {
		score++
	}

	if len(ans.Rows) > len(ws.Rows) && score == max && max > 0 {
		score = max - 1
	}
	return finish(score, max, map[string]any{"rows": rowDetails})
}
