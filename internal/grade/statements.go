package grade

import (
	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

type statementsAnswer struct {
	NetIncome                 Amount `json:"netIncome"`
	EndingCapital             Amount `json:"endingCapital"`
	TotalAssets               Amount `json:"totalAssets"`
	TotalLiabilitiesAndEquity Amount `json:"totalLiabilitiesAndEquity"`
}

// Step6 grades the financial statements loosely: statement layout
// legitimately varies, so only the final totals are checked against
// values recomputed independently from the worksheet.
func Step6(a *model.Activity, raw []byte) Result {
	var ans statementsAnswer
	decode(raw, &ans)

	want := ledger.Statements(a)
	checks := map[string]bool{
		"netIncome":                 amountsMatch(ans.NetIncome.Decimal, want.NetIncome),
		"endingCapital":             amountsMatch(ans.EndingCapital.Decimal, want.EndingCapital),
		"totalAssets":               amountsMatch(ans.TotalAssets.Decimal, want.TotalAssets),
		"totalLiabilitiesAndEquity": amountsMatch(ans.TotalLiabilitiesAndEquity.Decimal, want.TotalLiabilitiesAndEquity),
	}

	score := 0
	for _, ok := range checks {
		if ok {
			score++
		}
	}
	return finish(score, len(checks), checks)
}
