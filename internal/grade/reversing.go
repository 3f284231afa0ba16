package grade

import (
	"strconv"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/model"
)

type reversingAnswer struct {
	// Entries keyed by adjustment ID; an absent or empty entry means
	// the learner chose not to reverse.
	Entries map[string][]JournalRow `json:"entries"`
}

// reversible reports whether an adjustment is eligible for a reversing
// entry: accruals always are; deferrals only when they were booked
// under the alternative (expense/income) method, which shows in the
// adjustment's own direction: an expense-method deferral debits an
// asset, an income-method deferral debits a revenue.
func reversible(adj model.Adjustment) bool {
	switch adj.Type {
	case model.AdjAccruedExpense, model.AdjAccruedRevenue:
		return true
	case model.AdjDeferredExpense:
		return classify.Type(adj.DebitAccount) == model.AccountTypeAsset
	case model.AdjDeferredIncome:
		return classify.Type(adj.DebitAccount) == model.AccountTypeRevenue
	default:
		return false
	}
}

// Step10 grades reversing entries: one eligibility point per adjustment
// (an entry is present exactly when the adjustment is reversible), and
// for reversible adjustments two more points for the mirror image of
// the original entry (swapped accounts, same amount).
func Step10(a *model.Activity, raw []byte) Result {
	var ans reversingAnswer
	decode(raw, &ans)

	score, max := 0, 0
	details := make(map[string]bool, len(a.Adjustments))
	for _, adj := range a.Adjustments {
		key := strconv.Itoa(adj.ID)
		rows := ans.Entries[key]
		eligible := reversible(adj)

		max++
		if eligible == (len(rows) > 0) {
			score++
		}

		if !eligible {
			details[key] = len(rows) == 0
			continue
		}

		max += 2
		points := 0
		if len(rows) > 1 &&
			nameMatch(rows[0].Particulars, adj.CreditAccount) &&
			nameMatch(rows[1].Particulars, adj.DebitAccount) {
			points++
		}
		if len(rows) > 1 &&
			amountsMatch(rows[0].Debit.Decimal, adj.Amount) && rows[0].Credit.IsZero() &&
			amountsMatch(rows[1].Credit.Decimal, adj.Amount) && rows[1].Debit.IsZero() {
			points++
		}
		score += points
		details[key] = len(rows) > 0 && points == 2
	}

	return finish(score, max, map[string]any{"entries": details})
}
