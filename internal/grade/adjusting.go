package grade

import (
	"sort"
	"strconv"

	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

type adjustingAnswer struct {
	// Two-line journal entries keyed by adjustment ID.
	Entries map[string][]JournalRow `json:"entries"`
	// Posted ending balance per affected account.
	Balances map[string]BalanceAnswer `json:"balances"`
}

// affectedAccounts lists every account any adjustment touches, sorted.
func affectedAccounts(adjs []model.Adjustment) []string {
	seen := make(map[string]bool)
	for _, adj := range adjs {
		seen[adj.DebitAccount] = true
		seen[adj.CreditAccount] = true
	}
	out := make([]string, 0, len(seen))
	for acct := range seen {
		out = append(out, acct)
	}
	sort.Strings(out)
	return out
}

// lookupBalance finds a learner balance by account, case-insensitively.
func lookupBalance(balances map[string]BalanceAnswer, account string) (BalanceAnswer, bool) {
	for k, v := range balances {
		if nameMatch(k, account) {
			return v, true
		}
	}
	return BalanceAnswer{}, false
}

// Step7 grades adjusting entries: four points per adjustment (debit
// account, debit amount, credit account, credit amount) and two points
// per affected account's posted ending balance (amount, side), checked
// against the adjusted ledger.
func Step7(a *model.Activity, raw []byte) Result {
	var ans adjustingAnswer
	decode(raw, &ans)

	score, max := 0, 0
	entryDetails := make(map[string]int, len(a.Adjustments))
	for _, adj := range a.Adjustments {
		max += 4
		points := 0
		rows := ans.Entries[strconv.Itoa(adj.ID)]
		if len(rows) > 0 {
			if nameMatch(rows[0].Particulars, adj.DebitAccount) {
				points++
			}
			if amountsMatch(rows[0].Debit.Decimal, adj.Amount) && rows[0].Credit.IsZero() {
				points++
			}
		}
		if len(rows) > 1 {
			if nameMatch(rows[1].Particulars, adj.CreditAccount) {
				points++
			}
			if amountsMatch(rows[1].Credit.Decimal, adj.Amount) && rows[1].Debit.IsZero() {
				points++
			}
		}
		score += points
		entryDetails[strconv.Itoa(adj.ID)] = points
	}

	adjusted := ledger.Adjusted(a.Ledger, a.Adjustments)
	balanceDetails := make(map[string]bool)
	for _, acct := range affectedAccounts(a.Adjustments) {
		wantSide, wantAmt := adjusted[acct].Net()
		max += 2
		got, ok := lookupBalance(ans.Balances, acct)
		if !ok {
			balanceDetails[acct] = false
			continue
		}
		points := 0
		if amountsMatch(got.Amount.Decimal, wantAmt) {
			points++
		}
		if normSide(got.Side) == wantSide {
			points++
		}
		score += points
		balanceDetails[acct] = points == 2
	}

	return finish(score, max, map[string]any{
		"entries":  entryDetails,
		"balances": balanceDetails,
	})
}
