package grade

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

type trialBalanceAnswer struct {
	Company     string            `json:"company"`
	Title       string            `json:"title"`
	Date        string            `json:"date"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  Amount            `json:"totalDebit"`
	TotalCredit Amount            `json:"totalCredit"`
}

// lastDayOfMonth returns the final calendar day of the activity month.
func lastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// gradeTrialBalance scores a trial-balance answer against a ledger:
// three header points (company name present, document title, statement
// date), two points per account row (name, net amount in the correct
// single column), and two column-total points. rejectNominal flags any
// row naming a closed nominal account as incorrect regardless of
// amount, for the post-closing variant.
func gradeTrialBalance(a *model.Activity, led model.Ledger, raw []byte, rejectNominal bool) Result {
	var ans trialBalanceAnswer
	decode(raw, &ans)

	score, max := 0, 0

	// Header. The statement date earns its point only in the long
	// written form, e.g. "January 31, 2025"; matching is otherwise
	// case- and whitespace-insensitive like any name.
	max += 3
	if strings.TrimSpace(ans.Company) != "" {
		score++
	}
	if strings.Contains(strings.ToLower(ans.Title), "trial balance") {
		score++
	}
	wantDate := lastDayOfMonth(a.Config.Year, a.Config.Month).Format("January 2, 2006")
	if nameMatch(ans.Date, wantDate) {
		score++
	}

	// Expected rows: every account with a non-zero net balance, in
	// element order.
	type tbRow struct {
		account string
		side    model.NormalSide
		amount  decimal.Decimal
	}
	var expected []tbRow
	for _, acct := range ledger.AccountsOf(led) {
		side, amt := led[acct].Net()
		if amt.IsZero() {
			continue
		}
		expected = append(expected, tbRow{account: acct, side: side, amount: amt})
	}

	used := make([]bool, len(ans.Rows))
	rowDetails := make(map[string]bool, len(expected))
	clean := true // no extra or nominal learner rows
	for _, er := range expected {
		max += 2
		found := -1
		for i, lr := range ans.Rows {
			if !used[i] && nameMatch(lr.Account, er.account) {
				found = i
				break
			}
		}
		rowDetails[er.account] = false
		if found < 0 {
			clean = false
			continue
		}
		used[found] = true
		score++
		lr := ans.Rows[found]
		var ok bool
		if er.side == model.SideDebit {
			ok = amountsMatch(lr.Debit.Decimal, er.amount) && lr.Credit.IsZero()
		} else {
			ok = amountsMatch(lr.Credit.Decimal, er.amount) && lr.Debit.IsZero()
		}
		if ok {
			score++
			rowDetails[er.account] = true
		}
	}
	for i, lr := range ans.Rows {
		if used[i] {
			continue
		}
		clean = false
		if rejectNominal && classify.IsNominal(lr.Account) {
			rowDetails[strings.TrimSpace(lr.Account)] = false
		}
	}

	// Column totals.
	wantDr, wantCr := ledger.Totals(led)
	max += 2
	if amountsMatch(ans.TotalDebit.Decimal, wantDr) {
		score++
	}
	if amountsMatch(ans.TotalCredit.Decimal, wantCr) {
		score++
	}

	if !clean && score == max && max > 0 {
		score = max - 1
	}
	return finish(score, max, map[string]any{"rows": rowDetails})
}

// Step4 grades the unadjusted trial balance against the base ledger.
func Step4(a *model.Activity, raw []byte) Result {
	return gradeTrialBalance(a, a.Ledger, raw, false)
}

// Step9 grades the post-closing trial balance: real accounts only,
// capital has absorbed net income and drawings, and any row naming a
// closed nominal account is wrong no matter its amount.
func Step9(a *model.Activity, raw []byte) Result {
	return gradeTrialBalance(a, ledger.PostClosing(a), raw, true)
}
