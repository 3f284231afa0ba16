package grade

import (
	"strings"
	"time"

	"github.com/drillbook-dev/drillbook/internal/id"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// journalPage is the posting reference a ledger row carries back to the
// general journal.
const journalPage = "GJ-1"

type postingAnswer struct {
	Ledgers  map[string][]LedgerRow `json:"ledgers"`  // account → ledger-card rows
	PostRefs map[string]bool        `json:"postRefs"` // posting ref → checkbox
}

// ledgerPost is one expected ledger-card row. Ref is empty for
// beginning-balance rows, which are carried forward, not posted.
type ledgerPost struct {
	Ref         string
	Date        string
	Particulars string
	PR          string
	Side        model.NormalSide
	Amount      model.Balance // the side's column amount on its side
}

// expectedPostings rebuilds every ledger card from beginning balances
// plus transactions, in posting order, each row tagged with the journal
// line it came from.
func expectedPostings(a *model.Activity) map[string][]ledgerPost {
	cards := make(map[string][]ledgerPost)

	firstOfMonth := time.Date(a.Config.Year, a.Config.Month, 1, 0, 0, 0, 0, time.UTC)
	for acct, b := range a.BeginningBalances {
		side, amt := b.Net()
		if amt.IsZero() {
			continue
		}
		post := ledgerPost{
			Date:        firstOfMonth.Format(journalDateFormat),
			Particulars: "Balance",
			Side:        side,
		}
		if side == model.SideDebit {
			post.Amount.Debit = amt
		} else {
			post.Amount.Credit = amt
		}
		cards[acct] = append(cards[acct], post)
	}

	for _, tx := range a.Transactions {
		date := tx.Date.Format(journalDateFormat)
		for i, l := range tx.Debits {
			cards[l.Account] = append(cards[l.Account], ledgerPost{
				Ref:         id.FormatPostingRef(tx.ID, "dr", i),
				Date:        date,
				Particulars: tx.Description,
				PR:          journalPage,
				Side:        model.SideDebit,
				Amount:      model.Balance{Debit: l.Amount},
			})
		}
		for i, l := range tx.Credits {
			cards[l.Account] = append(cards[l.Account], ledgerPost{
				Ref:         id.FormatPostingRef(tx.ID, "cr", i),
				Date:        date,
				Particulars: tx.Description,
				PR:          journalPage,
				Side:        model.SideCredit,
				Amount:      model.Balance{Credit: l.Amount},
			})
		}
	}
	return cards
}

// Step3 grades posting. Each expected ledger row is checked positionally
// for date, particulars, posting reference, and amount column; the
// posting-reference checkboxes earn credit only for journal lines whose
// ledger row was itself correctly posted. Checkbox state alone earns
// nothing: correctness is posting-derived, the checkbox corroborates.
func Step3(a *model.Activity, raw []byte) Result {
	var ans postingAnswer
	decode(raw, &ans)

	cards := make(map[string][]LedgerRow, len(ans.Ledgers))
	for k, v := range ans.Ledgers {
		cards[strings.ToLower(strings.TrimSpace(k))] = v
	}

	score, max := 0, 0
	// Refs whose ledger row earned every point this call; shared by the
	// checkbox scoring branch below.
	posted := make(map[string]bool)

	expected := expectedPostings(a)
	for acct, posts := range expected {
		got := cards[strings.ToLower(acct)]
		for i, post := range posts {
			max += 4
			if i >= len(got) {
				continue
			}
			row := got[i]
			points := 0
			if nameMatch(row.Date, post.Date) {
				points++
			}
			if nameMatch(row.Particulars, post.Particulars) {
				points++
			}
			if nameMatch(row.PR, post.PR) {
				points++
			}
			if post.Side == model.SideDebit {
				if amountsMatch(row.Debit.Decimal, post.Amount.Debit) && row.Credit.IsZero() {
					points++
				}
			} else {
				if amountsMatch(row.Credit.Decimal, post.Amount.Credit) && row.Debit.IsZero() {
					points++
				}
			}
			score += points
			if points == 4 && post.Ref != "" {
				posted[post.Ref] = true
			}
		}
	}

	// Checkbox grid: one point per journal line, awarded only when the
	// line is both checked and in the correctly-posted set.
	for _, posts := range expected {
		for _, post := range posts {
			if post.Ref == "" {
				continue
			}
			max++
			if ans.PostRefs[post.Ref] && posted[post.Ref] {
				score++
			}
		}
	}

	return finish(score, max, map[string]any{"correctlyPosted": posted})
}
