package grade

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/model"
)

// creditIndent is the bookkeeping convention for general-journal credit
// lines: exactly three leading spaces, checked on the raw string.
const creditIndent = 3

const journalDateFormat = "Jan. 2"

type journalAnswer struct {
	Entries map[string][]JournalRow `json:"entries"` // keyed by entry ID
}

// expectedRow is one row of the reconstructed journal: an optional year
// row, then debit lines, then indented credit lines.
type expectedRow struct {
	yearRow bool
	date    string // non-empty when the date column is graded on this row
	account string
	indent  bool
	debit   decimal.Decimal
	credit  decimal.Decimal
}

// expectedEntryRows reconstructs the journal rows for one transaction.
// The year row appears above the first entry only.
func expectedEntryRows(tx model.Transaction, first bool) []expectedRow {
	var rows []expectedRow
	if first {
		rows = append(rows, expectedRow{yearRow: true, date: strconv.Itoa(tx.Date.Year())})
	}
	for i, l := range tx.Debits {
		r := expectedRow{account: l.Account, debit: l.Amount}
		if i == 0 {
			r.date = tx.Date.Format(journalDateFormat)
		}
		rows = append(rows, r)
	}
	for _, l := range tx.Credits {
		rows = append(rows, expectedRow{account: l.Account, indent: true, credit: l.Amount})
	}
	return rows
}

// particularsMatch grades the account column on the raw string: debit
// lines carry no leading space, credit lines exactly the conventional
// indent and no more.
func particularsMatch(raw, account string, indent bool) bool {
	want := 0
	if indent {
		want = creditIndent
	}
	if leadingSpaces(raw) != want {
		return false
	}
	return nameMatch(raw, account)
}

// columnsMatch grades an amount landing in the expected column with the
// other column blank.
func columnsMatch(row JournalRow, debit, credit decimal.Decimal) bool {
	if !debit.IsZero() {
		return amountsMatch(row.Debit.Decimal, debit) && row.Credit.IsZero()
	}
	return amountsMatch(row.Credit.Decimal, credit) && row.Debit.IsZero()
}

// entryDetail reports how one journal entry scored.
type entryDetail struct {
	Score    int  `json:"score"`
	MaxScore int  `json:"maxScore"`
	Perfect  bool `json:"perfect"`
}

// Step2 grades journalizing. Points per entry: the year row (first
// entry only), the date row, and account + amount-column per line.
// Missing or extra rows force the entry imperfect even when the rows
// that are present score fully.
func Step2(a *model.Activity, raw []byte) Result {
	var ans journalAnswer
	decode(raw, &ans)

	// Learner entry keys matched case-insensitively.
	entries := make(map[string][]JournalRow, len(ans.Entries))
	for k, v := range ans.Entries {
		entries[strings.ToLower(strings.TrimSpace(k))] = v
	}

	score, max := 0, 0
	details := make(map[string]entryDetail, len(a.Transactions))
	for i, tx := range a.Transactions {
		expected := expectedEntryRows(tx, i == 0)
		entryMax := 0
		for _, er := range expected {
			if er.yearRow || er.date != "" {
				entryMax++
			}
			if !er.yearRow {
				entryMax += 2
			}
		}

		got := entries[strings.ToLower(tx.ID)]
		entryScore := 0
		for j, er := range expected {
			if j >= len(got) {
				break
			}
			row := got[j]
			if er.yearRow {
				if strings.TrimSpace(row.Date) == er.date {
					entryScore++
				}
				continue
			}
			if er.date != "" && nameMatch(row.Date, er.date) {
				entryScore++
			}
			if particularsMatch(row.Particulars, er.account, er.indent) {
				entryScore++
			}
			if columnsMatch(row, er.debit, er.credit) {
				entryScore++
			}
		}
		if len(got) > len(expected) && entryScore == entryMax && entryMax > 0 {
			entryScore = entryMax - 1
		}

		score += entryScore
		max += entryMax
		details[tx.ID] = entryDetail{
			Score:    entryScore,
			MaxScore: entryMax,
			Perfect:  entryScore == entryMax && len(got) == len(expected),
		}
	}
	return finish(score, max, details)
}
