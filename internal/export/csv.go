// Package export writes generated activity data as CSV files a host
// (or teacher) can hand out alongside the drill.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// JournalHeader is the CSV header for journal.csv.
const JournalHeader = "entry_id,date,account,debit,credit,description"

const (
	journalFields = 6
	dateFormat    = "2006-01-02"
	colEntryID    = 0
	colDate       = 1
	colAccount    = 2
	colDebit      = 3
	colCredit     = 4
	colDesc       = 5
)

// WriteJournal writes the generated journal (including header), one row
// per entry line, debits before credits within an entry.
func WriteJournal(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(JournalHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		for _, l := range tx.Debits {
			row := make([]string, journalFields)
			row[colEntryID] = tx.ID
			row[colDate] = tx.Date.Format(dateFormat)
			row[colAccount] = l.Account
			row[colDebit] = l.Amount.StringFixed(2)
			row[colDesc] = tx.Description
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing entry %s: %w", tx.ID, err)
			}
		}
		for _, l := range tx.Credits {
			row := make([]string, journalFields)
			row[colEntryID] = tx.ID
			row[colDate] = tx.Date.Format(dateFormat)
			row[colAccount] = l.Account
			row[colCredit] = l.Amount.StringFixed(2)
			row[colDesc] = tx.Description
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing entry %s: %w", tx.ID, err)
			}
		}
	}
	return cw.Error()
}

// TrialBalanceHeader is the CSV header for trial-balance.csv.
const TrialBalanceHeader = "account,debit,credit"

// WriteTrialBalance writes the expected trial balance of a ledger: one
// row per account with a non-zero net balance, plus a totals row.
func WriteTrialBalance(w io.Writer, led model.Ledger) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TrialBalanceHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, acct := range ledger.AccountsOf(led) {
		side, amt := led[acct].Net()
		if amt.IsZero() {
			continue
		}
		row := []string{acct, "", ""}
		if side == model.SideDebit {
			row[1] = amt.StringFixed(2)
		} else {
			row[2] = amt.StringFixed(2)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing account %q: %w", acct, err)
		}
	}

	dr, cr := ledger.Totals(led)
	if err := cw.Write([]string{"TOTAL", dr.StringFixed(2), cr.StringFixed(2)}); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}
	return cw.Error()
}
