// Package ledger folds transactions, beginning balances, and adjusting
// entries into per-account debit/credit totals, and derives the
// worksheet, statement totals, and post-closing balances the step
// validators grade against. Every function is a pure computation over
// its inputs.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// Aggregate folds beginning balances and transaction postings into a
// fresh ledger. beginning may be nil.
func Aggregate(txs []model.Transaction, beginning model.Ledger) model.Ledger {
	out := make(model.Ledger)
	for acct, b := range beginning {
		out.Add(acct, b.Debit, b.Credit)
	}
	for _, tx := range txs {
		for _, l := range tx.Debits {
			out.Add(l.Account, l.Amount, decimal.Zero)
		}
		for _, l := range tx.Credits {
			out.Add(l.Account, decimal.Zero, l.Amount)
		}
	}
	return out
}

// Adjusted layers adjusting entries on top of a base ledger using the
// same accumulate pattern. The base is not mutated.
func Adjusted(base model.Ledger, adjs []model.Adjustment) model.Ledger {
	out := base.Clone()
	for _, adj := range adjs {
		out.Add(adj.DebitAccount, adj.Amount, decimal.Zero)
		out.Add(adj.CreditAccount, decimal.Zero, adj.Amount)
	}
	return out
}

// Totals sums the net debit balances and net credit balances across all
// accounts, as a trial balance's column totals do.
func Totals(l model.Ledger) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, b := range l {
		side, amt := b.Net()
		if side == model.SideDebit {
			debit = debit.Add(amt)
		} else {
			credit = credit.Add(amt)
		}
	}
	return debit, credit
}

// typeRank orders accounts for trial-balance and worksheet presentation:
// assets, liabilities, equity, revenue, expenses.
func typeRank(name string) int {
	switch classify.Type(name) {
	case model.AccountTypeAsset:
		return 0
	case model.AccountTypeLiability:
		return 1
	case model.AccountTypeEquity:
		return 2
	case model.AccountTypeRevenue:
		return 3
	default:
		return 4
	}
}

// SortAccounts orders account names by element then alphabetically.
func SortAccounts(names []string) {
	sort.Slice(names, func(i, j int) bool {
		ri, rj := typeRank(names[i]), typeRank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
}

// AccountsOf returns the sorted account names carrying any activity in
// the ledger (zero-net accounts included; they still appear on ledgers).
func AccountsOf(l model.Ledger) []string {
	names := make([]string, 0, len(l))
	for acct := range l {
		names = append(names, acct)
	}
	SortAccounts(names)
	return names
}
