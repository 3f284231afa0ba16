package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillbook-dev/drillbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func tx(id string, debits, credits []model.EntryLine) model.Transaction {
	return model.Transaction{ID: id, Debits: debits, Credits: credits}
}

func line(account, amount string) model.EntryLine {
	return model.EntryLine{Account: account, Amount: dec(amount)}
}

func TestAggregate_FoldsTransactions(t *testing.T) {
	txs := []model.Transaction{
		tx("2025-01-001",
			[]model.EntryLine{line("Cash", "10000")},
			[]model.EntryLine{line("Owner's Capital", "10000")}),
		tx("2025-01-002",
			[]model.EntryLine{line("Rent Expense", "2000")},
			[]model.EntryLine{line("Cash", "2000")}),
	}

	led := Aggregate(txs, nil)

	cash := led["Cash"]
	assert.True(t, cash.Debit.Equal(dec("10000")))
	assert.True(t, cash.Credit.Equal(dec("2000")))

	side, amt := led["Owner's Capital"].Net()
	assert.Equal(t, model.SideCredit, side)
	assert.True(t, amt.Equal(dec("10000")))
}

func TestAggregate_IncludesBeginningBalances(t *testing.T) {
	beginning := model.Ledger{
		"Cash":             {Debit: dec("5000")},
		"Accounts Payable": {Credit: dec("1500")},
	}
	txs := []model.Transaction{
		tx("2025-01-001",
			[]model.EntryLine{line("Accounts Payable", "500")},
			[]model.EntryLine{line("Cash", "500")}),
	}

	led := Aggregate(txs, beginning)

	_, cash := led["Cash"].Net()
	assert.True(t, cash.Equal(dec("4500")))

	side, ap := led["Accounts Payable"].Net()
	assert.Equal(t, model.SideCredit, side)
	assert.True(t, ap.Equal(dec("1000")))

	// Source ledger untouched.
	assert.True(t, beginning["Cash"].Debit.Equal(dec("5000")))
}

func TestAdjusted_LayersWithoutMutatingBase(t *testing.T) {
	base := model.Ledger{"Supplies": {Debit: dec("800")}}
	adjs := []model.Adjustment{{
		ID:            1,
		Type:          model.AdjDeferredExpense,
		DebitAccount:  "Supplies Expense",
		CreditAccount: "Supplies",
		Amount:        dec("300"),
	}}

	out := Adjusted(base, adjs)

	_, supplies := out["Supplies"].Net()
	assert.True(t, supplies.Equal(dec("500")))
	_, expense := out["Supplies Expense"].Net()
	assert.True(t, expense.Equal(dec("300")))

	assert.True(t, base["Supplies"].Debit.Equal(dec("800")))
	assert.True(t, base["Supplies"].Credit.IsZero())
}

func TestTotals_BalancedLedger(t *testing.T) {
	led := Aggregate([]model.Transaction{
		tx("2025-01-001",
			[]model.EntryLine{line("Cash", "9000")},
			[]model.EntryLine{line("Owner's Capital", "9000")}),
		tx("2025-01-002",
			[]model.EntryLine{line("Supplies", "600")},
			[]model.EntryLine{line("Accounts Payable", "600")}),
	}, nil)

	debit, credit := Totals(led)
	require.True(t, debit.Equal(credit))
	assert.True(t, debit.Equal(dec("9600")))
}

func TestSortAccounts_ElementOrderThenAlpha(t *testing.T) {
	names := []string{
		"Service Revenue",
		"Rent Expense",
		"Owner's Capital",
		"Accounts Payable",
		"Cash",
		"Accounts Receivable",
	}
	SortAccounts(names)
	assert.Equal(t, []string{
		"Accounts Receivable",
		"Cash",
		"Accounts Payable",
		"Owner's Capital",
		"Service Revenue",
		"Rent Expense",
	}, names)
}
