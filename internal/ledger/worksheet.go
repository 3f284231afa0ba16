package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// WorksheetRow holds the five column pairs for one account.
type WorksheetRow struct {
	Account         string
	Unadjusted      model.Balance
	Adjustments     model.Balance
	Adjusted        model.Balance
	IncomeStatement model.Balance
	BalanceSheet    model.Balance
}

// Worksheet is the computed ten-column worksheet plus the net income
// (or loss) plug that balances the income-statement and balance-sheet
// column pairs.
type Worksheet struct {
	Rows []WorksheetRow
	// NetIncome is positive for income, negative for a loss.
	NetIncome decimal.Decimal
}

// NetLabel is the conventional label of the worksheet plug row.
func (w Worksheet) NetLabel() string {
	if w.NetIncome.IsNegative() {
		return "Net Loss"
	}
	return "Net Income"
}

// netOn places a balance's net amount on its side as a single-column pair.
func netOn(b model.Balance) model.Balance {
	side, amt := b.Net()
	if amt.IsZero() {
		return model.Balance{Debit: decimal.Zero, Credit: decimal.Zero}
	}
	if side == model.SideDebit {
		return model.Balance{Debit: amt, Credit: decimal.Zero}
	}
	return model.Balance{Debit: decimal.Zero, Credit: amt}
}

// isIncomeStatement reports whether an account's adjusted balance
// extends to the income-statement columns rather than the balance
// sheet. Nominal accounts other than drawing go to the income
// statement; drawing is closed directly to capital and stays on the
// balance-sheet side of the worksheet.
func isIncomeStatement(account string) bool {
	switch classify.Type(account) {
	case model.AccountTypeRevenue, model.AccountTypeExpense:
		return true
	}
	return false
}

// BuildWorksheet recomputes the worksheet from an activity's base
// ledger and adjustments.
func BuildWorksheet(a *model.Activity) Worksheet {
	adjustedLedger := Adjusted(a.Ledger, a.Adjustments)

	// Raw adjustment columns per account (both sides may be populated).
	adjCols := make(model.Ledger)
	for _, adj := range a.Adjustments {
		adjCols.Add(adj.DebitAccount, adj.Amount, decimal.Zero)
		adjCols.Add(adj.CreditAccount, decimal.Zero, adj.Amount)
	}

	ws := Worksheet{NetIncome: decimal.Zero}
	for _, acct := range AccountsOf(adjustedLedger) {
		row := WorksheetRow{
			Account:     acct,
			Unadjusted:  netOn(a.Ledger[acct]),
			Adjustments: adjCols[acct],
			Adjusted:    netOn(adjustedLedger[acct]),
		}
		if isIncomeStatement(acct) {
			row.IncomeStatement = row.Adjusted
			ws.NetIncome = ws.NetIncome.Add(row.Adjusted.Credit).Sub(row.Adjusted.Debit)
		} else {
			row.BalanceSheet = row.Adjusted
		}
		ws.Rows = append(ws.Rows, row)
	}
	return ws
}

// Row returns the worksheet row for an account, if present.
func (w Worksheet) Row(account string) (WorksheetRow, bool) {
	for _, r := range w.Rows {
		if r.Account == account {
			return r, true
		}
	}
	return WorksheetRow{}, false
}
