package grade

// JournalRow is one line of a learner-entered journal: date and
// particulars as raw strings (indentation is graded on the raw value),
// posting reference, and one amount per column.
type JournalRow struct {
	Date        string `json:"date"`
	Particulars string `json:"particulars"`
	PR          string `json:"pr"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// LedgerRow is one line of a learner-entered ledger card.
type LedgerRow struct {
	Date        string `json:"date"`
	Particulars string `json:"particulars"`
	PR          string `json:"pr"`
	Debit       Amount `json:"debit"`
	Credit      Amount `json:"credit"`
}

// BalanceAnswer is a learner-entered closing balance: an amount and the
// side it sits on.
type BalanceAnswer struct {
	Amount Amount `json:"amount"`
	Side   string `json:"side"`
}

// TrialBalanceRow is one learner row of a trial balance.
type TrialBalanceRow struct {
	Account string `json:"account"`
	Debit   Amount `json:"debit"`
	Credit  Amount `json:"credit"`
}
