// Package classify maps free-form account names to accounting elements
// and normal balance sides. Classification is a total function: learner
// input is often novel or misspelled, so unknown names fall back to a
// safe default instead of erroring.
package classify

import (
	"strings"

	"github.com/drillbook-dev/drillbook/internal/model"
)

type rule struct {
	substr string
	typ    model.AccountType
	side   model.NormalSide
}

// Rules are checked in order, so more specific substrings must come
// before generic ones ("sales returns and allowances" before "sales",
// "payable" before "dividends" for Dividends Payable).
var rules = []rule{
	{"sales returns and allowances", model.AccountTypeRevenue, model.SideDebit},
	{"sales discount", model.AccountTypeRevenue, model.SideDebit},
	{"purchase returns and allowances", model.AccountTypeExpense, model.SideCredit},
	{"purchase discount", model.AccountTypeExpense, model.SideCredit},
	{"accumulated depreciation", model.AccountTypeAsset, model.SideCredit},
	{"allowance for bad debts", model.AccountTypeAsset, model.SideCredit},
	{"allowance for doubtful", model.AccountTypeAsset, model.SideCredit},
	{"unearned", model.AccountTypeLiability, model.SideCredit},
	{"deferred revenue", model.AccountTypeLiability, model.SideCredit},
	{"prepaid", model.AccountTypeAsset, model.SideDebit},
	{"income summary", model.AccountTypeEquity, model.SideCredit},
	{"expense", model.AccountTypeExpense, model.SideDebit},
	{"freight in", model.AccountTypeExpense, model.SideDebit},
	{"freight out", model.AccountTypeExpense, model.SideDebit},
	{"purchases", model.AccountTypeExpense, model.SideDebit},
	{"cost of goods sold", model.AccountTypeExpense, model.SideDebit},
	{"manufacturing overhead", model.AccountTypeExpense, model.SideDebit},
	{"bad debts", model.AccountTypeExpense, model.SideDebit},
	{"receivable", model.AccountTypeAsset, model.SideDebit},
	{"payable", model.AccountTypeLiability, model.SideCredit},
	{"drawing", model.AccountTypeEquity, model.SideDebit},
	{"withdrawal", model.AccountTypeEquity, model.SideDebit},
	{"dividends", model.AccountTypeEquity, model.SideDebit},
	{"capital", model.AccountTypeEquity, model.SideCredit},
	{"owner's equity", model.AccountTypeEquity, model.SideCredit},
	{"members' equity", model.AccountTypeEquity, model.SideCredit},
	{"retained earnings", model.AccountTypeEquity, model.SideCredit},
	{"revenue", model.AccountTypeRevenue, model.SideCredit},
	{"income", model.AccountTypeRevenue, model.SideCredit},
	{"fees earned", model.AccountTypeRevenue, model.SideCredit},
	{"service charges", model.AccountTypeRevenue, model.SideCredit},
	{"sales", model.AccountTypeRevenue, model.SideCredit},
	{"deposit liabilities", model.AccountTypeLiability, model.SideCredit},
	{"mortgage", model.AccountTypeLiability, model.SideCredit},
	{"loan", model.AccountTypeAsset, model.SideDebit},
	{"cash", model.AccountTypeAsset, model.SideDebit},
	{"inventory", model.AccountTypeAsset, model.SideDebit},
	{"supplies", model.AccountTypeAsset, model.SideDebit},
	{"equipment", model.AccountTypeAsset, model.SideDebit},
	{"furniture", model.AccountTypeAsset, model.SideDebit},
	{"building", model.AccountTypeAsset, model.SideDebit},
	{"land", model.AccountTypeAsset, model.SideDebit},
	{"raw materials", model.AccountTypeAsset, model.SideDebit},
	{"work in process", model.AccountTypeAsset, model.SideDebit},
	{"finished goods", model.AccountTypeAsset, model.SideDebit},
}

// Classify maps an account name to its element and normal side.
// Unknown names classify as a debit-normal asset.
func Classify(name string) (model.AccountType, model.NormalSide) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, r := range rules {
		if strings.Contains(n, r.substr) {
			return r.typ, r.side
		}
	}
	return model.AccountTypeAsset, model.SideDebit
}

// Type returns only the element for a name.
func Type(name string) model.AccountType {
	t, _ := Classify(name)
	return t
}

// IsNominal reports whether an account is temporary: closed to capital
// at period end. Revenue and expense accounts, the income summary, and
// drawing/dividend accounts are nominal; everything else is real.
func IsNominal(name string) bool {
	t, side := Classify(name)
	switch t {
	case model.AccountTypeRevenue, model.AccountTypeExpense:
		return true
	case model.AccountTypeEquity:
		// Drawing, dividends, income summary. Capital-like credit-normal
		// equity is real except the income summary clearing account.
		if side == model.SideDebit {
			return true
		}
		return strings.Contains(strings.ToLower(name), "income summary")
	}
	return false
}

// IsCapital reports whether a name is a credit-normal equity account
// other than the income summary.
func IsCapital(name string) bool {
	t, side := Classify(name)
	return t == model.AccountTypeEquity && side == model.SideCredit && !strings.Contains(strings.ToLower(name), "income summary")
}
