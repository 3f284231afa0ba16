// Package scenario procedurally generates balanced bookkeeping
// activities: a transaction set drawn from weighted, constraint-checked
// templates, optional prior-year beginning balances, and adjusting
// entries guaranteed realizable against the resulting ledger.
package scenario

import (
	"time"

	"github.com/drillbook-dev/drillbook/internal/model"
)

const (
	minTransactions = 5
	maxTransactions = 30
)

// Normalize clamps and defaults a config in place of erroring on edge
// cases: out-of-range transaction counts clamp to the floor/ceiling,
// zero fields get defaults.
func Normalize(cfg model.Config) model.Config {
	if cfg.Transactions < minTransactions {
		cfg.Transactions = minTransactions
	}
	if cfg.Transactions > maxTransactions {
		cfg.Transactions = maxTransactions
	}
	if cfg.BusinessName == "" {
		cfg.BusinessName = "Horizon Trading"
	}
	switch cfg.BusinessType {
	case model.BusinessService, model.BusinessMerchandising, model.BusinessManufacturing, model.BusinessBanking:
	default:
		cfg.BusinessType = model.BusinessService
	}
	switch cfg.Ownership {
	case model.OwnershipSoleProprietorship, model.OwnershipPartnership, model.OwnershipCorporation, model.OwnershipCooperative:
	default:
		cfg.Ownership = model.OwnershipSoleProprietorship
	}
	if cfg.Inventory != model.InventoryPerpetual {
		cfg.Inventory = model.InventoryPeriodic
	}
	if cfg.ExpenseMethod != model.MethodExpense {
		cfg.ExpenseMethod = model.MethodAsset
	}
	if cfg.IncomeMethod != model.MethodIncome {
		cfg.IncomeMethod = model.MethodLiability
	}
	if cfg.Year == 0 {
		cfg.Year = 2025
	}
	if cfg.Month < time.January || cfg.Month > time.December {
		cfg.Month = time.January
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// chart holds the business-specific account names a scenario draws from.
type chart struct {
	capital  string
	drawing  string
	revenue  string
	unearned string
}

// equityAccounts returns the capital and drawing account names for an
// ownership form. Exactly one capital account per scenario.
func equityAccounts(o model.OwnershipForm) (capital, drawing string) {
	switch o {
	case model.OwnershipPartnership:
		return "Partners' Capital", "Partners' Drawing"
	case model.OwnershipCorporation:
		return "Share Capital", "Dividends"
	case model.OwnershipCooperative:
		return "Members' Share Capital", "Members' Drawing"
	default:
		return "Owner's Capital", "Owner's Drawing"
	}
}

// chartFor builds the name chart for a config.
func chartFor(cfg model.Config) chart {
	c := chart{}
	c.capital, c.drawing = equityAccounts(cfg.Ownership)
	switch cfg.BusinessType {
	case model.BusinessMerchandising, model.BusinessManufacturing:
		c.revenue = "Sales"
		c.unearned = "Unearned Revenue"
	case model.BusinessBanking:
		c.revenue = "Interest Income"
		c.unearned = "Unearned Interest Income"
	default:
		c.revenue = "Service Revenue"
		c.unearned = "Unearned Service Revenue"
	}
	return c
}
