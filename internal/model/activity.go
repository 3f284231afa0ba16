package model

import "time"

// BusinessType selects the transaction template library.
type BusinessType string

const (
	BusinessService       BusinessType = "service"
	BusinessMerchandising BusinessType = "merchandising"
	BusinessManufacturing BusinessType = "manufacturing"
	BusinessBanking       BusinessType = "banking"
)

// OwnershipForm selects the capital and drawing account names.
type OwnershipForm string

const (
	OwnershipSoleProprietorship OwnershipForm = "sole-proprietorship"
	OwnershipPartnership        OwnershipForm = "partnership"
	OwnershipCorporation        OwnershipForm = "corporation"
	OwnershipCooperative        OwnershipForm = "cooperative"
)

// InventorySystem selects periodic vs perpetual merchandise accounting.
type InventorySystem string

const (
	InventoryPeriodic  InventorySystem = "periodic"
	InventoryPerpetual InventorySystem = "perpetual"
)

// DeferralMethod selects how prepayments and advance collections are
// initially recorded.
type DeferralMethod string

const (
	// Deferred expenses.
	MethodAsset   DeferralMethod = "asset"
	MethodExpense DeferralMethod = "expense"
	// Deferred income.
	MethodLiability DeferralMethod = "liability"
	MethodIncome    DeferralMethod = "income"
)

// Config parameterizes one generated activity.
type Config struct {
	BusinessName   string
	BusinessType   BusinessType
	Ownership      OwnershipForm
	Inventory      InventorySystem
	Transactions   int // clamped to [5, 30]
	TradeDiscounts bool
	CashDiscounts  bool
	Freight        bool
	SubsequentYear bool
	ExpenseMethod  DeferralMethod // asset | expense
	IncomeMethod   DeferralMethod // liability | income
	Year           int
	Month          time.Month
	Seed           int64
}

// Activity is the composed root produced by one generation run.
// Read-only for every downstream validator.
type Activity struct {
	Config            Config
	Transactions      []Transaction
	BeginningBalances Ledger // nil on first-year scenarios
	Adjustments       []Adjustment
	Ledger            Ledger // beginning balances + transaction postings
	ValidAccounts     []string
	CapitalAccount    string // the unique non-drawing equity account
	DrawingAccount    string
}
