package scenario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drillbook-dev/drillbook/internal/model"
)

func TestNormalize_Defaults(t *testing.T) {
	cfg := Normalize(model.Config{})

	assert.Equal(t, minTransactions, cfg.Transactions)
	assert.Equal(t, "Horizon Trading", cfg.BusinessName)
	assert.Equal(t, model.BusinessService, cfg.BusinessType)
	assert.Equal(t, model.OwnershipSoleProprietorship, cfg.Ownership)
	assert.Equal(t, model.InventoryPeriodic, cfg.Inventory)
	assert.Equal(t, model.MethodAsset, cfg.ExpenseMethod)
	assert.Equal(t, model.MethodLiability, cfg.IncomeMethod)
	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, time.January, cfg.Month)
	assert.NotZero(t, cfg.Seed)
}

func TestNormalize_CoercesInvalidEnums(t *testing.T) {
	cfg := Normalize(model.Config{
		BusinessType:  "bakery",
		Ownership:     "commune",
		Inventory:     "eventual",
		ExpenseMethod: "liability",
		IncomeMethod:  "asset",
	})

	assert.Equal(t, model.BusinessService, cfg.BusinessType)
	assert.Equal(t, model.OwnershipSoleProprietorship, cfg.Ownership)
	assert.Equal(t, model.InventoryPeriodic, cfg.Inventory)
	assert.Equal(t, model.MethodAsset, cfg.ExpenseMethod)
	assert.Equal(t, model.MethodLiability, cfg.IncomeMethod)
}

func TestNormalize_ClampsMonth(t *testing.T) {
	assert.Equal(t, time.January, Normalize(model.Config{Month: 13}).Month)
	assert.Equal(t, time.January, Normalize(model.Config{Month: -1}).Month)
	assert.Equal(t, time.December, Normalize(model.Config{Month: time.December}).Month)
}

func TestNormalize_PreservesValidValues(t *testing.T) {
	in := model.Config{
		BusinessName:  "Crestline Goods",
		BusinessType:  model.BusinessMerchandising,
		Ownership:     model.OwnershipCorporation,
		Inventory:     model.InventoryPerpetual,
		Transactions:  20,
		ExpenseMethod: model.MethodExpense,
		IncomeMethod:  model.MethodIncome,
		Year:          2026,
		Month:         time.June,
		Seed:          99,
	}
	out := Normalize(in)
	assert.Equal(t, in, out)
}

func TestEquityAccounts(t *testing.T) {
	tests := []struct {
		form             model.OwnershipForm
		capital, drawing string
	}{
		{model.OwnershipSoleProprietorship, "Owner's Capital", "Owner's Drawing"},
		{model.OwnershipPartnership, "Partners' Capital", "Partners' Drawing"},
		{model.OwnershipCorporation, "Share Capital", "Dividends"},
		{model.OwnershipCooperative, "Members' Share Capital", "Members' Drawing"},
	}
	for _, tt := range tests {
		capital, drawing := equityAccounts(tt.form)
		assert.Equal(t, tt.capital, capital, tt.form)
		assert.Equal(t, tt.drawing, drawing, tt.form)
	}
}

func TestChartFor_RevenueAccounts(t *testing.T) {
	c := chartFor(Normalize(model.Config{BusinessType: model.BusinessService}))
	assert.Equal(t, "Service Revenue", c.revenue)
	assert.Equal(t, "Unearned Service Revenue", c.unearned)

	c = chartFor(Normalize(model.Config{BusinessType: model.BusinessMerchandising}))
	assert.Equal(t, "Sales", c.revenue)

	c = chartFor(Normalize(model.Config{BusinessType: model.BusinessBanking}))
	assert.Equal(t, "Interest Income", c.revenue)
	assert.Equal(t, "Unearned Interest Income", c.unearned)
}
