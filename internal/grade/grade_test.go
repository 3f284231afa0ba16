package grade

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func amt(s string) Amount {
	return Amount{Decimal: dec(s)}
}

func date(day int) time.Time {
	return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)
}

// fixtureActivity is a four-transaction service scenario with two
// adjustments, small enough to verify every expected value by hand.
func fixtureActivity() *model.Activity {
	txs := []model.Transaction{
		{
			ID:          "2025-01-001",
			Date:        date(5),
			Description: "Initial investment by owner",
			Debits:      []model.EntryLine{{Account: "Cash", Amount: dec("10000")}},
			Credits:     []model.EntryLine{{Account: "Owner's Capital", Amount: dec("10000")}},
			Analysis: model.Analysis{
				Assets:      model.EffectIncrease,
				Liabilities: model.EffectNone,
				Equity:      model.EffectIncrease,
				Cause:       model.CauseInvestment,
			},
		},
		{
			ID:          "2025-01-002",
			Date:        date(12),
			Description: "Received cash for services rendered",
			Debits:      []model.EntryLine{{Account: "Cash", Amount: dec("4000")}},
			Credits:     []model.EntryLine{{Account: "Service Revenue", Amount: dec("4000")}},
			Analysis: model.Analysis{
				Assets:      model.EffectIncrease,
				Liabilities: model.EffectNone,
				Equity:      model.EffectIncrease,
				Cause:       model.CauseRevenue,
			},
		},
		{
			ID:          "2025-01-003",
			Date:        date(18),
			Description: "Paid a one-year insurance premium in advance",
			Debits:      []model.EntryLine{{Account: "Prepaid Insurance", Amount: dec("1200")}},
			Credits:     []model.EntryLine{{Account: "Cash", Amount: dec("1200")}},
			Analysis: model.Analysis{
				Assets:      model.EffectNone,
				Liabilities: model.EffectNone,
				Equity:      model.EffectNone,
				Cause:       model.CauseNone,
			},
		},
		{
			ID:          "2025-01-004",
			Date:        date(25),
			Description: "Paid rent in cash",
			Debits:      []model.EntryLine{{Account: "Rent Expense", Amount: dec("1500")}},
			Credits:     []model.EntryLine{{Account: "Cash", Amount: dec("1500")}},
			Analysis: model.Analysis{
				Assets:      model.EffectDecrease,
				Liabilities: model.EffectNone,
				Equity:      model.EffectDecrease,
				Cause:       model.CauseExpense,
			},
		},
	}

	adjs := []model.Adjustment{
		{
			ID:            1,
			Type:          model.AdjAccruedExpense,
			Description:   "Accrued salaries at period end",
			DebitAccount:  "Salaries Expense",
			CreditAccount: "Salaries Payable",
			Amount:        dec("500"),
		},
		{
			ID:            2,
			Type:          model.AdjDeferredExpense,
			Description:   "Expired portion of prepaid insurance",
			DebitAccount:  "Insurance Expense",
			CreditAccount: "Prepaid Insurance",
			Amount:        dec("300"),
		},
	}

	return &model.Activity{
		Config: model.Config{
			BusinessName: "Harbor Services",
			BusinessType: model.BusinessService,
			Year:         2025,
			Month:        time.January,
		},
		Transactions: txs,
		Adjustments:  adjs,
		Ledger:       ledger.Aggregate(txs, nil),
		ValidAccounts: []string{
			"Cash", "Prepaid Insurance", "Owner's Capital",
			"Service Revenue", "Rent Expense",
		},
		CapitalAccount: "Owner's Capital",
		DrawingAccount: "Owner's Drawing",
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		score, max int
		want       string
	}{
		{10, 10, "A"},
		{9, 10, "A"},
		{8, 10, "B"},
		{7, 10, "C"},
		{6, 10, "D"},
		{5, 10, "F"},
		{0, 10, "F"},
		{0, 0, "IR"},
		{27, 30, "A"}, // 90% on a non-decimal boundary
		{26, 30, "B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Letter(tt.score, tt.max), "%d/%d", tt.score, tt.max)
	}
}

func TestAmountsMatch_Tolerance(t *testing.T) {
	assert.True(t, amountsMatch(dec("100"), dec("100")))
	assert.True(t, amountsMatch(dec("100"), dec("101")))
	assert.True(t, amountsMatch(dec("101"), dec("100")))
	assert.False(t, amountsMatch(dec("100"), dec("102")))
	assert.False(t, amountsMatch(dec("100"), dec("98")))
}

func TestValidate_UnknownStep(t *testing.T) {
	_, err := Validate(0, fixtureActivity(), nil)
	assert.Error(t, err)
	_, err = Validate(11, fixtureActivity(), nil)
	assert.Error(t, err)
}

func TestValidate_GarbageInputNeverPanics(t *testing.T) {
	a := fixtureActivity()
	payloads := [][]byte{
		nil,
		[]byte(""),
		[]byte("not json"),
		[]byte(`{"rows": "wrong shape"}`),
		[]byte(`[1,2,3]`),
		[]byte(`{"entries": {"2025-01-001": [{"debit": {"nested": true}}]}}`),
	}
	for step := 1; step <= 10; step++ {
		for _, p := range payloads {
			r, err := Validate(step, a, p)
			require.NoError(t, err, "step %d", step)
			assert.False(t, r.IsCorrect, "step %d payload %q", step, p)
			assert.GreaterOrEqual(t, r.Score, 0, "step %d", step)
			assert.LessOrEqual(t, r.Score, r.MaxScore, "step %d", step)
		}
	}
}

func TestValidate_Deterministic(t *testing.T) {
	a := fixtureActivity()
	payload := []byte(`{"rows":[{"assets":"increase","liabilities":"none","equity":"increase","cause":"investment"}]}`)

	r1, err := Validate(1, a, payload)
	require.NoError(t, err)
	r2, err := Validate(1, a, payload)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestNormSide(t *testing.T) {
	assert.Equal(t, model.SideDebit, normSide("debit"))
	assert.Equal(t, model.SideDebit, normSide(" DR "))
	assert.Equal(t, model.SideCredit, normSide("Cr."))
	assert.Equal(t, model.NormalSide(""), normSide("sideways"))
}
