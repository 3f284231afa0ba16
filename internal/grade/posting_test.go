package grade

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drillbook-dev/drillbook/internal/model"
)

func perfectPosting() postingAnswer {
	return postingAnswer{
		Ledgers: map[string][]LedgerRow{
			"Cash": {
				{Date: "Jan. 5", Particulars: "Initial investment by owner", PR: "GJ-1", Debit: amt("10000")},
				{Date: "Jan. 12", Particulars: "Received cash for services rendered", PR: "GJ-1", Debit: amt("4000")},
				{Date: "Jan. 18", Particulars: "Paid a one-year insurance premium in advance", PR: "GJ-1", Credit: amt("1200")},
				{Date: "Jan. 25", Particulars: "Paid rent in cash", PR: "GJ-1", Credit: amt("1500")},
			},
			"Owner's Capital": {
				{Date: "Jan. 5", Particulars: "Initial investment by owner", PR: "GJ-1", Credit: amt("10000")},
			},
			"Service Revenue": {
				{Date: "Jan. 12", Particulars: "Received cash for services rendered", PR: "GJ-1", Credit: amt("4000")},
			},
			"Prepaid Insurance": {
				{Date: "Jan. 18", Particulars: "Paid a one-year insurance premium in advance", PR: "GJ-1", Debit: amt("1200")},
			},
			"Rent Expense": {
				{Date: "Jan. 25", Particulars: "Paid rent in cash", PR: "GJ-1", Debit: amt("1500")},
			},
		},
		PostRefs: map[string]bool{
			"2025-01-001:dr0": true, "2025-01-001:cr0": true,
			"2025-01-002:dr0": true, "2025-01-002:cr0": true,
			"2025-01-003:dr0": true, "2025-01-003:cr0": true,
			"2025-01-004:dr0": true, "2025-01-004:cr0": true,
		},
	}
}

func postingPayload(t *testing.T, ans postingAnswer) []byte {
	t.Helper()
	b, err := json.Marshal(ans)
	require.NoError(t, err)
	return b
}

func TestStep3_Perfect(t *testing.T) {
	r := Step3(fixtureActivity(), postingPayload(t, perfectPosting()))

	assert.True(t, r.IsCorrect)
	// 8 ledger rows at 4 points each plus 8 checkbox points.
	assert.Equal(t, 40, r.MaxScore)
	assert.Equal(t, 40, r.Score)
}

func TestStep3_AccountKeysCaseInsensitive(t *testing.T) {
	ans := perfectPosting()
	rows := ans.Ledgers["Rent Expense"]
	delete(ans.Ledgers, "Rent Expense")
	ans.Ledgers["rent expense"] = rows

	r := Step3(fixtureActivity(), postingPayload(t, ans))
	assert.True(t, r.IsCorrect)
}

func TestStep3_CheckboxNeedsCorrectPosting(t *testing.T) {
	ans := perfectPosting()
	// Break the capital posting; its checkbox stays checked.
	ans.Ledgers["Owner's Capital"][0].Credit = amt("9000")

	r := Step3(fixtureActivity(), postingPayload(t, ans))
	assert.False(t, r.IsCorrect)
	// Loses the amount point and the now-uncorroborated checkbox point.
	assert.Equal(t, 38, r.Score)
}

func TestStep3_UncheckedBoxLosesOnlyCheckboxPoint(t *testing.T) {
	ans := perfectPosting()
	ans.PostRefs["2025-01-002:cr0"] = false

	r := Step3(fixtureActivity(), postingPayload(t, ans))
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 39, r.Score)
}

func TestStep3_AmountOnWrongSide(t *testing.T) {
	ans := perfectPosting()
	row := &ans.Ledgers["Service Revenue"][0]
	row.Credit = amt("0")
	row.Debit = amt("4000")

	r := Step3(fixtureActivity(), postingPayload(t, ans))
	assert.False(t, r.IsCorrect)
	// Amount point and checkbox corroboration both lost.
	assert.Equal(t, 38, r.Score)
}

func TestStep3_MissingCard(t *testing.T) {
	ans := perfectPosting()
	delete(ans.Ledgers, "Prepaid Insurance")

	r := Step3(fixtureActivity(), postingPayload(t, ans))
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 40-4-1, r.Score)
}

func TestExpectedPostings_BeginningBalanceRows(t *testing.T) {
	a := fixtureActivity()
	a.BeginningBalances = model.Ledger{
		"Cash":             {Debit: dec("5000")},
		"Accounts Payable": {Credit: dec("2000")},
	}

	cards := expectedPostings(a)

	cash := cards["Cash"]
	require.NotEmpty(t, cash)
	first := cash[0]
	assert.Equal(t, "", first.Ref)
	assert.Equal(t, "Jan. 1", first.Date)
	assert.Equal(t, "Balance", first.Particulars)
	assert.Equal(t, "", first.PR)
	assert.True(t, first.Amount.Debit.Equal(dec("5000")))

	ap := cards["Accounts Payable"]
	require.Len(t, ap, 1)
	assert.True(t, ap[0].Amount.Credit.Equal(dec("2000")))
}
