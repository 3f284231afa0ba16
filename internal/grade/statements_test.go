package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStep6_Perfect(t *testing.T) {
	payload := []byte(`{
		"netIncome": 1700,
		"endingCapital": 11700,
		"totalAssets": 12200,
		"totalLiabilitiesAndEquity": 12200
	}`)
	r := Step6(fixtureActivity(), payload)

	assert.True(t, r.IsCorrect)
	assert.Equal(t, 4, r.MaxScore)
	assert.Equal(t, 4, r.Score)
}

func TestStep6_FormattedStringsAccepted(t *testing.T) {
	payload := []byte(`{
		"netIncome": "1,700",
		"endingCapital": "$11,700.00",
		"totalAssets": "12,200",
		"totalLiabilitiesAndEquity": "12200"
	}`)
	r := Step6(fixtureActivity(), payload)
	assert.True(t, r.IsCorrect)
}

func TestStep6_PartialCredit(t *testing.T) {
	payload := []byte(`{
		"netIncome": 1700,
		"endingCapital": 10000,
		"totalAssets": 12200,
		"totalLiabilitiesAndEquity": 10500
	}`)
	r := Step6(fixtureActivity(), payload)

	assert.False(t, r.IsCorrect)
	assert.Equal(t, 2, r.Score)
	assert.Equal(t, "F", r.Letter)
}

func TestStep6_ToleranceBoundary(t *testing.T) {
	r := Step6(fixtureActivity(), []byte(`{
		"netIncome": 1701,
		"endingCapital": 11699,
		"totalAssets": 12201,
		"totalLiabilitiesAndEquity": 12199
	}`))
	assert.True(t, r.IsCorrect)

	r = Step6(fixtureActivity(), []byte(`{
		"netIncome": 1702,
		"endingCapital": 11700,
		"totalAssets": 12200,
		"totalLiabilitiesAndEquity": 12200
	}`))
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 3, r.Score)
}

func TestStep6_EmptyAnswer(t *testing.T) {
	r := Step6(fixtureActivity(), nil)
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 0, r.Score)
}
