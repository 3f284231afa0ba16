package grade

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analysisPayload(t *testing.T, rows []AnalysisRow) []byte {
	t.Helper()
	b, err := json.Marshal(analysisAnswer{Rows: rows})
	require.NoError(t, err)
	return b
}

func correctAnalysisRows() []AnalysisRow {
	return []AnalysisRow{
		{Assets: "increase", Liabilities: "none", Equity: "increase", Cause: "investment"},
		{Assets: "increase", Liabilities: "none", Equity: "increase", Cause: "revenue"},
		{Assets: "none", Liabilities: "none", Equity: "none", Cause: ""},
		{Assets: "decrease", Liabilities: "none", Equity: "decrease", Cause: "expense"},
	}
}

func TestStep1_Perfect(t *testing.T) {
	a := fixtureActivity()
	r := Step1(a, analysisPayload(t, correctAnalysisRows()))

	assert.True(t, r.IsCorrect)
	assert.Equal(t, 4, r.Score)
	assert.Equal(t, 4, r.MaxScore)
	assert.Equal(t, "A", r.Letter)
}

func TestStep1_LenientSpellings(t *testing.T) {
	rows := correctAnalysisRows()
	rows[0] = AnalysisRow{Assets: "+", Liabilities: "No Effect", Equity: "Increased", Cause: "Owner Investment"}
	rows[2].Cause = "n/a"

	r := Step1(fixtureActivity(), analysisPayload(t, rows))
	assert.True(t, r.IsCorrect)
}

func TestStep1_RowAllOrNothing(t *testing.T) {
	rows := correctAnalysisRows()
	rows[1].Cause = "expense" // right effects, wrong cause

	r := Step1(fixtureActivity(), analysisPayload(t, rows))
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 3, r.Score)
}

func TestStep1_MissingRowsScorePartially(t *testing.T) {
	r := Step1(fixtureActivity(), analysisPayload(t, correctAnalysisRows()[:2]))
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 2, r.Score)
	assert.Equal(t, 4, r.MaxScore)
}

func TestStep1_ExtraRowsNeverPerfect(t *testing.T) {
	rows := append(correctAnalysisRows(), AnalysisRow{Assets: "increase"})
	r := Step1(fixtureActivity(), analysisPayload(t, rows))
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 3, r.Score)
}

func TestStep1_EmptyAnswer(t *testing.T) {
	r := Step1(fixtureActivity(), nil)
	assert.False(t, r.IsCorrect)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, "F", r.Letter)
}
