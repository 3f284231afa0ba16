package grade

import (
	"strings"

	"github.com/drillbook-dev/drillbook/internal/model"
)

// AnalysisRow is the learner's equation-effect classification for one
// transaction.
type AnalysisRow struct {
	Assets      string `json:"assets"`
	Liabilities string `json:"liabilities"`
	Equity      string `json:"equity"`
	Cause       string `json:"cause"`
}

type analysisAnswer struct {
	Rows []AnalysisRow `json:"rows"`
}

// normEffect maps free-form learner effect strings onto the canonical
// three values; blank and "no effect" are equivalent.
func normEffect(s string) model.Effect {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increase", "increased", "+":
		return model.EffectIncrease
	case "decrease", "decreased", "-":
		return model.EffectDecrease
	case "", "none", "no effect", "no change":
		return model.EffectNone
	default:
		return model.Effect(s) // matches nothing canonical
	}
}

// normCause maps free-form cause strings onto the taxonomy; blank,
// null-ish, and "none" are all the empty cause.
func normCause(s string) model.Cause {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "null", "no effect", "n/a":
		return model.CauseNone
	case "investment", "owner investment", "initial investment":
		return model.CauseInvestment
	case "withdrawal", "drawing", "owner withdrawal":
		return model.CauseWithdrawal
	case "revenue", "income", "earned revenue":
		return model.CauseRevenue
	case "expense", "incurred expense":
		return model.CauseExpense
	default:
		return model.Cause(s)
	}
}

// Step1 grades transaction analysis: one all-or-nothing point per
// transaction row, and a learner row set that does not line up
// one-to-one with the transactions cannot be perfect.
func Step1(a *model.Activity, raw []byte) Result {
	var ans analysisAnswer
	decode(raw, &ans)

	max := len(a.Transactions)
	score := 0
	rows := make([]bool, len(a.Transactions))
	for i, tx := range a.Transactions {
		if i >= len(ans.Rows) {
			break
		}
		r := ans.Rows[i]
		ok := normEffect(r.Assets) == tx.Analysis.Assets &&
			normEffect(r.Liabilities) == tx.Analysis.Liabilities &&
			normEffect(r.Equity) == tx.Analysis.Equity &&
			normCause(r.Cause) == tx.Analysis.Cause
		rows[i] = ok
		if ok {
			score++
		}
	}
	if len(ans.Rows) > max && score == max && max > 0 {
		score = max - 1 // padding with extra rows is never perfect
	}
	return finish(score, max, map[string]any{"rows": rows})
}
