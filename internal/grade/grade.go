// Package grade recomputes the unique correct answer for each
// accounting-cycle step from the generated activity and scores a
// learner's free-form answer against it. Validators are pure: the same
// activity and answer always produce the same result, malformed input
// coerces to empty and scores as wrong, and a well-formed Result comes
// back for any input.
package grade

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/model"
)

// Result is the verdict of one validation call.
type Result struct {
	IsCorrect bool   `json:"isCorrect"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"maxScore"`
	Letter    string `json:"letterGrade"`
	Details   any    `json:"details,omitempty"`
}

// Validate dispatches to the validator for a cycle step (1-10).
func Validate(step int, a *model.Activity, answer []byte) (Result, error) {
	switch step {
	case 1:
		return Step1(a, answer), nil
	case 2:
		return Step2(a, answer), nil
	case 3:
		return Step3(a, answer), nil
	case 4:
		return Step4(a, answer), nil
	case 5:
		return Step5(a, answer), nil
	case 6:
		return Step6(a, answer), nil
	case 7:
		return Step7(a, answer), nil
	case 8:
		return Step8(a, answer), nil
	case 9:
		return Step9(a, answer), nil
	case 10:
		return Step10(a, answer), nil
	default:
		return Result{}, fmt.Errorf("unknown step %d", step)
	}
}

// Letter maps a score ratio to a letter grade. "IR" (incomplete) is
// reported when there is nothing to grade.
func Letter(score, max int) string {
	if max == 0 {
		return "IR"
	}
	switch {
	case score*100 >= max*90:
		return "A"
	case score*100 >= max*80:
		return "B"
	case score*100 >= max*70:
		return "C"
	case score*100 >= max*60:
		return "D"
	default:
		return "F"
	}
}

// finish assembles a Result. Step completion requires a perfect score.
func finish(score, max int, details any) Result {
	if score > max {
		score = max
	}
	if score < 0 {
		score = 0
	}
	return Result{
		IsCorrect: max > 0 && score == max,
		Score:     score,
		MaxScore:  max,
		Letter:    Letter(score, max),
		Details:   details,
	}
}

// tolerance is the uniform numeric slack: amounts differing by at most
// one currency unit compare equal, absorbing rounding from
// percentage-based templates.
var tolerance = decimal.NewFromInt(1)

func amountsMatch(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(tolerance)
}

// nameMatch compares strings case-insensitively after trimming.
func nameMatch(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// decode fills v from raw learner JSON; malformed payloads leave v at
// its zero value and are scored as empty, never raised.
func decode(raw []byte, v any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, v)
}

// leadingSpaces counts the leading space characters of a raw string.
func leadingSpaces(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}

// normSide maps learner side strings onto a normal side; unknown input
// maps to an empty side that matches nothing.
func normSide(s string) model.NormalSide {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit", "dr", "dr.":
		return model.SideDebit
	case "credit", "cr", "cr.":
		return model.SideCredit
	default:
		return ""
	}
}
