package scenario

import (
	"fmt"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/id"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// InvariantError describes a single violation of a generation invariant.
type InvariantError struct {
	Invariant   int
	Ref         string
	Description string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Ref, e.Description)
}

// CheckInvariants enforces 6 invariants on a generated activity:
//
//  1. Every transaction balances exactly (no tolerance).
//  2. Every entry line has a positive amount.
//  3. Every adjustment has distinct accounts and a positive amount.
//  4. Exactly one non-drawing equity account is reachable.
//  5. Beginning balances carry exactly one side per account.
//  6. Entry IDs are sequential 1..N within the activity month.
func CheckInvariants(a *model.Activity) []InvariantError {
	var errs []InvariantError

	for _, tx := range a.Transactions {
		if !tx.Balanced() {
			errs = append(errs, InvariantError{
				Invariant:   1,
				Ref:         tx.ID,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", tx.TotalDebits().StringFixed(2), tx.TotalCredits().StringFixed(2)),
			})
		}
		for _, l := range append(append([]model.EntryLine{}, tx.Debits...), tx.Credits...) {
			if !l.Amount.IsPositive() {
				errs = append(errs, InvariantError{
					Invariant:   2,
					Ref:         tx.ID,
					Description: fmt.Sprintf("line on %q has non-positive amount %s", l.Account, l.Amount),
				})
			}
		}
	}

	for _, adj := range a.Adjustments {
		ref := fmt.Sprintf("adjustment %d", adj.ID)
		if adj.DebitAccount == adj.CreditAccount {
			errs = append(errs, InvariantError{
				Invariant:   3,
				Ref:         ref,
				Description: fmt.Sprintf("debit and credit both post to %q", adj.DebitAccount),
			})
		}
		if !adj.Amount.IsPositive() {
			errs = append(errs, InvariantError{
				Invariant:   3,
				Ref:         ref,
				Description: fmt.Sprintf("non-positive amount %s", adj.Amount),
			})
		}
	}

	capitals := 0
	for _, acct := range a.ValidAccounts {
		if classify.IsCapital(acct) {
			capitals++
		}
	}
	if capitals != 1 {
		errs = append(errs, InvariantError{
			Invariant:   4,
			Ref:         a.CapitalAccount,
			Description: fmt.Sprintf("expected exactly one capital account, found %d", capitals),
		})
	}

	for acct, b := range a.BeginningBalances {
		if !b.Debit.IsZero() && !b.Credit.IsZero() {
			errs = append(errs, InvariantError{
				Invariant:   5,
				Ref:         acct,
				Description: "beginning balance carries both a debit and a credit",
			})
		}
	}

	seen := make(map[int]bool)
	for _, tx := range a.Transactions {
		_, _, seq, err := id.ParseEntryID(tx.ID)
		if err != nil {
			errs = append(errs, InvariantError{
				Invariant:   6,
				Ref:         tx.ID,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		seen[seq] = true
	}
	for i := 1; i <= len(a.Transactions); i++ {
		if len(seen) > 0 && !seen[i] {
			errs = append(errs, InvariantError{
				Invariant:   6,
				Ref:         fmt.Sprintf("seq %d", i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(a.Transactions)),
			})
		}
	}

	return errs
}
