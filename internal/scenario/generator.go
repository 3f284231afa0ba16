package scenario

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/classify"
	"github.com/drillbook-dev/drillbook/internal/id"
	"github.com/drillbook-dev/drillbook/internal/ledger"
	"github.com/drillbook-dev/drillbook/internal/model"
)

// gen carries the mutable state threaded through template draws.
type gen struct {
	cfg     model.Config
	chart   chart
	rng     *rand.Rand
	running model.Ledger // balances as templates are emitted
	day     int
	// advances is the portion of advance collections recorded straight
	// to revenue under the income method; bounds the deferred-income
	// adjustment.
	advances decimal.Decimal
}

// Generate produces a complete activity for a config. The returned
// activity satisfies every generation invariant or an error is
// returned; a well-formed config never fails.
func Generate(cfg model.Config) (*model.Activity, error) {
	cfg = Normalize(cfg)
	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &gen{
		cfg:      cfg,
		chart:    chartFor(cfg),
		rng:      rng,
		running:  make(model.Ledger),
		day:      1 + rng.Intn(2),
		advances: decimal.Zero,
	}

	var beginning model.Ledger
	if cfg.SubsequentYear {
		beginning = g.beginningBalances()
		for acct, b := range beginning {
			g.running.Add(acct, b.Debit, b.Credit)
		}
	}

	txs := g.drawTransactions()
	base := ledger.Aggregate(txs, beginning)
	adjs := g.adjustments(base)

	a := &model.Activity{
		Config:            cfg,
		Transactions:      txs,
		BeginningBalances: beginning,
		Adjustments:       adjs,
		Ledger:            base,
		ValidAccounts:     validAccounts(txs, beginning),
		CapitalAccount:    g.chart.capital,
		DrawingAccount:    g.chart.drawing,
	}

	if errs := CheckInvariants(a); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("generated activity violates invariants: %s", strings.Join(msgs, "; "))
	}
	return a, nil
}

// drawTransactions emits the configured number of entries, rejecting
// any template draw that would violate a hard constraint and retrying;
// the all-cash revenue template is always feasible so the loop
// terminates.
func (g *gen) drawTransactions() []model.Transaction {
	tpls := g.templates()
	total := 0
	for _, t := range tpls {
		total += t.weight
	}

	txs := make([]model.Transaction, 0, g.cfg.Transactions)
	for seq := 1; seq <= g.cfg.Transactions; seq++ {
		var tx model.Transaction
		if seq == 1 && !g.cfg.SubsequentYear {
			// A first-year book opens with the owner's investment.
			tx = g.investment(seq)
		} else {
			tx = g.drawOne(tpls, total, seq)
		}
		g.post(tx)
		txs = append(txs, tx)
		g.advanceDay()
	}
	return txs
}

func (g *gen) drawOne(tpls []template, totalWeight, seq int) model.Transaction {
	for {
		n := g.rng.Intn(totalWeight)
		var pick template
		for _, t := range tpls {
			if n < t.weight {
				pick = t
				break
			}
			n -= t.weight
		}
		if pick.feasible != nil && !pick.feasible(g) {
			continue
		}
		return pick.build(g, seq)
	}
}

// post folds an emitted transaction into the running balances.
func (g *gen) post(tx model.Transaction) {
	for _, l := range tx.Debits {
		g.running.Add(l.Account, l.Amount, decimal.Zero)
	}
	for _, l := range tx.Credits {
		g.running.Add(l.Account, decimal.Zero, l.Amount)
	}
}

func (g *gen) advanceDay() {
	g.day += g.rng.Intn(3)
	if g.day > 28 {
		g.day = 28
	}
}

func (g *gen) date() time.Time {
	return time.Date(g.cfg.Year, g.cfg.Month, g.day, 0, 0, 0, 0, time.UTC)
}

func (g *gen) entryID(seq int) string {
	return id.FormatEntryID(g.cfg.Year, int(g.cfg.Month), seq)
}

// amount draws a pseudo-random amount in [min,max] snapped to step.
func (g *gen) amount(min, max, step int) decimal.Decimal {
	if max < min {
		max = min
	}
	n := min
	if span := (max - min) / step; span > 0 {
		n = min + g.rng.Intn(span+1)*step
	}
	return decimal.NewFromInt(int64(n))
}

// netDebit returns an account's running net debit balance (negative if
// the account nets to a credit).
func (g *gen) netDebit(account string) decimal.Decimal {
	b := g.running[account]
	return b.Debit.Sub(b.Credit)
}

// netCredit returns an account's running net credit balance.
func (g *gen) netCredit(account string) decimal.Decimal {
	return g.netDebit(account).Neg()
}

// hasCash reports whether paying amt would leave cash non-negative.
func (g *gen) hasCash(amt decimal.Decimal) bool {
	return g.netDebit("Cash").GreaterThanOrEqual(amt)
}

// boundedAmount draws an amount no greater than limit, snapped to step,
// returning zero when the limit is below one step.
func (g *gen) boundedAmount(limit decimal.Decimal, min, max, step int) decimal.Decimal {
	ceil := int(limit.IntPart())
	if ceil < min {
		return decimal.Zero
	}
	if max > ceil {
		max = ceil - ceil%step
	}
	return g.amount(min, max, step)
}

// entry assembles a balanced transaction with its analysis key.
func (g *gen) entry(seq int, desc string, debits, credits []model.EntryLine) model.Transaction {
	return model.Transaction{
		ID:          g.entryID(seq),
		Date:        g.date(),
		Description: desc,
		Debits:      debits,
		Credits:     credits,
		Analysis:    analyze(debits, credits),
	}
}

// analyze derives the accounting-equation effect key from the entry
// lines via the classifier.
func analyze(debits, credits []model.EntryLine) model.Analysis {
	assets, liabilities, equity := decimal.Zero, decimal.Zero, decimal.Zero
	cause := model.CauseNone

	apply := func(l model.EntryLine, isDebit bool) {
		sign := decimal.NewFromInt(1)
		if !isDebit {
			sign = sign.Neg()
		}
		delta := l.Amount.Mul(sign)
		t, side := classify.Classify(l.Account)
		switch t {
		case model.AccountTypeAsset:
			assets = assets.Add(delta)
		case model.AccountTypeLiability:
			liabilities = liabilities.Sub(delta)
		case model.AccountTypeEquity:
			equity = equity.Sub(delta)
			if side == model.SideCredit && !isDebit {
				cause = model.CauseInvestment
			} else if side == model.SideDebit && isDebit {
				cause = model.CauseWithdrawal
			}
		case model.AccountTypeRevenue:
			equity = equity.Sub(delta)
			cause = model.CauseRevenue
		case model.AccountTypeExpense:
			equity = equity.Sub(delta)
			if cause == model.CauseNone {
				cause = model.CauseExpense
			}
		}
	}
	for _, l := range debits {
		apply(l, true)
	}
	for _, l := range credits {
		apply(l, false)
	}

	if equity.IsZero() {
		cause = model.CauseNone
	}
	return model.Analysis{
		Assets:      effectOf(assets),
		Liabilities: effectOf(liabilities),
		Equity:      effectOf(equity),
		Cause:       cause,
	}
}

func effectOf(delta decimal.Decimal) model.Effect {
	switch {
	case delta.IsPositive():
		return model.EffectIncrease
	case delta.IsNegative():
		return model.EffectDecrease
	default:
		return model.EffectNone
	}
}

// validAccounts is the de-duplicated, sorted union of every account
// touched by transactions or beginning balances.
func validAccounts(txs []model.Transaction, beginning model.Ledger) []string {
	seen := make(map[string]bool)
	for _, tx := range txs {
		for _, l := range tx.Debits {
			seen[l.Account] = true
		}
		for _, l := range tx.Credits {
			seen[l.Account] = true
		}
	}
	for acct := range beginning {
		seen[acct] = true
	}
	names := make([]string, 0, len(seen))
	for acct := range seen {
		names = append(names, acct)
	}
	ledger.SortAccounts(names)
	return names
}
