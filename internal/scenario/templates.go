package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/drillbook-dev/drillbook/internal/model"
)

// template is one weighted transaction pattern. feasible (may be nil)
// gates a draw against the running balances; build emits the entry and
// may assume feasibility holds.
type template struct {
	name     string
	weight   int
	feasible func(g *gen) bool
	build    func(g *gen, seq int) model.Transaction
}

func line(account string, amount decimal.Decimal) model.EntryLine {
	return model.EntryLine{Account: account, Amount: amount}
}

func lines(ls ...model.EntryLine) []model.EntryLine { return ls }

// investment opens a first-year book: cash in, capital credited.
func (g *gen) investment(seq int) model.Transaction {
	amt := g.amount(50000, 120000, 5000)
	return g.entry(seq, "Initial investment by owner",
		lines(line("Cash", amt)),
		lines(line(g.chart.capital, amt)))
}

// templates assembles the weighted library for the configured business.
func (g *gen) templates() []template {
	tpls := g.commonTemplates()
	switch g.cfg.BusinessType {
	case model.BusinessMerchandising:
		tpls = append(tpls, g.merchandisingTemplates()...)
	case model.BusinessManufacturing:
		tpls = append(tpls, g.manufacturingTemplates()...)
	case model.BusinessBanking:
		tpls = append(tpls, g.bankingTemplates()...)
	default:
		tpls = append(tpls, g.serviceTemplates()...)
	}
	return tpls
}

func (g *gen) commonTemplates() []template {
	return []template{
		{
			// Always feasible: the termination guarantee for draws.
			name: "revenue-cash", weight: 5,
			build: func(g *gen, seq int) model.Transaction {
				if g.cfg.BusinessType == model.BusinessMerchandising && g.cfg.Inventory == model.InventoryPerpetual &&
					g.netDebit("Merchandise Inventory").GreaterThanOrEqual(decimal.NewFromInt(600)) {
					cost := g.boundedAmount(g.netDebit("Merchandise Inventory"), 600, 9000, 300)
					price := cost.Mul(decimal.NewFromFloat(1.5))
					return g.entry(seq, "Sold merchandise for cash",
						lines(line("Cash", price), line("Cost of Goods Sold", cost)),
						lines(line("Sales", price), line("Merchandise Inventory", cost)))
				}
				amt := g.amount(2000, 15000, 500)
				return g.entry(seq, "Received cash for "+revenueNoun(g.cfg.BusinessType),
					lines(line("Cash", amt)),
					lines(line(g.chart.revenue, amt)))
			},
		},
		{
			name: "revenue-on-account", weight: 4,
			feasible: func(g *gen) bool {
				// Perpetual merchandising bills through its own sale
				// template so the cost entry is never skipped.
				return !(g.cfg.BusinessType == model.BusinessMerchandising && g.cfg.Inventory == model.InventoryPerpetual)
			},
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(2000, 12000, 500)
				return g.entry(seq, "Billed customer on account for "+revenueNoun(g.cfg.BusinessType),
					lines(line("Accounts Receivable", amt)),
					lines(line(g.chart.revenue, amt)))
			},
		},
		{
			name: "collect-receivable", weight: 4,
			feasible: func(g *gen) bool {
				return g.netDebit("Accounts Receivable").GreaterThanOrEqual(decimal.NewFromInt(500))
			},
			build: func(g *gen, seq int) model.Transaction {
				outstanding := g.netDebit("Accounts Receivable")
				if g.cfg.CashDiscounts && g.cfg.BusinessType == model.BusinessMerchandising && g.rng.Intn(3) == 0 {
					// Collection within the discount period: 2% cash discount.
					amt := g.boundedAmount(outstanding, 500, 8000, 500)
					disc := amt.Mul(decimal.NewFromFloat(0.02))
					return g.entry(seq, "Collected account within discount period",
						lines(line("Cash", amt.Sub(disc)), line("Sales Discounts", disc)),
						lines(line("Accounts Receivable", amt)))
				}
				amt := g.boundedAmount(outstanding, 500, 10000, 500)
				return g.entry(seq, "Collected cash from customer on account",
					lines(line("Cash", amt)),
					lines(line("Accounts Receivable", amt)))
			},
		},
		{
			name: "pay-expense", weight: 5,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(1000)) },
			build: func(g *gen, seq int) model.Transaction {
				expenses := []string{"Rent Expense", "Salaries Expense", "Utilities Expense"}
				acct := expenses[g.rng.Intn(len(expenses))]
				amt := g.boundedAmount(g.netDebit("Cash"), 500, 8000, 500)
				return g.entry(seq, "Paid "+acct[:len(acct)-len(" Expense")]+" in cash",
					lines(line(acct, amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "expense-on-account", weight: 2,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(500, 4000, 250)
				return g.entry(seq, "Received utility bill, payment due next month",
					lines(line("Utilities Expense", amt)),
					lines(line("Accounts Payable", amt)))
			},
		},
		{
			name: "pay-payable", weight: 3,
			feasible: func(g *gen) bool {
				owed := g.netCredit("Accounts Payable")
				return owed.GreaterThanOrEqual(decimal.NewFromInt(250)) && g.hasCash(decimal.NewFromInt(250))
			},
			build: func(g *gen, seq int) model.Transaction {
				limit := decimal.Min(g.netCredit("Accounts Payable"), g.netDebit("Cash"))
				amt := g.boundedAmount(limit, 250, 6000, 250)
				return g.entry(seq, "Paid supplier on account",
					lines(line("Accounts Payable", amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "buy-supplies", weight: 2,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(500)) },
			build: func(g *gen, seq int) model.Transaction {
				amt := g.boundedAmount(g.netDebit("Cash"), 250, 3000, 250)
				return g.entry(seq, "Purchased supplies for cash",
					lines(line("Supplies", amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "buy-equipment-on-note", weight: 1,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(10000, 40000, 1000)
				return g.entry(seq, "Acquired equipment, issued a promissory note",
					lines(line("Equipment", amt)),
					lines(line("Notes Payable", amt)))
			},
		},
		{
			name: "prepay-insurance", weight: 2,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(1200)) },
			build: func(g *gen, seq int) model.Transaction {
				amt := g.boundedAmount(g.netDebit("Cash"), 1200, 7200, 600)
				acct := "Prepaid Insurance"
				if g.cfg.ExpenseMethod == model.MethodExpense {
					acct = "Insurance Expense"
				}
				return g.entry(seq, "Paid a one-year insurance premium in advance",
					lines(line(acct, amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "advance-collection", weight: 2,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(1000, 6000, 500)
				acct := g.chart.unearned
				if g.cfg.IncomeMethod == model.MethodIncome {
					acct = g.chart.revenue
					g.advances = g.advances.Add(amt)
				}
				return g.entry(seq, "Received cash in advance from customer",
					lines(line("Cash", amt)),
					lines(line(acct, amt)))
			},
		},
		{
			name: "owner-withdrawal", weight: 2,
			feasible: func(g *gen) bool {
				return g.hasCash(decimal.NewFromInt(1000)) && g.netCredit(g.chart.capital).GreaterThan(decimal.NewFromInt(1000))
			},
			build: func(g *gen, seq int) model.Transaction {
				limit := decimal.Min(g.netDebit("Cash"), g.netCredit(g.chart.capital))
				amt := g.boundedAmount(limit, 500, 5000, 500)
				return g.entry(seq, "Owner withdrew cash for personal use",
					lines(line(g.chart.drawing, amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "bank-loan", weight: 1,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(10000, 30000, 1000)
				return g.entry(seq, "Borrowed cash from the bank on a note",
					lines(line("Cash", amt)),
					lines(line("Notes Payable", amt)))
			},
		},
	}
}

func (g *gen) serviceTemplates() []template {
	return []template{
		{
			name: "pay-advertising", weight: 2,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(500)) },
			build: func(g *gen, seq int) model.Transaction {
				amt := g.boundedAmount(g.netDebit("Cash"), 250, 3000, 250)
				return g.entry(seq, "Paid for advertising",
					lines(line("Advertising Expense", amt)),
					lines(line("Cash", amt)))
			},
		},
	}
}

func (g *gen) merchandisingTemplates() []template {
	tpls := []template{
		{
			name: "purchase-merchandise", weight: 5,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(3000, 15000, 500)
				desc := "Purchased merchandise on account"
				if g.cfg.TradeDiscounts {
					// Recorded net of the trade discount; the list price
					// never enters the books.
					desc = "Purchased merchandise on account, net of trade discount"
				}
				acct := "Purchases"
				if g.cfg.Inventory == model.InventoryPerpetual {
					acct = "Merchandise Inventory"
				}
				return g.entry(seq, desc,
					lines(line(acct, amt)),
					lines(line("Accounts Payable", amt)))
			},
		},
		{
			name: "sale-on-account", weight: 4,
			feasible: func(g *gen) bool {
				if g.cfg.Inventory != model.InventoryPerpetual {
					return true
				}
				return g.netDebit("Merchandise Inventory").GreaterThanOrEqual(decimal.NewFromInt(1000))
			},
			build: func(g *gen, seq int) model.Transaction {
				if g.cfg.Inventory == model.InventoryPerpetual {
					cost := g.boundedAmount(g.netDebit("Merchandise Inventory"), 600, 9000, 300)
					price := cost.Mul(decimal.NewFromFloat(1.5))
					return g.entry(seq, "Sold merchandise on account",
						lines(line("Accounts Receivable", price), line("Cost of Goods Sold", cost)),
						lines(line("Sales", price), line("Merchandise Inventory", cost)))
				}
				amt := g.amount(2000, 12000, 500)
				return g.entry(seq, "Sold merchandise on account",
					lines(line("Accounts Receivable", amt)),
					lines(line("Sales", amt)))
			},
		},
		{
			name: "pay-payable-with-discount", weight: 2,
			feasible: func(g *gen) bool {
				return g.cfg.CashDiscounts &&
					g.netCredit("Accounts Payable").GreaterThanOrEqual(decimal.NewFromInt(500)) &&
					g.hasCash(decimal.NewFromInt(500))
			},
			build: func(g *gen, seq int) model.Transaction {
				limit := decimal.Min(g.netCredit("Accounts Payable"), g.netDebit("Cash"))
				amt := g.boundedAmount(limit, 500, 6000, 500)
				disc := amt.Mul(decimal.NewFromFloat(0.02))
				discAcct := "Purchase Discounts"
				return g.entry(seq, "Paid supplier within discount period",
					lines(line("Accounts Payable", amt)),
					lines(line("Cash", amt.Sub(disc)), line(discAcct, disc)))
			},
		},
	}
	if g.cfg.Freight {
		tpls = append(tpls,
			template{
				name: "pay-freight-in", weight: 2,
				feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(250)) },
				build: func(g *gen, seq int) model.Transaction {
					amt := g.boundedAmount(g.netDebit("Cash"), 250, 2000, 250)
					acct := "Freight In"
					if g.cfg.Inventory == model.InventoryPerpetual {
						acct = "Merchandise Inventory"
					}
					return g.entry(seq, "Paid freight on incoming merchandise",
						lines(line(acct, amt)),
						lines(line("Cash", amt)))
				},
			},
			template{
				name: "pay-freight-out", weight: 1,
				feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(250)) },
				build: func(g *gen, seq int) model.Transaction {
					amt := g.boundedAmount(g.netDebit("Cash"), 250, 1500, 250)
					return g.entry(seq, "Paid freight on merchandise delivered to customer",
						lines(line("Freight Out", amt)),
						lines(line("Cash", amt)))
				},
			})
	}
	return tpls
}

func (g *gen) manufacturingTemplates() []template {
	return []template{
		{
			name: "buy-raw-materials", weight: 4,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(3000, 15000, 500)
				return g.entry(seq, "Purchased raw materials on account",
					lines(line("Raw Materials Inventory", amt)),
					lines(line("Accounts Payable", amt)))
			},
		},
		{
			name: "pay-factory-payroll", weight: 3,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(2000)) },
			build: func(g *gen, seq int) model.Transaction {
				amt := g.boundedAmount(g.netDebit("Cash"), 2000, 10000, 500)
				return g.entry(seq, "Paid factory payroll",
					lines(line("Factory Labor Expense", amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "pay-overhead", weight: 2,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(500)) },
			build: func(g *gen, seq int) model.Transaction {
				amt := g.boundedAmount(g.netDebit("Cash"), 500, 4000, 250)
				return g.entry(seq, "Paid factory overhead costs",
					lines(line("Manufacturing Overhead", amt)),
					lines(line("Cash", amt)))
			},
		},
	}
}

func (g *gen) bankingTemplates() []template {
	return []template{
		{
			name: "accept-deposit", weight: 4,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(5000, 30000, 1000)
				return g.entry(seq, "Accepted customer deposits",
					lines(line("Cash", amt)),
					lines(line("Deposit Liabilities", amt)))
			},
		},
		{
			name: "grant-loan", weight: 3,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(5000)) },
			build: func(g *gen, seq int) model.Transaction {
				amt := g.boundedAmount(g.netDebit("Cash"), 5000, 25000, 1000)
				return g.entry(seq, "Granted a loan to a customer",
					lines(line("Loans Receivable", amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "deposit-withdrawal", weight: 2,
			feasible: func(g *gen) bool {
				return g.netCredit("Deposit Liabilities").GreaterThanOrEqual(decimal.NewFromInt(1000)) &&
					g.hasCash(decimal.NewFromInt(1000))
			},
			build: func(g *gen, seq int) model.Transaction {
				limit := decimal.Min(g.netCredit("Deposit Liabilities"), g.netDebit("Cash"))
				amt := g.boundedAmount(limit, 1000, 10000, 500)
				return g.entry(seq, "Depositor withdrew funds",
					lines(line("Deposit Liabilities", amt)),
					lines(line("Cash", amt)))
			},
		},
		{
			name: "service-charges", weight: 2,
			build: func(g *gen, seq int) model.Transaction {
				amt := g.amount(250, 2000, 250)
				return g.entry(seq, "Collected account service charges",
					lines(line("Cash", amt)),
					lines(line("Service Charges Revenue", amt)))
			},
		},
		{
			name: "pay-deposit-interest", weight: 1,
			feasible: func(g *gen) bool { return g.hasCash(decimal.NewFromInt(250)) },
			build: func(g *gen, seq int) model.Transaction {
				amt := g.boundedAmount(g.netDebit("Cash"), 250, 2000, 250)
				return g.entry(seq, "Paid interest on customer deposits",
					lines(line("Interest Expense", amt)),
					lines(line("Cash", amt)))
			},
		},
	}
}

func revenueNoun(bt model.BusinessType) string {
	switch bt {
	case model.BusinessMerchandising:
		return "merchandise sold"
	case model.BusinessManufacturing:
		return "goods sold"
	case model.BusinessBanking:
		return "interest earned"
	default:
		return "services rendered"
	}
}
