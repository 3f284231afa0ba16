package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/drillbook-dev/drillbook/internal/model"
)

// DefaultPath is the config file name looked up in the working directory.
const DefaultPath = "drillbook.yaml"

// Config represents the top-level drillbook.yaml configuration.
type Config struct {
	Business Business `yaml:"business"`
	Scenario Scenario `yaml:"scenario"`
	Steps    []int    `yaml:"steps"`
	Server   Server   `yaml:"server"`
}

// Business identifies the practice business.
type Business struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`      // service | merchandising | manufacturing | banking
	Ownership string `yaml:"ownership"` // sole-proprietorship | partnership | corporation | cooperative
}

// Scenario controls activity generation.
type Scenario struct {
	Transactions   int    `yaml:"transactions"`
	Inventory      string `yaml:"inventory"` // periodic | perpetual
	SubsequentYear bool   `yaml:"subsequent_year"`
	TradeDiscounts bool   `yaml:"trade_discounts"`
	CashDiscounts  bool   `yaml:"cash_discounts"`
	Freight        bool   `yaml:"freight"`
	ExpenseMethod  string `yaml:"deferred_expense_method"` // asset | expense
	IncomeMethod   string `yaml:"deferred_income_method"`  // liability | income
	Year           int    `yaml:"year"`
	Month          int    `yaml:"month"`
	Seed           int64  `yaml:"seed,omitempty"`
}

// Server controls the HTTP shell.
type Server struct {
	Listen     string `yaml:"listen"`
	DBPath     string `yaml:"db_path"`
	AttemptLog string `yaml:"attempt_log,omitempty"`
}

// Load reads a drillbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName, businessType string) *Config {
	return &Config{
		Business: Business{
			Name:      businessName,
			Type:      businessType,
			Ownership: string(model.OwnershipSoleProprietorship),
		},
		Scenario: Scenario{
			Transactions:  10,
			Inventory:     string(model.InventoryPeriodic),
			ExpenseMethod: string(model.MethodAsset),
			IncomeMethod:  string(model.MethodLiability),
			Year:          2025,
			Month:         1,
		},
		Steps: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		Server: Server{
			Listen:     ":8080",
			DBPath:     "drillbook.db",
			AttemptLog: "attempts.csv",
		},
	}
}

// ToGeneration maps the file config onto a generation config; invalid
// enum strings fall through to the generator's own defaults.
func (c *Config) ToGeneration() model.Config {
	return model.Config{
		BusinessName:   c.Business.Name,
		BusinessType:   model.BusinessType(c.Business.Type),
		Ownership:      model.OwnershipForm(c.Business.Ownership),
		Inventory:      model.InventorySystem(c.Scenario.Inventory),
		Transactions:   c.Scenario.Transactions,
		TradeDiscounts: c.Scenario.TradeDiscounts,
		CashDiscounts:  c.Scenario.CashDiscounts,
		Freight:        c.Scenario.Freight,
		SubsequentYear: c.Scenario.SubsequentYear,
		ExpenseMethod:  model.DeferralMethod(c.Scenario.ExpenseMethod),
		IncomeMethod:   model.DeferralMethod(c.Scenario.IncomeMethod),
		Year:           c.Scenario.Year,
		Month:          time.Month(c.Scenario.Month),
		Seed:           c.Scenario.Seed,
	}
}
