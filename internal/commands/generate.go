package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drillbook-dev/drillbook/internal/config"
	"github.com/drillbook-dev/drillbook/internal/export"
	"github.com/drillbook-dev/drillbook/internal/scenario"
)

func newGenerateCommand() *cobra.Command {
	var (
		configPath string
		outPath    string
		seed       int64
		exportCSV  bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a practice activity from drillbook.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			gen := cfg.ToGeneration()
			if seed != 0 {
				gen.Seed = seed
			}

			activity, err := scenario.Generate(gen)
			if err != nil {
				return fmt.Errorf("generating activity: %w", err)
			}

			data, err := json.MarshalIndent(activity, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding activity: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("writing activity: %w", err)
			}
			fmt.Printf("Wrote %s (%d transactions, %d adjustments, seed %d)\n",
				outPath, len(activity.Transactions), len(activity.Adjustments), activity.Config.Seed)

			if !exportCSV {
				return nil
			}

			journal, err := os.Create("journal.csv")
			if err != nil {
				return fmt.Errorf("creating journal export: %w", err)
			}
			defer journal.Close()
			if err := export.WriteJournal(journal, activity.Transactions); err != nil {
				return fmt.Errorf("exporting journal: %w", err)
			}

			tb, err := os.Create("trial_balance.csv")
			if err != nil {
				return fmt.Errorf("creating trial balance export: %w", err)
			}
			defer tb.Close()
			if err := export.WriteTrialBalance(tb, activity.Ledger); err != nil {
				return fmt.Errorf("exporting trial balance: %w", err)
			}

			fmt.Println("Wrote journal.csv and trial_balance.csv")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the config file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "activity.json", "Path to write the generated activity")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Override the random seed (0 keeps the configured seed)")
	cmd.Flags().BoolVar(&exportCSV, "export", false, "Also export journal.csv and trial_balance.csv")

	return cmd
}
