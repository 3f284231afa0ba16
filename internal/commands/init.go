package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/drillbook-dev/drillbook/internal/config"
)

func newInitCommand() *cobra.Command {
	var (
		force        bool
		businessName string
		businessType string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default drillbook.yaml into a workspace directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating workspace: %w", err)
			}

			path := filepath.Join(dir, config.DefaultPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}

			cfg := config.Default(businessName, businessType)
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&businessName, "name", "Horizon Trading", "Business name for the practice set")
	cmd.Flags().StringVar(&businessType, "type", "service", "Business type: service, merchandising, manufacturing or banking")

	return cmd
}
