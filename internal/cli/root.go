package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/riskscan/internal/config"
	"github.com/interpretive-systems/riskscan/internal/tui"
)

// Execute runs the riskscan command tree.
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "riskscan",
		Short: "Scan documents for risky clauses",
		Long:  "riskscan: upload a contract or policy, pick its type and browse the risks found in it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return tui.Run(cfg, tui.Start{})
		},
		SilenceUsage: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newScanCmd())
	root.AddCommand(newCatalogCmd())
	return root
}
