package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interpretive-systems/riskscan/internal/config"
	"github.com/interpretive-systems/riskscan/internal/tui"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

func newScanCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "scan [file...]",
		Short: "Open the TUI on the upload step with a URL or files preselected",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url != "" && len(args) > 0 {
				return fmt.Errorf("give either --url or files, not both")
			}
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			start := tui.Start{Scan: true, URL: url}
			for _, a := range args {
				f, err := wizard.StatFile(a)
				if err != nil {
					return err
				}
				start.Files = append(start.Files, f)
			}
			return tui.Run(cfg, start)
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Document URL to analyze")
	return cmd
}
