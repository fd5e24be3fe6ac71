package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/interpretive-systems/riskscan/internal/catalog"
	"github.com/interpretive-systems/riskscan/internal/config"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Validate the findings catalog and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cfg.Catalog)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderCatalog(cat))
			fmt.Fprintf(out, "total risks: %d\n", cat.TotalRisks())
			return nil
		},
	}
}

func renderCatalog(cat *catalog.Catalog) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "CATEGORY", "COUNT", "LEVEL", "EXCERPTS")
	for _, f := range cat.Findings() {
		level, excerpts := "-", "-"
		if d, ok := cat.Detail(f.ID); ok {
			level = d.Level.String()
			excerpts = strconv.Itoa(len(d.Excerpts))
		}
		t.Row(strconv.Itoa(f.ID), f.Category, strconv.Itoa(f.Count), level, excerpts)
	}
	return t.String()
}
