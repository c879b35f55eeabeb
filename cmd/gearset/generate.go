package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	catalogsvc "github.com/KirkDiggler/rpg-gearset/internal/orchestrators/catalog"
)

func newGenerateCmd(a *app) *cobra.Command {
	var count, maxLevel int

	cmd := &cobra.Command{
		Use:   "generate NAME",
		Short: "Roll a random catalog and store it in the configured source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, closeTarget, err := openRepository(cmd.Context(), a.cfg.Catalog, a.cfg.Catalog.Source)
			defer func() { _ = closeTarget() }()
			if err != nil {
				return err
			}

			svc, err := catalogsvc.NewService(&catalogsvc.Config{
				Target: target,
				Roller: dice.DefaultRoller,
			})
			if err != nil {
				return err
			}

			out, err := svc.Generate(cmd.Context(), &catalogsvc.GenerateInput{
				Name:     args[0],
				Count:    count,
				MaxLevel: maxLevel,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d items into %s catalog %s\n",
				len(out.Items), a.cfg.Catalog.Source, out.Name)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 40, "number of items to roll")
	cmd.Flags().IntVar(&maxLevel, "max-level", 0, "highest item level, 0 uses the default")
	return cmd
}
