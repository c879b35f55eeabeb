package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	catalogsvc "github.com/KirkDiggler/rpg-gearset/internal/orchestrators/catalog"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load every catalog in the configured source and report unreadable ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, closeRepo, err := openRepository(cmd.Context(), a.cfg.Catalog, a.cfg.Catalog.Source)
			defer func() { _ = closeRepo() }()
			if err != nil {
				return err
			}

			svc, err := catalogsvc.NewService(&catalogsvc.Config{
				Target: repo,
				Roller: dice.DefaultRoller,
			})
			if err != nil {
				return err
			}

			out, err := svc.Verify(cmd.Context(), &catalogsvc.VerifyInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, status := range out.Catalogs {
				if status.Err != nil {
					fmt.Fprintf(w, "FAIL %s: %v\n", status.Name, status.Err)
					continue
				}
				fmt.Fprintf(w, "ok   %s (%d items)\n", status.Name, status.Count)
			}

			if out.Failed > 0 {
				return errors.DataLossf("%d of %d catalogs could not be read", out.Failed, len(out.Catalogs))
			}
			return nil
		},
	}
}
