package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gearset/internal/orchestrators/loadout"
	"github.com/KirkDiggler/rpg-gearset/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-gearset/internal/pkg/idgen"
)

func newOptimizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the highest-valued item set",
		Args:  cobra.NoArgs,
		RunE:  a.runOptimize,
	}

	a.addCharacterFlags(cmd)
	cmd.Flags().IntVar(&a.workers, "workers", 0, "goroutines searching in parallel")
	cmd.Flags().DurationVar(&a.progressInterval, "progress-interval", 0, "time between progress log lines, 0 disables")

	return cmd
}

func (a *app) newLoadoutService(cmd *cobra.Command) (loadout.Service, func() error, error) {
	repo, closeRepo, err := openRepository(cmd.Context(), a.cfg.Catalog, a.cfg.Catalog.Source)
	if err != nil {
		return nil, closeRepo, err
	}

	svc, err := loadout.NewService(&loadout.Config{
		CatalogRepo:      repo,
		IDGenerator:      idgen.NewUUID("run"),
		Clock:            clock.New(),
		Workers:          a.cfg.Search.Workers,
		ProgressInterval: a.cfg.Search.ProgressInterval,
	})
	return svc, closeRepo, err
}

func (a *app) characterInput() loadout.CharacterInput {
	level, class, align := a.cfg.CharacterParams()
	return loadout.CharacterInput{
		CatalogName: a.cfg.Catalog.Name,
		Level:       level,
		Class:       class,
		Align:       align,
	}
}

func (a *app) runOptimize(cmd *cobra.Command, _ []string) error {
	svc, closeRepo, err := a.newLoadoutService(cmd)
	defer func() { _ = closeRepo() }()
	if err != nil {
		return err
	}

	out, err := svc.FindBestSet(cmd.Context(), &loadout.FindBestSetInput{
		CharacterInput: a.characterInput(),
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Loaded %d items\n", out.ItemCount)
	fmt.Fprintf(w, "Searched %s item sets for a %s in %s\n",
		out.Combinations.String(), out.Character.String(), out.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, out.ItemSet.String())
	return nil
}
