package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gearset/internal/config"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	catalogsvc "github.com/KirkDiggler/rpg-gearset/internal/orchestrators/catalog"
)

func newImportCmd(a *app) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "import SOURCE_NAME [TARGET_NAME]",
		Short: "Copy a catalog into the configured source",
		Long: `Copy a catalog from the --from source into the source selected by --source
or the config file. TARGET_NAME defaults to SOURCE_NAME.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == a.cfg.Catalog.Source {
				return errors.InvalidArgumentf("import source and target are both %s", from)
			}

			source, closeSource, err := openRepository(cmd.Context(), a.cfg.Catalog, from)
			defer func() { _ = closeSource() }()
			if err != nil {
				return err
			}
			target, closeTarget, err := openRepository(cmd.Context(), a.cfg.Catalog, a.cfg.Catalog.Source)
			defer func() { _ = closeTarget() }()
			if err != nil {
				return err
			}

			svc, err := catalogsvc.NewService(&catalogsvc.Config{
				Source: source,
				Target: target,
				Roller: dice.DefaultRoller,
			})
			if err != nil {
				return err
			}

			input := &catalogsvc.ImportInput{SourceName: args[0]}
			if len(args) == 2 {
				input.TargetName = args[1]
			}
			out, err := svc.Import(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items from %s into %s catalog %s\n",
				out.Count, from, a.cfg.Catalog.Source, out.TargetName)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", config.SourceFile, "source to read from: bundled, file, redis or sqlite")
	return cmd
}
