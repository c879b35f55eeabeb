package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gearset/internal/orchestrators/loadout"
)

func newPoolsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "List the items the character can use in each location",
		Args:  cobra.NoArgs,
		RunE:  a.runPools,
	}

	a.addCharacterFlags(cmd)
	return cmd
}

func (a *app) runPools(cmd *cobra.Command, _ []string) error {
	svc, closeRepo, err := a.newLoadoutService(cmd)
	defer func() { _ = closeRepo() }()
	if err != nil {
		return err
	}

	out, err := svc.DescribePools(cmd.Context(), &loadout.DescribePoolsInput{
		CharacterInput: a.characterInput(),
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Usable items per slot for a %s\n", out.Character.String())
	for _, pool := range out.Pools {
		names := make([]string, len(pool.Items))
		for i, item := range pool.Items {
			names[i] = item.Name
		}
		fmt.Fprintf(w, "    %-10s%s\n", pool.Location.String()+":", strings.Join(names, ", "))
	}
	fmt.Fprintf(w, "%s item sets\n", out.Combinations.String())
	return nil
}
