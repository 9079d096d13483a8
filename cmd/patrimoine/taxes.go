package main

import (
	"fmt"
	"sort"

	"github.com/rpgo/patrimoine/internal/config"
	"github.com/spf13/cobra"
)

func newTaxesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "taxes",
		Short: "Validate the tax model documents and print their versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := a.v.GetString("fiscal")
			model, err := config.LoadFiscalModel(dir)
			if err != nil {
				return err
			}
			versions := model.Versions()
			names := make([]string, 0, len(versions))
			for name := range versions {
				names = append(names, name)
			}
			sort.Strings(names)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tax models in %s:\n", dir)
			for _, name := range names {
				fmt.Fprintf(out, "  %-28s %s\n", name, versions[name])
			}
			return nil
		},
	}
}
