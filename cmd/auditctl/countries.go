package main

import (
	"fmt"
	"text/tabwriter"

	"seo-audit-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newCountriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the dialing codes the form offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tCOUNTRY\tFLAG")
			for _, cc := range domain.CountryCodes {
				marker := ""
				if cc.Code == domain.DefaultCountryCode {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s\t%s%s\t%s\n", cc.Code, cc.Country, marker, cc.Flag)
			}
			return w.Flush()
		},
	}
}
