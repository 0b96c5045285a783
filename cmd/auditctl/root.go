package main

import (
	"strings"

	"seo-audit-backend/internal/client"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagAPIURL = "api-url"
	envAPIURL  = "AUDIT_API_URL"
)

const auditctlDesc = "Submit SEO audit requests to the audit form backend"
const auditctlDescLong = auditctlDesc + `

To submit a request:
  auditctl submit --name "Jane Doe" --email jane@example.com \
    --phone 0412345678 --message "Please audit our storefront"

To list the dialing codes the form offers:
  auditctl countries

The API base URL defaults to ` + client.DefaultBaseURL + ` and can be set with
--api-url or the ` + envAPIURL + ` environment variable.
`

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("AUDIT")
	v.AutomaticEnv()
	v.SetDefault(flagAPIURL, client.DefaultBaseURL)

	root := &cobra.Command{
		Use:          "auditctl",
		Version:      "v0.1.0",
		Short:        auditctlDesc,
		Long:         auditctlDescLong,
		SilenceUsage: true,
	}
	root.PersistentFlags().String(flagAPIURL, "", "base URL of the audit form API")
	_ = v.BindPFlag(flagAPIURL, root.PersistentFlags().Lookup(flagAPIURL))

	root.AddCommand(newSubmitCommand(v), newCountriesCommand())
	return root
}
