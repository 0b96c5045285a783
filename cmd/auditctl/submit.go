package main

import (
	"errors"
	"fmt"
	"io"

	"seo-audit-backend/internal/client"
	"seo-audit-backend/internal/domain"
	"seo-audit-backend/internal/form"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errSubmissionRejected = errors.New("submission was not accepted")

// fieldOrder matches the order the form lays fields out in.
var fieldOrder = []string{"name", "email", "phone", "countryCode", "website", "message"}

var flagForField = map[string]string{
	"name":        "name",
	"email":       "email",
	"phone":       "phone",
	"countryCode": "country-code",
	"website":     "website",
	"message":     "message",
}

func newSubmitCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an SEO audit request",
		Long: `Fills in the audit form from flags and submits it once.

Field errors reported by the backend are printed one per line and the command
exits non-zero. On success the audit team receives the request by email.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubmit(cmd, v)
		},
	}

	f := cmd.Flags()
	f.StringP("name", "n", "", "full name")
	f.StringP("email", "e", "", "email address")
	f.StringP("phone", "p", "", "phone number without the dialing code")
	f.StringP("country-code", "c", domain.DefaultCountryCode, "dialing code, see `auditctl countries`")
	f.StringP("website", "w", "", "website URL to audit (optional)")
	f.StringP("message", "m", "", "what you would like audited")
	return cmd
}

func runSubmit(cmd *cobra.Command, v *viper.Viper) error {
	out := cmd.OutOrStdout()
	ctl := form.NewController(client.New(v.GetString(flagAPIURL)), printNotification(out))

	for _, field := range fieldOrder {
		if err := ctl.SetField(field, getStringFlag(cmd, flagForField[field])); err != nil {
			return err
		}
	}

	if code := ctl.Fields().CountryCode; code != "" {
		if _, ok := domain.LookupCountryCode(code); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is not one of the offered dialing codes\n", code)
		}
	}

	result, err := ctl.Submit(cmd.Context())
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if result.Success {
		return nil
	}

	errs := ctl.Errors()
	for _, field := range fieldOrder {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(out, "  %s: %s\n", field, msg)
		}
	}
	return errSubmissionRejected
}

func printNotification(out io.Writer) form.Notifier {
	return form.NotifierFunc(func(n form.Notification) {
		fmt.Fprintf(out, "[%s] %s\n", n.Kind, n.Message)
	})
}

func getStringFlag(cmd *cobra.Command, flagName string) (value string) {
	if f := cmd.Flag(flagName); f != nil {
		value = f.Value.String()
	}
	return
}
