package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/dashboard"
)

func newLoginCommand(opts *options) *cobra.Command {
	var form dashboard.LoginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange email and password for an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := form.Validate(); len(errs) > 0 {
				for _, field := range []string{"email", "password"} {
					if msg, ok := errs[field]; ok {
						return errors.New(msg)
					}
				}
			}

			token, err := apiclient.New(opts.apiURL, nil).Login(cmd.Context(), form.Email, form.Password)
			if err != nil {
				detail := apiclient.DetailOf(err)
				if detail == "" {
					detail = err.Error()
				}
				return fmt.Errorf("Giriş başarısız: %s", detail)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "export DEALERPOST_TOKEN=%s\n", token.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	return cmd
}
