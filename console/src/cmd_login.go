package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/narender/product-console/console/src/controllers"
)

func newLoginCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Validate credentials and obtain a token",
		Long: `Runs the login form once: both fields are validated locally, then sent
to POST /api/auth/login. On success the token is printed; export it as
API_TOKEN to authenticate later commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// there is no screen to redirect to
			form := controllers.NewLoginForm(a.authService(), a.logger,
				controllers.WithScheduler(func(time.Duration, func()) {}))
			form.SetUsername(username)
			form.SetPassword(password)

			out := cmd.OutOrStdout()
			err := form.Submit(cmd.Context())
			if err != nil {
				errs := form.Errors()
				if errs.Username != "" {
					fmt.Fprintln(out, a.styles.Error.Render("username: "+errs.Username))
				}
				if errs.Password != "" {
					fmt.Fprintln(out, a.styles.Error.Render("password: "+errs.Password))
				}
				if errors.Is(err, controllers.ErrInvalidForm) {
					return err
				}
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintln(out, a.styles.Success.Render(form.SuccessMessage()))
			if token := form.Token(); token != "" {
				fmt.Fprintf(out, "API_TOKEN=%s\n", token)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}
