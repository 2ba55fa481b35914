package main

import (
	"github.com/spf13/cobra"

	"github.com/narender/product-console/console/src/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var skipLogin bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive login form and dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := tui.New(cmd.Context(), a.authService(), a.productService(), a.logger, tui.Options{
				PageSize:      a.cfg.PageSize,
				RedirectDelay: a.cfg.RedirectDelay,
				SkipLogin:     skipLogin || a.cfg.APIToken != "",
				Authorize:     a.authorizedProducts,
				OnRedirect:    func() { a.logger.Info("Login redirected to dashboard") },
			})
			return tui.Run(m)
		},
	}
	cmd.Flags().BoolVar(&skipLogin, "skip-login", false, "start on the dashboard")
	return cmd
}
