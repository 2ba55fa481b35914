// Command console is the terminal front end for the product catalog: a
// login form plus a paged, filterable product dashboard with CRUD.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/narender/product-console/common/config"
	"github.com/narender/product-console/common/globals"
	"github.com/narender/product-console/console/src/services"
	"github.com/narender/product-console/console/src/views"
)

const serviceName = "console"

// app carries what every command needs. Tests fill cfg and logger up front
// so that globals.Init is skipped.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
	styles     views.Styles
	clientOpts []services.Option
}

func (a *app) init(ctx context.Context) error {
	if a.cfg != nil {
		return nil
	}
	if err := globals.Init(ctx, a.configFile, serviceName); err != nil {
		return err
	}
	a.cfg = globals.Cfg()
	a.logger = globals.Logger()
	return nil
}

func (a *app) authService() services.AuthService {
	return services.NewAuthService(a.cfg, a.logger, a.clientOpts...)
}

func (a *app) productService() services.ProductService {
	return services.NewProductService(a.cfg, a.logger, a.clientOpts...)
}

// authorizedProducts returns a product client that sends token on every call.
func (a *app) authorizedProducts(token string) services.ProductService {
	opts := append(slices.Clone(a.clientOpts), services.WithToken(token))
	return services.NewProductService(a.cfg, a.logger, opts...)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "console",
		Short: "Product catalog console",
		Long: `Log in and manage the product catalog served by the REST backend.

Configuration comes from the environment (API_BASE_URL, API_TOKEN, PAGE_SIZE, ...),
an optional .env file and the file passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "optional YAML/JSON config file")

	root.AddCommand(
		newLoginCmd(a),
		newProductsCmd(a),
		newTUICmd(a),
		newConfigCmd(a),
	)
	return root
}

func main() {
	a := &app{styles: views.DefaultStyles()}
	err := newRootCmd(a).ExecuteContext(context.Background())
	if shutdownErr := globals.TelemetryShutdown()(context.Background()); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
