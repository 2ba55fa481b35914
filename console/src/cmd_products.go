package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/narender/product-console/console/src/controllers"
	"github.com/narender/product-console/console/src/models"
	"github.com/narender/product-console/console/src/views"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"p"},
		Short:   "List, create, update and delete products",
	}
	cmd.AddCommand(
		newProductsListCmd(a),
		newProductsCreateCmd(a),
		newProductsUpdateCmd(a),
		newProductsDeleteCmd(a),
	)
	return cmd
}

func (a *app) dashboard() *controllers.Dashboard {
	return controllers.NewDashboard(a.productService(), a.logger, a.cfg.PageSize)
}

// printServerMessage writes the dashboard's message slot, if set.
func (a *app) printServerMessage(w io.Writer, d *controllers.Dashboard, failed bool) {
	msg := d.ServerMessage()
	if msg == "" {
		return
	}
	style := a.styles.Success
	if failed {
		style = a.styles.Error
	}
	fmt.Fprintln(w, style.Render(msg))
}

func newProductsListCmd(a *app) *cobra.Command {
	var (
		page   int
		filter models.Filter
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.dashboard()
			d.SetFilter(filter)
			d.ApplyFilters()
			d.SelectPage(page - 1)

			out := cmd.OutOrStdout()
			if err := d.Fetch(cmd.Context()); err != nil {
				a.printServerMessage(out, d, true)
				return err
			}
			if applied := d.AppliedFilter(); !applied.IsZero() {
				fmt.Fprintln(out, a.styles.Muted.Render("filter: "+views.DescribeFilter(applied)))
			}
			fmt.Fprintln(out, a.styles.RenderProductTable(d.Products(), -1))
			fmt.Fprintln(out, a.styles.RenderPager(d.Page(), d.TotalPages(), d.TotalElements()))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&page, "page", 1, "1-based page number")
	f.StringVarP(&filter.Search, "search", "s", "", "name contains")
	f.StringVar(&filter.Category, "category", "", "category code, e.g. LAPTOP")
	f.StringVar(&filter.PriceMin, "min-price", "", "lowest price")
	f.StringVar(&filter.PriceMax, "max-price", "", "highest price")
	f.StringVar(&filter.QtyMin, "min-qty", "", "lowest quantity")
	f.StringVar(&filter.QtyMax, "max-qty", "", "highest quantity")
	return cmd
}

// draftFlags binds the product form fields to cmd's flags.
func draftFlags(cmd *cobra.Command, draft *models.ProductDraft) {
	*draft = models.NewDraft()
	f := cmd.Flags()
	f.StringVar(&draft.Name, "name", "", "product name (3-100 characters)")
	f.StringVar(&draft.Price, "price", draft.Price, "price, 0-999999999")
	f.StringVar(&draft.Quantity, "quantity", draft.Quantity, "whole quantity, 0-99999")
	f.StringVar(&draft.Category, "category", draft.Category, views.CategoryHint())
	f.StringVar(&draft.Description, "description", "", "optional, up to 500 characters")
}

// reportSave prints the form errors or the server message after a save.
func (a *app) reportSave(w io.Writer, d *controllers.Dashboard, err error) error {
	if errors.Is(err, controllers.ErrInvalidForm) {
		errs := d.FormErrors()
		for _, key := range views.FormFieldKeys() {
			if msg, ok := errs[key]; ok {
				fmt.Fprintln(w, a.styles.Error.Render(key+": "+msg))
			}
		}
		return err
	}
	a.printServerMessage(w, d, err != nil)
	return err
}

func newProductsCreateCmd(a *app) *cobra.Command {
	var draft models.ProductDraft
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate and create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.dashboard()
			d.SetDraft(draft)
			return a.reportSave(cmd.OutOrStdout(), d, d.Create(cmd.Context()))
		},
	}
	draftFlags(cmd, &draft)
	return cmd
}

func newProductsUpdateCmd(a *app) *cobra.Command {
	var draft models.ProductDraft
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Validate and replace every field of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := a.dashboard()
			d.SetDraft(draft)
			return a.reportSave(cmd.OutOrStdout(), d, d.Update(cmd.Context(), id))
		},
	}
	draftFlags(cmd, &draft)
	return cmd
}

func newProductsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := a.dashboard()
			out := cmd.OutOrStdout()
			if err := d.Delete(cmd.Context(), id); err != nil {
				a.printServerMessage(out, d, true)
				return err
			}
			fmt.Fprintln(out, a.styles.Success.Render(fmt.Sprintf("Product %d deleted", id)))
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}
