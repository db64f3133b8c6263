package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/loganlanou/dealerpost/internal/filter"
	"github.com/loganlanou/dealerpost/views/helpers"
)

func newProductsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List and sync catalog products",
	}

	var criteria filter.Criteria
	list := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.deps()
			if err != nil {
				return err
			}
			products, err := d.queries.Products(cmd.Context(), d.viewer)
			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}
			shown := filter.Products(products, criteria)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ASIN", "Ürün", "Kategori", "Fiyat"})
			for _, p := range shown {
				t.AppendRow(table.Row{p.ASIN, helpers.Truncate(p.Title, 48), p.Category, helpers.FormatPrice(p.Price, p.Currency)})
			}
			t.AppendFooter(table.Row{"", fmt.Sprintf("%d / %d", len(shown), len(products)), "", ""})
			t.Render()
			return nil
		},
	}
	list.Flags().StringVarP(&criteria.Term, "query", "q", "", "search title and description")
	list.Flags().StringVar(&criteria.Category, "category", filter.All, "category to show")

	sync := &cobra.Command{
		Use:   "sync",
		Short: "Sync the catalog from Amazon",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.deps()
			if err != nil {
				return err
			}
			return report(cmd, d.actions.SyncProducts(cmd.Context(), d.viewer))
		},
	}

	cmd.AddCommand(list, sync)
	return cmd
}
