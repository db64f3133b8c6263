package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/views/helpers"
)

func newAnalyticsCommand(opts *options) *cobra.Command {
	var f apiclient.AnalyticsFilter
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show the analytics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.deps()
			if err != nil {
				return err
			}
			a, err := d.queries.Analytics(cmd.Context(), d.viewer, f)
			if err != nil {
				return fmt.Errorf("failed to load analytics: %w", err)
			}

			summary := table.NewWriter()
			summary.SetOutputMirror(cmd.OutOrStdout())
			summary.SetStyle(table.StyleLight)
			summary.SetTitle(helpers.RangeLabel(a.Range))
			summary.AppendRows([]table.Row{
				{"Toplam gönderi", a.TotalPosts},
				{"Yayınlanan", a.PublishedPosts},
				{"Gösterim", a.TotalImpressions},
				{"Etkileşim", a.TotalEngagement},
				{"Etkileşim oranı", helpers.FormatPercentage(a.EngagementRate)},
			})
			summary.Render()

			if len(a.TopPerformingPosts) == 0 {
				return nil
			}
			top := table.NewWriter()
			top.SetOutputMirror(cmd.OutOrStdout())
			top.SetStyle(table.StyleLight)
			top.AppendHeader(table.Row{"Platform", "İçerik", "Beğeni", "Paylaşım", "Oran"})
			for _, p := range a.TopPerformingPosts {
				top.AppendRow(table.Row{helpers.PlatformLabel(p.Platform), helpers.Truncate(p.Content, 50), p.Likes, p.Shares, helpers.FormatPercentage(p.EngagementRate)})
			}
			top.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Range, "range", "30d", "7d, 30d, 90d or 1y")
	cmd.Flags().StringVar(&f.Platform, "platform", "all", "platform filter")
	return cmd
}
