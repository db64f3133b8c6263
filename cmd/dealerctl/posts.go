package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/loganlanou/dealerpost/internal/dashboard"
	"github.com/loganlanou/dealerpost/internal/filter"
	"github.com/loganlanou/dealerpost/views/helpers"
)

func newPostsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage social media posts",
	}
	cmd.AddCommand(
		newPostsListCommand(opts),
		newPostsGenerateCommand(opts),
		newPostsPublishCommand(opts),
		newPostsDeleteCommand(opts),
	)
	return cmd
}

func newPostsListCommand(opts *options) *cobra.Command {
	var criteria filter.Criteria
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.deps()
			if err != nil {
				return err
			}
			posts, err := d.queries.Posts(cmd.Context(), d.viewer)
			if err != nil {
				return fmt.Errorf("failed to list posts: %w", err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Platform", "Durum", "İçerik"})
			for _, p := range filter.Posts(posts, criteria) {
				status := "Taslak"
				if p.Posted {
					status = "Yayınlandı"
				}
				t.AppendRow(table.Row{p.ID, helpers.PlatformLabel(p.Platform), status, helpers.Truncate(p.Content, 60)})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&criteria.Term, "query", "q", "", "search post content")
	cmd.Flags().StringVar(&criteria.Category, "platform", filter.All, "platform to show")
	return cmd
}

func newPostsGenerateCommand(opts *options) *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "generate <asin>",
		Short: "Draft a post for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.deps()
			if err != nil {
				return err
			}
			return report(cmd, d.actions.GeneratePost(cmd.Context(), d.viewer, args[0], platform))
		},
	}
	cmd.Flags().StringVar(&platform, "platform", "twitter", "twitter, instagram or tiktok")
	return cmd
}

func newPostsPublishCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "publish <id>",
		Short: "Publish a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.deps()
			if err != nil {
				return err
			}
			return report(cmd, d.actions.PublishPost(cmd.Context(), d.viewer, args[0]))
		},
	}
}

func newPostsDeleteCommand(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := opts.deps()
			if err != nil {
				return err
			}

			n, err := d.actions.DeletePost(cmd.Context(), d.viewer, args[0], yes)
			if errors.Is(err, dashboard.ErrConfirmationRequired) {
				if !confirm(cmd, fmt.Sprintf("%s silinsin mi? [e/H] ", args[0])) {
					fmt.Fprintln(cmd.OutOrStdout(), "Vazgeçildi")
					return nil
				}
				n, err = d.actions.DeletePost(cmd.Context(), d.viewer, args[0], true)
			}
			if err != nil {
				return err
			}
			return report(cmd, n)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "e", "evet", "y", "yes":
		return true
	}
	return false
}
