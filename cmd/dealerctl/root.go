package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/dashboard"
	"github.com/loganlanou/dealerpost/internal/logging"
	"github.com/loganlanou/dealerpost/internal/querycache"
	"github.com/loganlanou/dealerpost/internal/session"
)

// cliUser keys the query cache; the CLI always acts for a single token.
const cliUser = "cli"

type options struct {
	apiURL string
	token  string
	debug  bool
}

// deps is what every subcommand works with.
type deps struct {
	api     *apiclient.Client
	viewer  dashboard.Viewer
	queries *dashboard.Queries
	actions *dashboard.Actions
}

func (o *options) deps() (*deps, error) {
	if o.token == "" {
		return nil, errors.New("no access token: run `dealerctl login` and set DEALERPOST_TOKEN")
	}
	api := apiclient.New(o.apiURL, nil)
	queries := dashboard.NewQueries(api, querycache.New(querycache.DefaultStaleTime))
	return &deps{
		api:     api,
		viewer:  dashboard.Viewer{UserID: cliUser, Token: o.token},
		queries: queries,
		actions: dashboard.NewActions(queries),
	}, nil
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "dealerctl",
		Short:         "Manage dealerpost products, posts and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := os.Getenv("LOG_LEVEL")
			if opts.debug {
				level = "debug"
			}
			return logging.Setup(level)
		},
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr("DEALERPOST_API_URL", "http://localhost:8000"), "dealerpost server URL")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("DEALERPOST_TOKEN"), "API access token")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newLoginCommand(opts),
		newProductsCommand(opts),
		newPostsCommand(opts),
		newAnalyticsCommand(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	_ = godotenv.Load()
	return newRootCommand().ExecuteContext(context.Background())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// report prints a notification and turns an error notification into a
// command failure.
func report(cmd *cobra.Command, n session.Notification) error {
	if n.Kind == session.NotificationError {
		slog.Debug("action failed", "message", n.Message)
		return errors.New(n.Message)
	}
	fmt.Fprintln(cmd.OutOrStdout(), n.Message)
	return nil
}
