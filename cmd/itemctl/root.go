package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-tracker/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/go-item-tracker/internal/app"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-item-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-tracker/internal/ports"
)

// App carries the flags shared by every subcommand.
type App struct {
	Profile    string
	ConfigDir  string
	PrettyJSON bool

	// NewService builds the item service. Tests replace it with a mock.
	NewService func(ctx context.Context, a *App) (ports.ItemService, error)
}

func newRootCmd(a *App) *cobra.Command {
	if a.NewService == nil {
		a.NewService = buildService
	}

	cmd := &cobra.Command{
		Use:          "itemctl",
		Short:        "Operate the item tracker database from the command line",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Produce a value for auth.password_hash
  printf '%s' "$PASSWORD" | itemctl hash-password

  # List the public projection
  APP_PROFILE=prod itemctl items list --view

  # Archive two items
  itemctl items archive 2f1c... 9ab0...
`),
	}

	cmd.PersistentFlags().StringVarP(&a.Profile, "profile", "p", os.Getenv("APP_PROFILE"),
		"Config profile (defaults to $APP_PROFILE)")
	cmd.PersistentFlags().StringVar(&a.ConfigDir, "config-dir", "configs", "Directory holding base.yaml and profile files")
	cmd.PersistentFlags().BoolVar(&a.PrettyJSON, "pretty", false, "Indent JSON output")

	cmd.AddCommand(newHashPasswordCmd())
	cmd.AddCommand(newCollectionsCmd(a))
	cmd.AddCommand(newItemsCmd(a))

	return cmd
}

// buildService wires the repository and service the same way the server
// does, minus telemetry.
func buildService(ctx context.Context, a *App) (ports.ItemService, error) {
	if a.Profile == "" {
		return nil, errors.New("a profile is required: pass --profile or set APP_PROFILE")
	}

	cfg, err := config.Load(a.Profile, config.WithConfigDir(a.ConfigDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	client := httpclient.New(&cfg.Client, "notion", nil, logger)

	repo, err := acl.NewItemRepository(ctx, client, &cfg.Notion, cfg.Items.Schema(), logger)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Items.Location()
	if err != nil {
		return nil, fmt.Errorf("items timezone: %w", err)
	}

	return app.NewItemService(repo, logger, app.WithLocation(loc)), nil
}

func writeOut(cmd *cobra.Command, a *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if a.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
