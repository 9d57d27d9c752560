package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
	"cloudvault/internal/app/client/config"
	"cloudvault/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "cloudvault",
	Short: "CloudVault - personal cloud storage client",
	Long: `CloudVault is the command-line client for the CloudVault personal
cloud: upload and download files, keep notes and text snippets, and
inspect storage usage. Sign in once; the session token is stored locally.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("client init: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address (host:port)")
}
