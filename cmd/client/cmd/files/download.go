package files

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
)

var output string

var DownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a file by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		dst := output
		if dst == "" {
			dst = args[0]
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		n, err := app.API().DownloadFile(ctx, args[0], dst)
		if err != nil {
			return err
		}

		color.Green("✓ Saved %s (%d bytes)", dst, n)
		return nil
	},
}

func init() {
	DownloadCmd.Flags().StringVarP(&output, "output", "o", "", "destination path")
}
