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

var UploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		file, err := app.API().UploadFile(ctx, args[0])
		if err != nil {
			return err
		}

		color.Green("✓ Uploaded %s (%d bytes)", file.OriginalName, file.FileSize)
		fmt.Printf("  id: %s\n  url: %s\n", file.ID, file.FileUrl)
		return nil
	},
}
