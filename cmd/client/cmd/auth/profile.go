package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
)

var displayName string

var ProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update the display name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		if displayName == "" {
			return fmt.Errorf("--name is required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		user, err := app.API().UpdateProfile(ctx, displayName)
		if err != nil {
			return err
		}

		color.Green("✓ Profile updated: %s", user.DisplayName)
		return nil
	},
}

func init() {
	ProfileCmd.Flags().StringVar(&displayName, "name", "", "display name")
}
