package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		if err := app.Logout(); err != nil {
			return err
		}
		color.Green("✓ Signed out")
		return nil
	},
}
