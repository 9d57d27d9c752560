package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cloudvault/cmd/client/cmd/types"
	"cloudvault/internal/app/client"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with email and password",
	Long: `Authenticates against the server and stores the session token
locally for later commands.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.API().Login(ctx, email, string(password))
		if err != nil {
			return err
		}

		if err := app.SaveToken(result.Token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		color.Green("✓ Signed in as %s", result.User.Email)
		return nil
	},
}
