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

var (
	phoneNumber string
	idToken     string
)

var PhoneLoginCmd = &cobra.Command{
	Use:   "phone-login",
	Short: "Sign in with a verified phone token",
	Long: `Signs in with a one-time-code token issued by the identity
provider. An account is created on first sign-in.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		if phoneNumber == "" || idToken == "" {
			return fmt.Errorf("--phone and --token are required")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.API().PhoneLogin(ctx, idToken, phoneNumber)
		if err != nil {
			return err
		}

		if err := app.SaveToken(result.Token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		color.Green("✓ Signed in as %s", result.User.PhoneNumber)
		return nil
	},
}

func init() {
	PhoneLoginCmd.Flags().StringVar(&phoneNumber, "phone", "", "phone number in E.164 form")
	PhoneLoginCmd.Flags().StringVar(&idToken, "token", "", "identity-provider token")
}
