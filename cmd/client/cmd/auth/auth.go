package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd groups account operations: register, login, phone-login, profile.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Account management",
	Long:  `Registration, sign-in and profile updates.`,
}

func init() {
	AuthCmd.AddCommand(RegisterCmd)
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(PhoneLoginCmd)
	AuthCmd.AddCommand(ProfileCmd)
	AuthCmd.AddCommand(LogoutCmd)
}
