package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	Long: `Revokes the server-side token (best effort) and removes the stored
credentials. Safe to run when already logged out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		ctrl, err := cfg.Provider.Controller()
		if err != nil {
			return err
		}
		ctrl.Logout(cmd.Context())
		cfg.Provider.Reset()

		fmt.Println("✅ Logged out.")
		return nil
	},
}
