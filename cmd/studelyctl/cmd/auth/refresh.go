package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-validate the session against the server",
	Long: `Confirms the stored token with the server and updates the cached
identity. Only a rejected token logs you out; a network failure keeps the
session as it was.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		state, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}
		if !state.Authenticated() {
			return fmt.Errorf("not logged in; run `studelyctl auth login`")
		}

		ctrl, err := cfg.Provider.Controller()
		if err != nil {
			return err
		}
		state = ctrl.RefreshWait(cmd.Context())
		if !state.Authenticated() {
			cfg.Provider.Reset()
			return fmt.Errorf("session expired; run `studelyctl auth login`")
		}

		fmt.Printf("Session %s for %s (%s)\n", state.Provenance, state.Identity.Name, state.Identity.Email)
		return nil
	},
}
