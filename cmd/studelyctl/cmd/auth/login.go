package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Studely",
	Long: `Authenticates with the Studely server using email and password and stores
the issued token under ~/.studely.

Credentials can be passed via flags, via the STUDELY_EMAIL and
STUDELY_PASSWORD environment variables, or entered interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		state, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}
		if res := sdk.GuestOnly(state, ""); res.Decision == sdk.DecisionRedirect {
			fmt.Printf("Already logged in as %s; run `studelyctl auth logout` first.\n", state.Identity.Name)
			return nil
		}

		if loginEmail == "" {
			loginEmail = os.Getenv("STUDELY_EMAIL")
		}
		if loginPassword == "" {
			loginPassword = os.Getenv("STUDELY_PASSWORD")
		}
		if err := promptIfEmpty(&loginEmail, "Email", false, cfg.NonInteractive); err != nil {
			return err
		}
		if err := promptIfEmpty(&loginPassword, "Password", true, cfg.NonInteractive); err != nil {
			return err
		}

		ctrl, err := cfg.Provider.Controller()
		if err != nil {
			return err
		}
		if _, err := ctrl.Login(cmd.Context(), loginEmail, loginPassword, cfg.Device); err != nil {
			var verr *sdk.ValidationError
			switch {
			case errors.As(err, &verr):
				return fmt.Errorf("login rejected: %s", verr.Detail())
			case sdk.IsUnauthorized(err):
				return fmt.Errorf("login failed: invalid email or password")
			case sdk.IsNetworkFailure(err):
				return fmt.Errorf("login failed: could not reach %s: %w", cfg.ServerURL, err)
			default:
				return err
			}
		}

		// A fresh token invalidates any resource client built before login.
		cfg.Provider.Reset()

		id := ctrl.State().Identity
		fmt.Println("------------------------------------------------------------")
		fmt.Printf("✅ Login successful!\n")
		fmt.Printf("Authenticated as: %s (%s)\n", id.Name, id.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (or STUDELY_EMAIL)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (or STUDELY_PASSWORD)")
}
