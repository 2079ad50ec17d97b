package auth

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

var (
	registerName     string
	registerEmail    string
	registerPhone    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Start account sign-up",
	Long: `Submits sign-up details to the server, which sends a one-time code to the
given email address. Complete the sign-up with ` + "`studelyctl auth verify`" + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if err := promptIfEmpty(&registerName, "Full name", false, cfg.NonInteractive); err != nil {
			return err
		}
		if err := promptIfEmpty(&registerEmail, "Email", false, cfg.NonInteractive); err != nil {
			return err
		}
		if err := promptIfEmpty(&registerPassword, "Password", true, cfg.NonInteractive); err != nil {
			return err
		}

		identity, err := cfg.Provider.Identity()
		if err != nil {
			return err
		}
		err = identity.RegisterInit(cmd.Context(), sdk.RegisterInput{
			Name:     registerName,
			Email:    registerEmail,
			Phone:    registerPhone,
			Password: registerPassword,
		})
		if err != nil {
			var verr *sdk.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("sign-up rejected: %s", verr.Detail())
			}
			return err
		}

		pterm.Success.Printf("Verification code sent to %s\n", registerEmail)
		fmt.Printf("Complete the sign-up with: studelyctl auth verify --email %s --code <code>\n", registerEmail)
		return nil
	},
}

var (
	verifyEmail string
	verifyCode  string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Complete sign-up with the emailed one-time code",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if err := promptIfEmpty(&verifyEmail, "Email", false, cfg.NonInteractive); err != nil {
			return err
		}
		if err := promptIfEmpty(&verifyCode, "Verification code", false, cfg.NonInteractive); err != nil {
			return err
		}

		identity, err := cfg.Provider.Identity()
		if err != nil {
			return err
		}
		if err := identity.RegisterComplete(cmd.Context(), verifyEmail, verifyCode); err != nil {
			var verr *sdk.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("verification rejected: %s", verr.Detail())
			}
			return err
		}

		pterm.Success.Println("Account created.")
		fmt.Println("Log in with: studelyctl auth login")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number (optional)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password")

	verifyCmd.Flags().StringVar(&verifyEmail, "email", "", "Email address used at registration")
	verifyCmd.Flags().StringVar(&verifyCode, "code", "", "One-time code from the verification email")
}
