package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for session operations
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the login session",
	Long:  `Commands for logging in and out, checking session status, and registering.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(refreshCmd)
	AuthCmd.AddCommand(exportCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(verifyCmd)
}

// promptIfEmpty fills value from an interactive prompt when it is empty.
// In non-interactive mode a missing value is an error instead.
func promptIfEmpty(value *string, label string, mask bool, nonInteractive bool) error {
	if *value != "" {
		return nil
	}
	if nonInteractive {
		return fmt.Errorf("%s is required in non-interactive mode", label)
	}
	input := pterm.DefaultInteractiveTextInput.WithDefaultText(label)
	if mask {
		input = input.WithMask("*")
	}
	v, err := input.Show()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", label, err)
	}
	*value = v
	return nil
}
