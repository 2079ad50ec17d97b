package students

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var createInput sdk.StudentInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a student",
	Long: `Creates a student record together with its linked user account.
Name, email and registration number are required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		s, err := client.CreateStudent(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create student: %w", err)
		}

		pterm.Success.Printf("Created student %d (%s)\n", s.ID, s.RegNo)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "Full name (required)")
	createCmd.Flags().StringVar(&createInput.Email, "email", "", "Email address (required)")
	createCmd.Flags().StringVar(&createInput.Phone, "phone", "", "Phone number")
	createCmd.Flags().StringVar(&createInput.RegNo, "reg-no", "", "Registration number (required)")
	createCmd.Flags().StringVar(&createInput.Branch, "branch", "", "Branch")
	createCmd.Flags().StringVar(&createInput.Cohort, "cohort", "", "Cohort")
}
