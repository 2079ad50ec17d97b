package students

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var updateInput sdk.StudentInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a student",
	Long:  `Applies a partial update; only the provided flags change the record.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().NFlag() == 0 {
			return fmt.Errorf("nothing to update; pass at least one field flag")
		}
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		s, err := client.UpdateStudent(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update student %d: %w", id, err)
		}

		pterm.Success.Printf("Updated student %d (%s)\n", s.ID, s.RegNo)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Name, "name", "", "Full name")
	updateCmd.Flags().StringVar(&updateInput.Email, "email", "", "Email address")
	updateCmd.Flags().StringVar(&updateInput.Phone, "phone", "", "Phone number")
	updateCmd.Flags().StringVar(&updateInput.RegNo, "reg-no", "", "Registration number")
	updateCmd.Flags().StringVar(&updateInput.Branch, "branch", "", "Branch")
	updateCmd.Flags().StringVar(&updateInput.Cohort, "cohort", "", "Cohort")
}
