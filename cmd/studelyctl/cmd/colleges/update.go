package colleges

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var updateInput sdk.CollegeInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a college",
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

		c, err := client.UpdateCollege(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update college %d: %w", id, err)
		}

		pterm.Success.Printf("Updated college %d (%s)\n", c.ID, c.Name)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Name, "name", "", "College name")
	updateCmd.Flags().StringVar(&updateInput.Code, "code", "", "Short code")
	updateCmd.Flags().StringVar(&updateInput.City, "city", "", "City")
	updateCmd.Flags().StringVar(&updateInput.Email, "email", "", "Contact email")
	updateCmd.Flags().StringVar(&updateInput.Phone, "phone", "", "Contact phone")
}
