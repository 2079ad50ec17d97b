package colleges

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var createInput sdk.CollegeInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a college",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		c, err := client.CreateCollege(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create college: %w", err)
		}

		pterm.Success.Printf("Created college %d (%s)\n", c.ID, c.Name)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "College name (required)")
	createCmd.Flags().StringVar(&createInput.Code, "code", "", "Short code")
	createCmd.Flags().StringVar(&createInput.City, "city", "", "City")
	createCmd.Flags().StringVar(&createInput.Email, "email", "", "Contact email")
	createCmd.Flags().StringVar(&createInput.Phone, "phone", "", "Contact phone")
}
