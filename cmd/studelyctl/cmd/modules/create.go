package modules

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var createInput sdk.ModuleInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course module",
	Long:  `Creates a module. Code and title are required; new modules start Active.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		m, err := client.CreateModule(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create module: %w", err)
		}

		pterm.Success.Printf("Created module %d (%s)\n", m.ID, m.Code)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Code, "code", "", "Module code (required)")
	createCmd.Flags().StringVar(&createInput.Title, "title", "", "Module title (required)")
	createCmd.Flags().IntVar(&createInput.Credits, "credits", 0, "Credit value")
	createCmd.Flags().StringVar(&createInput.Instructor, "instructor", "", "Instructor name")
	createCmd.Flags().StringVar(&createInput.Cohort, "cohort", "", "Cohort")
}
