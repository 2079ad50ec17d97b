package modules

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var updateInput sdk.ModuleInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a course module",
	Long:  `Applies a partial update; only the provided flags change the record.
Archive a module with --status Archived.`,
	Args: cobra.ExactArgs(1),
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

		m, err := client.UpdateModule(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update module %d: %w", id, err)
		}

		pterm.Success.Printf("Updated module %d (%s, %s)\n", m.ID, m.Code, m.Status)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Code, "code", "", "Module code")
	updateCmd.Flags().StringVar(&updateInput.Title, "title", "", "Module title")
	updateCmd.Flags().IntVar(&updateInput.Credits, "credits", 0, "Credit value")
	updateCmd.Flags().StringVar(&updateInput.Status, "status", "", "Status (Active, Archived)")
	updateCmd.Flags().StringVar(&updateInput.Instructor, "instructor", "", "Instructor name")
	updateCmd.Flags().StringVar(&updateInput.Cohort, "cohort", "", "Cohort")
}
