package assessments

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var createInput sdk.AssessmentInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an assessment",
	Long:  `Creates an assessment under a module. Module ID and title are required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		a, err := client.CreateAssessment(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create assessment: %w", err)
		}

		pterm.Success.Printf("Created assessment %d (%s)\n", a.ID, a.Title)
		return nil
	},
}

func init() {
	createCmd.Flags().Int64Var(&createInput.ModuleID, "module", 0, "Module ID (required)")
	createCmd.Flags().StringVar(&createInput.Title, "title", "", "Assessment title (required)")
	createCmd.Flags().StringVar(&createInput.Type, "type", sdk.AssessmentTypeOnline, "Delivery type (online, offline)")
	createCmd.Flags().StringVar(&createInput.StartsAt, "starts-at", "", "Start time (RFC 3339)")
	createCmd.Flags().IntVar(&createInput.DurationSec, "duration", 0, "Duration in seconds")
	createCmd.Flags().IntVar(&createInput.TotalMarks, "marks", 0, "Total marks")
}
