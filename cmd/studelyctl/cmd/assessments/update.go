package assessments

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var updateInput sdk.AssessmentInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an assessment",
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

		a, err := client.UpdateAssessment(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update assessment %d: %w", id, err)
		}

		pterm.Success.Printf("Updated assessment %d (%s)\n", a.ID, a.Title)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Title, "title", "", "Assessment title")
	updateCmd.Flags().StringVar(&updateInput.Type, "type", "", "Delivery type (online, offline)")
	updateCmd.Flags().StringVar(&updateInput.StartsAt, "starts-at", "", "Start time (RFC 3339)")
	updateCmd.Flags().IntVar(&updateInput.DurationSec, "duration", 0, "Duration in seconds")
	updateCmd.Flags().IntVar(&updateInput.TotalMarks, "marks", 0, "Total marks")
}
