package assessments

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		a, err := client.GetAssessment(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get assessment %d: %w", id, err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", a.ID)
		fmt.Fprintf(w, "TITLE\t%s\n", a.Title)
		if a.ModuleCode != "" {
			fmt.Fprintf(w, "MODULE\t%s (%s)\n", a.ModuleCode, a.ModuleTitle)
		} else {
			fmt.Fprintf(w, "MODULE\t#%d\n", a.ModuleID)
		}
		fmt.Fprintf(w, "TYPE\t%s\n", a.Type)
		if a.Status != "" {
			fmt.Fprintf(w, "STATUS\t%s\n", a.Status)
		}
		if a.StartsAt != "" {
			fmt.Fprintf(w, "STARTS_AT\t%s\n", a.StartsAt)
		}
		if a.DurationSec != 0 {
			fmt.Fprintf(w, "DURATION\t%ds\n", a.DurationSec)
		}
		fmt.Fprintf(w, "TOTAL_MARKS\t%d\n", a.TotalMarks)
		w.Flush()
		return nil
	},
}
