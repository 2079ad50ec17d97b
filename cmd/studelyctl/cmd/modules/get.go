package modules

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one module",
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

		m, err := client.GetModule(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get module %d: %w", id, err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", m.ID)
		fmt.Fprintf(w, "CODE\t%s\n", m.Code)
		fmt.Fprintf(w, "TITLE\t%s\n", m.Title)
		fmt.Fprintf(w, "CREDITS\t%d\n", m.Credits)
		fmt.Fprintf(w, "STATUS\t%s\n", m.Status)
		if m.Instructor != "" {
			fmt.Fprintf(w, "INSTRUCTOR\t%s\n", m.Instructor)
		}
		if m.Cohort != "" {
			fmt.Fprintf(w, "COHORT\t%s\n", m.Cohort)
		}
		fmt.Fprintf(w, "ASSESSMENTS\t%d\n", m.AssessmentsCount)
		fmt.Fprintf(w, "STUDENTS\t%d\n", m.StudentsCount)
		w.Flush()
		return nil
	},
}
