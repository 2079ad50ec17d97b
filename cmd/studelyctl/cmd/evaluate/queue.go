package evaluate

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var (
	queueSearch  string
	queuePage    int
	queuePerPage int
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List submitted attempts awaiting evaluation",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		rows, meta, err := client.ListQueue(cmd.Context(), sdk.QueueQuery{
			Search:  queueSearch,
			Page:    queuePage,
			PerPage: queuePerPage,
		})
		if err != nil {
			return fmt.Errorf("failed to list evaluation queue: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ATTEMPT\tASSESSMENT\tSTUDENT\tREG_NO\tSUBMITTED\tSCORE")
		for _, item := range rows {
			score := "-"
			if item.Score != nil {
				score = fmt.Sprintf("%.2f", *item.Score)
			}
			submitted := item.SubmittedAt
			if submitted == "" {
				submitted = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				item.ID, item.AssessmentTitle, item.StudentName, item.StudentRegNo, submitted, score)
		}
		w.Flush()

		fmt.Printf("Page %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
		return nil
	},
}

func init() {
	queueCmd.Flags().StringVar(&queueSearch, "search", "", "Filter by student or assessment")
	queueCmd.Flags().IntVar(&queuePage, "page", 0, "Page number")
	queueCmd.Flags().IntVar(&queuePerPage, "per-page", 0, "Rows per page")
}
