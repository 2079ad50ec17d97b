package assessments

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var (
	listSearch   string
	listType     string
	listModuleID int64
	listPage     int
	listPerPage  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		rows, meta, err := client.ListAssessments(cmd.Context(), sdk.AssessmentListQuery{
			Search:   listSearch,
			Type:     listType,
			ModuleID: listModuleID,
			Page:     listPage,
			PerPage:  listPerPage,
		})
		if err != nil {
			return fmt.Errorf("failed to list assessments: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tMODULE\tTYPE\tSTARTS_AT\tMARKS")
		for _, a := range rows {
			module := a.ModuleCode
			if module == "" {
				module = fmt.Sprintf("#%d", a.ModuleID)
			}
			starts := a.StartsAt
			if starts == "" {
				starts = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", a.ID, a.Title, module, a.Type, starts, a.TotalMarks)
		}
		w.Flush()

		fmt.Printf("Page %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by title")
	listCmd.Flags().StringVar(&listType, "type", "", "Filter by type (online, offline)")
	listCmd.Flags().Int64Var(&listModuleID, "module", 0, "Filter by module ID")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "Rows per page")
}
