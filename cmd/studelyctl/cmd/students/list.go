package students

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var (
	listSearch  string
	listCohort  string
	listBranch  string
	listPage    int
	listPerPage int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		rows, meta, err := client.ListStudents(cmd.Context(), sdk.StudentListQuery{
			Search:   listSearch,
			Cohort:   listCohort,
			Branch:   listBranch,
			Page:     listPage,
			PerPage:  listPerPage,
			WithUser: true,
		})
		if err != nil {
			return fmt.Errorf("failed to list students: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tREG_NO\tNAME\tEMAIL\tCOHORT\tBRANCH")
		for _, s := range rows {
			cohort := s.Cohort
			if cohort == "" {
				cohort = "-"
			}
			branch := s.Branch
			if branch == "" {
				branch = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.RegNo, s.Name, s.Email, cohort, branch)
		}
		w.Flush()

		fmt.Println(pageFooter(meta))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name, email or registration number")
	listCmd.Flags().StringVar(&listCohort, "cohort", "", "Filter by cohort")
	listCmd.Flags().StringVar(&listBranch, "branch", "", "Filter by branch")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "Rows per page")
}
