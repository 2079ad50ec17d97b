package modules

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var (
	listSearch  string
	listStatus  string
	listCohort  string
	listPage    int
	listPerPage int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List course modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		rows, meta, err := client.ListModules(cmd.Context(), sdk.ModuleListQuery{
			Search:  listSearch,
			Status:  listStatus,
			Cohort:  listCohort,
			Page:    listPage,
			PerPage: listPerPage,
		})
		if err != nil {
			return fmt.Errorf("failed to list modules: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCODE\tTITLE\tCREDITS\tSTATUS\tINSTRUCTOR\tSTUDENTS")
		for _, m := range rows {
			instructor := m.Instructor
			if instructor == "" {
				instructor = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%d\n",
				m.ID, m.Code, m.Title, m.Credits, m.Status, instructor, m.StudentsCount)
		}
		w.Flush()

		fmt.Printf("Page %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by code or title")
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (Active, Archived)")
	listCmd.Flags().StringVar(&listCohort, "cohort", "", "Filter by cohort")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "Rows per page")
}
