package colleges

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var (
	listSearch  string
	listCity    string
	listPage    int
	listPerPage int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List colleges",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := api(cmd.Context())
		if err != nil {
			return err
		}

		rows, meta, err := client.ListColleges(cmd.Context(), sdk.CollegeListQuery{
			Search:  listSearch,
			City:    listCity,
			Page:    listPage,
			PerPage: listPerPage,
		})
		if err != nil {
			return fmt.Errorf("failed to list colleges: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCODE\tCITY\tSTUDENTS")
		for _, c := range rows {
			city := c.City
			if city == "" {
				city = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", c.ID, c.Name, c.Code, city, c.StudentsCount)
		}
		w.Flush()

		fmt.Printf("Page %d of %d (%d total)\n", meta.CurrentPage, meta.LastPage, meta.Total)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Filter by name or code")
	listCmd.Flags().StringVar(&listCity, "city", "", "Filter by city")
	listCmd.Flags().IntVar(&listPage, "page", 0, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "Rows per page")
}
