package students

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one student",
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

		s, err := client.GetStudent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get student %d: %w", id, err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", s.ID)
		fmt.Fprintf(w, "REG_NO\t%s\n", s.RegNo)
		fmt.Fprintf(w, "NAME\t%s\n", s.Name)
		fmt.Fprintf(w, "EMAIL\t%s\n", s.Email)
		if s.Phone != "" {
			fmt.Fprintf(w, "PHONE\t%s\n", s.Phone)
		}
		if s.Cohort != "" {
			fmt.Fprintf(w, "COHORT\t%s\n", s.Cohort)
		}
		if s.Branch != "" {
			fmt.Fprintf(w, "BRANCH\t%s\n", s.Branch)
		}
		if s.InstitutionName != "" {
			fmt.Fprintf(w, "INSTITUTION\t%s\n", s.InstitutionName)
		}
		if s.UniversityName != "" {
			fmt.Fprintf(w, "UNIVERSITY\t%s\n", s.UniversityName)
		}
		if s.AdmissionYear != 0 {
			fmt.Fprintf(w, "ADMITTED\t%d\n", s.AdmissionYear)
		}
		if s.CurrentSemester != 0 {
			fmt.Fprintf(w, "SEMESTER\t%d\n", s.CurrentSemester)
		}
		w.Flush()
		return nil
	},
}
