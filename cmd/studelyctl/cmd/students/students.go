package students

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

// StudentsCmd is the parent command for student management
var StudentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage students",
	Long:  `Commands for listing, inspecting and maintaining student records.`,
}

func init() {
	StudentsCmd.AddCommand(listCmd)
	StudentsCmd.AddCommand(getCmd)
	StudentsCmd.AddCommand(createCmd)
	StudentsCmd.AddCommand(updateCmd)
	StudentsCmd.AddCommand(removeCmd)
}

func api(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.Provider.RequireAuth(ctx, "/students")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid student ID %q", arg)
	}
	return id, nil
}

func pageFooter(meta sdk.Meta) string {
	return fmt.Sprintf("Page %d of %d (%d total)", meta.CurrentPage, meta.LastPage, meta.Total)
}
