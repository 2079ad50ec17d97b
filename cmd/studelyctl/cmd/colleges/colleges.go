package colleges

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

// CollegesCmd is the parent command for college management
var CollegesCmd = &cobra.Command{
	Use:   "colleges",
	Short: "Manage colleges",
}

func init() {
	CollegesCmd.AddCommand(listCmd)
	CollegesCmd.AddCommand(createCmd)
	CollegesCmd.AddCommand(updateCmd)
	CollegesCmd.AddCommand(removeCmd)
}

func api(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.Provider.RequireAuth(ctx, "/colleges")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid college ID %q", arg)
	}
	return id, nil
}
