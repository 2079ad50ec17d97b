package assessments

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

// AssessmentsCmd is the parent command for assessment management
var AssessmentsCmd = &cobra.Command{
	Use:   "assessments",
	Short: "Manage assessments",
}

func init() {
	AssessmentsCmd.AddCommand(listCmd)
	AssessmentsCmd.AddCommand(getCmd)
	AssessmentsCmd.AddCommand(createCmd)
	AssessmentsCmd.AddCommand(updateCmd)
	AssessmentsCmd.AddCommand(removeCmd)
}

func api(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.Provider.RequireAuth(ctx, "/assessments")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid assessment ID %q", arg)
	}
	return id, nil
}
