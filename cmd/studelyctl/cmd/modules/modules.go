package modules

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

// ModulesCmd is the parent command for course module management
var ModulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Manage course modules",
}

func init() {
	ModulesCmd.AddCommand(listCmd)
	ModulesCmd.AddCommand(getCmd)
	ModulesCmd.AddCommand(createCmd)
	ModulesCmd.AddCommand(updateCmd)
	ModulesCmd.AddCommand(removeCmd)
}

func api(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.Provider.RequireAuth(ctx, "/modules")
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid module ID %q", arg)
	}
	return id, nil
}
