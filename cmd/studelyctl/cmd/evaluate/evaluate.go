package evaluate

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

// EvaluateCmd is the parent command for the evaluator workflow
var EvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Work through the evaluator queue",
	Long:  `Commands for listing submitted attempts and recording their scores.`,
}

func init() {
	EvaluateCmd.AddCommand(queueCmd)
	EvaluateCmd.AddCommand(scoreCmd)
}

func api(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)
	return cfg.Provider.RequireAuth(ctx, "/evaluate")
}
