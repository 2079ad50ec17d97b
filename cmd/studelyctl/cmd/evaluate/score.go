package evaluate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/pkg/sdk"
)

var scoreArgs []string

var scoreCmd = &cobra.Command{
	Use:   "score <attempt-id>",
	Short: "Record scores for an attempt",
	Long: `Records per-criterion scores for a submitted attempt.

Each --score flag takes criterion=score with an optional comment:

  studelyctl evaluate score 101 --score 1=8 --score "2=9.5:clean proof"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		attemptID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || attemptID <= 0 {
			return fmt.Errorf("invalid attempt ID %q", args[0])
		}
		rows, err := parseScoreArgs(scoreArgs)
		if err != nil {
			return err
		}

		client, err := api(cmd.Context())
		if err != nil {
			return err
		}
		if err := client.ScoreAttempt(cmd.Context(), attemptID, rows); err != nil {
			return fmt.Errorf("failed to score attempt %d: %w", attemptID, err)
		}

		pterm.Success.Printf("Scored attempt %d (%d criteria)\n", attemptID, len(rows))
		return nil
	},
}

// parseScoreArgs turns criterion=score[:comment] arguments into score rows.
func parseScoreArgs(args []string) ([]sdk.ScoreRow, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one --score flag is required")
	}
	rows := make([]sdk.ScoreRow, 0, len(args))
	for _, arg := range args {
		key, rest, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid score %q: expected criterion=score[:comment]", arg)
		}
		criterionID, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil || criterionID <= 0 {
			return nil, fmt.Errorf("invalid criterion ID in %q", arg)
		}
		value, comment, _ := strings.Cut(rest, ":")
		score, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || score < 0 {
			return nil, fmt.Errorf("invalid score value in %q", arg)
		}
		rows = append(rows, sdk.ScoreRow{
			CriterionID: criterionID,
			Score:       score,
			Comment:     strings.TrimSpace(comment),
		})
	}
	return rows, nil
}

func init() {
	scoreCmd.Flags().StringArrayVar(&scoreArgs, "score", nil, "Criterion score as criterion=score[:comment]. Repeatable")
}
