package modules

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a course module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cfg := config.MustFromContext(cmd.Context())
		if !removeYes {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to remove without --yes in non-interactive mode")
			}
			ok, _ := pterm.DefaultInteractiveConfirm.
				WithDefaultText(fmt.Sprintf("Remove module %d?", id)).
				Show()
			if !ok {
				return nil
			}
		}

		client, err := api(cmd.Context())
		if err != nil {
			return err
		}
		if err := client.DeleteModule(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to remove module %d: %w", id, err)
		}

		pterm.Success.Printf("Removed module %d\n", id)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeYes, "yes", false, "Skip the confirmation prompt")
}
