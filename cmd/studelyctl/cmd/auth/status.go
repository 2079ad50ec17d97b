package auth

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		state, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}
		if !state.Authenticated() {
			return fmt.Errorf("not logged in; run `studelyctl auth login`")
		}

		// Block on a confirmation so status reports the server's view, not a
		// possibly stale snapshot. A network failure falls back to the cached
		// identity instead of failing the command.
		ctrl, err := cfg.Provider.Controller()
		if err != nil {
			return err
		}
		state = ctrl.RefreshWait(cmd.Context())
		if !state.Authenticated() {
			return fmt.Errorf("session expired; run `studelyctl auth login`")
		}

		pterm.DefaultSection.Println("Session Status")
		if state.Provenance == sdk.ProvenanceCached {
			pterm.Warning.Println("Could not confirm with the server; showing cached identity.")
		}

		id := state.Identity
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "NAME\t%s\n", id.Name)
		fmt.Fprintf(w, "EMAIL\t%s\n", id.Email)
		if id.Phone != "" {
			fmt.Fprintf(w, "PHONE\t%s\n", id.Phone)
		}
		fmt.Fprintf(w, "ROLE\t%s\n", id.Role)
		if id.TenantID != nil {
			fmt.Fprintf(w, "TENANT\t%d\n", *id.TenantID)
		}
		fmt.Fprintf(w, "PROVENANCE\t%s\n", state.Provenance)
		w.Flush()

		return nil
	},
}
