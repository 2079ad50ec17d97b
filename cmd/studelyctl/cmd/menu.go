package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Arden28/studely-client/cmd/studelyctl/internal/config"
	"github.com/Arden28/studely-client/pkg/sdk"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the console sections visible to the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		state, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Studely Console")
		if state.Authenticated() {
			role := string(state.Identity.Role)
			if role == "" {
				role = "unknown role"
			}
			pterm.Info.Printf("Signed in as %s (%s)\n", state.Identity.Name, role)
			if state.Provenance == sdk.ProvenanceCached {
				pterm.Info.Println("Session not yet confirmed with the server")
			}
		} else {
			pterm.Info.Println("Browsing as guest; run `studelyctl auth login` for more")
		}

		items := sdk.VisibleItems(sdk.DefaultNav, state)
		bullets := make([]pterm.BulletListItem, 0, len(items))
		for _, item := range items {
			bullets = append(bullets, pterm.BulletListItem{
				Level: 0,
				Text:  fmt.Sprintf("%-14s %s", item.Title, item.Route),
			})
		}
		return pterm.DefaultBulletList.WithItems(bullets).Render()
	},
}
