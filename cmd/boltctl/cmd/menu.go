package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the pages your role can open",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		mgr, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		who, ok := mgr.Identity()
		if !ok {
			return fmt.Errorf("%w: please run `boltctl auth login`", sdk.ErrUnauthenticated)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PAGE\tTITLE")
		for _, item := range rbac.VisibleMenuItems(who.Role) {
			fmt.Fprintf(w, "%s\t%s\n", item.Page, item.Title)
		}
		w.Flush()

		return nil
	},
}
