package auth

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		mgr, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		who, ok := mgr.Identity()
		if !ok {
			return fmt.Errorf("not logged in")
		}

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Printf("Logged in as: %s <%s>\n", who.Name, who.Email)
		pterm.Info.Printf("Role: %s\n", who.Role)
		pterm.Info.Printf("Organization: %s\n", who.Organization)

		if creds := mgr.Credentials(); creds != nil {
			if exp, ok := creds.ExpiresAt(); ok {
				pterm.Info.Printf("Access token expires at: %s\n", exp.Format(time.RFC1123))
			}
		}

		pterm.DefaultSection.Println("Accessible Pages")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PAGE\tTITLE")
		for _, item := range rbac.VisibleMenuItems(who.Role) {
			fmt.Fprintf(w, "%s\t%s\n", item.Page, item.Title)
		}
		w.Flush()

		return nil
	},
}
