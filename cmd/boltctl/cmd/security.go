package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var securityCmd = &cobra.Command{
	Use:   "security",
	Short: "Show security-relevant events",
	Long:  `Filters the audit log down to destructive and unrecognized actions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageSecurity); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		entries, err := client.ListAuditLogs(cmd.Context())
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Security Events")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tACTION\tENTITY\tUSER")
		count := 0
		for _, e := range entries {
			action := strings.ToUpper(strings.TrimSpace(e.Action))
			if action == "CREATE" || action == "UPDATE" {
				continue
			}
			entity := e.Entity
			if entity == "" {
				entity = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Action, entity, e.UserID)
			count++
		}
		w.Flush()
		if count == 0 {
			pterm.Info.Println("No security events recorded")
		}

		return nil
	},
}
