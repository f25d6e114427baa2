package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var reportsLimit int

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Show recent platform activity",
	Long:  `Renders the most recent audit-log activity as a report table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageReports); err != nil {
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
		if reportsLimit > 0 && len(entries) > reportsLimit {
			entries = entries[:reportsLimit]
		}

		pterm.DefaultSection.Println("Activity Report")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tACTION\tENTITY\tUSER\tDETAILS")
		for _, e := range entries {
			entity := e.Entity
			if entity == "" {
				entity = "-"
			}
			details := e.Details
			if details == "" {
				details = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Action, entity, e.UserID, details)
		}
		w.Flush()

		return nil
	},
}

func init() {
	reportsCmd.Flags().IntVar(&reportsLimit, "limit", 50, "Maximum number of entries to show")
}
