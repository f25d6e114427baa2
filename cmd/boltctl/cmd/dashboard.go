package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/feed"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		who, err := gate.Ensure(cfg, rbac.PageDashboard)
		if err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		stats, err := client.DashboardStats(cmd.Context())
		if err != nil {
			return err
		}

		pterm.DefaultSection.Printf("Welcome back, %s\n", who.Name)
		pterm.Info.Printf("Total users: %d\n", stats.TotalUsers)
		pterm.Info.Printf("Organizations: %d\n", stats.Organizations)

		// Unread badge, best effort like the web header.
		mgr, err := cfg.Provider.Session()
		if err == nil {
			f := feed.New(feed.NewAuditSource(client), mgr, feed.WithLogger(cfg.Logger))
			f.Load(cmd.Context())
			pterm.Info.Printf("Unread notifications: %d\n", f.UnreadCount())
		}

		return nil
	},
}
