package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show platform analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageAnalytics); err != nil {
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

		pterm.DefaultSection.Println("Analytics")
		bars := []pterm.Bar{
			{Label: "Users", Value: stats.TotalUsers},
			{Label: "Organizations", Value: stats.Organizations},
		}
		return pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()
	},
}
