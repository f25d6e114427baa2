package orgs

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageOrganizations); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		org, err := client.GetOrganization(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println(org.Name)
		pterm.Info.Printf("ID: %s\n", org.ID)
		if org.Domain != "" {
			pterm.Info.Printf("Domain: %s\n", org.Domain)
		}
		if org.Plan != "" {
			pterm.Info.Printf("Plan: %s\n", org.Plan)
		}
		pterm.Info.Printf("Users: %d\n", org.UserCount)
		if org.Status != "" {
			pterm.Info.Printf("Status: %s\n", org.Status)
		}
		return nil
	},
}
