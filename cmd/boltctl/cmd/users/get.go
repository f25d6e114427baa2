package users

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageUsers); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		user, err := client.GetUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println(user.Name)
		pterm.Info.Printf("ID: %s\n", user.ID)
		pterm.Info.Printf("Email: %s\n", user.Email)
		pterm.Info.Printf("Role: %s\n", user.Role)
		if user.TenantID != "" {
			pterm.Info.Printf("Tenant: %s\n", user.TenantID)
		}
		if user.Status != "" {
			pterm.Info.Printf("Status: %s\n", user.Status)
		}
		return nil
	},
}
