package settings

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

// SettingsCmd is the parent command for the settings page.
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and update your profile",
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show your profile settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		who, err := gate.Ensure(cfg, rbac.PageSettings)
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Profile")
		pterm.Info.Printf("Name: %s\n", who.Name)
		pterm.Info.Printf("Email: %s\n", who.Email)
		pterm.Info.Printf("Role: %s\n", who.Role)
		pterm.Info.Printf("Organization: %s\n", who.Organization)
		pterm.Info.Printf("Department: %s\n", who.Department)
		return nil
	},
}

func init() {
	SettingsCmd.AddCommand(viewCmd)
	SettingsCmd.AddCommand(profileCmd)
}
