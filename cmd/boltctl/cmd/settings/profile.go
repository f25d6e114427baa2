package settings

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

var (
	profileName       string
	profileDepartment string
	profileAvatar     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update your profile",
	Long: `Updates your local profile snapshot. Changes are merged into the stored
identity and shown across the dashboard from the next command on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageSettings); err != nil {
			return err
		}

		patch := sdk.IdentityPatch{}
		changed := false
		if cmd.Flags().Changed("name") {
			patch.Name = &profileName
			changed = true
		}
		if cmd.Flags().Changed("department") {
			patch.Department = &profileDepartment
			changed = true
		}
		if cmd.Flags().Changed("avatar") {
			patch.Avatar = &profileAvatar
			changed = true
		}
		if !changed {
			return fmt.Errorf("nothing to update: pass --name, --department, or --avatar")
		}

		mgr, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		mgr.UpdateIdentity(patch)

		who, _ := mgr.Identity()
		pterm.Success.Printf("Profile updated: %s (%s)\n", who.Name, who.Department)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileCmd.Flags().StringVar(&profileDepartment, "department", "", "Department")
	profileCmd.Flags().StringVar(&profileAvatar, "avatar", "", "Avatar URL")
}
