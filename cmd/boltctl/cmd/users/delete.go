package users

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageUsers); err != nil {
			return err
		}

		if !deleteYes {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
			}
			ok, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete user %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
			return err
		}

		pterm.Success.Printf("User %s deleted\n", args[0])
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Skip the confirmation prompt")
}
