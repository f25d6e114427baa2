package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Bolt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		mgr, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		mgr.Logout()
		cfg.Provider.ClearCookies()

		fmt.Println("Logged out successfully")
		return nil
	},
}
