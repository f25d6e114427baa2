package auth

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/session"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Silently renew the access token",
	Long: `Renews the access token using the stored refresh cookie. A rejected
refresh terminates the session; a transient network failure leaves it as-is.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		mgr, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if mgr.State() != session.Authenticated {
			return fmt.Errorf("not logged in")
		}

		mgr.Refresh(cmd.Context())

		if mgr.State() == session.Authenticated {
			pterm.Success.Println("Session active")
			if creds := mgr.Credentials(); creds != nil {
				if exp, ok := creds.ExpiresAt(); ok {
					pterm.Info.Printf("Access token valid until %s\n", exp.Format(time.RFC1123))
				}
			}
			return nil
		}
		cfg.Provider.ClearCookies()
		return fmt.Errorf("session expired, please run `boltctl auth login`")
	},
}
