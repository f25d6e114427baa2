package notifications

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark one notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageNotifications); err != nil {
			return err
		}

		f, err := buildFeed(cfg)
		if err != nil {
			return err
		}
		f.Load(cmd.Context())
		f.MarkRead(args[0])

		pterm.Info.Printf("%d notifications still unread\n", f.UnreadCount())
		return nil
	},
}

var readAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageNotifications); err != nil {
			return err
		}

		f, err := buildFeed(cfg)
		if err != nil {
			return err
		}
		f.Load(cmd.Context())
		f.MarkAllRead()

		pterm.Success.Printf("All notifications marked read (%d unread)\n", f.UnreadCount())
		return nil
	},
}
