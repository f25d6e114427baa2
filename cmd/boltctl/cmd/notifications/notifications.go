package notifications

import (
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/feed"
)

// NotificationsCmd is the parent command for the notifications page.
var NotificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notify"},
	Short:   "View system notifications",
	Long:    `Shows the notification feed built from the platform audit log, with read-state tracking for this session.`,
}

func init() {
	NotificationsCmd.AddCommand(listCmd)
	NotificationsCmd.AddCommand(readCmd)
	NotificationsCmd.AddCommand(readAllCmd)
}

// buildFeed assembles the audit-backed feed for the current session.
func buildFeed(cfg *config.GlobalConfig) (*feed.Feed, error) {
	mgr, err := cfg.Provider.Session()
	if err != nil {
		return nil, err
	}
	client, err := cfg.Provider.SDKClient()
	if err != nil {
		return nil, err
	}
	return feed.New(feed.NewAuditSource(client), mgr, feed.WithLogger(cfg.Logger)), nil
}
