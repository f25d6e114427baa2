package notifications

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var listUnreadOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
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

		items := f.Notifications()
		pterm.Info.Printf("%d notifications, %d unread\n", len(items), f.UnreadCount())

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLEVEL\tTITLE\tMESSAGE\tCREATED\tREAD")
		for _, n := range items {
			if listUnreadOnly && n.Read {
				continue
			}
			read := " "
			if n.Read {
				read = "x"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				n.ID, n.Level, n.Title, n.Message, n.CreatedAt.Format("2006-01-02 15:04"), read)
		}
		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listUnreadOnly, "unread", false, "Show only unread notifications")
}
