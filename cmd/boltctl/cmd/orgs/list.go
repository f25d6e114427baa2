package orgs

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenant organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageOrganizations); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		orgs, err := client.ListOrganizations(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDOMAIN\tPLAN\tUSERS\tSTATUS")
		for _, o := range orgs {
			domain := o.Domain
			if domain == "" {
				domain = "-"
			}
			plan := o.Plan
			if plan == "" {
				plan = "-"
			}
			status := o.Status
			if status == "" {
				status = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", o.ID, o.Name, domain, plan, o.UserCount, status)
		}
		w.Flush()

		return nil
	},
}
