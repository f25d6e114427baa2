package orgs

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

var (
	createName   string
	createDomain string
	createPlan   string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tenant organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageOrganizations); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		org, err := client.CreateOrganization(cmd.Context(), sdk.OrganizationInput{
			Name:   createName,
			Domain: createDomain,
			Plan:   createPlan,
		})
		if err != nil {
			return err
		}

		pterm.Success.Printf("Organization created: %s (%s)\n", org.Name, org.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Organization name")
	createCmd.Flags().StringVar(&createDomain, "domain", "", "Primary domain")
	createCmd.Flags().StringVar(&createPlan, "plan", "", "Subscription plan")
}
