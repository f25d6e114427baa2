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
	updateName   string
	updateDomain string
	updatePlan   string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a tenant organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageOrganizations); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		current, err := client.GetOrganization(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		in := sdk.OrganizationInput{Name: current.Name, Domain: current.Domain, Plan: current.Plan}
		if updateName != "" {
			in.Name = updateName
		}
		if updateDomain != "" {
			in.Domain = updateDomain
		}
		if updatePlan != "" {
			in.Plan = updatePlan
		}

		org, err := client.UpdateOrganization(cmd.Context(), args[0], in)
		if err != nil {
			return err
		}

		pterm.Success.Printf("Organization updated: %s (%s)\n", org.Name, org.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New name")
	updateCmd.Flags().StringVar(&updateDomain, "domain", "", "New domain")
	updateCmd.Flags().StringVar(&updatePlan, "plan", "", "New plan")
}
