package users

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/gate"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/rbac"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/pkg/sdk"
)

var (
	createName     string
	createEmail    string
	createRole     string
	createPassword string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageUsers); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		user, err := client.CreateUser(cmd.Context(), sdk.CreateUserInput{
			Name:     createName,
			Email:    createEmail,
			Role:     sdk.Role(createRole),
			Password: createPassword,
		})
		if err != nil {
			return err
		}

		pterm.Success.Printf("User created: %s (%s)\n", user.Name, user.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Full name")
	createCmd.Flags().StringVar(&createEmail, "email", "", "Email address")
	createCmd.Flags().StringVar(&createRole, "role", string(sdk.RoleUser), "Role (SuperAdmin, Admin, Manager, User)")
	createCmd.Flags().StringVar(&createPassword, "password", "", "Initial password")
}
