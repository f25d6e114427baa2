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
	updateName  string
	updateEmail string
	updateRole  string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if _, err := gate.Ensure(cfg, rbac.PageUsers); err != nil {
			return err
		}

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		// Unchanged fields start from the current record so a partial edit
		// never blanks the rest.
		current, err := client.GetUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		in := sdk.UpdateUserInput{Name: current.Name, Email: current.Email, Role: current.Role}
		if updateName != "" {
			in.Name = updateName
		}
		if updateEmail != "" {
			in.Email = updateEmail
		}
		if updateRole != "" {
			in.Role = sdk.Role(updateRole)
		}

		user, err := client.UpdateUser(cmd.Context(), args[0], in)
		if err != nil {
			return err
		}

		pterm.Success.Printf("User updated: %s (%s)\n", user.Name, user.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "New full name")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "New email address")
	updateCmd.Flags().StringVar(&updateRole, "role", "", "New role (SuperAdmin, Admin, Manager, User)")
}
