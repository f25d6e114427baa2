package users

import (
	"github.com/spf13/cobra"
)

// UsersCmd is the parent command for the users page.
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users in your organization",
	Long:  `List, inspect, create, update, and delete user accounts. Requires the SuperAdmin or Admin role.`,
}

func init() {
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(getCmd)
	UsersCmd.AddCommand(createCmd)
	UsersCmd.AddCommand(updateCmd)
	UsersCmd.AddCommand(deleteCmd)
}
