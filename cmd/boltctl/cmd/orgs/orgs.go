package orgs

import (
	"github.com/spf13/cobra"
)

// OrgsCmd is the parent command for the organizations page.
var OrgsCmd = &cobra.Command{
	Use:     "orgs",
	Aliases: []string{"organizations"},
	Short:   "Manage tenant organizations",
	Long:    `List, inspect, create, and update tenant organizations. Requires the SuperAdmin role.`,
}

func init() {
	OrgsCmd.AddCommand(listCmd)
	OrgsCmd.AddCommand(getCmd)
	OrgsCmd.AddCommand(createCmd)
	OrgsCmd.AddCommand(updateCmd)
}
