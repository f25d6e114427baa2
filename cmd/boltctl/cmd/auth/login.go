package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Bolt",
	Long: `Authenticates against the Bolt API with email and password.

On success the access token and profile snapshot are persisted under ~/.bolt
and the refresh cookie set by the server is stored for silent renewal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email := loginEmail
		password := loginPassword
		if email == "" && !cfg.NonInteractive {
			var err error
			email, err = pterm.DefaultInteractiveTextInput.Show("Email")
			if err != nil {
				return err
			}
		}
		if password == "" && !cfg.NonInteractive {
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}

		mgr, err := cfg.Provider.Session()
		if err != nil {
			return err
		}
		if err := mgr.Login(cmd.Context(), email, password); err != nil {
			return err
		}

		who, _ := mgr.Identity()
		fmt.Println("------------------------------------------------------------")
		pterm.Success.Println("Login successful!")
		pterm.Info.Printf("Authenticated as: %s <%s> (%s)\n", who.Name, who.Email, who.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}
