package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/cmd/auth"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/cmd/notifications"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/cmd/orgs"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/cmd/settings"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/cmd/users"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/client"
	"github.com/syedkashanabbas/bolt-dashboard-frontend/cmd/boltctl/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "boltctl",
	Short: "Bolt CLI - admin dashboard client",
	Long: `boltctl is the terminal front-end for the Bolt multi-tenant SaaS admin
platform. It manages your session against the Bolt API and exposes the same
pages as the web dashboard: users, organizations, analytics, reports,
notifications, security, and settings - gated by your role.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if os.Getenv("BOLT_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("server") {
			cfg.ServerURL = serverURL
		}
		if verbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			cfg.Logger = logger
		}
		cfg.NonInteractive = nonInteractive
		cfg.Provider = client.NewProvider(cfg.ServerURL, cfg.RequestTimeout, cfg.Logger)

		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000", "Bolt API server URL")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via BOLT_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(orgs.OrgsCmd)
	rootCmd.AddCommand(notifications.NotificationsCmd)
	rootCmd.AddCommand(settings.SettingsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(securityCmd)
}
