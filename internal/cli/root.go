package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gmod",
		Short: "CLI tool for the game modules API",
		Long: `gmod is a CLI tool for interacting with the game modules JSON API.

It covers player registration, combat, item minting and initialization.
Requests are signed with the ed25519 key in the key file; run "gmod keygen"
to create one.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing key file leaves requests unsigned
			key, err := cfg.LoadKey()
			if err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL, key)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GMOD_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.KeyFile, "key-file", cfg.KeyFile, "Signing key file path (env: GMOD_KEY_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newKeygenCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newCombatCmd())
	rootCmd.AddCommand(newAssetCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
