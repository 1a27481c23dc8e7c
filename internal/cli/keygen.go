package cli

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/gamemodules/internal/services/auth"
)

func newKeygenCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key and save it to the key file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, key, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				return fmt.Errorf("failed to generate key: %w", err)
			}

			if err := cfg.SaveKey(key, force); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(KeyInfo{
				Identity: auth.IdentityOf(key).String(),
				KeyFile:  cfg.KeyFile,
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing key file")

	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity of the signing key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := cfg.LoadKey()
			if err != nil {
				return err
			}
			if key == nil {
				return ErrNoKey
			}

			out := NewOutput(cfg.Output)
			out.Print(KeyInfo{
				Identity: auth.IdentityOf(key).String(),
				KeyFile:  cfg.KeyFile,
			})
			return nil
		},
	}
}
