package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newCombatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combat",
		Short: "Combat commands",
	}

	cmd.AddCommand(newCombatSpawnCmd())
	cmd.AddCommand(newCombatAttackCmd())
	cmd.AddCommand(newCombatGetCmd())

	return cmd
}

func newCombatSpawnCmd() *cobra.Command {
	var hp uint8

	cmd := &cobra.Command{
		Use:   "spawn <address>",
		Short: "Register a combatant owned by your key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]uint8{}
			if cmd.Flags().Changed("hp") {
				req["hp"] = hp
			}

			var result Combatant

			if err := client.SignedPost("/api/v1/combatants/"+url.PathEscape(args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Uint8Var(&hp, "hp", 0, "Starting hp (default: server default)")

	return cmd
}

func newCombatAttackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attack <address> <damage>",
		Short: "Apply damage to a combatant you own",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			damage, err := strconv.ParseUint(args[1], 10, 8)
			if err != nil {
				return fmt.Errorf("damage must be 0-255: %w", err)
			}

			req := map[string]uint64{"damage": damage}
			var result Combatant

			if err := client.SignedPost("/api/v1/combatants/"+url.PathEscape(args[0])+"/attack", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCombatGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <address>",
		Short: "Show a combatant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Combatant

			if err := client.Get("/api/v1/combatants/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
