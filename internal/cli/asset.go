package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newAssetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asset",
		Short: "Item mint and token account commands",
	}

	cmd.AddCommand(newAssetCreateMintCmd())
	cmd.AddCommand(newAssetOpenAccountCmd())
	cmd.AddCommand(newAssetBalanceCmd())
	cmd.AddCommand(newAssetMintCmd())

	return cmd
}

func newAssetCreateMintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-mint <mint>",
		Short: "Create a mint with your key as its authority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Mint

			if err := client.SignedPost("/api/v1/mints/"+url.PathEscape(args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAssetOpenAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open-account <mint> <account>",
		Short: "Open a token account for a mint, owned by your key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Account

			path := "/api/v1/mints/" + url.PathEscape(args[0]) + "/accounts/" + url.PathEscape(args[1])
			if err := client.SignedPost(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAssetBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account>",
		Short: "Show a token account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Account

			if err := client.Get("/api/v1/accounts/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAssetMintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint <mint> <destination>",
		Short: "Mint one item into a token account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"destination": args[1]}
			var result MintedItem

			if err := client.SignedPost("/api/v1/mints/"+url.PathEscape(args[0])+"/items", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
