package main

import (
	"context"
	"fmt"
	"time"

	"github.com/amped-finance/amped-api/libs/go/chain"
	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/signer"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"

	"github.com/spf13/cobra"
)

func dialRouter(ctx context.Context, flags *globalFlags, relayerKey string) (*chain.RouterClient, error) {
	if flags.rpcURL == "" {
		return nil, fmt.Errorf("--rpc (or RPC_URL) is required")
	}
	router, err := flags.routerAddress()
	if err != nil {
		return nil, err
	}

	var relayer *signer.Signer
	if relayerKey != "" {
		if relayer, err = signer.FromHex(relayerKey); err != nil {
			return nil, err
		}
		return chain.Dial(ctx, flags.rpcURL, router, relayer.PrivateKey())
	}
	return chain.Dial(ctx, flags.rpcURL, router, nil)
}

func newNonceCmd(flags *globalFlags) *cobra.Command {
	var account string
	cmd := &cobra.Command{
		Use:   "nonce",
		Short: "Read an account's nonce from the router",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := helpers.ParseAddress(account)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			client, err := dialRouter(ctx, flags, "")
			if err != nil {
				return err
			}
			nonce, err := client.Nonce(ctx, addr)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{"account": addr.Hex(), "nonce": nonce})
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "account address")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func newStakeForCmd(flags *globalFlags) *cobra.Command {
	auth := &authFlags{}
	var signature, relayerKey string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "stake-for",
		Short: "Submit a signed delegated stake as the relayer",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := helpers.ParseAddress(auth.account)
			if err != nil {
				return err
			}
			amount, err := helpers.ParseAmount(auth.amount)
			if err != nil {
				return err
			}
			sig, err := stakingrouter.ParseSignature(signature)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := dialRouter(ctx, flags, relayerKey)
			if err != nil {
				return err
			}
			receipt, err := client.StakeAmpedForAccount(ctx, account, amount, auth.deadline, sig)
			if err != nil {
				return err
			}

			out := map[string]interface{}{
				"account":   receipt.Account.Hex(),
				"amount_in": receipt.AmountIn.String(),
			}
			if receipt.AmountStaked != nil {
				out["amount_staked"] = receipt.AmountStaked.String()
			}
			if receipt.Nonce != nil {
				out["nonce"] = *receipt.Nonce
			}
			if receipt.TxHash != nil {
				out["tx_hash"] = receipt.TxHash.Hex()
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().StringVar(&auth.account, "account", "", "beneficiary account")
	cmd.Flags().StringVar(&auth.amount, "amount", "", "amount in wei")
	cmd.Flags().Uint64Var(&auth.deadline, "deadline", 0, "unix deadline in seconds")
	cmd.Flags().StringVar(&signature, "signature", "", "65 byte hex signature from sign")
	cmd.Flags().StringVar(&relayerKey, "relayer-key", envOr("RELAYER_PRIVATE_KEY", ""), "hex private key paying for the transaction")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "time to wait for the receipt")
	for _, name := range []string{"account", "amount", "deadline", "signature"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
