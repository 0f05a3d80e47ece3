package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand. Defaults come from the same
// environment variables the API reads.
type globalFlags struct {
	chainID string
	router  string
	rpcURL  string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "ampedctl",
		Short:         "Operator tool for the AmpedStakingRouter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `ampedctl computes and signs delegated stake authorizations and submits
them to a deployed AmpedStakingRouter.

Offline commands (digest, typed-data, sign, address) need only the chain id
and the router address. nonce and stake-for talk to an RPC node.`,
	}

	root.PersistentFlags().StringVar(&flags.chainID, "chain-id", envOr("CHAIN_ID", "31337"), "chain id of the EIP-712 domain")
	root.PersistentFlags().StringVar(&flags.router, "router", os.Getenv("ROUTER_ADDRESS"), "router contract address (verifying contract)")
	root.PersistentFlags().StringVar(&flags.rpcURL, "rpc", os.Getenv("RPC_URL"), "JSON-RPC endpoint")

	root.AddCommand(newAddressCmd())
	root.AddCommand(newDigestCmd(flags))
	root.AddCommand(newTypedDataCmd(flags))
	root.AddCommand(newSignCmd(flags))
	root.AddCommand(newNonceCmd(flags))
	root.AddCommand(newStakeForCmd(flags))
	return root
}

func (f *globalFlags) domain() (stakingrouter.Domain, error) {
	chainID, ok := new(big.Int).SetString(f.chainID, 10)
	if !ok || chainID.Sign() <= 0 {
		return stakingrouter.Domain{}, fmt.Errorf("invalid chain id '%s'", f.chainID)
	}
	router, err := f.routerAddress()
	if err != nil {
		return stakingrouter.Domain{}, err
	}
	return stakingrouter.NewDomain(chainID, router), nil
}

func (f *globalFlags) routerAddress() (common.Address, error) {
	if f.router == "" {
		return common.Address{}, fmt.Errorf("--router (or ROUTER_ADDRESS) is required")
	}
	return helpers.ParseAddress(f.router)
}

// authFlags describe a single Stake message.
type authFlags struct {
	account  string
	amount   string
	nonce    uint64
	deadline uint64
}

func (a *authFlags) register(cmd *cobra.Command, withAccount bool) {
	if withAccount {
		cmd.Flags().StringVar(&a.account, "account", "", "beneficiary account")
	}
	cmd.Flags().StringVar(&a.amount, "amount", "", "amount in wei")
	cmd.Flags().Uint64Var(&a.nonce, "nonce", 0, "account nonce the signature covers")
	cmd.Flags().Uint64Var(&a.deadline, "deadline", 0, "unix deadline in seconds")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("deadline")
}

func (a *authFlags) authorization(account common.Address) (stakingrouter.StakeAuthorization, error) {
	amount, err := helpers.ParseAmount(a.amount)
	if err != nil {
		return stakingrouter.StakeAuthorization{}, err
	}
	if !stakingrouter.ValidAmount(amount) {
		return stakingrouter.StakeAuthorization{}, stakingrouter.ErrInvalidAmount
	}
	return stakingrouter.StakeAuthorization{
		Account:  account,
		Amount:   amount,
		Nonce:    a.nonce,
		Deadline: a.deadline,
	}, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
