package main

import (
	"fmt"

	"github.com/amped-finance/amped-api/libs/go/helpers"
	"github.com/amped-finance/amped-api/libs/go/signer"
	"github.com/amped-finance/amped-api/libs/go/stakingrouter"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

func newAddressCmd() *cobra.Command {
	var key string
	var generate bool

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the address of a private key, or generate a new key",
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *signer.Signer
			var err error
			switch {
			case generate:
				s, err = signer.Generate()
			case key != "":
				s, err = signer.FromHex(key)
			default:
				return fmt.Errorf("one of --key or --generate is required")
			}
			if err != nil {
				return err
			}

			out := map[string]string{"address": s.Address().Hex()}
			if generate {
				out["private_key"] = hexutil.Encode(crypto.FromECDSA(s.PrivateKey()))
			}
			return printJSON(cmd, out)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "hex private key")
	cmd.Flags().BoolVar(&generate, "generate", false, "generate a new key")
	return cmd
}

func newDigestCmd(flags *globalFlags) *cobra.Command {
	auth := &authFlags{}
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Compute the EIP-712 digest of a Stake message",
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, a, err := offlineAuthorization(flags, auth)
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{
				"domain_separator": domain.Separator().Hex(),
				"struct_hash":      a.StructHash().Hex(),
				"digest":           stakingrouter.TypedDataHash(domain.Separator(), a.StructHash()).Hex(),
			})
		},
	}
	auth.register(cmd, true)
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func newTypedDataCmd(flags *globalFlags) *cobra.Command {
	auth := &authFlags{}
	cmd := &cobra.Command{
		Use:   "typed-data",
		Short: "Print the eth_signTypedData_v4 payload of a Stake message",
		RunE: func(cmd *cobra.Command, args []string) error {
			domain, a, err := offlineAuthorization(flags, auth)
			if err != nil {
				return err
			}
			return printJSON(cmd, stakingrouter.TypedData(domain, a))
		},
	}
	auth.register(cmd, true)
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func newSignCmd(flags *globalFlags) *cobra.Command {
	auth := &authFlags{}
	var key string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a Stake message as the account owning --key",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := signer.FromHex(key)
			if err != nil {
				return err
			}
			domain, err := flags.domain()
			if err != nil {
				return err
			}
			a, err := auth.authorization(s.Address())
			if err != nil {
				return err
			}
			sig, err := s.SignStake(domain, a)
			if err != nil {
				return err
			}

			v, r, sv := sig.VRS()
			return printJSON(cmd, map[string]interface{}{
				"account":   s.Address().Hex(),
				"amount":    a.Amount.String(),
				"nonce":     a.Nonce,
				"deadline":  a.Deadline,
				"signature": sig.Hex(),
				"v":         v,
				"r":         hexutil.Encode(r[:]),
				"s":         hexutil.Encode(sv[:]),
			})
		},
	}
	auth.register(cmd, false)
	cmd.Flags().StringVar(&key, "key", "", "hex private key of the account")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func offlineAuthorization(flags *globalFlags, auth *authFlags) (stakingrouter.Domain, stakingrouter.StakeAuthorization, error) {
	domain, err := flags.domain()
	if err != nil {
		return stakingrouter.Domain{}, stakingrouter.StakeAuthorization{}, err
	}
	account, err := helpers.ParseAddress(auth.account)
	if err != nil {
		return stakingrouter.Domain{}, stakingrouter.StakeAuthorization{}, err
	}
	a, err := auth.authorization(account)
	return domain, a, err
}
